package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tapesim/api"
	"github.com/sarchlab/tapesim/config"
	"github.com/tebeka/atexit"
)

//go:embed hello.bf
var helloKernel string

func hello(driver api.Driver) error {
	if err := driver.Load(helloKernel); err != nil {
		return err
	}

	return driver.Run()
}

func newDriver(out io.Writer) api.Driver {
	engine := sim.NewSerialEngine()

	return api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithConfig(config.Default()).
		WithOutput(out).
		Build("Driver")
}

func main() {
	driver := newDriver(os.Stdout)

	if err := hello(driver); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	stats := driver.Stats()
	fmt.Fprintf(os.Stderr, "%d instructions in %.0f ns\n", stats.Steps, float64(stats.Time*1e9))

	atexit.Exit(0)
}
