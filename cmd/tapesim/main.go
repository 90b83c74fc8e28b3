// Command tapesim compiles and runs a tape program on a simulated core.
package main

import (
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	atexit.Exit(code)
}
