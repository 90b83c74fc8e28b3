package api

import (
	"io"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tapesim/config"
	"github.com/sarchlab/tapesim/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine  sim.Engine
	freq    sim.Freq
	cfg     *config.Config
	out     io.Writer
	monitor *monitoring.Monitor
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core. It overrides the frequency of the
// configuration.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithConfig sets the tape size and step budget.
func (b DriverBuilder) WithConfig(cfg config.Config) DriverBuilder {
	b.cfg = &cfg
	return b
}

// WithOutput sets where the program writes.
func (b DriverBuilder) WithOutput(out io.Writer) DriverBuilder {
	b.out = out
	return b
}

// WithMonitor registers the engine and the core with an akita monitor.
func (b DriverBuilder) WithMonitor(monitor *monitoring.Monitor) DriverBuilder {
	b.monitor = monitor
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	cfg := config.Default()
	if b.cfg != nil {
		cfg = *b.cfg
	}

	engine := b.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	freq := b.freq
	if freq == 0 {
		freq = cfg.Freq()
	}

	d := &driverImpl{engine: engine}
	d.core = core.NewBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithTapeSize(cfg.TapeSize).
		WithMaxSteps(cfg.MaxSteps).
		WithOutput(b.out).
		Build(name + ".Core")

	if b.monitor != nil {
		b.monitor.RegisterEngine(engine)
		b.monitor.RegisterComponent(d.core)
	}

	return d
}
