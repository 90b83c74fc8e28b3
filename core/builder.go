package core

import (
	"io"

	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new cores.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	tapeSize int
	maxSteps uint64
	out      io.Writer
}

// NewBuilder returns a builder with the default tape size and a 1 GHz clock.
func NewBuilder() Builder {
	return Builder{
		freq:     1 * sim.GHz,
		tapeSize: DefaultTapeSize,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithTapeSize sets the number of cells on the tape.
func (b Builder) WithTapeSize(tapeSize int) Builder {
	if tapeSize < 1 {
		panic(ErrInvalidTapeSize)
	}
	b.tapeSize = tapeSize
	return b
}

// WithMaxSteps limits the number of instructions the core executes. Zero
// means no limit.
func (b Builder) WithMaxSteps(maxSteps uint64) Builder {
	b.maxSteps = maxSteps
	return b
}

// WithOutput sets where output instructions write.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.tapeSize == 0 {
		b.tapeSize = DefaultTapeSize
	}
	if b.freq == 0 {
		b.freq = 1 * sim.GHz
	}

	c := &Core{
		state:    newCoreState(b.tapeSize),
		maxSteps: b.maxSteps,
	}
	c.SetOutput(b.out)

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
