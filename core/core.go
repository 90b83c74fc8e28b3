package core

import (
	"io"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tapesim/instr"
)

// Core runs a program as a simulated component, one instruction per cycle.
type Core struct {
	*sim.TickingComponent

	state    coreState
	emu      instEmulator
	maxSteps uint64
	mapped   bool
	err      error
}

// MapProgram sets the program that the core needs to run. The tape is
// cleared and the first tick is scheduled for the next cycle, so a program
// mapped after an earlier run still gets a tick.
func (c *Core) MapProgram(program instr.Program) {
	c.state.Code = program
	c.state.reset()
	c.mapped = true
	c.err = nil

	Trace("Core",
		"Behavior", "MapProgram",
		"Name", c.Name(),
		"Instructions", len(program),
		"TapeSize", len(c.state.Tape),
	)

	c.TickLater()
}

// Tick runs one instruction.
func (c *Core) Tick() (madeProgress bool) {
	if !c.mapped || c.err != nil || c.state.halted() {
		return false
	}

	if c.maxSteps > 0 && c.state.Steps >= c.maxSteps {
		c.fail(&Fault{
			PC:   c.state.PC,
			Inst: c.state.Code[c.state.PC],
			Err:  ErrStepBudgetExhausted,
		})
		return false
	}

	if err := c.emu.RunInst(&c.state); err != nil {
		c.fail(err)
		return false
	}

	if c.state.halted() {
		Trace("Core",
			"Behavior", "Halt",
			"Name", c.Name(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Steps", c.state.Steps,
		)
		LogState(&c.state)
	}

	return true
}

func (c *Core) fail(err error) {
	c.err = err

	Trace("Core",
		"Behavior", "Fault",
		"Name", c.Name(),
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"PC", c.state.PC,
		"Pointer", c.state.Pointer,
		"Error", err.Error(),
	)
	LogState(&c.state)
}

// SetOutput redirects the output of subsequent instructions.
func (c *Core) SetOutput(out io.Writer) {
	if out == nil {
		out = io.Discard
	}
	c.emu.out = out
}

// Err returns the fault that stopped the core, if any.
func (c *Core) Err() error {
	return c.err
}

// Halted reports whether the program ran past its last instruction.
func (c *Core) Halted() bool {
	return c.mapped && c.state.halted()
}

func (c *Core) PC() int {
	return c.state.PC
}

func (c *Core) Pointer() int {
	return c.state.Pointer
}

func (c *Core) Steps() uint64 {
	return c.state.Steps
}

// Tape returns a copy of the tape.
func (c *Core) Tape() []uint8 {
	return append([]uint8(nil), c.state.Tape...)
}
