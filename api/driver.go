// Package api defines the driver API for the tape machine.
package api

import (
	"errors"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tapesim/compiler"
	"github.com/sarchlab/tapesim/core"
	"github.com/sarchlab/tapesim/instr"
)

// ErrNoProgram is returned by Run when nothing was loaded.
var ErrNoProgram = errors.New("no program mapped")

// Stats describes the last run.
type Stats struct {
	Steps    uint64
	Time     sim.VTimeInSec
	Halted   bool
	Pointer  int
	Programs int
}

// Driver provides the interface to control a simulated tape machine.
type Driver interface {
	// Load compiles the source and maps it to the core. Syntax errors are
	// returned as is.
	Load(source string) error

	// MapProgram maps an already compiled program to the core.
	MapProgram(program instr.Program)

	// Run runs the mapped program until it halts, faults, or uses up the
	// step budget. It returns nil on a normal halt.
	Run() error

	// Stats reports the state reached by the last run.
	Stats() Stats

	// Core returns the simulated core.
	Core() *core.Core
}

// runner is the part of sim.Engine the driver relies on.
type runner interface {
	Run() error
	CurrentTime() sim.VTimeInSec
}

type driverImpl struct {
	engine runner
	core   *core.Core

	program  instr.Program
	programs int
}

func (d *driverImpl) Load(source string) error {
	program, err := compiler.Compile(source)
	if err != nil {
		return err
	}

	d.MapProgram(program)

	return nil
}

// MapProgram dispatches a program to the core.
func (d *driverImpl) MapProgram(program instr.Program) {
	d.program = program
	d.programs++
	d.core.MapProgram(program)
}

// Run runs all the instructions that have been mapped to the core.
func (d *driverImpl) Run() error {
	if d.programs == 0 {
		return ErrNoProgram
	}

	if err := d.engine.Run(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	core.Trace("Driver",
		"Behavior", "RunDone",
		"Time", float64(d.engine.CurrentTime()*1e9),
		"Steps", d.core.Steps(),
		"Halted", d.core.Halted(),
	)

	return d.core.Err()
}

func (d *driverImpl) Stats() Stats {
	return Stats{
		Steps:    d.core.Steps(),
		Time:     d.engine.CurrentTime(),
		Halted:   d.core.Halted(),
		Pointer:  d.core.Pointer(),
		Programs: d.programs,
	}
}

func (d *driverImpl) Core() *core.Core {
	return d.core
}
