package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/tapesim/instr"
)

// DefaultTapeSize is the conventional number of cells on the tape.
const DefaultTapeSize = 30000

var (
	ErrPointerOverflow     = errors.New("pointer overflow")
	ErrPointerUnderflow    = errors.New("pointer underflow")
	ErrInputNotSupported   = errors.New("input not supported")
	ErrOutput              = errors.New("output failed")
	ErrStepBudgetExhausted = errors.New("step budget exhausted")
	ErrInvalidTapeSize     = errors.New("tape size must be positive")
)

// Fault is a runtime error raised by the instruction at PC. The machine
// state is left as it was before that instruction.
type Fault struct {
	PC   int
	Inst instr.Instruction
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v at pc %d (%s %s)", f.Err, f.PC, f.Inst.Kind, f.Inst.Pos)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

type coreState struct {
	PC      int
	Pointer int
	Tape    []uint8
	Code    instr.Program
	Steps   uint64

	outBuf [1]byte
}

func newCoreState(tapeSize int) coreState {
	return coreState{Tape: make([]uint8, tapeSize)}
}

func (s *coreState) halted() bool {
	return s.PC >= len(s.Code)
}

// reset zeroes the tape and rewinds the machine, keeping the program.
func (s *coreState) reset() {
	clear(s.Tape)
	s.PC = 0
	s.Pointer = 0
	s.Steps = 0
}

type instEmulator struct {
	out io.Writer
}

// RunInst executes the instruction at state.PC and moves the PC to the next
// instruction to run.
func (i instEmulator) RunInst(state *coreState) error {
	inst := state.Code[state.PC]

	next, err := i.dispatch(inst, state)
	if err != nil {
		return &Fault{PC: state.PC, Inst: inst, Err: err}
	}

	state.PC = next
	state.Steps++

	return nil
}

func (i instEmulator) dispatch(inst instr.Instruction, state *coreState) (int, error) {
	switch inst.Kind {
	case instr.MoveRight:
		return i.runMoveRight(state)
	case instr.MoveLeft:
		return i.runMoveLeft(state)
	case instr.Increment:
		state.Tape[state.Pointer]++
		return state.PC + 1, nil
	case instr.Decrement:
		state.Tape[state.Pointer]--
		return state.PC + 1, nil
	case instr.Output:
		return i.runOutput(state)
	case instr.Input:
		return state.PC, ErrInputNotSupported
	case instr.JumpForward:
		if state.Tape[state.Pointer] == 0 {
			return inst.Target + 1, nil
		}
		return state.PC + 1, nil
	case instr.JumpBackward:
		if state.Tape[state.Pointer] != 0 {
			return inst.Target + 1, nil
		}
		return state.PC + 1, nil
	default:
		panic(fmt.Sprintf("unknown instruction %s at PC %d", inst.Kind, state.PC))
	}
}

func (i instEmulator) runMoveRight(state *coreState) (int, error) {
	if state.Pointer+1 >= len(state.Tape) {
		return state.PC, ErrPointerOverflow
	}

	state.Pointer++

	return state.PC + 1, nil
}

func (i instEmulator) runMoveLeft(state *coreState) (int, error) {
	if state.Pointer-1 < 0 {
		return state.PC, ErrPointerUnderflow
	}

	state.Pointer--

	return state.PC + 1, nil
}

func (i instEmulator) runOutput(state *coreState) (int, error) {
	state.outBuf[0] = state.Tape[state.Pointer]

	n, err := i.out.Write(state.outBuf[:])
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	if err != nil {
		return state.PC, fmt.Errorf("%w: %w", ErrOutput, err)
	}

	return state.PC + 1, nil
}

// Emulator runs a program to completion on its own tape.
type Emulator struct {
	state coreState
	emu   instEmulator
}

// NewEmulator creates an emulator with a zeroed tape of tapeSize cells. A nil
// out discards output.
func NewEmulator(program instr.Program, tapeSize int, out io.Writer) (*Emulator, error) {
	if tapeSize < 1 {
		return nil, ErrInvalidTapeSize
	}

	if out == nil {
		out = io.Discard
	}

	e := &Emulator{
		state: newCoreState(tapeSize),
		emu:   instEmulator{out: out},
	}
	e.state.Code = program

	return e, nil
}

// Step executes one instruction. Stepping a halted emulator is a no-op.
func (e *Emulator) Step() error {
	if e.state.halted() {
		return nil
	}

	return e.emu.RunInst(&e.state)
}

// Run executes instructions until the program halts or faults. There is no
// step limit: a program that loops forever makes Run loop forever.
func (e *Emulator) Run() error {
	for !e.state.halted() {
		if err := e.emu.RunInst(&e.state); err != nil {
			return err
		}
	}

	return nil
}

// Reset zeroes the tape and rewinds to the first instruction.
func (e *Emulator) Reset() {
	e.state.reset()
}

func (e *Emulator) Halted() bool {
	return e.state.halted()
}

func (e *Emulator) PC() int {
	return e.state.PC
}

func (e *Emulator) Pointer() int {
	return e.state.Pointer
}

func (e *Emulator) Steps() uint64 {
	return e.state.Steps
}

// Cell returns the value of cell i.
func (e *Emulator) Cell(i int) uint8 {
	return e.state.Tape[i]
}

// Tape returns a copy of the tape.
func (e *Emulator) Tape() []uint8 {
	return append([]uint8(nil), e.state.Tape...)
}
