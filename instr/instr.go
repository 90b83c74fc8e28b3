// Package instr defines the instruction set of the tape machine.
package instr

import (
	"fmt"
	"strings"
)

// Kind is the operation performed by an instruction.
type Kind uint8

const (
	// NoOp only exists inside the classifier. It never appears in a Program.
	NoOp Kind = iota
	MoveRight
	MoveLeft
	Increment
	Decrement
	Output
	Input
	JumpForward
	JumpBackward
)

// NoTarget is the target of instructions that do not jump, and the
// placeholder of an opening bracket whose partner is not yet known.
const NoTarget = -1

var kindNames = [...]string{
	NoOp:         "NOP",
	MoveRight:    "MOVE_RIGHT",
	MoveLeft:     "MOVE_LEFT",
	Increment:    "INC",
	Decrement:    "DEC",
	Output:       "OUTPUT",
	Input:        "INPUT",
	JumpForward:  "JUMP_FORWARD",
	JumpBackward: "JUMP_BACKWARD",
}

var kindSymbols = [...]byte{
	NoOp:         ' ',
	MoveRight:    '>',
	MoveLeft:     '<',
	Increment:    '+',
	Decrement:    '-',
	Output:       '.',
	Input:        ',',
	JumpForward:  '[',
	JumpBackward: ']',
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Symbol returns the source character that encodes the kind.
func (k Kind) Symbol() byte {
	if int(k) < len(kindSymbols) {
		return kindSymbols[k]
	}

	return '?'
}

// IsJump reports whether instructions of this kind carry a target.
func (k Kind) IsJump() bool {
	return k == JumpForward || k == JumpBackward
}

// Classify maps one source character to its kind. Unrecognized characters,
// including whitespace and line terminators, are comments and map to NoOp.
func Classify(c byte) Kind {
	switch c {
	case '>':
		return MoveRight
	case '<':
		return MoveLeft
	case '+':
		return Increment
	case '-':
		return Decrement
	case '.':
		return Output
	case ',':
		return Input
	case '[':
		return JumpForward
	case ']':
		return JumpBackward
	default:
		return NoOp
	}
}

// Pos is a 1-based source position.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Line, p.Column)
}

// Instruction is one compiled unit.
type Instruction struct {
	Kind Kind

	// Target is the index of the matching bracket for jumps, NoTarget
	// otherwise.
	Target int

	Pos Pos
}

func (i Instruction) String() string {
	if i.Kind.IsJump() {
		return fmt.Sprintf("%s %d", i.Kind, i.Target)
	}

	return i.Kind.String()
}

// Program is an ordered list of instructions. Indices are the jump targets.
type Program []Instruction

// Source re-encodes the program as source text without comments.
func (p Program) Source() string {
	var sb strings.Builder

	sb.Grow(len(p))
	for _, inst := range p {
		sb.WriteByte(inst.Kind.Symbol())
	}

	return sb.String()
}

// Disassemble writes one line per instruction, prefixed by its index.
func (p Program) Disassemble() string {
	var sb strings.Builder

	for pc, inst := range p {
		fmt.Fprintf(&sb, "%4d  %-16s ; %s\n", pc, inst, inst.Pos)
	}

	return sb.String()
}

// Equal reports whether two programs have the same kinds and targets.
// Source positions are ignored.
func (p Program) Equal(other Program) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i].Kind != other[i].Kind || p[i].Target != other[i].Target {
			return false
		}
	}

	return true
}
