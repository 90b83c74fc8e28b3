// Package compiler validates bracket nesting and resolves jump targets.
package compiler

import (
	"unicode/utf8"

	"github.com/sarchlab/tapesim/instr"
)

type openBracket struct {
	pos   instr.Pos
	index int
}

// Compile turns source text into a program whose bracket instructions
// target their matching partner.
//
// Lines and columns are 1-based. Every character takes one column, comments
// included. Characters are UTF-8 runes; an invalid byte counts as one. A
// line terminator (LF, CR or CRLF) closes its line, so the character
// following it sits at column 1 of the next line.
func Compile(source string) (instr.Program, error) {
	prog := make(instr.Program, 0, len(source))
	stack := make([]openBracket, 0, 16)

	line, col := 1, 0
	for i, r := range source {
		col++

		kind := instr.NoOp
		if r < utf8.RuneSelf {
			kind = instr.Classify(byte(r))
		}

		if kind == instr.NoOp {
			if isLineBreak(source, i) {
				line++
				col = 0
			}
			continue
		}

		pos := instr.Pos{Line: line, Column: col}
		index := len(prog)
		inst := instr.Instruction{Kind: kind, Target: instr.NoTarget, Pos: pos}

		switch kind {
		case instr.JumpForward:
			stack = append(stack, openBracket{pos: pos, index: index})
		case instr.JumpBackward:
			if len(stack) == 0 {
				return nil, &SyntaxError{Pos: pos, Err: ErrUnmatchedClose}
			}

			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			inst.Target = open.index
			prog[open.index].Target = index
		}

		prog = append(prog, inst)
	}

	if len(stack) > 0 {
		errs := make(SyntaxErrors, 0, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			errs = append(errs, &SyntaxError{Pos: stack[i].pos, Err: ErrUnmatchedOpen})
		}

		return nil, errs
	}

	return prog, nil
}

// MustCompile is like Compile but panics on a syntax error.
func MustCompile(source string) instr.Program {
	prog, err := Compile(source)
	if err != nil {
		panic("compiler: " + err.Error())
	}

	return prog
}

// isLineBreak reports whether the byte at i ends a line. The CR of a CRLF pair
// does not; the LF that follows it does.
func isLineBreak(source string, i int) bool {
	switch source[i] {
	case '\n':
		return true
	case '\r':
		return i+1 >= len(source) || source[i+1] != '\n'
	default:
		return false
	}
}
