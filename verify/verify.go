// Package verify provides debugging tools for tape programs.
//
// It implements two complementary stages:
//
// 1. Static Lint (lint.go): pattern checks on a compiled program that never
// execute it
//   - EMPTY_LOOP: "[]" spins forever once entered with a non-zero cell
//   - DEAD_LOOP: a loop that can never be entered because the cell is known
//     to be zero (program start, or right after another loop)
//   - CANCELLING_OPS: adjacent instructions that undo each other
//   - INPUT: input instructions, which always fault
//
// 2. Functional Run (funcsim.go): executes the program on a core.Emulator
// under a step budget and records output and terminal status.
//
// # Usage Example
//
//	prog, err := compiler.Compile(src)
//	if err != nil {
//	    return err
//	}
//
//	report := verify.GenerateReport(prog, 30000, 1_000_000)
//	report.WriteReport(os.Stdout)
package verify

import (
	"fmt"

	"github.com/sarchlab/tapesim/instr"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueEmptyLoop     IssueType = "EMPTY_LOOP"
	IssueDeadLoop      IssueType = "DEAD_LOOP"
	IssueCancellingOps IssueType = "CANCELLING_OPS"
	IssueInput         IssueType = "INPUT"
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	PC      int       // index of the first instruction involved
	Pos     instr.Pos // source position of that instruction
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] pc=%d %s: %s", i.Type, i.PC, i.Pos, i.Message)
}
