package verify

import (
	"fmt"

	"github.com/sarchlab/tapesim/instr"
)

var inverse = map[instr.Kind]instr.Kind{
	instr.Increment: instr.Decrement,
	instr.Decrement: instr.Increment,
	instr.MoveRight: instr.MoveLeft,
	instr.MoveLeft:  instr.MoveRight,
}

// RunLint performs static checks on a compiled program. Issues are ordered
// by PC. An empty slice means nothing suspicious was found.
func RunLint(program instr.Program) []Issue {
	var issues []Issue

	for pc, inst := range program {
		switch inst.Kind {
		case instr.JumpForward:
			issues = append(issues, lintLoop(program, pc)...)
		case instr.Input:
			issues = append(issues, Issue{
				Type:    IssueInput,
				PC:      pc,
				Pos:     inst.Pos,
				Message: "input is not supported and faults at run time",
			})
		}

		if pc+1 < len(program) {
			if inv, ok := inverse[inst.Kind]; ok && program[pc+1].Kind == inv {
				issues = append(issues, cancellingOps(pc, inst, inv))
			}
		}
	}

	return issues
}

func lintLoop(program instr.Program, pc int) []Issue {
	var issues []Issue
	inst := program[pc]

	if inst.Target == pc+1 {
		issues = append(issues, Issue{
			Type:    IssueEmptyLoop,
			PC:      pc,
			Pos:     inst.Pos,
			Message: "empty loop never terminates once entered with a non-zero cell",
		})
	}

	switch {
	case pc == 0:
		issues = append(issues, Issue{
			Type:    IssueDeadLoop,
			PC:      pc,
			Pos:     inst.Pos,
			Message: "loop at program start is never entered on a fresh tape",
		})
	case program[pc-1].Kind == instr.JumpBackward:
		issues = append(issues, Issue{
			Type:    IssueDeadLoop,
			PC:      pc,
			Pos:     inst.Pos,
			Message: fmt.Sprintf("loop right after the loop ending at pc %d is never entered", pc-1),
		})
	}

	return issues
}

// cancellingOps reports a pair of adjacent inverse instructions. A move pair
// still faults when the first move leaves the tape.
func cancellingOps(pc int, inst instr.Instruction, inv instr.Kind) Issue {
	pair := fmt.Sprintf("%c%c", inst.Kind.Symbol(), inv.Symbol())

	msg := pair + " has no effect"
	if inst.Kind == instr.MoveLeft || inst.Kind == instr.MoveRight {
		msg = pair + " cancel each other unless the first move faults"
	}

	return Issue{
		Type:    IssueCancellingOps,
		PC:      pc,
		Pos:     inst.Pos,
		Message: msg,
	}
}
