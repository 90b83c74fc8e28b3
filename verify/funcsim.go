package verify

import (
	"bytes"

	"github.com/sarchlab/tapesim/core"
	"github.com/sarchlab/tapesim/instr"
)

// RunResult is the outcome of a functional run.
type RunResult struct {
	Output  []byte
	Steps   uint64
	Halted  bool
	Pointer int
	Tape    []uint8
	Err     error
}

// FunctionalRun executes the program on a fresh emulator for at most
// maxSteps instructions. A zero maxSteps runs without limit.
func FunctionalRun(program instr.Program, tapeSize int, maxSteps uint64) RunResult {
	var out bytes.Buffer

	emu, err := core.NewEmulator(program, tapeSize, &out)
	if err != nil {
		return RunResult{Err: err}
	}

	for !emu.Halted() {
		if maxSteps > 0 && emu.Steps() >= maxSteps {
			err = &core.Fault{
				PC:   emu.PC(),
				Inst: program[emu.PC()],
				Err:  core.ErrStepBudgetExhausted,
			}
			break
		}

		if err = emu.Step(); err != nil {
			break
		}
	}

	return RunResult{
		Output:  out.Bytes(),
		Steps:   emu.Steps(),
		Halted:  emu.Halted(),
		Pointer: emu.Pointer(),
		Tape:    emu.Tape(),
		Err:     err,
	}
}
