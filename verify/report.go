package verify

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/tapesim/core"
	"github.com/sarchlab/tapesim/instr"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	Instructions int
	Loops        int
	Issues       []Issue
	Run          RunResult
	TapeSize     int
	MaxSteps     uint64
}

// GenerateReport runs both lint and a functional run, returns a report
func GenerateReport(program instr.Program, tapeSize int, maxSteps uint64) *VerificationReport {
	report := &VerificationReport{
		Instructions: len(program),
		TapeSize:     tapeSize,
		MaxSteps:     maxSteps,
	}

	for _, inst := range program {
		if inst.Kind == instr.JumpForward {
			report.Loops++
		}
	}

	report.Issues = RunLint(program)
	report.Run = FunctionalRun(program, tapeSize, maxSteps)

	return report
}

// OK reports whether the run halted normally and lint found nothing.
func (r *VerificationReport) OK() bool {
	return len(r.Issues) == 0 && r.Run.Err == nil && r.Run.Halted
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "TAPE PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Instructions: %d, loops: %d, tape: %d cells\n",
		r.Instructions, r.Loops, r.TapeSize)

	fmt.Fprintln(w, "\nSTAGE 1: STATIC LINT CHECKS")
	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Type", "PC", "Line", "Column", "Message"})
		for _, issue := range r.Issues {
			t.AppendRow(table.Row{
				issue.Type, issue.PC, issue.Pos.Line, issue.Pos.Column, issue.Message,
			})
		}
		t.AppendFooter(table.Row{"", "", "", "Total", len(r.Issues)})
		t.Render()
	}

	fmt.Fprintln(w, "\nSTAGE 2: FUNCTIONAL RUN")
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendRow(table.Row{"Status", r.status()})
	t.AppendRow(table.Row{"Steps", r.Run.Steps})
	t.AppendRow(table.Row{"Pointer", r.Run.Pointer})
	t.AppendRow(table.Row{"Output", strconv.Quote(string(r.Run.Output))})
	t.Render()

	if r.Run.Tape != nil {
		core.PrintTape(w, r.Run.Tape, r.Run.Pointer, 8)
	}
}

func (r *VerificationReport) status() string {
	switch {
	case r.Run.Err != nil:
		return "FAULT: " + r.Run.Err.Error()
	case r.Run.Halted:
		return "HALTED"
	default:
		return "RUNNING"
	}
}
