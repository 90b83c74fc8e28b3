package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintTape renders the cells within window of the pointer, eight per row.
func PrintTape(w io.Writer, tape []uint8, pointer int, window int) {
	lo := max(pointer-window, 0)
	hi := min(pointer+window+1, len(tape))
	lo -= lo % 8

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Tape (pointer at %d)", pointer)

	header := table.Row{"Addr"}
	for i := 0; i < 8; i++ {
		header = append(header, fmt.Sprintf("+%d", i))
	}
	t.AppendHeader(header)

	for row := lo; row < hi; row += 8 {
		r := table.Row{row}
		for col := row; col < row+8; col++ {
			switch {
			case col >= hi:
				r = append(r, "")
			case col == pointer:
				r = append(r, fmt.Sprintf("[%d]", tape[col]))
			default:
				r = append(r, tape[col])
			}
		}
		t.AppendRow(r)
	}

	t.Render()
}

func LogState(state *coreState) {
	slog.Debug("StateCheckpoint",
		"PC", state.PC,
		"Pointer", state.Pointer,
		"Cell", state.Tape[state.Pointer],
		"Steps", state.Steps,
		"Instructions", len(state.Code),
	)
}
