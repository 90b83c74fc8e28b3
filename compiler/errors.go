package compiler

import (
	"errors"
	"strings"

	"github.com/sarchlab/tapesim/instr"
)

var (
	ErrUnmatchedClose = errors.New("unmatched close bracket")
	ErrUnmatchedOpen  = errors.New("unmatched open bracket")
)

// SyntaxError locates an unmatched bracket in the source.
type SyntaxError struct {
	instr.Pos
	Err error
}

func (e *SyntaxError) Error() string {
	return e.Err.Error() + " at " + e.Pos.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// SyntaxErrors holds every open bracket left on the stack at the end of the
// source, innermost first.
type SyntaxErrors []*SyntaxError

func (es SyntaxErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "; ")
}

func (es SyntaxErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}

	return errs
}
