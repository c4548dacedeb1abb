package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is an error about a span of the user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the message without the position.
func (e *CodeError) Unwrap() error { return e.err }

// Pos returns where the span starts. It may be invalid.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns where the span ends. It may be invalid.
func (e *CodeError) End() token.Pos { return e.end }

// Error prefixes the message with the position when it is known.
func (e *CodeError) Error() string {
	if e.err == nil {
		return ""
	}
	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.err.Error()
}

// Errorf formats a [CodeError] at poser. poser may be nil. If it also has an
// End method, the error spans up to there.
//
// Errors must be formatted into the message with err.Error(). Passing an error
// as an argument panics.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: Errorf cannot wrap an error")
		}
	}

	e := &CodeError{fset: f.Fset}
	if poser != nil {
		e.pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			e.end = ender.End()
		}
	}
	e.err = fmt.Errorf(format, f.wrap(args)...)
	return e
}
