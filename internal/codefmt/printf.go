package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"io"
)

// verbArg formats a type or a position with the verbs of [Formatter.Sprintf].
type verbArg struct {
	x any
	f Formatter
}

func (f Formatter) wrap(args []any) []any {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case types.Type, token.Pos:
			wrapped[i] = verbArg{arg, f}
		default:
			wrapped[i] = arg
		}
	}
	return wrapped
}

// Format implements [fmt.Formatter].
func (a verbArg) Format(s fmt.State, verb rune) {
	switch x := a.x.(type) {
	case types.Type:
		if verb == 't' {
			_, _ = io.WriteString(s, a.f.Type(x))
			return
		}
	case token.Pos:
		if verb == 'b' {
			_, _ = io.WriteString(s, a.f.Position(x))
			return
		}
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
}

// Sprintf formats like [fmt.Sprintf]. Besides the usual verbs, %t renders a
// [types.Type] qualified for the package and %b renders a [token.Pos] as
// file:line:column.
func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrap(args)...)
}

// Fprintf is like [Formatter.Sprintf] but writes to w.
func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrap(args)...)
}
