package parse

import (
	"errors"
	"fmt"
	"go/types"
)

// Class is the handling mode of a field. Every combination of directives
// maps to exactly one class or to an error.
type Class int

const (
	// Plain fields are optional in the mirror and prompted when missing.
	Plain Class = iota

	// SkipDefault fields are prompted by a method the user declares.
	SkipDefault

	// SkipNoPrompt fields are optional in the mirror and never prompted.
	SkipNoPrompt

	// NamedSubcommand fields delegate to the mirror of a marked type.
	NamedSubcommand

	// Flag fields are bools filled from the command line only.
	Flag

	// RepeatedMultiOpt fields are slices collected from repeated options.
	RepeatedMultiOpt
)

func (c Class) String() string {
	switch c {
	case Plain:
		return "plain"
	case SkipDefault:
		return "skip-default"
	case SkipNoPrompt:
		return "skip-no-prompt"
	case NamedSubcommand:
		return "named-subcommand"
	case Flag:
		return "flag"
	case RepeatedMultiOpt:
		return "repeated-multi-opt"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Prompted reports whether fields of the class are asked for interactively.
func (c Class) Prompted() bool {
	return c == Plain || c == SkipDefault
}

// Optional reports whether the mirror member of the class is a pointer.
func (c Class) Optional() bool {
	return c == Plain || c == SkipDefault || c == SkipNoPrompt
}

// Classify resolves the class of a field from its directives and type.
func Classify(d Directives, typ types.Type) (Class, error) {
	if d.Any(NamedArg, Subcommand) {
		if d.Has(NamedArg, Subcommand) {
			return 0, fmt.Errorf("cannot combine %q with %q", NamedArg, Subcommand)
		}
		if d.Len() != 1 {
			dir := NamedArg
			if d.Has(Subcommand) {
				dir = Subcommand
			}
			return 0, fmt.Errorf("cannot combine %q with other directives: %q", dir, d.String())
		}
		return NamedSubcommand, nil
	}

	if d.Has(LongVecMultipleOpt) {
		if _, ok := typ.Underlying().(*types.Slice); !ok {
			return 0, fmt.Errorf("%q requires a slice type", LongVecMultipleOpt)
		}
		if d.Any(SkipDefaultInputArg, SkipInteractiveInput) {
			return 0, fmt.Errorf("cannot combine %q with skip directives", LongVecMultipleOpt)
		}
		return RepeatedMultiOpt, nil
	}

	if d.Has(SkipDefaultInputArg, SkipInteractiveInput) {
		return 0, fmt.Errorf("cannot combine %q with %q", SkipDefaultInputArg, SkipInteractiveInput)
	}

	if d.Has(Long) && isBool(typ) {
		if d.Has(SkipDefaultInputArg) {
			return 0, errors.New("flags are never prompted; remove \"skip_default_input_arg\"")
		}
		return Flag, nil
	}

	switch {
	case d.Has(SkipInteractiveInput):
		return SkipNoPrompt, nil
	case d.Has(SkipDefaultInputArg):
		return SkipDefault, nil
	}
	return Plain, nil
}

func isBool(typ types.Type) bool {
	basic, ok := typ.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Bool
}
