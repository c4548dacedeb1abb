// Package interactiveclap turns annotated Go types into two-phase command-line
// arguments: values are first taken from already parsed arguments, and the
// ones still missing are asked for interactively.
//
// Mark a struct or an interface with the interclap:derive directive and run
// the interclap command. It will generate interclap_gen.go for your package:
//
//	go run github.com/dj8yfo/interactive-clap/cmd/interclap
//
// A marked struct is a record. Every field becomes an optional member of the
// generated mirror type, and the generator emits one prompt method per field
// that the user must be asked for:
//
//	// source:
//	//interclap:derive
//	type Args struct {
//		Age       uint64
//		FirstName string
//	}
//
//	// generated: (simplified)
//	type CliArgs struct {
//		interactiveclap.Command
//		Age       *uint64 `arg:"" optional:"" name:"age"`
//		FirstName *string `arg:"" optional:"" name:"first-name"`
//	}
//
//	func (Args) inputAge(ctx interactiveclap.NoContext) (*uint64, error) {
//		return interactiveclap.Input[uint64]("Age")
//	}
//
//	func ArgsFromCli(cli CliArgs, ctx interactiveclap.NoContext) (Args, CliArgs, error)
//	func ArgsToCli(v Args) CliArgs
//
// A marked interface is a union. Its variants are the types of the same
// package implementing it. A variant is either a struct without fields or a
// struct with exactly one field whose type is itself marked:
//
//	// source:
//	//interclap:derive
//	type Mode interface{ isMode() }
//
//	// Prepare and, optionally, submit a new transaction with online mode
//	type Network struct{}
//
//	// Prepare and, optionally, submit a new transaction with offline mode
//	type Offline struct{}
//
//	// generated: (simplified)
//	type CliMode struct {
//		interactiveclap.Command
//		// Prepare and, optionally, submit a new transaction with online mode
//		Network interactiveclap.Command `cmd:"" name:"network" help:"..."`
//		// Prepare and, optionally, submit a new transaction with offline mode
//		Offline interactiveclap.Command `cmd:"" name:"offline" help:"..."`
//		Unselected interactiveclap.Command `cmd:"" default:"1" hidden:""`
//	}
//
//	func ChooseMode(ctx interactiveclap.NoContext) (ModeDiscriminant, error)
//
// The hidden Unselected command lets a command line stop before naming a
// variant. The variant is then chosen interactively.
//
// Every mirror has a ToCliArgs method which renders it back to arguments in
// field order. Named members become --name=value options or bare --flag
// switches. The subcommand always comes last.
//
// # Directives
//
// Fields are configured with the interactive struct tag:
//
//	long                     a named option instead of a positional one; a bool becomes a flag
//	long_vec_multiple_opt    a repeated option; the field must be a slice
//	named_arg                a named argument group wrapping a marked struct
//	subcommand               a subcommand choosing a variant of a marked interface
//	skip_default_input_arg   do not generate the prompt method; declare it yourself
//	skip_interactive_input   never prompt; use the zero value when missing
//	verbatim_doc_comment     use the doc comment as the prompt without reflowing it
//
// A field without doc comment and without tag is prompted with its name. A
// documented field is prompted with its doc comment.
//
// The context type passed to prompt methods and choosers is
// [NoContext] by default. Choose another one with the context option:
//
//	//interclap:derive context=GlobalContext
//
// The generator loads packages with the interclap build tag and the generated
// files are excluded from it. Code calling the generated functions belongs to
// another package, or to files constrained with //go:build !interclap.
//
// # Runtime
//
// Generated code depends on this package for prompting ([Input], [Choose]),
// formatting values back to arguments ([FormatValue]) and parsing argument
// lists into mirrors ([ParseArgs], [TryParseFrom]). Prompting goes through a
// [Prompter], which is a line editor on the terminal by default and can be
// replaced with [SetPrompter].
package interactiveclap

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrCanceled is returned when the user cancels or interrupts a prompt.
// Prompt methods report it as a missing value; conversions from a mirror
// report it as an error.
var ErrCanceled = errors.New("interactiveclap: operation canceled")

// NoContext is the context type of declarations without the context option.
type NoContext = struct{}

// Choice is an option of an interactive variant selection.
type Choice struct {
	// Value is the discriminant of the variant.
	Value int

	// Name is the variant name.
	Name string

	// Help is the documentation of the variant. Only its first line is shown.
	Help string
}

// String returns the label shown to the user.
func (c Choice) String() string {
	help, _, _ := strings.Cut(c.Help, "\n")
	if help == "" {
		return c.Name
	}
	return c.Name + ": " + help
}

// UnknownVariantError is returned when a discriminant does not denote any
// variant available in the current build.
type UnknownVariantError struct {
	Union string
	Value int
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("interactiveclap: unknown %s variant %d", e.Union, e.Value)
}

// UnknownVariant returns an [UnknownVariantError].
func UnknownVariant(union string, value int) error {
	return &UnknownVariantError{union, value}
}

// InvalidInputReporter is implemented by prompters which can tell the user
// that an input was rejected before asking again.
type InvalidInputReporter interface {
	Invalid(input string, err error)
}

// Input prompts for a value of type T. It asks again while the input cannot be
// parsed as T. A canceled prompt yields nil without error; a failing prompter
// yields the error.
func Input[T any](message string) (*T, error) {
	p := current()
	for {
		input, err := p.Prompt(message)
		if errors.Is(err, ErrCanceled) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		v, err := ParseValue[T](input)
		if errors.Is(err, ErrUnsupported) {
			return nil, err
		}
		if err != nil {
			if r, ok := p.(InvalidInputReporter); ok {
				r.Invalid(input, err)
			}
			continue
		}
		return &v, nil
	}
}

// Choose asks the user to select one of the choices and returns its Value.
// Choices are offered in the order of their values. A canceled selection
// returns [ErrCanceled].
func Choose(message string, choices []Choice) (int, error) {
	if len(choices) == 0 {
		return 0, errors.New("interactiveclap: nothing to choose from")
	}

	sorted := slices.SortedStableFunc(slices.Values(choices), func(a, b Choice) int {
		return cmp.Compare(a.Value, b.Value)
	})

	options := make([]string, len(sorted))
	for i, c := range sorted {
		options[i] = c.String()
	}

	i, err := current().Select(message, options)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(sorted) {
		return 0, fmt.Errorf("interactiveclap: selected option %d out of range", i)
	}
	return sorted[i].Value, nil
}
