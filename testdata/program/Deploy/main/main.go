//go:build !interclap

package main

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	interactiveclap "github.com/dj8yfo/interactive-clap"
)

// scripted answers prompts in order and selects the option starting with
// choose. It cancels once it runs out of answers.
type scripted struct {
	answers []string
	choose  string
}

func (s *scripted) Prompt(message string) (string, error) {
	if len(s.answers) == 0 {
		return "", interactiveclap.ErrCanceled
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	fmt.Printf("prompt %q: %s\n", message, answer)
	return answer, nil
}

func (s *scripted) Select(message string, options []string) (int, error) {
	if s.choose == "" {
		return 0, interactiveclap.ErrCanceled
	}
	for i, option := range options {
		if strings.HasPrefix(option, s.choose+":") {
			fmt.Printf("select %q: %s\n", message, option)
			return i, nil
		}
	}
	return 0, fmt.Errorf("no option %s in %q", s.choose, options)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	// Values without prompting are rendered to arguments and back.
	want := Deploy{
		Name:    "v1",
		Timeout: 90 * time.Second,
		DryRun:  true,
		Sender: Sender{
			Account: "alice",
			Mode:    &Ledger{Path: Path{Index: 3, Label: "-main"}},
		},
	}
	args := DeployToCli(want).ToCliArgs()
	fmt.Println(strings.Join(args, " "))

	cli, err := interactiveclap.TryParseFrom[CliDeploy](args)
	check(err)
	restore := interactiveclap.SetPrompter(&scripted{})
	got, _, err := DeployFromCli(cli, Global{})
	restore()
	check(err)
	fmt.Println("round trip:", reflect.DeepEqual(want, got))

	// A union without a variant on the command line is chosen and its
	// payload is prompted for.
	restore = interactiveclap.SetPrompter(&scripted{choose: "Ledger", answers: []string{"7", "cold"}})
	mode, modeCli, err := ModeFromCli(CliMode{}, interactiveclap.NoContext{})
	restore()
	check(err)
	fmt.Printf("%+v\n", mode)
	fmt.Println(strings.Join(modeCli.ToCliArgs(), " "))
	scope, ok := ModeContextScope(mode)
	fmt.Println("scope:", scope, ok)

	// A union with its variant on the command line is not asked for.
	modeCli, err = interactiveclap.TryParseFrom[CliMode]([]string{"local"})
	check(err)
	restore = interactiveclap.SetPrompter(&scripted{})
	mode, _, err = ModeFromCli(modeCli, interactiveclap.NoContext{})
	restore()
	check(err)
	fmt.Printf("selected: %T\n", mode)

	// Canceled prompts fail the conversion.
	restore = interactiveclap.SetPrompter(&scripted{})
	_, _, err = DeployFromCli(CliDeploy{}, Global{})
	fmt.Println("canceled prompt:", errors.Is(err, interactiveclap.ErrCanceled))
	_, _, err = ModeFromCli(CliMode{}, interactiveclap.NoContext{})
	fmt.Println("canceled choice:", errors.Is(err, interactiveclap.ErrCanceled))
	restore()
}
