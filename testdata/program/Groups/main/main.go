//go:build !interclap

package main

import (
	"fmt"
	"strings"

	interactiveclap "github.com/dj8yfo/interactive-clap"
)

// chooser selects the option starting with its name.
type chooser string

func (c chooser) Prompt(string) (string, error) {
	return "", interactiveclap.ErrCanceled
}

func (c chooser) Select(message string, options []string) (int, error) {
	for i, option := range options {
		if strings.HasPrefix(option, string(c)+":") {
			fmt.Printf("select %q: %s of %d\n", message, option, len(options))
			return i, nil
		}
	}
	return 0, interactiveclap.ErrCanceled
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	// Variants of a build-constrained file take part when it is built.
	args := ModeToCli(Keychain{}).ToCliArgs()
	fmt.Println(strings.Join(args, " "))

	cli, err := interactiveclap.TryParseFrom[CliMode](args)
	check(err)
	mode, _, err := ModeFromCli(cli, interactiveclap.NoContext{})
	check(err)
	fmt.Printf("parsed: %T\n", mode)

	restore := interactiveclap.SetPrompter(chooser("Keychain"))
	mode, cli, err = ModeFromCli(CliMode{}, interactiveclap.NoContext{})
	restore()
	check(err)
	fmt.Printf("chosen: %T\n", mode)
	fmt.Println(strings.Join(cli.ToCliArgs(), " "))

	scope, ok := ModeContextScope(mode)
	fmt.Println("scope:", scope, ok)
}
