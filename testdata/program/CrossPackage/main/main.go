//go:build !interclap

package main

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	interactiveclap "github.com/dj8yfo/interactive-clap"

	"example.com/CrossPackage/acct"
)

// scripted answers prompts in order. It cancels once it runs out of
// answers.
type scripted []string

func (s *scripted) Prompt(message string) (string, error) {
	if len(*s) == 0 {
		return "", interactiveclap.ErrCanceled
	}
	answer := (*s)[0]
	*s = (*s)[1:]
	fmt.Printf("prompt %q: %s\n", message, answer)
	return answer, nil
}

func (s *scripted) Select(string, []string) (int, error) {
	return 0, interactiveclap.ErrCanceled
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	// Positional values starting with a dash parse back as values.
	want := Transfer{Amount: -5, Sender: acct.Sender{Account: "-alice", Offset: -2}}
	args := TransferToCli(want).ToCliArgs()
	fmt.Println(strings.Join(args, " "))

	cli, err := interactiveclap.TryParseFrom[CliTransfer](args)
	check(err)
	restore := interactiveclap.SetPrompter(&scripted{})
	got, _, err := TransferFromCli(cli, interactiveclap.NoContext{})
	restore()
	check(err)
	fmt.Println("round trip:", reflect.DeepEqual(want, got))

	// Members missing on the command line are prompted for, and the
	// returned mirror holds them.
	cli, err = interactiveclap.TryParseFrom[CliTransfer]([]string{"--amount=10", "sender", "--", "bob"})
	check(err)
	restore = interactiveclap.SetPrompter(&scripted{"x", "4"})
	got, cli, err = TransferFromCli(cli, interactiveclap.NoContext{})
	restore()
	check(err)
	fmt.Printf("%+v\n", got)
	fmt.Println(strings.Join(cli.ToCliArgs(), " "))

	restore = interactiveclap.SetPrompter(&scripted{})
	_, _, err = TransferFromCli(CliTransfer{}, interactiveclap.NoContext{})
	restore()
	fmt.Println("canceled prompt:", errors.Is(err, interactiveclap.ErrCanceled))
}
