package interactiveclap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/peterh/liner"
)

// Prompter asks the user for input. Implementations return [ErrCanceled] when
// the user cancels or interrupts.
type Prompter interface {
	// Prompt shows the message and reads one line.
	Prompt(message string) (string, error)

	// Select shows the message and the options and returns the index of the
	// selected option.
	Select(message string, options []string) (int, error)
}

var (
	prompterMu sync.RWMutex
	prompter   Prompter = NewLinePrompter(os.Stdout)
)

// SetPrompter replaces the prompter used by [Input] and [Choose]. The
// returned function restores the previous one.
func SetPrompter(p Prompter) (restore func()) {
	prompterMu.Lock()
	defer prompterMu.Unlock()

	prev := prompter
	prompter = p
	return func() {
		prompterMu.Lock()
		defer prompterMu.Unlock()
		prompter = prev
	}
}

func current() Prompter {
	prompterMu.RLock()
	defer prompterMu.RUnlock()
	return prompter
}

// LinePrompter prompts on the terminal with a line editor. Ctrl-C and Ctrl-D
// cancel the prompt.
type LinePrompter struct {
	out io.Writer
}

// NewLinePrompter creates a [LinePrompter] writing option lists and
// complaints to out.
func NewLinePrompter(out io.Writer) *LinePrompter {
	return &LinePrompter{out: out}
}

// Prompt implements [Prompter].
func (p *LinePrompter) Prompt(message string) (string, error) {
	lin := liner.NewLiner()
	defer lin.Close()
	lin.SetCtrlCAborts(true)

	label := promptLabel(message)
	if i := strings.LastIndexByte(label, '\n'); i != -1 {
		// The line editor rejects unprintable runes in its prompt.
		fmt.Fprint(p.out, label[:i+1])
		label = label[i+1:]
	}

	line, err := lin.Prompt(label)
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", ErrCanceled
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// Select implements [Prompter]. The user answers with the number or the
// label of an option.
func (p *LinePrompter) Select(message string, options []string) (int, error) {
	if message != "" {
		fmt.Fprintln(p.out, message)
	}
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}

	for {
		answer, err := p.Prompt(fmt.Sprintf("[1-%d]", len(options)))
		if err != nil {
			return 0, err
		}
		if i, ok := matchOption(answer, options); ok {
			return i, nil
		}
		p.Invalid(answer, errors.New("no such option"))
	}
}

// Invalid implements [InvalidInputReporter].
func (p *LinePrompter) Invalid(input string, err error) {
	fmt.Fprintf(p.out, "invalid input %q: %v\n", input, err)
}

// matchOption finds the option denoted by answer, either its 1-based number or
// its label up to the first colon.
func matchOption(answer string, options []string) (int, bool) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, option := range options {
		name, _, _ := strings.Cut(option, ":")
		if strings.EqualFold(strings.TrimSpace(name), answer) {
			return i, true
		}
	}
	return 0, false
}

func promptLabel(message string) string {
	message = strings.TrimRight(message, " ")
	if message == "" {
		return "> "
	}
	if strings.Contains(message, "\n") {
		return message + "\n> "
	}
	return message + ": "
}
