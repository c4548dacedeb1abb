package interactiveclap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchOption(t *testing.T) {
	options := []string{"Network: Online mode", "Offline"}

	i, ok := matchOption("2", options)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = matchOption(" network ", options)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = matchOption("3", options)
	assert.False(t, ok)

	_, ok = matchOption("0", options)
	assert.False(t, ok)

	_, ok = matchOption("online", options)
	assert.False(t, ok)
}

func TestPromptLabel(t *testing.T) {
	assert.Equal(t, "Age: ", promptLabel("Age"))
	assert.Equal(t, "> ", promptLabel(""))
	assert.Equal(t, "first\n\nsecond\n> ", promptLabel("first\n\nsecond"))
}

func TestLinePrompterInvalid(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(&out)
	p.Invalid("x", errors.New("no such option"))
	assert.Equal(t, "invalid input \"x\": no such option\n", out.String())
}
