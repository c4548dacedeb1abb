package parse

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/dj8yfo/interactive-clap/internal/lcs"
)

// TagKey is the struct tag key holding field directives.
const TagKey = "interactive"

// Directive is a word of the interactive struct tag.
type Directive string

const (
	Long                 Directive = "long"
	LongVecMultipleOpt   Directive = "long_vec_multiple_opt"
	NamedArg             Directive = "named_arg"
	Subcommand           Directive = "subcommand"
	SkipDefaultInputArg  Directive = "skip_default_input_arg"
	SkipInteractiveInput Directive = "skip_interactive_input"
	VerbatimDocComment   Directive = "verbatim_doc_comment"
)

var vocabulary = linkedhashset.New(
	Long,
	LongVecMultipleOpt,
	NamedArg,
	Subcommand,
	SkipDefaultInputArg,
	SkipInteractiveInput,
	VerbatimDocComment,
)

func vocabularyWords() []string {
	words := make([]string, 0, vocabulary.Size())
	for _, v := range vocabulary.Values() {
		words = append(words, string(v.(Directive)))
	}
	return words
}

// Directives is the ordered set of directives of a field.
type Directives struct {
	set     *linkedhashset.Set
	present bool
}

// ParseDirectives reads the directives from the struct tag of a field.
// Repeated words are tolerated. An unknown word is an error.
func ParseDirectives(tag reflect.StructTag) (Directives, error) {
	value, ok := tag.Lookup(TagKey)
	d := Directives{set: linkedhashset.New(), present: ok}
	if !ok {
		return d, nil
	}

	for _, word := range strings.Split(value, ",") {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		dir := Directive(word)
		if !vocabulary.Contains(dir) {
			if near, ok := lcs.Closest(word, vocabularyWords(), 3); ok {
				return d, fmt.Errorf("unknown directive %q; did you mean %q?", word, near)
			}
			return d, fmt.Errorf("unknown directive %q", word)
		}
		d.set.Add(dir)
	}
	return d, nil
}

// Present reports whether the field has the interactive struct tag at all,
// even an empty one.
func (d Directives) Present() bool { return d.present }

// Has reports whether all the given directives are set.
func (d Directives) Has(dirs ...Directive) bool {
	if d.set == nil {
		return false
	}
	for _, dir := range dirs {
		if !d.set.Contains(dir) {
			return false
		}
	}
	return true
}

// Any reports whether any of the given directives is set.
func (d Directives) Any(dirs ...Directive) bool {
	for _, dir := range dirs {
		if d.Has(dir) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct directives.
func (d Directives) Len() int {
	if d.set == nil {
		return 0
	}
	return d.set.Size()
}

// List returns the directives in the order they were written.
func (d Directives) List() []Directive {
	if d.set == nil {
		return nil
	}
	dirs := make([]Directive, 0, d.set.Size())
	for _, v := range d.set.Values() {
		dirs = append(dirs, v.(Directive))
	}
	return dirs
}

func (d Directives) String() string {
	words := make([]string, 0, d.Len())
	for _, dir := range d.List() {
		words = append(words, string(dir))
	}
	return strings.Join(words, ",")
}
