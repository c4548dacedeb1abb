package parse_test

import (
	"go/types"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj8yfo/interactive-clap/internal/interclap/parse"
)

func TestParseDirectives(t *testing.T) {
	d, err := parse.ParseDirectives(reflect.StructTag(`json:"x" interactive:"long, skip_interactive_input,long"`))
	require.NoError(t, err)

	assert.True(t, d.Present())
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []parse.Directive{parse.Long, parse.SkipInteractiveInput}, d.List())
	assert.True(t, d.Has(parse.Long, parse.SkipInteractiveInput))
	assert.False(t, d.Has(parse.Long, parse.NamedArg))
	assert.True(t, d.Any(parse.NamedArg, parse.Long))
	assert.Equal(t, "long,skip_interactive_input", d.String())
}

func TestParseDirectivesAbsent(t *testing.T) {
	d, err := parse.ParseDirectives(reflect.StructTag(`json:"x"`))
	require.NoError(t, err)
	assert.False(t, d.Present())
	assert.Zero(t, d.Len())

	d, err = parse.ParseDirectives(reflect.StructTag(`interactive:""`))
	require.NoError(t, err)
	assert.True(t, d.Present())
	assert.Zero(t, d.Len())
}

func TestParseDirectivesUnknown(t *testing.T) {
	_, err := parse.ParseDirectives(reflect.StructTag(`interactive:"long,short"`))
	assert.EqualError(t, err, `unknown directive "short"`)

	_, err = parse.ParseDirectives(reflect.StructTag(`interactive:"skip_default"`))
	assert.EqualError(t, err, `unknown directive "skip_default"; did you mean "skip_default_input_arg"?`)

	_, err = parse.ParseDirectives(reflect.StructTag(`interactive:"verbatim"`))
	assert.EqualError(t, err, `unknown directive "verbatim"; did you mean "verbatim_doc_comment"?`)
}

func directives(t *testing.T, tag string) parse.Directives {
	t.Helper()
	d, err := parse.ParseDirectives(reflect.StructTag(`interactive:"` + tag + `"`))
	require.NoError(t, err)
	return d
}

func TestClassify(t *testing.T) {
	var (
		boolType   = types.Typ[types.Bool]
		stringType = types.Typ[types.String]
		sliceType  = types.NewSlice(stringType)
	)

	tests := []struct {
		tag  string
		typ  types.Type
		want parse.Class
	}{
		{"", stringType, parse.Plain},
		{"long", stringType, parse.Plain},
		{"verbatim_doc_comment", stringType, parse.Plain},
		{"long", boolType, parse.Flag},
		{"long,skip_interactive_input", boolType, parse.Flag},
		{"", boolType, parse.Plain},
		{"skip_interactive_input", stringType, parse.SkipNoPrompt},
		{"skip_default_input_arg", stringType, parse.SkipDefault},
		{"long,skip_default_input_arg", stringType, parse.SkipDefault},
		{"long_vec_multiple_opt", sliceType, parse.RepeatedMultiOpt},
		{"long_vec_multiple_opt,long", sliceType, parse.RepeatedMultiOpt},
		{"subcommand", stringType, parse.NamedSubcommand},
		{"named_arg", stringType, parse.NamedSubcommand},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := parse.Classify(directives(t, tt.tag), tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyConflicts(t *testing.T) {
	var (
		boolType   = types.Typ[types.Bool]
		stringType = types.Typ[types.String]
		sliceType  = types.NewSlice(stringType)
	)

	tests := []struct {
		tag string
		typ types.Type
		err string
	}{
		{"named_arg,subcommand", stringType, `cannot combine "named_arg" with "subcommand"`},
		{"subcommand,long", stringType, `cannot combine "subcommand" with other directives: "subcommand,long"`},
		{"verbatim_doc_comment,named_arg", stringType, `cannot combine "named_arg" with other directives: "verbatim_doc_comment,named_arg"`},
		{"long_vec_multiple_opt", stringType, `"long_vec_multiple_opt" requires a slice type`},
		{"long_vec_multiple_opt,skip_interactive_input", sliceType, `cannot combine "long_vec_multiple_opt" with skip directives`},
		{"skip_default_input_arg,skip_interactive_input", stringType, `cannot combine "skip_default_input_arg" with "skip_interactive_input"`},
		{"long,skip_default_input_arg", boolType, `flags are never prompted; remove "skip_default_input_arg"`},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			_, err := parse.Classify(directives(t, tt.tag), tt.typ)
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestClassPredicates(t *testing.T) {
	assert.True(t, parse.Plain.Prompted())
	assert.True(t, parse.SkipDefault.Prompted())
	assert.False(t, parse.SkipNoPrompt.Prompted())
	assert.False(t, parse.Flag.Prompted())

	assert.True(t, parse.SkipNoPrompt.Optional())
	assert.False(t, parse.RepeatedMultiOpt.Optional())
	assert.False(t, parse.NamedSubcommand.Optional())

	assert.Equal(t, "repeated-multi-opt", parse.RepeatedMultiOpt.String())
}
