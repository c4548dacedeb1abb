// Package ident derives the names of generated artifacts from the names of
// annotated declarations. Every function is pure: the same input always
// yields the same name.
package ident

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	mirrorPrefix       = "Cli"
	promptPrefix       = "input"
	contextScopePrefix = "InteractiveClapContextScopeFor"
	namedArgPrefix     = "ClapNamedArg"
)

// Mirror returns the name of the declarative counterpart of a type.
//
//	Mirror("Args") => "CliArgs"
func Mirror(name string) string {
	return mirrorPrefix + name
}

// Member returns the name of the mirror member standing for a field or a
// variant. Members are exported so that the command line parser sees them.
// Leading underscores are dropped and the first letter is upper-cased, which
// may yield more than one rune. The result is not exported for a name whose
// first letter has no upper case, and not even an identifier for a name like
// "_1".
//
//	Member("age")   => "Age"
//	Member("_x")    => "X"
//	Member("ßpath") => "SSpath"
func Member(name string) string {
	return upperFirst(name)
}

// Prompt returns the name of the method which prompts for a field.
//
//	Prompt("Age")       => "inputAge"
//	Prompt("firstName") => "inputFirstName"
func Prompt(field string) string {
	return promptPrefix + upperFirst(field)
}

// ContextScope returns the name of the context scope type.
func ContextScope(name string) string {
	return contextScopePrefix + name
}

// ContextScopeFunc returns the name of the function projecting a value onto
// its context scope.
func ContextScopeFunc(name string) string {
	return name + "ContextScope"
}

// Discriminant returns the name of the variant-tag enumeration of a union.
func Discriminant(union string) string {
	return union + "Discriminant"
}

// DiscriminantConst returns the name of the enumeration constant of a variant.
//
//	DiscriminantConst("Mode", "Network") => "ModeDiscriminantNetwork"
func DiscriminantConst(union, variant string) string {
	return Discriminant(union) + upperFirst(variant)
}

// Chooser returns the name of the interactive variant chooser of a union.
func Chooser(union string) string {
	return "Choose" + union
}

// FromCli returns the name of the function composing a value from its mirror.
func FromCli(name string) string {
	return name + "FromCli"
}

// ToCli returns the name of the function projecting a value onto its mirror.
func ToCli(name string) string {
	return name + "ToCli"
}

// NamedArg returns the name of the group which wraps a named-argument field.
//
//	NamedArg("Sender", "Account") => "ClapNamedArgSenderForAccount"
func NamedArg(typ, owner string) string {
	return namedArgPrefix + upperFirst(typ) + "For" + owner
}

// Group returns the name of the n-th build-constrained variant group of a
// union mirror. n starts at 1.
func Group(union string, n int) string {
	return fmt.Sprintf("%s%sBuild%d", mirrorPrefix, upperFirst(union), n)
}

// upperFirst upper-cases the first letter after any leading underscores,
// which it drops, and keeps the rest as is. A string of underscores is
// returned unchanged.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	head := strings.TrimLeft(s, "_")
	if head == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(head)
	return cases.Upper(language.Und).String(head[:size]) + head[size:]
}
