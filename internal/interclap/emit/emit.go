// Package emit writes the code generated for parsed declarations.
//
// Every function writes complete top-level declarations separated by a blank
// line. Imports are collected by the [codefmt.Writer] and written by the
// caller along with the file header.
package emit

import (
	"strconv"
	"strings"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	"github.com/dj8yfo/interactive-clap/internal/interclap/parse"
)

// Emitter writes declarations. Its namespace holds the package-level names,
// which local variables of generated functions must not shadow.
type Emitter struct {
	ns codefmt.NS
}

// New creates a new [Emitter].
func New(ns codefmt.NS) *Emitter {
	return &Emitter{ns: ns}
}

// Decl writes everything generated for d except its groups.
func (e *Emitter) Decl(w *codefmt.Writer, d *parse.Decl) {
	switch d.Kind {
	case parse.Record:
		e.record(w, d)
	case parse.Union:
		e.union(w, d)
	}
}

// local returns a writer for the body of a generated function. The runtime
// package is imported first so that no local variable takes its name.
func (e *Emitter) local(w *codefmt.Writer) (*codefmt.Writer, string) {
	rt := runtimePkg(w)
	return w.Local(e.ns), rt
}

func runtimePkg(w *codefmt.Writer) string {
	return w.Import(parse.RuntimePath, "interactiveclap")
}

// contextType returns the type of the ctx parameter of the generated
// functions of d.
func contextType(w *codefmt.Writer, d *parse.Decl) string {
	if d.Context == nil {
		return runtimePkg(w) + ".NoContext"
	}
	return w.Sprintf("%t", d.Context)
}

// contextArg returns the context to pass to the generated functions of ref
// from a function of d taking ctx.
func contextArg(w *codefmt.Writer, d *parse.Decl, ref parse.Ref, ctx string) string {
	if ref.Context == "" && d.Context != nil {
		return runtimePkg(w) + ".NoContext{}"
	}
	return ctx
}

// qualify returns name qualified by the package of ref.
func qualify(w *codefmt.Writer, ref parse.Ref, name string) string {
	return w.Qualifier(ref.Obj.Pkg()) + name
}

// tag builds the struct tag of a mirror member.
type tag []string

func (t *tag) add(key, value string) {
	*t = append(*t, key+":"+strconv.Quote(value))
}

// String returns the tag as a Go literal.
func (t tag) String() string {
	s := strings.Join(t, " ")
	if strings.Contains(s, "`") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

// writeDoc writes doc as a comment above a member.
func writeDoc(w *codefmt.Writer, doc string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		if line == "" {
			w.Printf("//\n")
			continue
		}
		w.Printf("// %s\n", line)
	}
}

// commandTag returns the tag of a member standing for a command.
func commandTag(name, doc string) tag {
	var t tag
	t.add("cmd", "")
	t.add("name", name)
	if help := parse.Summary(doc); help != "" {
		t.add("help", help)
	}
	return t
}

// writeUnselected writes the hidden default command which a mirror selects
// when the command line names none of its commands.
func writeUnselected(w *codefmt.Writer, rt string) {
	var t tag
	t.add("cmd", "")
	t.add("default", "1")
	t.add("hidden", "")
	w.Printf("Unselected %s.Command %s\n", rt, t)
}
