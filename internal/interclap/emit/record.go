package emit

import (
	"strconv"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	"github.com/dj8yfo/interactive-clap/internal/ident"
	"github.com/dj8yfo/interactive-clap/internal/interclap/parse"
)

func (e *Emitter) record(w *codefmt.Writer, d *parse.Decl) {
	e.recordMirror(w, d)
	for _, f := range d.Fields {
		if f.Wrapped() {
			e.namedArg(w, d, f)
		}
	}
	e.recordToCliArgs(w, d)
	e.promptMethods(w, d)
	e.recordContextScope(w, d)
	e.recordFromCli(w, d)
	e.recordToCli(w, d)
}

func (e *Emitter) recordMirror(w *codefmt.Writer, d *parse.Decl) {
	rt := runtimePkg(w)
	mirror := ident.Mirror(d.Name)

	w.Printf("// %s is the command line counterpart of %s.\n", mirror, d.Name)
	w.Printf("type %s struct {\n", mirror)
	w.Printf("%s.Command\n", rt)
	for _, f := range d.Fields {
		w.Printf("%s %s %s\n", f.Member(), memberType(w, d, f), memberTag(f))
	}
	w.Printf("}\n\n")
}

// memberType returns the type of the mirror member of a field.
func memberType(w *codefmt.Writer, d *parse.Decl, f *parse.Field) string {
	switch {
	case f.Wrapped():
		return ident.NamedArg(f.Sub.Name(), d.Name)
	case f.Class == parse.NamedSubcommand:
		return qualify(w, *f.Sub, ident.Mirror(f.Sub.Name()))
	case f.Class.Optional():
		return w.Sprintf("*%t", f.Type())
	}
	return w.Sprintf("%t", f.Type())
}

func memberTag(f *parse.Field) tag {
	var t tag
	if f.Class == parse.NamedSubcommand {
		t.add("embed", "")
		return t
	}

	if !f.Long {
		t.add("arg", "")
		t.add("optional", "")
	}
	t.add("name", f.Kebab())
	if f.Class == parse.RepeatedMultiOpt {
		t.add("sep", "none")
	}
	if help := parse.Summary(f.Doc); help != "" {
		t.add("help", help)
	}
	return t
}

// namedArg writes the group wrapping a named argument. The marked record
// becomes a command named after the field.
func (e *Emitter) namedArg(w *codefmt.Writer, d *parse.Decl, f *parse.Field) {
	rt := runtimePkg(w)
	name := ident.NamedArg(f.Sub.Name(), d.Name)
	mirror := qualify(w, *f.Sub, ident.Mirror(f.Sub.Name()))

	w.Printf("// %s holds the named argument %s of %s.\n", name, f.Name, d.Name)
	w.Printf("type %s struct {\n", name)
	w.Printf("%s %s %s\n", f.Member(), mirror, commandTag(f.Kebab(), f.Doc))
	writeUnselected(w, rt)
	w.Printf("}\n\n")

	lw, _ := e.local(w)
	cli := lw.Name("cli")
	lw.Printf("// ToCliArgs returns the command line arguments of the named argument.\n")
	lw.Printf("func (%s %s) ToCliArgs() []string {\n", cli, name)
	lw.Printf("if !%s.%s.Selected() {\n", cli, f.Member())
	lw.Printf("return nil\n")
	lw.Printf("}\n")
	lw.Printf("return append([]string{%s}, %s.%s.ToCliArgs()...)\n", strconv.Quote(f.Kebab()), cli, f.Member())
	lw.Printf("}\n\n")
}

func (e *Emitter) recordToCliArgs(w *codefmt.Writer, d *parse.Decl) {
	lw, rt := e.local(w)
	cli := lw.Name("cli")
	args := lw.Name("args")

	lw.Printf("// ToCliArgs returns the command line arguments which parse back into %s.\n", cli)
	lw.Printf("func (%s %s) ToCliArgs() []string {\n", cli, ident.Mirror(d.Name))
	lw.Printf("var %s []string\n", args)

	var positionals []*parse.Field
	for _, f := range d.Fields {
		member := cli + "." + f.Member()
		option := strconv.Quote("--" + f.Kebab() + "=")

		switch {
		case f.Class == parse.NamedSubcommand:
			// Commands come last.
		case f.Class == parse.Flag:
			lw.Printf("if %s {\n", member)
			lw.Printf("%s = append(%s, %s)\n", args, args, strconv.Quote("--"+f.Kebab()))
			lw.Printf("}\n")
		case f.Class == parse.RepeatedMultiOpt:
			item := lw.Name("item")
			lw.Printf("for _, %s := range %s {\n", item, member)
			lw.Printf("%s = append(%s, %s+%s.FormatValue(%s))\n", args, args, option, rt, item)
			lw.Printf("}\n")
		case f.Long:
			lw.Printf("if %s != nil {\n", member)
			lw.Printf("%s = append(%s, %s+%s.FormatValue(*%s))\n", args, args, option, rt, member)
			lw.Printf("}\n")
		default:
			positionals = append(positionals, f)
		}
	}

	// Positional values follow the options after a single "--", so that a
	// value starting with a dash is not taken for a flag. A record with
	// positional fields has no command.
	if len(positionals) != 0 {
		rest := lw.Name("rest")
		lw.Printf("var %s []string\n", rest)
		for _, f := range positionals {
			member := cli + "." + f.Member()
			lw.Printf("if %s != nil {\n", member)
			lw.Printf("%s = append(%s, %s.FormatValue(*%s))\n", rest, rest, rt, member)
			lw.Printf("}\n")
		}
		lw.Printf("if len(%s) != 0 {\n", rest)
		lw.Printf("%s = append(append(%s, %q), %s...)\n", args, args, "--", rest)
		lw.Printf("}\n")
	}

	if sub := d.Subcommand(); sub != nil {
		lw.Printf("%s = append(%s, %s.%s.ToCliArgs()...)\n", args, args, cli, sub.Member())
	}
	lw.Printf("return %s\n", args)
	lw.Printf("}\n\n")
}

// promptMethods writes the prompt methods of the plain fields.
func (e *Emitter) promptMethods(w *codefmt.Writer, d *parse.Decl) {
	rt := runtimePkg(w)
	for _, f := range d.Fields {
		if f.Class != parse.Plain {
			continue
		}
		w.Printf("func (%s) %s(_ %s) (*%t, error) {\n", d.Name, f.PromptFunc(), contextType(w, d), f.Type())
		w.Printf("return %s.Input[%t](%s)\n", rt, f.Type(), strconv.Quote(f.Prompt))
		w.Printf("}\n\n")
	}
}

func (e *Emitter) recordContextScope(w *codefmt.Writer, d *parse.Decl) {
	scope := ident.ContextScope(d.Name)

	w.Printf("// %s holds the fields of %s which its subcommands may depend on.\n", scope, d.Name)
	w.Printf("type %s struct {\n", scope)
	for _, f := range d.Fields {
		if f.Class != parse.NamedSubcommand {
			w.Printf("%s %t\n", f.Name, f.Type())
		}
	}
	w.Printf("}\n\n")

	lw, _ := e.local(w)
	v := lw.Name("v")
	fn := ident.ContextScopeFunc(d.Name)
	lw.Printf("// %s returns the context scope of %s.\n", fn, v)
	lw.Printf("func %s(%s %s) %s {\n", fn, v, d.Name, scope)
	lw.Printf("return %s{\n", scope)
	for _, f := range d.Fields {
		if f.Class != parse.NamedSubcommand {
			lw.Printf("%s: %s.%s,\n", f.Name, v, f.Name)
		}
	}
	lw.Printf("}\n")
	lw.Printf("}\n\n")
}

func (e *Emitter) recordFromCli(w *codefmt.Writer, d *parse.Decl) {
	ctxType := contextType(w, d)
	lw, rt := e.local(w)
	cli := lw.Name("cli")
	ctx := lw.Name("ctx")
	v := lw.Name("v")
	value := lw.Name("value")
	err := lw.Name("err")

	mirror := ident.Mirror(d.Name)
	fn := ident.FromCli(d.Name)
	lw.Printf("// %s composes %s from %s and prompts for the missing members. It\n", fn, d.Name, cli)
	lw.Printf("// also returns %s with the prompted members filled in.\n", cli)
	lw.Printf("func %s(%s %s, %s %s) (%s, %s, error) {\n", fn, cli, mirror, ctx, ctxType, d.Name, mirror)
	lw.Printf("var %s %s\n", v, d.Name)

	for _, f := range d.Fields {
		member := cli + "." + f.Member()
		switch f.Class {
		case parse.Plain, parse.SkipDefault:
			lw.Printf("if %s == nil {\n", member)
			lw.Printf("%s, %s := %s.%s(%s)\n", value, err, v, f.PromptFunc(), ctx)
			lw.Printf("if %s != nil {\n", err)
			lw.Printf("return %s, %s, %s\n", v, cli, err)
			lw.Printf("}\n")
			lw.Printf("if %s == nil {\n", value)
			lw.Printf("return %s, %s, %s.ErrCanceled\n", v, cli, rt)
			lw.Printf("}\n")
			lw.Printf("%s = %s\n", member, value)
			lw.Printf("}\n")
			lw.Printf("%s.%s = *%s\n", v, f.Name, member)

		case parse.SkipNoPrompt:
			lw.Printf("if %s != nil {\n", member)
			lw.Printf("%s.%s = *%s\n", v, f.Name, member)
			lw.Printf("}\n")

		case parse.Flag:
			lw.Printf("%s.%s = %s\n", v, f.Name, member)

		case parse.RepeatedMultiOpt:
			slices := lw.Import("slices", "slices")
			lw.Printf("%s.%s = %s.Clone(%s)\n", v, f.Name, slices, member)

		case parse.NamedSubcommand:
			sub := *f.Sub
			if f.Wrapped() {
				member += "." + f.Member()
			}
			subCli := lw.Name("subCli")
			fromCli := qualify(lw, sub, ident.FromCli(sub.Name()))

			lw.Printf("{\n")
			lw.Printf("%s, %s, %s := %s(%s, %s)\n", value, subCli, err, fromCli, member, contextArg(lw, d, sub, ctx))
			lw.Printf("%s = %s\n", member, subCli)
			if f.Wrapped() {
				lw.Printf("%s.Select()\n", member)
			}
			lw.Printf("if %s != nil {\n", err)
			lw.Printf("return %s, %s, %s\n", v, cli, err)
			lw.Printf("}\n")
			lw.Printf("%s.%s = %s\n", v, f.Name, value)
			lw.Printf("}\n")
		}
	}

	lw.Printf("return %s, %s, nil\n", v, cli)
	lw.Printf("}\n\n")
}

func (e *Emitter) recordToCli(w *codefmt.Writer, d *parse.Decl) {
	lw, _ := e.local(w)
	v := lw.Name("v")
	cli := lw.Name("cli")

	mirror := ident.Mirror(d.Name)
	fn := ident.ToCli(d.Name)
	lw.Printf("// %s projects %s onto its command line counterpart.\n", fn, v)
	lw.Printf("func %s(%s %s) %s {\n", fn, v, d.Name, mirror)
	lw.Printf("var %s %s\n", cli, mirror)

	for _, f := range d.Fields {
		member := cli + "." + f.Member()
		switch {
		case f.Class == parse.NamedSubcommand:
			if f.Wrapped() {
				member += "." + f.Member()
			}
			toCli := qualify(lw, *f.Sub, ident.ToCli(f.Sub.Name()))
			lw.Printf("%s = %s(%s.%s)\n", member, toCli, v, f.Name)
			if f.Wrapped() {
				lw.Printf("%s.Select()\n", member)
			}
		case f.Class == parse.RepeatedMultiOpt:
			slices := lw.Import("slices", "slices")
			lw.Printf("%s = %s.Clone(%s.%s)\n", member, slices, v, f.Name)
		case f.Class.Optional():
			lw.Printf("%s = &%s.%s\n", member, v, f.Name)
		default:
			lw.Printf("%s = %s.%s\n", member, v, f.Name)
		}
	}

	lw.Printf("return %s\n", cli)
	lw.Printf("}\n\n")
}
