package emit

import (
	"strconv"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	"github.com/dj8yfo/interactive-clap/internal/ident"
	"github.com/dj8yfo/interactive-clap/internal/interclap/parse"
)

func (e *Emitter) union(w *codefmt.Writer, d *parse.Decl) {
	main := mainVariants(d)

	e.unionMirror(w, d, main)
	e.discriminant(w, d)
	e.unionContextScope(w, d, main)
	e.chooser(w, d, main)
	e.unionSelected(w, d, main)
	e.unionFromCli(w, d, main)
	e.unionToCli(w, d, main)
	e.unionToCliArgs(w, d, main)
}

// mainVariants returns the variants which are not moved into a group.
func mainVariants(d *parse.Decl) []*parse.Variant {
	var vs []*parse.Variant
	for _, v := range d.Variants {
		if v.Group == nil {
			vs = append(vs, v)
		}
	}
	return vs
}

// variantType returns the type of the mirror member of a variant.
func variantType(w *codefmt.Writer, v *parse.Variant) string {
	if v.Payload == nil {
		return runtimePkg(w) + ".Command"
	}
	return qualify(w, v.Payload.Ref, ident.Mirror(v.Payload.Ref.Name()))
}

// variantCase returns the type switch case of a variant.
func variantCase(v *parse.Variant) string {
	if v.Ptr {
		return "*" + v.Name
	}
	return v.Name
}

// bindsValue reports whether a type switch over the variants needs the
// value of the variant.
func bindsValue(vs []*parse.Variant) bool {
	for _, v := range vs {
		if v.Payload != nil {
			return true
		}
	}
	return false
}

func (e *Emitter) unionMirror(w *codefmt.Writer, d *parse.Decl, main []*parse.Variant) {
	rt := runtimePkg(w)
	mirror := ident.Mirror(d.Name)

	w.Printf("// %s is the command line counterpart of %s.\n", mirror, d.Name)
	w.Printf("type %s struct {\n", mirror)
	w.Printf("%s.Command\n", rt)
	for _, v := range main {
		writeDoc(w, v.Doc)
		w.Printf("%s %s %s\n", v.Member(), variantType(w, v), commandTag(v.Kebab(), v.Doc))
	}
	writeUnselected(w, rt)
	for _, g := range d.Groups {
		var t tag
		t.add("embed", "")
		w.Printf("%s %s\n", g.Name(), t)
	}
	w.Printf("}\n\n")
}

func (e *Emitter) discriminant(w *codefmt.Writer, d *parse.Decl) {
	typ := ident.Discriminant(d.Name)

	w.Printf("// %s tells the variants of %s apart.\n", typ, d.Name)
	w.Printf("type %s int\n\n", typ)
	w.Printf("const (\n")
	for i, v := range d.Variants {
		if i == 0 {
			w.Printf("%s %s = iota\n", ident.DiscriminantConst(d.Name, v.Name), typ)
		} else {
			w.Printf("%s\n", ident.DiscriminantConst(d.Name, v.Name))
		}
	}
	w.Printf(")\n\n")

	lw, _ := e.local(w)
	recv := lw.Name("d")
	strconvPkg := lw.Import("strconv", "strconv")
	lw.Printf("func (%s %s) String() string {\n", recv, typ)
	lw.Printf("switch %s {\n", recv)
	for _, v := range d.Variants {
		lw.Printf("case %s:\n", ident.DiscriminantConst(d.Name, v.Name))
		lw.Printf("return %s\n", strconv.Quote(v.Name))
	}
	lw.Printf("}\n")
	lw.Printf("return %s + %s.Itoa(int(%s)) + \")\"\n", strconv.Quote(typ+"("), strconvPkg, recv)
	lw.Printf("}\n\n")
}

func (e *Emitter) unionContextScope(w *codefmt.Writer, d *parse.Decl, main []*parse.Variant) {
	scope := ident.ContextScope(d.Name)
	w.Printf("// %s is the context scope of %s, which is the variant chosen.\n", scope, d.Name)
	w.Printf("type %s = %s\n\n", scope, ident.Discriminant(d.Name))

	lw, _ := e.local(w)
	v := lw.Name("v")
	disc := lw.Name("d")
	ok := lw.Name("ok")

	fn := ident.ContextScopeFunc(d.Name)
	lw.Printf("// %s returns the context scope of %s. It reports false if %s is not a\n", fn, v, v)
	lw.Printf("// variant available in this build.\n")
	lw.Printf("func %s(%s %s) (%s, bool) {\n", fn, v, d.Name, scope)
	if len(main) != 0 {
		lw.Printf("switch %s.(type) {\n", v)
		for _, variant := range main {
			lw.Printf("case %s:\n", variantCase(variant))
			lw.Printf("return %s, true\n", ident.DiscriminantConst(d.Name, variant.Name))
		}
		lw.Printf("}\n")
	}
	for _, g := range d.Groups {
		lw.Printf("if %s, %s := (%s{}).discriminant(%s); %s {\n", disc, ok, g.Name(), v, ok)
		lw.Printf("return %s, true\n", disc)
		lw.Printf("}\n")
	}
	lw.Printf("return 0, false\n")
	lw.Printf("}\n\n")
}

func (e *Emitter) chooser(w *codefmt.Writer, d *parse.Decl, main []*parse.Variant) {
	ctxType := contextType(w, d)
	lw, rt := e.local(w)
	choices := lw.Name("choices")
	disc := lw.Name("d")
	err := lw.Name("err")

	message := parse.Summary(d.Doc)
	if message == "" {
		message = "Choose " + d.Name
	}

	fn := ident.Chooser(d.Name)
	typ := ident.Discriminant(d.Name)
	lw.Printf("// %s asks the user to choose a variant of %s.\n", fn, d.Name)
	lw.Printf("func %s(_ %s) (%s, error) {\n", fn, ctxType, typ)
	lw.Printf("%s := []%s.Choice{\n", choices, rt)
	for _, v := range main {
		writeChoice(lw, d, v)
	}
	lw.Printf("}\n")
	for _, g := range d.Groups {
		lw.Printf("%s = append(%s, %s{}.choices()...)\n", choices, choices, g.Name())
	}
	lw.Printf("%s, %s := %s.Choose(%s, %s)\n", disc, err, rt, strconv.Quote(message), choices)
	lw.Printf("return %s(%s), %s\n", typ, disc, err)
	lw.Printf("}\n\n")
}

func writeChoice(w *codefmt.Writer, d *parse.Decl, v *parse.Variant) {
	w.Printf("{Value: int(%s), Name: %s, Help: %s},\n",
		ident.DiscriminantConst(d.Name, v.Name), strconv.Quote(v.Name), strconv.Quote(parse.Summary(v.Doc)))
}

// unionSelected writes the method finding the variant selected on the
// command line.
func (e *Emitter) unionSelected(w *codefmt.Writer, d *parse.Decl, main []*parse.Variant) {
	lw, _ := e.local(w)
	cli := lw.Name("cli")
	disc := lw.Name("d")
	ok := lw.Name("ok")

	lw.Printf("func (%s %s) selected() (%s, bool) {\n", cli, ident.Mirror(d.Name), ident.Discriminant(d.Name))
	writeSelectedSwitch(lw, d, main, cli)
	for _, g := range d.Groups {
		lw.Printf("if %s, %s := %s.%s.selected(); %s {\n", disc, ok, cli, g.Name(), ok)
		lw.Printf("return %s, true\n", disc)
		lw.Printf("}\n")
	}
	lw.Printf("return 0, false\n")
	lw.Printf("}\n\n")
}

func writeSelectedSwitch(w *codefmt.Writer, d *parse.Decl, vs []*parse.Variant, mirror string) {
	if len(vs) == 0 {
		return
	}
	w.Printf("switch {\n")
	for _, v := range vs {
		w.Printf("case %s.%s.Selected():\n", mirror, v.Member())
		w.Printf("return %s, true\n", ident.DiscriminantConst(d.Name, v.Name))
	}
	w.Printf("}\n")
}

func (e *Emitter) unionFromCli(w *codefmt.Writer, d *parse.Decl, main []*parse.Variant) {
	ctxType := contextType(w, d)
	lw, rt := e.local(w)
	cli := lw.Name("cli")
	ctx := lw.Name("ctx")
	disc := lw.Name("d")
	ok := lw.Name("ok")
	err := lw.Name("err")
	names := variantLocals{value: lw.Name("value"), sub: lw.Name("subCli"), err: err}

	mirror := ident.Mirror(d.Name)
	fn := ident.FromCli(d.Name)
	lw.Printf("// %s composes %s from the variant selected in %s, or asks the user to\n", fn, d.Name, cli)
	lw.Printf("// choose one. It also returns %s with the variant and the prompted members\n", cli)
	lw.Printf("// filled in.\n")
	lw.Printf("func %s(%s %s, %s %s) (%s, %s, error) {\n", fn, cli, mirror, ctx, ctxType, d.Name, mirror)
	lw.Printf("%s, %s := %s.selected()\n", disc, ok, cli)
	lw.Printf("if !%s {\n", ok)
	lw.Printf("var %s error\n", err)
	lw.Printf("%s, %s = %s(%s)\n", disc, err, ident.Chooser(d.Name), ctx)
	lw.Printf("if %s != nil {\n", err)
	lw.Printf("return nil, %s, %s\n", cli, err)
	lw.Printf("}\n")
	lw.Printf("}\n\n")

	if len(main) != 0 {
		lw.Printf("switch %s {\n", disc)
		for _, v := range main {
			lw.Printf("case %s:\n", ident.DiscriminantConst(d.Name, v.Name))
			writeVariantFromCli(lw, d, v, cli, ctx, names, func(value, err string) string {
				return value + ", " + cli + ", " + err
			})
		}
		lw.Printf("}\n")
	}

	for _, g := range d.Groups {
		value, group := lw.Name("v"), lw.Name("g")
		lw.Printf("if %s, %s, %s, %s := %s.%s.fromCli(%s, %s); %s {\n", value, group, ok, err, cli, g.Name(), disc, ctx, ok)
		lw.Printf("%s.%s = %s\n", cli, g.Name(), group)
		lw.Printf("return %s, %s, %s\n", value, cli, err)
		lw.Printf("}\n")
	}
	lw.Printf("return nil, %s, %s.UnknownVariant(%s, int(%s))\n", cli, rt, strconv.Quote(d.Name), disc)
	lw.Printf("}\n\n")
}

// variantLocals are the names of the locals used to resolve a payload.
type variantLocals struct {
	value, sub, err string
}

// writeVariantFromCli writes the statements resolving a variant whose member
// is in mirror. ret formats the operands of the return statements.
func writeVariantFromCli(w *codefmt.Writer, d *parse.Decl, v *parse.Variant, mirror, ctx string, names variantLocals, ret func(value, err string) string) {
	member := mirror + "." + v.Member()
	lit := v.Name + "{}"
	if v.Ptr {
		lit = "&" + lit
	}

	if v.Payload == nil {
		w.Printf("%s.Select()\n", member)
		w.Printf("return %s\n", ret(lit, "nil"))
		return
	}

	ref := v.Payload.Ref
	fromCli := qualify(w, ref, ident.FromCli(ref.Name()))
	w.Printf("%s, %s, %s := %s(%s, %s)\n", names.value, names.sub, names.err, fromCli, member, contextArg(w, d, ref, ctx))
	w.Printf("%s = %s\n", member, names.sub)
	w.Printf("%s.Select()\n", member)
	w.Printf("if %s != nil {\n", names.err)
	w.Printf("return %s\n", ret("nil", names.err))
	w.Printf("}\n")

	lit = v.Name + "{" + v.Payload.Field.Name() + ": " + names.value + "}"
	if v.Ptr {
		lit = "&" + lit
	}
	w.Printf("return %s\n", ret(lit, "nil"))
}

func (e *Emitter) unionToCli(w *codefmt.Writer, d *parse.Decl, main []*parse.Variant) {
	lw, _ := e.local(w)
	v := lw.Name("v")
	cli := lw.Name("cli")

	mirror := ident.Mirror(d.Name)
	fn := ident.ToCli(d.Name)
	lw.Printf("// %s projects %s onto its command line counterpart with the variant\n", fn, v)
	lw.Printf("// selected.\n")
	lw.Printf("func %s(%s %s) %s {\n", fn, v, d.Name, mirror)
	lw.Printf("var %s %s\n", cli, mirror)

	if bindsValue(main) || len(d.Groups) != 0 {
		lw.Printf("switch %s := %s.(type) {\n", v, v)
	} else {
		lw.Printf("switch %s.(type) {\n", v)
	}
	for _, variant := range main {
		lw.Printf("case %s:\n", variantCase(variant))
		writeVariantToCli(lw, variant, v, cli)
	}
	if len(d.Groups) != 0 {
		lw.Printf("default:\n")
		for _, g := range d.Groups {
			lw.Printf("%s.%s = %s.%s.toCli(%s)\n", cli, g.Name(), cli, g.Name(), v)
		}
	}
	lw.Printf("}\n")
	lw.Printf("return %s\n", cli)
	lw.Printf("}\n\n")
}

// writeVariantToCli writes the statements selecting the member of a variant
// in mirror. v is the variant value bound by a type switch.
func writeVariantToCli(w *codefmt.Writer, variant *parse.Variant, v, mirror string) {
	member := mirror + "." + variant.Member()
	if variant.Payload == nil {
		w.Printf("%s.Select()\n", member)
		return
	}

	if variant.Ptr {
		w.Printf("if %s == nil {\n", v)
		w.Printf("break\n")
		w.Printf("}\n")
	}
	ref := variant.Payload.Ref
	toCli := qualify(w, ref, ident.ToCli(ref.Name()))
	w.Printf("%s = %s(%s.%s)\n", member, toCli, v, variant.Payload.Field.Name())
	w.Printf("%s.Select()\n", member)
}

func (e *Emitter) unionToCliArgs(w *codefmt.Writer, d *parse.Decl, main []*parse.Variant) {
	lw, _ := e.local(w)
	cli := lw.Name("cli")
	args := lw.Name("args")

	lw.Printf("// ToCliArgs returns the command line arguments which parse back into %s.\n", cli)
	lw.Printf("func (%s %s) ToCliArgs() []string {\n", cli, ident.Mirror(d.Name))
	writeVariantArgs(lw, main, cli)
	for _, g := range d.Groups {
		lw.Printf("if %s := %s.%s.cliArgs(); %s != nil {\n", args, cli, g.Name(), args)
		lw.Printf("return %s\n", args)
		lw.Printf("}\n")
	}
	lw.Printf("return nil\n")
	lw.Printf("}\n\n")
}

func writeVariantArgs(w *codefmt.Writer, vs []*parse.Variant, mirror string) {
	if len(vs) == 0 {
		return
	}
	w.Printf("switch {\n")
	for _, v := range vs {
		member := mirror + "." + v.Member()
		w.Printf("case %s.Selected():\n", member)
		if v.Payload == nil {
			w.Printf("return []string{%s}\n", strconv.Quote(v.Kebab()))
		} else {
			w.Printf("return append([]string{%s}, %s.ToCliArgs()...)\n", strconv.Quote(v.Kebab()), member)
		}
	}
	w.Printf("}\n")
}
