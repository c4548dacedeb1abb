package emit

import (
	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	"github.com/dj8yfo/interactive-clap/internal/ident"
	"github.com/dj8yfo/interactive-clap/internal/interclap/parse"
)

// Group writes a group of variants for the builds satisfying its constraint.
// Its methods let the union mirror treat the variants as its own.
func (e *Emitter) Group(w *codefmt.Writer, g *parse.Group) {
	d := g.Union
	rt := runtimePkg(w)
	name := g.Name()
	disc := ident.Discriminant(d.Name)

	w.Printf("// %s holds the variants of %s built with %s.\n", name, d.Name, g.Constraint.String())
	w.Printf("type %s struct {\n", name)
	for _, v := range g.Variants {
		writeDoc(w, v.Doc)
		w.Printf("%s %s %s\n", v.Member(), variantType(w, v), commandTag(v.Kebab(), v.Doc))
	}
	w.Printf("}\n\n")

	w.Printf("func (%s) choices() []%s.Choice {\n", name, rt)
	w.Printf("return []%s.Choice{\n", rt)
	for _, v := range g.Variants {
		writeChoice(w, d, v)
	}
	w.Printf("}\n")
	w.Printf("}\n\n")

	lw, _ := e.local(w)
	recv := lw.Name("g")
	lw.Printf("func (%s %s) selected() (%s, bool) {\n", recv, name, disc)
	writeSelectedSwitch(lw, d, g.Variants, recv)
	lw.Printf("return 0, false\n")
	lw.Printf("}\n\n")

	e.groupFromCli(w, g)
	e.groupToCli(w, g)

	lw, _ = e.local(w)
	recv = lw.Name("g")
	lw.Printf("func (%s %s) cliArgs() []string {\n", recv, name)
	writeVariantArgs(lw, g.Variants, recv)
	lw.Printf("return nil\n")
	lw.Printf("}\n\n")

	lw, _ = e.local(w)
	v := lw.Name("v")
	lw.Printf("func (%s) discriminant(%s %s) (%s, bool) {\n", name, v, d.Name, disc)
	lw.Printf("switch %s.(type) {\n", v)
	for _, variant := range g.Variants {
		lw.Printf("case %s:\n", variantCase(variant))
		lw.Printf("return %s, true\n", ident.DiscriminantConst(d.Name, variant.Name))
	}
	lw.Printf("}\n")
	lw.Printf("return 0, false\n")
	lw.Printf("}\n\n")
}

func (e *Emitter) groupFromCli(w *codefmt.Writer, g *parse.Group) {
	d := g.Union
	ctxType := contextType(w, d)
	lw, _ := e.local(w)
	recv := lw.Name("g")
	disc := lw.Name("d")
	ctx := lw.Name("ctx")
	names := variantLocals{value: lw.Name("value"), sub: lw.Name("subCli"), err: lw.Name("err")}

	lw.Printf("func (%s %s) fromCli(%s %s, %s %s) (%s, %s, bool, error) {\n",
		recv, g.Name(), disc, ident.Discriminant(d.Name), ctx, ctxType, d.Name, g.Name())
	lw.Printf("switch %s {\n", disc)
	for _, v := range g.Variants {
		lw.Printf("case %s:\n", ident.DiscriminantConst(d.Name, v.Name))
		writeVariantFromCli(lw, d, v, recv, ctx, names, func(value, err string) string {
			return value + ", " + recv + ", true, " + err
		})
	}
	lw.Printf("}\n")
	lw.Printf("return nil, %s, false, nil\n", recv)
	lw.Printf("}\n\n")
}

func (e *Emitter) groupToCli(w *codefmt.Writer, g *parse.Group) {
	d := g.Union
	lw, _ := e.local(w)
	recv := lw.Name("g")
	v := lw.Name("v")

	lw.Printf("func (%s %s) toCli(%s %s) %s {\n", recv, g.Name(), v, d.Name, g.Name())
	if bindsValue(g.Variants) {
		lw.Printf("switch %s := %s.(type) {\n", v, v)
	} else {
		lw.Printf("switch %s.(type) {\n", v)
	}
	for _, variant := range g.Variants {
		lw.Printf("case %s:\n", variantCase(variant))
		writeVariantToCli(lw, variant, v, recv)
	}
	lw.Printf("}\n")
	lw.Printf("return %s\n", recv)
	lw.Printf("}\n\n")
}

// GroupStub writes an empty group for the builds not satisfying the
// constraint of g, so that the union mirror compiles without its variants.
func (e *Emitter) GroupStub(w *codefmt.Writer, g *parse.Group) {
	d := g.Union
	rt := runtimePkg(w)
	ctxType := contextType(w, d)
	name := g.Name()
	disc := ident.Discriminant(d.Name)

	w.Printf("// %s is empty in builds without %s.\n", name, g.Constraint.String())
	w.Printf("type %s struct{}\n\n", name)

	w.Printf("func (%s) choices() []%s.Choice { return nil }\n\n", name, rt)
	w.Printf("func (%s) selected() (%s, bool) { return 0, false }\n\n", name, disc)
	w.Printf("func (g %s) fromCli(%s, %s) (%s, %s, bool, error) {\n", name, disc, ctxType, d.Name, name)
	w.Printf("return nil, g, false, nil\n")
	w.Printf("}\n\n")
	w.Printf("func (g %s) toCli(%s) %s { return g }\n\n", name, d.Name, name)
	w.Printf("func (%s) cliArgs() []string { return nil }\n\n", name)
	w.Printf("func (%s) discriminant(%s) (%s, bool) { return 0, false }\n\n", name, d.Name, disc)
}
