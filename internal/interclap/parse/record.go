package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	"github.com/dj8yfo/interactive-clap/internal/typeinfo"
)

func (p *Parser) parseRecord(d *Decl) error {
	st := d.Obj.Type().Underlying().(*types.Struct)
	astFields := d.Spec.Type.(*ast.StructType).Fields

	var errs error
	prompts := make(map[string]*Field)
	var sub *Field
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if v.Name() == "_" {
			continue
		}
		if v.Embedded() {
			err := codefmt.Errorf(p, v, "embedded field %s is not supported; name it", v.Name())
			errs = errors.Join(errs, err)
			continue
		}

		f, err := p.parseField(d, v, fieldAST(astFields, v.Pos()), st.Tag(i))
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if f.Class == NamedSubcommand {
			if sub != nil {
				err := codefmt.Errorf(p, f, "%s has more than one subcommand field: %s and %s", d.Name, sub.Name, f.Name)
				errs = errors.Join(errs, err)
				continue
			}
			sub = f
		}

		if f.Class.Prompted() {
			if other, ok := prompts[f.PromptFunc()]; ok {
				err := codefmt.Errorf(p, f, "fields %s and %s share the prompt method %s", other.Name, f.Name, f.PromptFunc())
				errs = errors.Join(errs, err)
				continue
			}
			prompts[f.PromptFunc()] = f
		}

		d.Fields = append(d.Fields, f)
	}

	if sub != nil {
		// Positional arguments cannot precede a subcommand on the command
		// line grammar of the mirror.
		for _, f := range d.Fields {
			f.Long = true
		}
	}
	return errs
}

// fieldAST finds the AST of the field declared at pos.
func fieldAST(fields *ast.FieldList, pos token.Pos) *ast.Field {
	for _, f := range fields.List {
		if f.Pos() <= pos && pos < f.End() {
			return f
		}
	}
	return nil
}

func (p *Parser) parseField(d *Decl, v *types.Var, af *ast.Field, tag string) (*Field, error) {
	f := &Field{Name: v.Name(), Var: v, AST: af}
	if af != nil && af.Doc != nil {
		f.Doc = af.Doc.Text()
	}

	dirs, err := ParseDirectives(reflect.StructTag(tag))
	if err != nil {
		return nil, codefmt.Errorf(p, f, "field %s: %s", f.Name, err.Error())
	}
	f.Directives = dirs

	f.Class, err = Classify(dirs, v.Type())
	if err != nil {
		return nil, codefmt.Errorf(p, f, "field %s: %s", f.Name, err.Error())
	}
	f.Long = dirs.Has(Long) || f.Class == Flag || f.Class == RepeatedMultiOpt

	if err := p.checkTextual(f); err != nil {
		return nil, err
	}

	switch f.Class {
	case NamedSubcommand:
		err = p.parseSubcommand(d, f)
	case SkipDefault:
		err = p.parseInputMethod(d, f)
	case Plain:
		err = p.checkPromptMethodFree(d, f)
		f.Prompt = PromptText(f.Name, f.Doc, dirs)
		if err == nil && f.Prompt == "" {
			p.warnf(f, "field %s is prompted with an empty text; document it", f.Name)
		}
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// checkTextual checks that the values of a field prompted or parsed by the
// runtime can be read from text. Fields with a user-declared prompt method
// are left to the command line parser.
func (p *Parser) checkTextual(f *Field) error {
	typ := f.Type()
	switch f.Class {
	case Plain, SkipNoPrompt:
	case RepeatedMultiOpt:
		typ = typ.Underlying().(*types.Slice).Elem()
	default:
		return nil
	}

	if typeinfo.Textual(typ) {
		return nil
	}
	return codefmt.Errorf(p, f, "field %s: cannot read %t from a command line argument; need a string, bool or number type, time.Duration or an encoding.TextUnmarshaler", f.Name, typ)
}

func (p *Parser) parseSubcommand(d *Decl, f *Field) error {
	dir, want := Subcommand, Union
	if f.Directives.Has(NamedArg) {
		dir, want = NamedArg, Record
	}

	ref, ok := p.reg.Lookup(f.Type())
	if !ok {
		return codefmt.Errorf(p, f, "field %s: %q requires a type marked with %s, got %t", f.Name, dir, Marker, f.Type())
	}
	if ref.Kind != want {
		return codefmt.Errorf(p, f, "field %s: %q requires a marked %s, but %t is a %s", f.Name, dir, want, f.Type(), ref.Kind)
	}
	if err := p.checkRef(d, ref); err != nil {
		return codefmt.Errorf(p, f, "field %s: %s", f.Name, err.Error())
	}

	f.Sub = &ref
	return nil
}

// parseInputMethod finds the prompt method the user declared for a
// skip_default_input_arg field.
func (p *Parser) parseInputMethod(d *Decl, f *Field) error {
	name := f.PromptFunc()
	want := codefmt.Sprintf(p, "func(%s) (*%t, error)", p.contextString(d), f.Type())

	obj, _, _ := types.LookupFieldOrMethod(d.Obj.Type(), true, p.pkg.Types, name)
	method, ok := obj.(*types.Func)
	if !ok {
		return codefmt.Errorf(p, f, "field %s: %q requires method %s.%s of type %s", f.Name, SkipDefaultInputArg, d.Name, name, want)
	}

	prompt, err := typeinfo.PromptOf(method)
	if err != nil || !prompt.Accepts(d.Context, f.Type()) {
		return codefmt.Errorf(p, method, "method %s must be %s", name, want)
	}

	f.Input = &prompt
	return nil
}

// checkPromptMethodFree checks that the generated prompt method of a field
// does not collide with a field or a method of the type.
func (p *Parser) checkPromptMethodFree(d *Decl, f *Field) error {
	name := f.PromptFunc()
	obj, _, _ := types.LookupFieldOrMethod(d.Obj.Type(), true, p.pkg.Types, name)
	if obj == nil {
		return nil
	}
	if _, ok := obj.(*types.Func); ok {
		return codefmt.Errorf(p, f, "field %s: %s already has method %s; mark the field %q to use it", f.Name, d.Name, name, SkipDefaultInputArg)
	}
	return codefmt.Errorf(p, f, "field %s: %s already has %s; the prompt method would collide", f.Name, d.Name, name)
}
