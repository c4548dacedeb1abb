package parse

import (
	"errors"
	"go/types"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
)

func (p *Parser) parseUnion(d *Decl) error {
	iface := d.Obj.Type().Underlying().(*types.Interface)

	var errs error
	for _, c := range p.variantCandidates(d, iface) {
		v, err := p.parseVariant(d, c.obj, c.ptr)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		d.Variants = append(d.Variants, v)
	}
	if errs != nil {
		return errs
	}
	if len(d.Variants) == 0 {
		return codefmt.Errorf(p, d, "union %s has no variants; declare types implementing it in package %s", d.Name, p.pkg.Name)
	}

	groups := linkedhashmap.New()
	for _, v := range d.Variants {
		if v.Constraint == nil || SameConstraint(v.Constraint, d.Constraint) {
			continue
		}

		key := v.Constraint.String()
		found, ok := groups.Get(key)
		if !ok {
			found = &Group{N: groups.Size() + 1, Union: d, Constraint: v.Constraint}
			groups.Put(key, found)
		}
		g := found.(*Group)
		g.Variants = append(g.Variants, v)
		v.Group = g
	}
	for _, g := range groups.Values() {
		d.Groups = append(d.Groups, g.(*Group))
	}
	return nil
}

type variantCandidate struct {
	obj *types.TypeName
	ptr bool
}

// variantCandidates finds the package-level types implementing the union in
// source order.
func (p *Parser) variantCandidates(d *Decl, iface *types.Interface) []variantCandidate {
	var cs []variantCandidate

	scope := p.pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj == d.Obj || obj.IsAlias() {
			continue
		}
		named, ok := obj.Type().(*types.Named)
		if !ok || named.TypeParams().Len() != 0 || types.IsInterface(named) {
			continue
		}
		if !d.InTestFile() && isTestFile(p.pkg, obj.Pos()) {
			// The generated code of d is compiled without the tests.
			continue
		}

		switch {
		case types.Implements(named, iface):
			cs = append(cs, variantCandidate{obj, false})
		case types.Implements(types.NewPointer(named), iface):
			cs = append(cs, variantCandidate{obj, true})
		}
	}

	slices.SortFunc(cs, func(a, b variantCandidate) int {
		return compareSource(p.pkg.Fset, a.obj.Pos(), b.obj.Pos())
	})
	return cs
}

func (p *Parser) parseVariant(d *Decl, obj *types.TypeName, ptr bool) (*Variant, error) {
	v := &Variant{Name: obj.Name(), Obj: obj, Ptr: ptr}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok || st.NumFields() > 1 {
		return nil, codefmt.Errorf(p, v, "variant %s of %s must be a struct with zero or one field", v.Name, d.Name)
	}

	if ts, ok := p.typeSpec(obj); ok {
		v.Doc = ts.doc()

		expr, err := fileConstraint(p.pkg, ts.file)
		if err != nil {
			return nil, err
		}
		v.Constraint = expr
	}

	if st.NumFields() == 0 {
		return v, nil
	}

	field := st.Field(0)
	ref, ok := p.reg.Lookup(field.Type())
	if !ok {
		return nil, codefmt.Errorf(p, field, "variant %s: payload %t must be marked with %s", v.Name, field.Type(), Marker)
	}
	if err := p.checkRef(d, ref); err != nil {
		return nil, codefmt.Errorf(p, field, "variant %s: %s", v.Name, err.Error())
	}

	v.Payload = &Payload{Field: field, Ref: ref}
	return v, nil
}
