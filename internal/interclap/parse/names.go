package parse

import (
	"errors"
	"go/token"
	"slices"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	"github.com/dj8yfo/interactive-clap/internal/ident"
)

// reservedMembers are the names of the promoted and generated members of
// every mirror.
var reservedMembers = []string{"Command", "Select", "Selected", "AfterApply", "ToCliArgs", "Unselected"}

// checkNames checks the names generated for a declaration against each other
// and against the package scope.
func (p *Parser) checkNames(d *Decl) error {
	var errs error

	members := make(map[string]string)
	cmdNames := make(map[string]string)
	member := func(poser codefmt.Poser, member, kebab, name string) {
		if !token.IsIdentifier(member) || !token.IsExported(member) {
			errs = errors.Join(errs, codefmt.Errorf(p, poser, "%s becomes %s in mirror %s, which is not exported; rename it", name, member, ident.Mirror(d.Name)))
			return
		}
		if slices.Contains(reservedMembers, member) {
			errs = errors.Join(errs, codefmt.Errorf(p, poser, "%s is reserved in mirror %s; rename it", name, ident.Mirror(d.Name)))
			return
		}
		if other, ok := members[member]; ok {
			errs = errors.Join(errs, codefmt.Errorf(p, poser, "%s and %s are both %s in mirror %s", other, name, member, ident.Mirror(d.Name)))
			return
		}
		members[member] = name

		if kebab == "" {
			return
		}
		if other, ok := cmdNames[kebab]; ok {
			errs = errors.Join(errs, codefmt.Errorf(p, poser, "%s and %s are both %q on the command line", other, name, kebab))
			return
		}
		cmdNames[kebab] = name
	}

	for _, f := range d.Fields {
		kebab := f.Kebab()
		if f.Class == NamedSubcommand && !f.Wrapped() {
			// The variants of the union become the commands.
			kebab = ""
		}
		member(f, f.Member(), kebab, f.Name)
	}
	for _, g := range d.Groups {
		member(d, g.Name(), "", g.Name())
	}
	for _, v := range d.Variants {
		member(v, v.Member(), v.Kebab(), v.Name)
	}

	scope := p.pkg.Types.Scope()
	for _, name := range GeneratedNames(d) {
		if obj := scope.Lookup(name); obj != nil {
			errs = errors.Join(errs, codefmt.Errorf(p, d, "%s generates %s, which is already declared at %b", d.Name, name, obj.Pos()))
			continue
		}
		if pos, ok := p.names[name]; ok {
			errs = errors.Join(errs, codefmt.Errorf(p, d, "%s generates %s, which is also generated at %b", d.Name, name, pos))
			continue
		}
		p.names[name] = d.Pos()
	}

	return errs
}

// GeneratedNames returns the package-level names generated for d.
func GeneratedNames(d *Decl) []string {
	names := []string{
		ident.Mirror(d.Name),
		ident.FromCli(d.Name),
		ident.ToCli(d.Name),
		ident.ContextScope(d.Name),
		ident.ContextScopeFunc(d.Name),
	}

	switch d.Kind {
	case Record:
		for _, f := range d.Fields {
			if f.Wrapped() {
				names = append(names, ident.NamedArg(f.Sub.Name(), d.Name))
			}
		}
	case Union:
		names = append(names, ident.Discriminant(d.Name), ident.Chooser(d.Name))
		for _, v := range d.Variants {
			names = append(names, ident.DiscriminantConst(d.Name, v.Name))
		}
		for _, g := range d.Groups {
			names = append(names, g.Name())
		}
	}
	return names
}
