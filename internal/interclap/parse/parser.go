package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
)

// RuntimePath is the import path of the package generated code depends on.
const RuntimePath = "github.com/dj8yfo/interactive-clap"

// Parser parses the marked types of a package into declarations ready for
// generation.
type Parser struct {
	pkg *packages.Package
	reg *Registry

	specs map[*types.TypeName]typeSpec
	names map[string]token.Pos
	warns []error
}

type typeSpec struct {
	spec *ast.TypeSpec
	gen  *ast.GenDecl
	file *ast.File
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }
func (p *Parser) Registry() *Registry    { return p.reg }

// New creates a new [Parser]. reg may be nil if payloads are always marked in
// the same package. The package is scanned into reg by [Parser.Parse].
func New(pkg *packages.Package, reg *Registry) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	if reg == nil {
		reg = NewRegistry()
	}
	return &Parser{pkg: pkg, reg: reg, names: make(map[string]token.Pos)}, nil
}

// Parse parses all marked types of the package in source order. It collects
// all errors instead of stopping at the first one.
func (p *Parser) Parse() ([]*Decl, error) {
	errs := p.reg.Scan(p.pkg)

	decls := p.reg.Decls(p.pkg)
	for _, d := range decls {
		var err error
		switch d.Kind {
		case Record:
			err = p.parseRecord(d)
		case Union:
			err = p.parseUnion(d)
		}
		if err == nil {
			err = p.checkNames(d)
		}
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return nil, errs
	}
	return decls, nil
}

// Warnings returns the problems found by [Parser.Parse] which do not prevent
// generation.
func (p *Parser) Warnings() []error {
	return p.warns
}

func (p *Parser) warnf(poser codefmt.Poser, format string, args ...any) {
	p.warns = append(p.warns, codefmt.Errorf(p, poser, format, args...))
}

// typeSpec finds the declaration of a package-level type of the package.
func (p *Parser) typeSpec(obj *types.TypeName) (typeSpec, bool) {
	if p.specs == nil {
		p.specs = make(map[*types.TypeName]typeSpec)
		for _, file := range p.pkg.Syntax {
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.TYPE {
					continue
				}
				for _, spec := range gen.Specs {
					spec := spec.(*ast.TypeSpec)
					if tn, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName); ok {
						p.specs[tn] = typeSpec{spec, gen, file}
					}
				}
			}
		}
	}
	ts, ok := p.specs[obj]
	return ts, ok
}

// doc returns the doc comment of a type declaration.
func (ts typeSpec) doc() string {
	if ts.spec.Doc != nil {
		return ts.spec.Doc.Text()
	}
	if len(ts.gen.Specs) == 1 && ts.gen.Doc != nil {
		return ts.gen.Doc.Text()
	}
	return ""
}

// contextString formats the context type of a declaration for messages.
func (p *Parser) contextString(d *Decl) string {
	if d.Context == nil {
		return "interactiveclap.NoContext"
	}
	return codefmt.FormatType(p, d.Context)
}

// checkRef checks whether generated code of d can use the generated code of
// a marked type.
func (p *Parser) checkRef(d *Decl, ref Ref) error {
	if ref.Obj.Pkg() != p.pkg.Types && !ref.Obj.Exported() {
		return fmt.Errorf("%s is not exported", ref.Obj.Name())
	}
	if ref.Context != "" && ref.Context != ContextKey(d.Context) {
		return fmt.Errorf("%s takes context %s but %s takes %s", ref.Obj.Name(), ref.Context, d.Name, p.contextString(d))
	}
	return nil
}
