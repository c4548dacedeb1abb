package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	"github.com/dj8yfo/interactive-clap/internal/typeinfo"
)

// Registry knows every marked type of the scanned packages. A payload of a
// union variant or a subcommand field must be found in the registry, so that
// a missing mirror is reported before the generated code is compiled.
//
// Packages are told apart by their IDs. A package compiled for its tests
// shares its path with the package itself but declares distinct types.
type Registry struct {
	decls   *typeinfo.Index[*Decl]
	scanned map[string]error
	paths   map[string]bool
	byPkg   map[string][]*Decl

	// External resolves marked types of packages which are not scanned. It
	// may be nil.
	External func(obj *types.TypeName) (Ref, bool)
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		decls:   typeinfo.NewIndex[*Decl](),
		scanned: make(map[string]error),
		paths:   make(map[string]bool),
		byPkg:   make(map[string][]*Decl),
	}
}

// Lookup finds the marked type of typ.
func (r *Registry) Lookup(typ types.Type) (Ref, bool) {
	named, ok := types.Unalias(typ).(*types.Named)
	if !ok || named.TypeArgs().Len() != 0 {
		return Ref{}, false
	}

	if d, ok := r.decls.Get(named); ok {
		return d.Ref(), true
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return Ref{}, false
	}
	if r.paths[obj.Pkg().Path()] {
		return Ref{}, false
	}
	if r.External != nil {
		return r.External(obj)
	}
	return Ref{}, false
}

// Decls returns the marked types of a scanned package in source order.
func (r *Registry) Decls(pkg *packages.Package) []*Decl {
	return r.byPkg[pkgKey(pkg)]
}

// pkgKey identifies a package. Packages built outside of [packages.Load],
// like the ones of an analysis pass, have no ID.
func pkgKey(pkg *packages.Package) string {
	if pkg.ID != "" {
		return pkg.ID
	}
	return pkg.PkgPath
}

// Len returns the number of marked types in all scanned packages.
func (r *Registry) Len() int {
	return r.decls.Len()
}

// ScanAll scans the packages and all of their dependencies which have
// syntax. Errors are kept per package and returned by [Registry.Scan] later.
func (r *Registry) ScanAll(pkgs []*packages.Package) {
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		if pkg.Syntax != nil && pkg.TypesInfo != nil {
			_ = r.Scan(pkg)
		}
	})
}

// Scan finds marked types in the package. Scanning the same package again
// returns the errors of the first scan.
func (r *Registry) Scan(pkg *packages.Package) error {
	key := pkgKey(pkg)
	if errs, ok := r.scanned[key]; ok {
		return errs
	}

	var errs error
	for _, file := range pkg.Syntax {
		errs = errors.Join(errs, r.scanFile(pkg, file))
	}
	r.scanned[key] = errs
	r.paths[pkg.PkgPath] = true

	slices.SortFunc(r.byPkg[key], func(a, b *Decl) int {
		return compareSource(pkg.Fset, a.Pos(), b.Pos())
	})
	return errs
}

func (r *Registry) scanFile(pkg *packages.Package, file *ast.File) error {
	pkger := codefmt.Pkg(pkg)

	var errs error
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			if fn, ok := decl.(*ast.FuncDecl); ok {
				if c := findMarker(fn.Doc); c != nil {
					errs = errors.Join(errs, codefmt.Errorf(pkger, c, "%s applies to type declarations only", Marker))
				}
			}
			continue
		}

		if gen.Tok != token.TYPE {
			if c := findMarker(gen.Doc); c != nil {
				errs = errors.Join(errs, codefmt.Errorf(pkger, c, "%s applies to type declarations only", Marker))
			}
			continue
		}

		if len(gen.Specs) > 1 {
			if c := findMarker(gen.Doc); c != nil {
				errs = errors.Join(errs, codefmt.Errorf(pkger, c, "%s must be put on a single type, not on a group", Marker))
			}
		}

		for _, spec := range gen.Specs {
			spec := spec.(*ast.TypeSpec)

			doc := spec.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}
			c := findMarker(doc)
			if c == nil {
				continue
			}

			d, err := scanDecl(pkg, file, spec, doc, c)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			r.decls.Put(d.Obj.Type(), d)
			r.byPkg[pkgKey(pkg)] = append(r.byPkg[pkgKey(pkg)], d)
		}
	}
	return errs
}

func scanDecl(pkg *packages.Package, file *ast.File, spec *ast.TypeSpec, doc *ast.CommentGroup, c *ast.Comment) (*Decl, error) {
	pkger := codefmt.Pkg(pkg)

	opts, err := parseMarker(pkger, c)
	if err != nil {
		return nil, err
	}

	obj, ok := pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, codefmt.Errorf(pkger, spec.Name, "cannot resolve type %s", spec.Name.Name) // unreachable
	}
	if spec.Assign.IsValid() {
		return nil, codefmt.Errorf(pkger, spec.Name, "cannot derive for alias %s", spec.Name.Name)
	}
	if spec.TypeParams != nil {
		return nil, codefmt.Errorf(pkger, spec.Name, "cannot derive for generic type %s", spec.Name.Name)
	}

	d := &Decl{
		Name: obj.Name(),
		Obj:  obj,
		Spec: spec,
		File: file,
		Doc:  doc.Text(),
		pkg:  pkg,
	}

	switch spec.Type.(type) {
	case *ast.StructType:
		d.Kind = Record
	case *ast.InterfaceType:
		iface := obj.Type().Underlying().(*types.Interface)
		if !iface.IsMethodSet() {
			return nil, codefmt.Errorf(pkger, spec.Name, "cannot derive for constraint interface %s", d.Name)
		}
		if iface.NumMethods() == 0 {
			return nil, codefmt.Errorf(pkger, spec.Name, "union %s must declare a method for its variants to implement", d.Name)
		}
		d.Kind = Union
	default:
		return nil, codefmt.Errorf(pkger, spec.Name, "cannot derive for %s; need a struct or an interface type literal", d.Name)
	}

	d.Constraint, err = fileConstraint(pkg, file)
	if err != nil {
		return nil, err
	}

	if opts.context != "" {
		tv, err := types.Eval(pkg.Fset, pkg.Types, spec.Pos(), opts.context)
		if err != nil {
			return nil, codefmt.Errorf(pkger, c, "cannot resolve context %q: %s", opts.context, err.Error())
		}
		if !tv.IsType() {
			return nil, codefmt.Errorf(pkger, c, "context %q is not a type", opts.context)
		}
		if !isNoContext(tv.Type) {
			d.Context = tv.Type
		}
	}

	return d, nil
}

// isNoContext reports whether typ is struct{}, which interactiveclap.NoContext
// is an alias of.
func isNoContext(typ types.Type) bool {
	st, ok := types.Unalias(typ).(*types.Struct)
	return ok && st.NumFields() == 0
}
