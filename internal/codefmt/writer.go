package codefmt

import (
	"go/types"
	"io"
	"maps"

	"golang.org/x/tools/go/packages"
)

// Writer writes the body of one generated file. It collects the imports the
// body needs while types are printed with %t.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
	ns      NS
}

// Import is a package imported by a generated file.
type Import struct {
	*types.Package

	// HasAlias is set when the import name differs from the package name.
	HasAlias bool
}

// NewWriter creates a [Writer] generating code for pkg. It has no namespace
// of its own until [Writer.Local] is called.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     Formatter{PkgPath: pkg.PkgPath, Fset: pkg.Fset},
		imports: make(map[string]Import),
	}
}

// Printf writes like [Formatter.Fprintf] and imports the packages of the
// printed types.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	w.importArgs(args)
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf is like [Writer.Printf] but returns the string.
func (w *Writer) Sprintf(format string, args ...any) string {
	w.importArgs(args)
	return w.fmt.Sprintf(format, args...)
}

// Name takes a free identifier from the namespace of the writer.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Local returns a writer sharing the output and the imports, with a fresh
// namespace for the body of a function. The namespace starts with base and
// the import names taken so far, so a local variable never shadows a
// package used in the same file.
func (w *Writer) Local(base NS) *Writer {
	local := maps.Clone(base)
	if local == nil {
		local = make(NS)
	}
	for name := range w.imports {
		local.Reserve(name)
	}
	return &Writer{w: w.w, pkg: w.pkg, fmt: w.fmt, imports: w.imports, ns: local}
}

// Imports returns the imports collected so far keyed by import name.
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// Import imports the package at path and returns the name to refer to it. It
// prefers name, or the name the generated package already uses for path, and
// numbers it when the name is taken.
func (w *Writer) Import(path, name string) string {
	for _, imp := range w.imports {
		if imp.Path() == path {
			return imp.Name()
		}
	}

	pkgName := ""
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			pkgName = imp.Name()
			break
		}
	}
	if name == "" {
		name = pkgName
	}

	for candidate := range candidates(name) {
		if _, ok := w.imports[candidate]; ok {
			continue
		}
		if w.pkg.Types.Scope().Lookup(candidate) != nil || w.ns.Has(candidate) {
			continue
		}
		w.imports[candidate] = Import{
			Package:  types.NewPackage(path, candidate),
			HasAlias: candidate != pkgName,
		}
		return candidate
	}
	panic("unreachable")
}

// Qualifier returns the prefix to refer to a package-level object of pkg,
// such as "acct.", importing pkg if needed. Objects of the generated package
// need no prefix.
func (w *Writer) Qualifier(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == w.pkg.PkgPath {
		return ""
	}
	name := w.Import(pkg.Path(), pkg.Name())
	pkg.SetName(name)
	return name + "."
}

func (w *Writer) importArgs(args []any) {
	for _, arg := range args {
		if typ, ok := arg.(types.Type); ok {
			w.importType(typ)
		}
	}
}

// importType imports the packages declaring typ and its components. The
// package objects are renamed to the import names so that %t qualifies them
// accordingly.
func (w *Writer) importType(typ types.Type) {
	switch typ := typ.(type) {
	case *types.Pointer:
		w.importType(typ.Elem())
	case *types.Slice:
		w.importType(typ.Elem())
	case *types.Array:
		w.importType(typ.Elem())
	case *types.Map:
		w.importType(typ.Key())
		w.importType(typ.Elem())
	case *types.Alias:
		w.Qualifier(typ.Obj().Pkg())
	case *types.Named:
		w.Qualifier(typ.Obj().Pkg())
		targs := typ.TypeArgs()
		for i := range targs.Len() {
			w.importType(targs.At(i))
		}
	}
}
