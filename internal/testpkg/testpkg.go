// Package testpkg type-checks Go sources in memory for tests. Packages may
// import each other and the standard library.
package testpkg

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// Loader loads packages sharing one file set.
type Loader struct {
	t    testing.TB
	fset *token.FileSet
	pkgs map[string]*packages.Package
	std  types.Importer
}

// New creates a new [Loader].
func New(t testing.TB) *Loader {
	return &Loader{
		t:    t,
		fset: token.NewFileSet(),
		pkgs: make(map[string]*packages.Package),
		std:  importer.Default(),
	}
}

// Load parses and type-checks the sources as the package at pkgPath. The
// files are named file0.go, file1.go, and so on. The test fails on any error.
func (l *Loader) Load(pkgPath string, srcs ...string) *packages.Package {
	l.t.Helper()

	var files []*ast.File
	var goFiles []string
	for i, src := range srcs {
		name := path.Join(pkgPath, fmt.Sprintf("file%d.go", i))
		file, err := parser.ParseFile(l.fset, name, src, parser.ParseComments)
		require.NoError(l.t, err)
		files = append(files, file)
		goFiles = append(goFiles, name)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
	conf := types.Config{Importer: l}
	tpkg, err := conf.Check(pkgPath, l.fset, files, info)
	require.NoError(l.t, err)

	imports := make(map[string]*packages.Package)
	for _, imp := range tpkg.Imports() {
		if dep, ok := l.pkgs[imp.Path()]; ok {
			imports[imp.Path()] = dep
		}
	}

	pkg := &packages.Package{
		ID:        pkgPath,
		Name:      tpkg.Name(),
		PkgPath:   pkgPath,
		GoFiles:   goFiles,
		Types:     tpkg,
		Fset:      l.fset,
		Syntax:    files,
		TypesInfo: info,
		Imports:   imports,
	}
	l.pkgs[pkgPath] = pkg
	return pkg
}

// Import implements [types.Importer] over the packages loaded so far. Other
// paths are imported from the standard library.
func (l *Loader) Import(pkgPath string) (*types.Package, error) {
	if pkg, ok := l.pkgs[pkgPath]; ok {
		return pkg.Types, nil
	}
	return l.std.Import(pkgPath)
}
