// Package codefmt renders types and source positions of a loaded package,
// both in generated code and in error messages about user code.
package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger interface{ Pkg() *packages.Package }
	Poser interface{ Pos() token.Pos }
	Ender interface{ End() token.Pos }
)

type pkger struct{ pkg *packages.Package }

func (p pkger) Pkg() *packages.Package { return p.pkg }

// Pkg adapts a bare package to [Pkger].
func Pkg(pkg *packages.Package) Pkger { return pkger{pkg} }

// Formatter renders types as seen from the package PkgPath.
type Formatter struct {
	PkgPath string
	Fset    *token.FileSet
}

func formatterOf(pkger Pkger) Formatter {
	if pkger == nil {
		return Formatter{}
	}
	pkg := pkger.Pkg()
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{PkgPath: pkg.PkgPath, Fset: pkg.Fset}
}

// Type renders typ, qualifying types of other packages by package name.
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, func(pkg *types.Package) string {
		if pkg.Path() == f.PkgPath {
			return ""
		}
		return pkg.Name()
	})
}

// Position renders pos as file:line:column.
func (f Formatter) Position(pos token.Pos) string {
	if f.Fset == nil {
		return FormatPosition(token.Position{})
	}
	return FormatPosition(f.Fset.Position(pos))
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

// FormatPosition renders pos relative to the working directory. An invalid
// position renders as "-:-".
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}
	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}

// FormatType renders typ as seen from the package of pkger.
func FormatType(pkger Pkger, typ types.Type) string {
	return formatterOf(pkger).Type(typ)
}

// Sprintf is like [fmt.Sprintf] with the verbs of [Formatter.Sprintf].
func Sprintf(pkger Pkger, format string, args ...any) string {
	return formatterOf(pkger).Sprintf(format, args...)
}

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return formatterOf(pkger).Errorf(poser, format, args...)
}
