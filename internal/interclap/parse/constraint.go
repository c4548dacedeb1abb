package parse

import (
	"go/ast"
	"go/build/constraint"

	"golang.org/x/tools/go/packages"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
)

// Tag is the build tag the generator loads packages with. Generated files
// are constrained with its negation.
const Tag = "interclap"

// fileConstraint returns the expression of the //go:build line of the file.
// It returns nil if the file is not constrained.
func fileConstraint(pkg *packages.Package, file *ast.File) (constraint.Expr, error) {
	var expr constraint.Expr
	var found *ast.Comment
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			if found != nil {
				return nil, codefmt.Errorf(codefmt.Pkg(pkg), comment, "multiple //go:build lines; first at %b", found.Pos())
			}
			found = comment

			x, err := constraint.Parse(comment.Text)
			if err != nil {
				return nil, codefmt.Errorf(codefmt.Pkg(pkg), comment, "malformed //go:build line: %s", err.Error())
			}
			expr = x
		}
	}

	if expr != nil && mentionsTag(expr) {
		return nil, codefmt.Errorf(codefmt.Pkg(pkg), found, "cannot derive in files depending on the %q build tag", Tag)
	}
	return expr, nil
}

func mentionsTag(expr constraint.Expr) bool {
	switch x := expr.(type) {
	case *constraint.TagExpr:
		return x.Tag == Tag
	case *constraint.NotExpr:
		return mentionsTag(x.X)
	case *constraint.AndExpr:
		return mentionsTag(x.X) || mentionsTag(x.Y)
	case *constraint.OrExpr:
		return mentionsTag(x.X) || mentionsTag(x.Y)
	}
	return false
}

// SameConstraint reports whether two constraints are spelled the same. nil
// means unconstrained.
func SameConstraint(x, y constraint.Expr) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return x.String() == y.String()
}
