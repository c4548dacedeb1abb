package parse

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/dj8yfo/interactive-clap/internal/ident"
	"github.com/dj8yfo/interactive-clap/internal/typeinfo"
)

// Kind tells records from unions.
type Kind int

const (
	Record Kind = iota + 1
	Union
)

func (k Kind) String() string {
	switch k {
	case Record:
		return "record"
	case Union:
		return "union"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Decl is a type declaration marked with //interclap:derive. A struct is a
// [Record] and an interface is a [Union].
type Decl struct {
	Name string
	Kind Kind
	Obj  *types.TypeName
	Spec *ast.TypeSpec
	File *ast.File

	// Doc is the doc comment of the declaration without the marker.
	Doc string

	// Context is the type passed to prompt methods and choosers. nil means
	// interactiveclap.NoContext.
	Context types.Type

	// Constraint is the //go:build expression of the declaring file. nil
	// means unconstrained.
	Constraint constraint.Expr

	Fields   []*Field
	Variants []*Variant
	Groups   []*Group

	pkg *packages.Package
}

func (d *Decl) Pkg() *packages.Package { return d.pkg }
func (d *Decl) Pos() token.Pos         { return d.Spec.Name.Pos() }
func (d *Decl) End() token.Pos         { return d.Spec.Name.End() }
func (d *Decl) Object() types.Object   { return d.Obj }

// InTestFile reports whether d is declared in a _test.go file. Such a
// declaration exists only when the package is compiled for its tests.
func (d *Decl) InTestFile() bool {
	return isTestFile(d.pkg, d.Spec.Pos())
}

func isTestFile(pkg *packages.Package, pos token.Pos) bool {
	return strings.HasSuffix(pkg.Fset.Position(pos).Filename, "_test.go")
}

// compareSource orders positions by file name and then by offset. Files are
// not added to a file set in a fixed order when loaded concurrently.
func compareSource(fset *token.FileSet, a, b token.Pos) int {
	pa, pb := fset.Position(a), fset.Position(b)
	return cmp.Or(
		cmp.Compare(pa.Filename, pb.Filename),
		cmp.Compare(pa.Offset, pb.Offset),
	)
}

// Ref returns the reference other declarations use to depend on d.
func (d *Decl) Ref() Ref {
	return Ref{Obj: d.Obj, Kind: d.Kind, Context: ContextKey(d.Context)}
}

// Subcommand returns the field delegating to a subcommand, if any.
func (d *Decl) Subcommand() *Field {
	for _, f := range d.Fields {
		if f.Class == NamedSubcommand {
			return f
		}
	}
	return nil
}

// Field is a field of a record.
type Field struct {
	Name       string
	Var        *types.Var
	AST        *ast.Field
	Directives Directives
	Class      Class

	// Long is true if the mirror member is a named option instead of a
	// positional argument.
	Long bool

	// Doc is the doc comment of the field.
	Doc string

	// Prompt is the text shown when prompting for a plain field.
	Prompt string

	// Sub is the marked type a named subcommand field delegates to.
	Sub *Ref

	// Input is the user-declared prompt method of a skip-default field.
	Input *typeinfo.Prompt
}

func (f *Field) Pos() token.Pos     { return f.Var.Pos() }
func (f *Field) Type() types.Type   { return f.Var.Type() }
func (f *Field) Member() string     { return ident.Member(f.Name) }
func (f *Field) Kebab() string      { return ident.Kebab(f.Name) }
func (f *Field) PromptFunc() string { return ident.Prompt(f.Name) }

func (f *Field) End() token.Pos {
	if f.AST == nil {
		return token.NoPos
	}
	return f.AST.End()
}

// Wrapped reports whether the field is a named argument, which the mirror
// wraps in a group named after the field.
func (f *Field) Wrapped() bool {
	return f.Class == NamedSubcommand && f.Directives.Has(NamedArg)
}

// Variant is a type implementing a union.
type Variant struct {
	Name string
	Obj  *types.TypeName

	// Ptr is true if only the pointer type implements the union.
	Ptr bool

	// Doc is the doc comment of the variant type.
	Doc string

	// Constraint is the //go:build expression of the declaring file.
	Constraint constraint.Expr

	// Group is the group the variant is moved into because its constraint
	// differs from the union's. nil if the variant is always available
	// along with the union.
	Group *Group

	// Payload is nil for variants without fields.
	Payload *Payload
}

func (v *Variant) Pos() token.Pos       { return v.Obj.Pos() }
func (v *Variant) Object() types.Object { return v.Obj }
func (v *Variant) Member() string       { return ident.Member(v.Name) }
func (v *Variant) Kebab() string        { return ident.Kebab(v.Name) }

// Payload is the only field of a variant.
type Payload struct {
	Field *types.Var
	Ref   Ref
}

// Group collects the variants of a union sharing a build constraint which
// differs from the union's.
type Group struct {
	// N starts at 1 in the order of the first variant of each group.
	N          int
	Union      *Decl
	Constraint constraint.Expr
	Variants   []*Variant
}

func (g *Group) Name() string { return ident.Group(g.Union.Name, g.N) }

// Ref refers to a marked type, possibly in another package.
type Ref struct {
	Obj     *types.TypeName
	Kind    Kind
	Context string
}

func (r Ref) Name() string { return r.Obj.Name() }

// ContextKey identifies a context type across packages. It returns an empty
// string for nil.
func ContextKey(typ types.Type) string {
	if typ == nil {
		return ""
	}
	return types.TypeString(typ, nil)
}
