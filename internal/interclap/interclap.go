package interclapinternal

import (
	"bytes"
	"fmt"
	"go/build/constraint"
	"go/format"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	"github.com/dj8yfo/interactive-clap/internal/interclap/emit"
	"github.com/dj8yfo/interactive-clap/internal/interclap/parse"
)

// Interclap generates the mirrors, prompts and conversions of the marked
// types of a package. Call [Build] and then [Generate] to get the generated
// code. All potential errors are returned by [Build]. Once [Build] succeeds,
// [Generate] never fails.
type Interclap struct {
	p  *parse.Parser
	ns codefmt.NS

	decls []*parse.Decl
}

// New creates a new [Interclap] for the given package. If the package does
// not satisfy the requirements, an error is returned. The package must have
// its Syntax, Types and TypesInfo. And it must not have any errors.
//
// reg resolves the marked types of other packages. It may be nil if the
// package depends on no marked type of another package.
func New(pkg *packages.Package, reg *parse.Registry) (*Interclap, error) {
	parser, err := parse.New(pkg, reg)
	if err != nil {
		return nil, err
	}

	return &Interclap{
		p:  parser,
		ns: codefmt.NewNS(pkg.Types.Scope()),
	}, nil
}

// Build parses the marked types. All potential errors are returned by this
// method. It must be called before [Generate].
func (ic *Interclap) Build() error {
	decls, err := ic.p.Parse()
	if err != nil {
		return err
	}
	ic.decls = decls

	// Reserve the generated names so that no local variable of a generated
	// function shadows them.
	for _, d := range decls {
		for _, name := range parse.GeneratedNames(d) {
			ic.ns.Reserve(name)
		}
	}
	return nil
}

// Warnings returns the problems found by [Build] which do not prevent
// generation.
func (ic *Interclap) Warnings() []error {
	return ic.p.Warnings()
}

// Decls returns the declarations found by [Build].
func (ic *Interclap) Decls() []*parse.Decl {
	return ic.decls
}

// Generate generates the code of the package. It returns the contents of the
// generated files keyed by file name. The first file is named outFile and the
// others are numbered after it, one for each build constraint. It returns nil
// if the package has no marked types. It must be called after [Build]
// succeeds.
//
// Declarations of _test.go files are generated into files named with the
// _test suffix, or _external_test for an external test package, so that
// the package compiles without its tests.
func (ic *Interclap) Generate(outFile string) map[string][]byte {
	if len(ic.decls) == 0 {
		return nil
	}

	pkgName := ic.p.Pkg().Name
	external := strings.HasSuffix(pkgName, "_test")

	units := linkedhashmap.New()
	unitOf := func(expr constraint.Expr, test bool) *unit {
		expr = and(&constraint.NotExpr{X: &constraint.TagExpr{Tag: parse.Tag}}, expr)
		test = test || external
		key := fmt.Sprintf("%s test=%t", expr, test)
		if u, ok := units.Get(key); ok {
			return u.(*unit)
		}
		u := newUnit(ic.p.Pkg(), expr)
		u.test = test
		units.Put(key, u)
		return u
	}

	em := emit.New(ic.ns)
	for _, d := range ic.decls {
		test := d.InTestFile()
		u := unitOf(d.Constraint, test)
		em.Decl(u.w, d)
		u.w.Printf("\n")

		for _, g := range d.Groups {
			u := unitOf(and(d.Constraint, g.Constraint), test)
			em.Group(u.w, g)

			u = unitOf(and(d.Constraint, &constraint.NotExpr{X: g.Constraint}), test)
			em.GroupStub(u.w, g)
		}
	}

	ext := filepath.Ext(outFile)
	base := strings.TrimSuffix(outFile, ext)

	testSuffix := "_test"
	if external {
		testSuffix = "_external_test"
	}

	outs := make(map[string][]byte)
	var n, nTest int
	for _, v := range units.Values() {
		u := v.(*unit)

		name := base
		i := &n
		if u.test {
			i = &nTest
		}
		if *i != 0 {
			name = fmt.Sprintf("%s_%d", name, *i)
		}
		*i++
		if u.test {
			name += testSuffix
		}
		outs[name+ext] = u.frameCode(pkgName)
	}
	return outs
}

// and conjoins two constraints. nil means unconstrained.
func and(x, y constraint.Expr) constraint.Expr {
	switch {
	case x == nil:
		return y
	case y == nil:
		return x
	}
	return &constraint.AndExpr{X: x, Y: y}
}

// unit is a generated file.
type unit struct {
	expr constraint.Expr
	test bool
	buf  *bytes.Buffer
	w    *codefmt.Writer
}

func newUnit(pkg *packages.Package, expr constraint.Expr) *unit {
	var buf bytes.Buffer
	return &unit{expr: expr, buf: &buf, w: codefmt.NewWriter(&buf, pkg)}
}

func (u *unit) frameCode(pkgName string) []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build %s\n\n", u.expr)
	fmt.Fprintf(&buf, "// Code generated by github.com/dj8yfo/interactive-clap%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", pkgName)

	imports := u.w.Imports()
	if len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(imports)) {
			imp := imports[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, u.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
