// Package interclapanalysis reports misuses of //interclap:derive as
// analysis diagnostics.
package interclapanalysis

import (
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/dj8yfo/interactive-clap/internal/codefmt"
	interclapinternal "github.com/dj8yfo/interactive-clap/internal/interclap"
	"github.com/dj8yfo/interactive-clap/internal/interclap/parse"
)

// Analyzer validates the marked types of the package.
var Analyzer = &analysis.Analyzer{
	Name:      "interclap",
	Doc:       "linter for //interclap:derive usage",
	Run:       run,
	FactTypes: []analysis.Fact{new(derived)},
}

// derived is exported for every marked type so that packages importing it
// may use it as a payload or a subcommand.
type derived struct {
	Kind    parse.Kind
	Context string
}

func (*derived) AFact() {}

func (f *derived) String() string {
	if f.Context == "" {
		return "derived " + f.Kind.String()
	}
	return "derived " + f.Kind.String() + " context=" + f.Context
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	reg := parse.NewRegistry()
	reg.External = func(obj *types.TypeName) (parse.Ref, bool) {
		var f derived
		if !pass.ImportObjectFact(obj, &f) {
			return parse.Ref{}, false
		}
		return parse.Ref{Obj: obj, Kind: f.Kind, Context: f.Context}, true
	}

	ic, err := interclapinternal.New(pkg, reg)
	if err != nil {
		return nil, err
	}

	buildErr := ic.Build()

	// Types which are marked correctly stay usable by dependent packages
	// even if another declaration fails.
	for _, d := range reg.Decls(pkg) {
		ref := d.Ref()
		pass.ExportObjectFact(d.Obj, &derived{Kind: ref.Kind, Context: ref.Context})
	}

	report(pass, buildErr, "")
	for _, warn := range ic.Warnings() {
		report(pass, warn, "warning")
	}
	return nil, nil
}

// report unrolls all errors and reports those with a position.
func report(pass *analysis.Pass, err error, category string) {
	if err == nil {
		return
	}

	errs := []error{err}
	for len(errs) != 0 {
		err := errs[0]
		errs = errs[1:]

		if codeErr, ok := err.(*codefmt.CodeError); ok {
			pass.Report(analysis.Diagnostic{
				Pos:      codeErr.Pos(),
				End:      codeErr.End(),
				Category: category,
				Message:  codeErr.Unwrap().Error(),
			})
			continue
		}

		if u, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, u.Unwrap()...)
		}
	}
}
