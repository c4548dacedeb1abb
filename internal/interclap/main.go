package interclapinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/dj8yfo/interactive-clap/internal/interclap/parse"
)

var Version string

// Config is the configuration of [Main].
type Config struct {
	// Dir is the working directory. Output paths are relative to it.
	Dir string

	// Env is the environment to load packages with.
	Env []string

	// Tags are extra comma-separated build tags.
	Tags string

	// Tests includes test files.
	Tests bool

	// Output is the name of the first file generated in each package.
	Output string
}

// Result is the outcome of [Main].
type Result struct {
	// Files maps output file paths to their contents.
	Files map[string][]byte

	// Warnings are the problems which do not prevent generation, sorted by
	// message.
	Warnings []error
}

// Main is the main entry point for Interclap. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx
// can cancel the operation. patterns are the package patterns to process.
//
// Every loaded package is scanned for marked types before generation, so a
// payload may be marked in any loaded package. If any error occurs, it
// returns a non-nil error and no files.
func Main(ctx context.Context, cfg Config, patterns []string) (*Result, error) {
	pkgs, err := load(ctx, cfg.Dir, cfg.Env, cfg.Tags, cfg.Tests, patterns)
	if err != nil {
		return nil, err
	}

	reg := parse.NewRegistry()
	reg.ScanAll(pkgs)

	res := &Result{Files: make(map[string][]byte)}
	var errs []error
	for _, pkg := range selectPackages(pkgs) {
		outs, warns, err := generatePkg(pkg, reg, cfg.Output)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res.Warnings = append(res.Warnings, warns...)

		if len(outs) == 0 {
			continue
		}
		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(cfg.Dir, outDir); err == nil {
			outDir = rel
		}
		for name, code := range outs {
			path := filepath.Join(outDir, name)
			if _, ok := res.Files[path]; ok {
				errs = append(errs, fmt.Errorf("%s is generated by more than one package; last by %s", path, pkg.ID))
				continue
			}
			res.Files[path] = code
		}
	}
	if len(errs) != 0 {
		return nil, reorderErrors(errors.Join(errs...))
	}

	slices.SortFunc(res.Warnings, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return res, nil
}

// selectPackages picks one package per package path. When test files are
// loaded, the package compiled for its tests covers the files of the
// package itself, and the synthesized test main has nothing to generate.
func selectPackages(pkgs []*packages.Package) []*packages.Package {
	tested := make(map[string]bool)
	for _, pkg := range pkgs {
		if pkg.ForTest != "" && pkg.ForTest == pkg.PkgPath {
			tested[pkg.PkgPath] = true
		}
	}

	var selected []*packages.Package
	for _, pkg := range pkgs {
		switch {
		case pkg.Name == "main" && strings.HasSuffix(pkg.ID, ".test"):
			continue
		case pkg.ForTest == "" && tested[pkg.PkgPath]:
			continue
		case len(pkg.GoFiles) == 0:
			continue
		}
		selected = append(selected, pkg)
	}
	return selected
}

// generatePkg builds and generates a single package.
func generatePkg(pkg *packages.Package, reg *parse.Registry, output string) (map[string][]byte, []error, error) {
	if len(pkg.Errors) != 0 {
		return nil, nil, fmt.Errorf("pkg %q has errors", pkg.Name)
	}
	ic, err := New(pkg, reg)
	if err != nil {
		return nil, nil, err
	}
	if err := ic.Build(); err != nil {
		return nil, nil, err
	}
	return ic.Generate(output), ic.Warnings(), nil
}

// load loads the packages matching patterns with the Interclap build tag set,
// so that previously generated files are left out. Package errors are
// reported with paths relative to wd.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	buildTags := parse.Tag
	if tags != "" {
		buildTags += "," + tags
	}
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + buildTags},
		Tests:      tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			if pkgErr.Pos == "" {
				errs = append(errs, errors.New(pkgErr.Msg))
				continue
			}
			file, lineCol, _ := strings.Cut(pkgErr.Pos, ":")
			if rel, err := filepath.Rel(wd, file); err == nil {
				pkgErr.Pos = rel + ":" + lineCol
			}
			errs = append(errs, pkgErr)
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return pkgs, nil
}

// reorderErrors flattens joined errors and sorts them by message, so that
// the output does not depend on the order packages were processed in.
func reorderErrors(err error) error {
	var flat []error
	var visit func(error)
	visit = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, err := range joined.Unwrap() {
				visit(err)
			}
			return
		}
		if err != nil {
			flat = append(flat, err)
		}
	}
	visit(err)

	slices.SortFunc(flat, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(flat...)
}
