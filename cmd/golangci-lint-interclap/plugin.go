// golangcilintinterclap package provides a plugin for golangci-lint to
// integrate the Interclap analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-interclap binary that you can use to lint
// the //interclap:derive types of your Go code.
package golangcilintinterclap

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/dj8yfo/interactive-clap/pkg/interclapanalysis"
)

func init() {
	register.Plugin("interclap", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return InterclapLinter{}, nil
}

type InterclapLinter struct{}

func (InterclapLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{interclapanalysis.Analyzer}, nil
}

// GetLoadMode needs type information because payloads are resolved through
// the types of other packages.
func (InterclapLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
