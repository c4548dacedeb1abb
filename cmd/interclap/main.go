package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"

	interclapinternal "github.com/dj8yfo/interactive-clap/internal/interclap"
)

var Version = "dev"

func init() {
	interclapinternal.Version = Version
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// config is the content of the configuration file. Flags given on the
// command line override it.
type config struct {
	Tags     string   `yaml:"tags"`
	Tests    bool     `yaml:"tests"`
	Output   string   `yaml:"output"`
	Color    string   `yaml:"color"`
	Packages []string `yaml:"packages"`
}

func defaultConfig() config {
	return config{Output: "interclap_gen.go", Color: "auto"}
}

// loadConfig reads the configuration file at path into cfg. A missing file
// is not an error unless required.
func loadConfig(path string, required bool, cfg *config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		flagConfig string
		flags      = defaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "interclap [flags] [packages]",
		Short: "Generate interactive command line mirrors for marked Go types",
		Long: `interclap generates, for every type marked with //interclap:derive, a
command line mirror, prompts for the values missing from the command line and
conversions between the two. Packages are loaded with the "interclap" build
tag and the generated files are excluded from it.

Examples:
  interclap
  interclap ./cmd/...
  interclap --tags linux --output cli_gen.go ./internal/cli`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if err := loadConfig(flagConfig, cmd.Flags().Changed("config"), &cfg); err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}

			// Flags override the configuration file.
			fs := cmd.Flags()
			if fs.Changed("tags") {
				cfg.Tags = flags.Tags
			}
			if fs.Changed("tests") {
				cfg.Tests = flags.Tests
			}
			if fs.Changed("output") {
				cfg.Output = flags.Output
			}
			if fs.Changed("color") {
				cfg.Color = flags.Color
			}
			if len(args) != 0 {
				cfg.Packages = args
			}
			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flagConfig, "config", ".interclap.yaml", "configuration file")
	fs.StringVar(&flags.Tags, "tags", flags.Tags, "comma-separated build tags")
	fs.BoolVar(&flags.Tests, "tests", flags.Tests, "include tests")
	fs.StringVar(&flags.Output, "output", flags.Output, "output file name")
	fs.StringVar(&flags.Color, "color", flags.Color, "colorize (auto|always|never)")
	return cmd
}

func run(ctx context.Context, cfg config, stdout, stderr io.Writer) error {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	color := false
	switch cfg.Color {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		err := fmt.Errorf("invalid --color value: %s", cfg.Color)
		fmt.Fprintln(stderr, err)
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	res, err := interclapinternal.Main(ctx, interclapinternal.Config{
		Dir:    wd,
		Env:    os.Environ(),
		Tags:   cfg.Tags,
		Tests:  cfg.Tests,
		Output: cfg.Output,
	}, cfg.Packages)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(stderr, message)
		return err
	}

	for _, warn := range res.Warnings {
		message := "warning: " + warn.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(stderr, message)
	}

	for _, out := range slices.Sorted(maps.Keys(res.Files)) {
		if err := os.WriteFile(out, res.Files[out], 0o644); err != nil {
			fmt.Fprintln(stderr, err)
			return err
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Fprintln(stdout, "Generated:", out)
	}
	return nil
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reTab     = regexp.MustCompile(`(?m)^\t.+`)
	reWarning = regexp.MustCompile(`^warning: `)
)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		yellow = "\033[33m"
		dim    = "\033[2m"
		reset  = "\033[0m"
	)
	m := []byte(message)
	m = reWarning.ReplaceAll(m, []byte(yellow+"warning:"+reset+" "))
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	return string(m)
}
