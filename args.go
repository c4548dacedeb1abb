package interactiveclap

import (
	"github.com/alecthomas/kong"
)

// ParseArgs fills a mirror from command line arguments. The mirror's struct
// tags define the grammar. Without arguments the mirror is left as it is, so
// that every member is resolved interactively.
//
// Options are passed to the underlying parser. The parser never exits the
// process; errors are returned instead.
func ParseArgs(cli any, args []string, options ...kong.Option) error {
	options = append([]kong.Option{kong.Exit(func(int) {})}, options...)

	parser, err := kong.New(cli, options...)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	_, err = parser.Parse(args)
	return err
}

// TryParseFrom parses command line arguments into a new mirror of type C.
//
//	cli, err := interactiveclap.TryParseFrom[CliArgs](os.Args[1:])
//	if err != nil {
//		return err
//	}
//	args, _, err := ArgsFromCli(cli, interactiveclap.NoContext{})
func TryParseFrom[C any](args []string, options ...kong.Option) (C, error) {
	var cli C
	err := ParseArgs(&cli, args, options...)
	return cli, err
}
