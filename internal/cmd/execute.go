package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"gitline/internal/domain"
	"gitline/internal/version"
)

// Description is shown at the top of the usage text
const Description = "Print a compact git status line for shell prompts"

// NewParser builds the kong parser for cli.
// Help and usage are written to stdout; kong's built-in help is replaced by
// the --help flag on CLI so help requests exit like parse errors.
// A flag always takes the next argument as its value, even "-1".
func NewParser(cli *CLI, stdout io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("gitline"),
		kong.Description(Description),
		kong.NoDefaultHelp(),
		kong.WithHyphenPrefixedParameters(true),
		kong.Vars{
			"version": version.Info(),
		},
		kong.Writers(stdout, os.Stderr),
	}, options...)

	return kong.New(cli, options...)
}

// Resolve parses args (without the program name) into cli and returns its Config.
// Errors are domain.ErrHelpRequested, *domain.InvalidArgumentError or *domain.ParseError.
func Resolve(parser *kong.Kong, cli *CLI, args []string) (domain.Config, error) {
	if _, err := parser.Parse(args); err != nil {
		return domain.Config{}, classifyParseError(err)
	}
	return cli.Config(), nil
}

func classifyParseError(err error) error {
	if errors.Is(err, domain.ErrHelpRequested) {
		return domain.ErrHelpRequested
	}

	var invalid *domain.InvalidArgumentError
	if errors.As(err, &invalid) {
		return invalid
	}

	return &domain.ParseError{Err: err}
}

// PrintUsage writes the usage text, followed by an error line unless help was requested
func PrintUsage(parser *kong.Kong, stdout io.Writer, err error) {
	ctx, traceErr := kong.Trace(parser, nil)
	if traceErr == nil {
		_ = ctx.PrintUsage(false)
	}

	if err != nil && !errors.Is(err, domain.ErrHelpRequested) {
		fmt.Fprintf(stdout, "Argument parsing error: %v\n", err)
	}
}

// Execute runs gitline against dir and returns the process exit code
func Execute(ctx context.Context, args []string, stdout io.Writer, dir string) int {
	var cli CLI
	parser, err := NewParser(&cli, stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if _, err := Resolve(parser, &cli, args); err != nil {
		PrintUsage(parser, stdout, err)
		return 1
	}

	if err := cli.Run(ctx, NewContainer(), stdout, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
