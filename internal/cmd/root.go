package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"gitline/internal/domain"
	"gitline/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Help    bool             `help:"Print this help menu" short:"h"`
	Version kong.VersionFlag `help:"Show version information" short:"V"`

	// Formatting options
	Color *string `help:"Render using a color scheme (0 plain, 1 basic, 2 bright)" short:"C" placeholder:"SCHEME"`

	// Information selection
	Branch bool    `help:"Print the branch name" short:"b"`
	Commit *string `help:"Print the commit id, truncated to LENGTH" short:"c" placeholder:"LENGTH"`
	State  bool    `help:"Print the dirty file counts and repository state" short:"s"`

	Debug       bool   `help:"Enable debug logging to file" short:"d"`
	DebugFile   string `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int    `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	// Internal fields (not flags)
	config domain.Config `kong:"-"`
}

// AfterApply validates the parsed flags and builds the Config.
// Help is checked first so it wins over invalid values.
func (c *CLI) AfterApply() error {
	if c.Help {
		return domain.ErrHelpRequested
	}

	cfg := domain.Config{
		ShowBranch: c.Branch,
		ShowState:  c.State,
	}

	if c.Color != nil {
		n, err := parseCount(*c.Color)
		if err != nil {
			return &domain.InvalidArgumentError{Option: "color", Placeholder: "SCHEME", Value: *c.Color}
		}
		cfg.ColorScheme = n
	}

	if c.Commit != nil {
		n, err := parseCount(*c.Commit)
		if err != nil {
			return &domain.InvalidArgumentError{Option: "commit", Placeholder: "LENGTH", Value: *c.Commit}
		}
		cfg.CommitIDLength = n
	}

	c.config = cfg
	return nil
}

// Config returns the configuration built by AfterApply
func (c *CLI) Config() domain.Config {
	return c.config
}

// Run renders the status line for the repository containing dir
func (c *CLI) Run(ctx context.Context, container *Container, stdout io.Writer, dir string) error {
	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		// The status line matters more than the debug log
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	logging.Logger.Debug("Rendering status",
		"color_scheme", c.config.ColorScheme,
		"show_branch", c.config.ShowBranch,
		"commit_id_length", c.config.CommitIDLength,
		"show_state", c.config.ShowState,
		"dir", dir)

	if err := container.StatusService.WriteStatus(ctx, stdout, c.config, dir); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}
	return nil
}

// parseCount parses a base-10 non-negative integer
func parseCount(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt {
		return 0, strconv.ErrRange
	}
	return int(n), nil
}
