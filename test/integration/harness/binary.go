package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

// TestVersion is stamped into the test binary through -ldflags
const TestVersion = "v0.0.0-integration"

const defaultTimeout = 10 * time.Second

var binary struct {
	once sync.Once
	dir  string
	path string
	err  error
}

// CommandResult holds the outcome of one gitline invocation
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles gitline into a temp directory once per test run,
// stamping TestVersion into internal/version. Call it from TestMain.
func BuildBinary() (string, error) {
	binary.once.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			binary.err = err
			return
		}

		binary.dir, err = os.MkdirTemp("", "gitline-integration-*")
		if err != nil {
			binary.err = err
			return
		}
		binary.path = filepath.Join(binary.dir, "gitline")

		ldflags := "-X gitline/internal/version.Version=" + TestVersion
		cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", binary.path, ".")
		cmd.Dir = root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			binary.err = fmt.Errorf("go build failed: %w", err)
		}
	})

	return binary.path, binary.err
}

// CleanupBinary removes the directory BuildBinary compiled into
func CleanupBinary() {
	if binary.dir == "" {
		return
	}
	if err := os.RemoveAll(binary.dir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to remove %s: %v\n", binary.dir, err)
	}
}

type runConfig struct {
	timeout time.Duration
}

// RunOption customizes a single RunCommandWith call
type RunOption func(*runConfig)

// WithTimeout overrides the default 10s limit for one invocation
func WithTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		c.timeout = d
	}
}

// RunCommand runs the compiled binary inside env.Dir with env's isolated environment
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWith(tb, env, nil, args...)
}

// RunCommandWith is RunCommand with per-call options
func RunCommandWith(tb testing.TB, env *TestEnvironment, opts []RunOption, args ...string) CommandResult {
	tb.Helper()

	if binary.path == "" {
		tb.Fatalf("gitline binary not built; call BuildBinary from TestMain")
	}

	cfg := runConfig{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary.path, args...)
	cmd.Dir = env.Dir
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Errorf("gitline %v timed out after %v", args, cfg.timeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Errorf("gitline %v failed to start: %v", args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot walks up from this source file to the directory holding go.mod
func moduleRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot locate harness source file")
	}

	for dir := filepath.Dir(file); ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above " + filepath.Dir(file))
		}
		dir = parent
	}
}
