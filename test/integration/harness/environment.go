package harness

import (
	"os"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated environment for running the binary.
// Commands run in Dir, which defaults to an empty temp directory outside any repository.
type TestEnvironment struct {
	Dir      string
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp HOME.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Dir:      tb.TempDir(),
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// InRepo points the environment at a repository (or any directory inside one).
func (e *TestEnvironment) InRepo(dir string) *TestEnvironment {
	e.Dir = dir
	return e
}

// Environ returns environment variables configured for test isolation.
// HOME and XDG_STATE_HOME point at the temp home; GIT_* variables are dropped
// so the caller's git setup cannot redirect repository discovery.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if key == "HOME" || key == "XDG_STATE_HOME" || strings.HasPrefix(key, "GIT_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HOME="+e.Home,
		"XDG_STATE_HOME="+e.Home,
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
