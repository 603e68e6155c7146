// Package harness provides utilities for testing the gitline CLI.
// It handles binary compilation, environment isolation, command execution
// and building throwaway git repositories with go-git.
//
// Environment variables managed:
//   - HOME and XDG_STATE_HOME: Isolated per test (temp directory) so debug
//     logs never land in the real home directory
package harness
