package domain

import (
	"errors"
	"fmt"
)

var (
	ErrHeadUnresolvable   = errors.New("head reference cannot be resolved")
	ErrHelpRequested      = errors.New("help requested")
	ErrNoWorktree         = errors.New("repository has no working tree")
	ErrNotACommit         = errors.New("head does not point to a commit")
	ErrRepositoryNotFound = errors.New("repository not found")
)

// ParseError is returned when the command line cannot be parsed
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError is returned when a numeric option has a non-numeric value
type InvalidArgumentError struct {
	Option      string // e.g. "color"
	Placeholder string // e.g. "SCHEME"
	Value       string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s %s is not a valid number", e.Option, e.Placeholder)
}
