package ports

import "gitline/internal/domain"

// RepoDiscoverer locates a repository at or above a path
type RepoDiscoverer interface {
	// Discover returns domain.ErrRepositoryNotFound when no repository contains path
	Discover(path string) (RepoReader, error)
}

// HeadReader resolves HEAD
type HeadReader interface {
	Head() (*domain.HeadRef, error)
	// HeadCommitID peels HEAD to a commit and returns its hex id
	HeadCommitID() (string, error)
}

// StatusReader lists working tree status entries
type StatusReader interface {
	StatusEntries() ([]domain.StatusEntry, error)
}

// StateReader reports the in-progress operation
type StateReader interface {
	State() (domain.RepositoryState, error)
}

// RepoReader is the composite read-only view of an opened repository
type RepoReader interface {
	HeadReader
	StateReader
	StatusReader
}
