package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"gitline/internal/domain"
	"gitline/internal/logging"
	"gitline/internal/ports"
)

// Discoverer implements ports.RepoDiscoverer with go-git
type Discoverer struct{}

// Verify interface compliance at compile time
var _ ports.RepoDiscoverer = (*Discoverer)(nil)

// NewDiscoverer creates a new Discoverer
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// Discover opens the repository containing path, searching parent directories
func (d *Discoverer) Discover(path string) (ports.RepoReader, error) {
	logging.Logger.Debug("Discovering repository", "path", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		// DetectDotGit only looks for .git entries, so a bare repository is
		// found only when path is its root
		repo, err = gogit.PlainOpen(path)
	}
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			logging.Logger.Debug("No repository found", "path", path)
			return nil, domain.ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return NewRepository(repo), nil
}

// Repository implements ports.RepoReader over an opened go-git repository
type Repository struct {
	repo *gogit.Repository
}

// Verify interface compliance at compile time
var _ ports.RepoReader = (*Repository)(nil)

// NewRepository wraps an opened go-git repository
func NewRepository(repo *gogit.Repository) *Repository {
	return &Repository{repo: repo}
}

// Head implements HeadReader.Head
func (r *Repository) Head() (*domain.HeadRef, error) {
	ref, err := r.head()
	if err != nil {
		return nil, err
	}

	return &domain.HeadRef{
		Name:      ref.Name().String(),
		ShortName: ref.Name().Short(),
	}, nil
}

// HeadCommitID implements HeadReader.HeadCommitID
func (r *Repository) HeadCommitID() (string, error) {
	ref, err := r.head()
	if err != nil {
		return "", err
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		logging.Logger.Debug("HEAD does not peel to a commit", "hash", ref.Hash().String(), "error", err)
		return "", fmt.Errorf("%w: %v", domain.ErrNotACommit, err)
	}

	return commit.Hash.String(), nil
}

func (r *Repository) head() (*plumbing.Reference, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			// Unborn branch: HEAD names a branch with no commits yet
			return nil, domain.ErrHeadUnresolvable
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrHeadUnresolvable, err)
	}
	return ref, nil
}

// StatusEntries implements StatusReader.StatusEntries
func (r *Repository) StatusEntries() ([]domain.StatusEntry, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return nil, domain.ErrNoWorktree
		}
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to compute status: %w", err)
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	entries := buildStatusEntries(status, idx, wt.Filesystem)

	logging.Logger.Debug("Computed working tree status", "entries", len(entries))
	return entries, nil
}
