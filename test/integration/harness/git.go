package harness

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepo is a git repository created in a temp directory with go-git.
// Its default branch is "main" and it starts with no commits.
type TestRepo struct {
	Path string
	Repo *gogit.Repository
	tb   testing.TB
}

// NewTestRepo initializes an empty repository with an unborn "main" branch.
func NewTestRepo(tb testing.TB) *TestRepo {
	tb.Helper()

	path := tb.TempDir()
	repo, err := gogit.PlainInitWithOptions(path, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName("main"),
		},
	})
	if err != nil {
		tb.Fatalf("Failed to init repository: %v", err)
	}

	return &TestRepo{Path: path, Repo: repo, tb: tb}
}

// NewTestRepoWithCommit initializes a repository and commits README.md to main.
func NewTestRepoWithCommit(tb testing.TB) *TestRepo {
	tb.Helper()

	r := NewTestRepo(tb)
	r.CommitFile("README.md", "# Test Repo\n")
	return r
}

// WriteFile writes a file relative to the repository root without staging it.
func (r *TestRepo) WriteFile(name, content string) {
	r.tb.Helper()

	path := filepath.Join(r.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", name, err)
	}
}

// RemoveFile deletes a file relative to the repository root without staging it.
func (r *TestRepo) RemoveFile(name string) {
	r.tb.Helper()

	if err := os.Remove(filepath.Join(r.Path, name)); err != nil {
		r.tb.Fatalf("Failed to remove %s: %v", name, err)
	}
}

// CommitFile writes, stages and commits a single file, returning the commit hash.
func (r *TestRepo) CommitFile(name, content string) plumbing.Hash {
	r.tb.Helper()

	r.WriteFile(name, content)

	wt, err := r.Repo.Worktree()
	if err != nil {
		r.tb.Fatalf("Failed to open worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		r.tb.Fatalf("Failed to stage %s: %v", name, err)
	}

	hash, err := wt.Commit("Add "+name, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		r.tb.Fatalf("Failed to commit %s: %v", name, err)
	}
	return hash
}

// Detach checks out the given commit with a detached HEAD.
func (r *TestRepo) Detach(hash plumbing.Hash) {
	r.tb.Helper()

	wt, err := r.Repo.Worktree()
	if err != nil {
		r.tb.Fatalf("Failed to open worktree: %v", err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{Hash: hash}); err != nil {
		r.tb.Fatalf("Failed to detach HEAD at %s: %v", hash, err)
	}
}

// MarkOperation creates a marker file inside .git, e.g. "MERGE_HEAD" or
// "rebase-merge/interactive", to simulate an in-progress operation.
func (r *TestRepo) MarkOperation(marker string) {
	r.tb.Helper()

	path := filepath.Join(r.Path, ".git", marker)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.tb.Fatalf("Failed to create directory for %s: %v", marker, err)
	}
	if err := os.WriteFile(path, []byte("0000000000000000000000000000000000000000\n"), 0644); err != nil {
		r.tb.Fatalf("Failed to write marker %s: %v", marker, err)
	}
}

// Subdir creates a nested directory inside the repository and returns its path.
func (r *TestRepo) Subdir(name string) string {
	r.tb.Helper()

	path := filepath.Join(r.Path, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		r.tb.Fatalf("Failed to create %s: %v", name, err)
	}
	return path
}

// ReplaceWithSymlink swaps a file in the worktree for a symlink to target.
func (r *TestRepo) ReplaceWithSymlink(name, target string) {
	r.tb.Helper()

	path := filepath.Join(r.Path, name)
	if err := os.Remove(path); err != nil {
		r.tb.Fatalf("Failed to remove %s: %v", name, err)
	}
	if err := os.Symlink(target, path); err != nil {
		r.tb.Fatalf("Failed to link %s to %s: %v", name, target, err)
	}
}

// Conflict leaves name unmerged the way a failed "git merge" does: the index
// holds base, ours and theirs stages, the worktree holds conflict markers and
// MERGE_HEAD is present. An empty base omits the ancestor stage.
func (r *TestRepo) Conflict(name, base, ours, theirs string) {
	r.tb.Helper()

	idx, err := r.Repo.Storer.Index()
	if err != nil {
		r.tb.Fatalf("Failed to read index: %v", err)
	}

	kept := idx.Entries[:0]
	for _, e := range idx.Entries {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	idx.Entries = kept

	stages := []struct {
		stage   index.Stage
		content string
	}{
		{index.AncestorMode, base},
		{index.OurMode, ours},
		{index.TheirMode, theirs},
	}
	for _, s := range stages {
		if s.content == "" {
			continue
		}
		idx.Entries = append(idx.Entries, &index.Entry{
			Name:  name,
			Hash:  r.storeBlob(s.content),
			Mode:  filemode.Regular,
			Stage: s.stage,
		})
	}

	if err := r.Repo.Storer.SetIndex(idx); err != nil {
		r.tb.Fatalf("Failed to write index: %v", err)
	}

	r.WriteFile(name, "<<<<<<< HEAD\n"+ours+"=======\n"+theirs+">>>>>>> other\n")
	r.MarkOperation("MERGE_HEAD")
}

func (r *TestRepo) storeBlob(content string) plumbing.Hash {
	r.tb.Helper()

	obj := r.Repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)

	w, err := obj.Writer()
	if err != nil {
		r.tb.Fatalf("Failed to open blob writer: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		r.tb.Fatalf("Failed to write blob: %v", err)
	}
	if err := w.Close(); err != nil {
		r.tb.Fatalf("Failed to close blob writer: %v", err)
	}

	hash, err := r.Repo.Storer.SetEncodedObject(obj)
	if err != nil {
		r.tb.Fatalf("Failed to store blob: %v", err)
	}
	return hash
}
