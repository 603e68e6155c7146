package git

import (
	"sort"

	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"

	"gitline/internal/domain"
)

// stageMerged is the stage of a fully merged index entry as read from disk.
// go-git's index.Merged constant shares its value with index.AncestorMode.
const stageMerged index.Stage = 0

// statusEntry adapts a go-git FileStatus to domain.StatusEntry.
// A conflicted entry reports no worktree changes, and a type change
// replaces the plain modification go-git reports for it.
type statusEntry struct {
	path        string
	staging     gogit.StatusCode
	worktree    gogit.StatusCode
	conflicted  bool
	typeChanged bool
}

var _ domain.StatusEntry = statusEntry{}

func newStatusEntry(path string, fs gogit.FileStatus) statusEntry {
	return statusEntry{
		path:     path,
		staging:  fs.Staging,
		worktree: fs.Worktree,
	}
}

func (e statusEntry) Path() string {
	return e.path
}

func (e statusEntry) IsConflicted() bool {
	return e.conflicted || e.staging == gogit.UpdatedButUnmerged || e.worktree == gogit.UpdatedButUnmerged
}

func (e statusEntry) IsWorktreeDeleted() bool {
	return !e.IsConflicted() && e.worktree == gogit.Deleted
}

func (e statusEntry) IsWorktreeModified() bool {
	return !e.IsConflicted() && !e.typeChanged && e.worktree == gogit.Modified
}

func (e statusEntry) IsWorktreeNew() bool {
	return !e.IsConflicted() && e.worktree == gogit.Untracked
}

func (e statusEntry) IsWorktreeRenamed() bool {
	return !e.IsConflicted() && e.worktree == gogit.Renamed
}

func (e statusEntry) IsWorktreeTypeChanged() bool {
	return !e.IsConflicted() && e.typeChanged
}

// buildStatusEntries combines go-git's status with the index and the worktree
// filesystem, which carry the conflict stages and file types Status drops.
// Conflicted paths missing from status are still reported.
func buildStatusEntries(status gogit.Status, idx *index.Index, fs billy.Filesystem) []domain.StatusEntry {
	modes := make(map[string]filemode.FileMode, len(idx.Entries))
	unmerged := make(map[string]bool)
	for _, e := range idx.Entries {
		if e.Stage != stageMerged {
			unmerged[e.Name] = true
			continue
		}
		modes[e.Name] = e.Mode
	}

	entries := make([]domain.StatusEntry, 0, len(status)+len(unmerged))
	for path, fileStatus := range status {
		if fileStatus == nil {
			continue
		}

		entry := newStatusEntry(path, *fileStatus)
		switch {
		case unmerged[path]:
			entry.conflicted = true
			delete(unmerged, path)
		case entry.worktree == gogit.Modified:
			entry.typeChanged = typeChanged(fs, path, modes[path])
		}
		entries = append(entries, entry)
	}

	rest := make([]string, 0, len(unmerged))
	for path := range unmerged {
		rest = append(rest, path)
	}
	sort.Strings(rest)
	for _, path := range rest {
		entries = append(entries, statusEntry{path: path, conflicted: true})
	}

	return entries
}

// typeChanged reports whether the file on disk is a different kind of object
// (file, symlink, submodule) than the one recorded in the index
func typeChanged(fs billy.Filesystem, path string, indexed filemode.FileMode) bool {
	if indexed == filemode.Empty {
		return false
	}

	fi, err := fs.Lstat(path)
	if err != nil {
		return false
	}

	current, err := filemode.NewFromOSFileMode(fi.Mode())
	if err != nil {
		return false
	}

	return fileKind(current) != fileKind(indexed)
}

func fileKind(m filemode.FileMode) filemode.FileMode {
	switch m {
	case filemode.Executable, filemode.Deprecated:
		return filemode.Regular
	case filemode.Dir:
		// A checked out submodule is a directory on disk
		return filemode.Submodule
	}
	return m
}
