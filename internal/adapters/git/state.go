package git

import (
	"errors"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"gitline/internal/domain"
	"gitline/internal/logging"
)

var errNoGitDir = errors.New("repository storage has no git directory")

// Marker files git leaves in the git directory while an operation is in progress
const (
	bisectLog           = "BISECT_LOG"
	cherryPickHead      = "CHERRY_PICK_HEAD"
	mergeHead           = "MERGE_HEAD"
	rebaseApplyApplying = "rebase-apply/applying"
	rebaseApplyDir      = "rebase-apply"
	rebaseApplyRebasing = "rebase-apply/rebasing"
	rebaseMergeDir      = "rebase-merge"
	rebaseMergeInteract = "rebase-merge/interactive"
	revertHead          = "REVERT_HEAD"
	sequencerTodo       = "sequencer/todo"
)

// State implements StateReader.State
func (r *Repository) State() (domain.RepositoryState, error) {
	storage, ok := r.repo.Storer.(*filesystem.Storage)
	if !ok {
		return domain.StateClean, errNoGitDir
	}

	state := detectState(storage.Filesystem())
	logging.Logger.Debug("Detected repository state", "state", state.String())
	return state, nil
}

// detectState checks markers in the same precedence order git itself uses
func detectState(fs billy.Filesystem) domain.RepositoryState {
	switch {
	case exists(fs, rebaseMergeInteract):
		return domain.StateRebaseInteractive
	case exists(fs, rebaseMergeDir):
		return domain.StateRebaseMerge
	case exists(fs, rebaseApplyRebasing):
		return domain.StateRebase
	case exists(fs, rebaseApplyApplying):
		return domain.StateApplyMailbox
	case exists(fs, rebaseApplyDir):
		return domain.StateApplyMailboxOrRebase
	case exists(fs, mergeHead):
		return domain.StateMerge
	case exists(fs, revertHead):
		if exists(fs, sequencerTodo) {
			return domain.StateRevertSequence
		}
		return domain.StateRevert
	case exists(fs, cherryPickHead):
		if exists(fs, sequencerTodo) {
			return domain.StateCherryPickSequence
		}
		return domain.StateCherryPick
	case exists(fs, bisectLog):
		return domain.StateBisect
	}
	return domain.StateClean
}

func exists(fs billy.Filesystem, name string) bool {
	_, err := fs.Stat(name)
	return err == nil
}
