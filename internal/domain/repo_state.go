package domain

// RepositoryState is the multi-step operation a repository is in the middle of
type RepositoryState int

const (
	StateClean RepositoryState = iota
	StateMerge
	StateRevert
	StateRevertSequence
	StateCherryPick
	StateCherryPickSequence
	StateBisect
	StateRebase
	StateRebaseInteractive
	StateRebaseMerge
	StateApplyMailbox
	StateApplyMailboxOrRebase
)

var repositoryStateLabels = map[RepositoryState]string{
	StateMerge:                "Merge",
	StateRevert:               "Revert",
	StateRevertSequence:       "Revert Sequence",
	StateCherryPick:           "Cherry-pick",
	StateCherryPickSequence:   "Cherry-pick Sequence",
	StateBisect:               "Bisect",
	StateRebase:               "Rebase",
	StateRebaseInteractive:    "Rebase Interactive",
	StateRebaseMerge:          "Rebase Merge",
	StateApplyMailbox:         "Apply Mailbox",
	StateApplyMailboxOrRebase: "Apply Mailbox or Rebase",
}

// Label returns the display label, or an empty string for a clean repository
func (s RepositoryState) Label() string {
	return repositoryStateLabels[s]
}

// IsClean reports whether no operation is in progress
func (s RepositoryState) IsClean() bool {
	return s == StateClean
}

func (s RepositoryState) String() string {
	if s == StateClean {
		return "Clean"
	}
	if label, ok := repositoryStateLabels[s]; ok {
		return label
	}
	return "Unknown"
}
