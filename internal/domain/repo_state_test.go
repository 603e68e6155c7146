package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryState_Label(t *testing.T) {
	tests := []struct {
		state    RepositoryState
		expected string
	}{
		{StateClean, ""},
		{StateMerge, "Merge"},
		{StateRevert, "Revert"},
		{StateRevertSequence, "Revert Sequence"},
		{StateCherryPick, "Cherry-pick"},
		{StateCherryPickSequence, "Cherry-pick Sequence"},
		{StateBisect, "Bisect"},
		{StateRebase, "Rebase"},
		{StateRebaseInteractive, "Rebase Interactive"},
		{StateRebaseMerge, "Rebase Merge"},
		{StateApplyMailbox, "Apply Mailbox"},
		{StateApplyMailboxOrRebase, "Apply Mailbox or Rebase"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Label())
		})
	}
}

func TestRepositoryState_IsClean(t *testing.T) {
	assert.True(t, StateClean.IsClean())
	assert.False(t, StateBisect.IsClean())
}

func TestRepositoryState_UnknownValue(t *testing.T) {
	s := RepositoryState(99)
	assert.Equal(t, "", s.Label())
	assert.Equal(t, "Unknown", s.String())
}
