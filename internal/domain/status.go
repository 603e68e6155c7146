package domain

// Slot identifies one of the four styles of a color scheme
type Slot int

const (
	SlotBranch  Slot = iota // Branch name
	SlotAccent              // Unused by the default layout
	SlotWarning             // Operation state label
	SlotCommit              // Commit id
)

// NumSlots is the number of styles in a color scheme
const NumSlots = 4

// StatusEntry is a single file-level status record exposed by the repository backend.
// Predicates are not mutually exclusive.
type StatusEntry interface {
	Path() string
	IsConflicted() bool
	IsWorktreeDeleted() bool
	IsWorktreeModified() bool
	IsWorktreeNew() bool
	IsWorktreeRenamed() bool
	IsWorktreeTypeChanged() bool
}

// StatusCategory is a class of dirty files shown in the status line
type StatusCategory struct {
	Letter  byte
	Matches func(StatusEntry) bool
	Name    string
	Slot    Slot
}

// StatusCategories lists the categories in display order
var StatusCategories = [...]StatusCategory{
	{Name: "new", Letter: 'N', Slot: SlotAccent, Matches: StatusEntry.IsWorktreeNew},
	{Name: "deleted", Letter: 'D', Slot: SlotCommit, Matches: StatusEntry.IsWorktreeDeleted},
	{Name: "modified", Letter: 'M', Slot: SlotWarning, Matches: StatusEntry.IsWorktreeModified},
	{Name: "renamed", Letter: 'R', Slot: SlotBranch, Matches: StatusEntry.IsWorktreeRenamed},
	{Name: "typechange", Letter: 'T', Slot: SlotBranch, Matches: StatusEntry.IsWorktreeTypeChanged},
	{Name: "conflicted", Letter: 'C', Slot: SlotCommit, Matches: StatusEntry.IsConflicted},
}

// StatusCounts holds one counter per entry of StatusCategories
type StatusCounts [len(StatusCategories)]int

// CountStatuses classifies every entry into zero or more categories
func CountStatuses(entries []StatusEntry) StatusCounts {
	var counts StatusCounts
	for _, entry := range entries {
		for i, category := range StatusCategories {
			if category.Matches(entry) {
				counts[i]++
			}
		}
	}
	return counts
}

// IsClean reports whether every counter is zero
func (c StatusCounts) IsClean() bool {
	for _, n := range c {
		if n > 0 {
			return false
		}
	}
	return true
}
