package domain

// CommitIDHexLength is the length of a hex-encoded SHA-1 commit id
const CommitIDHexLength = 40

// Config selects what the status line shows and how it is colored.
// It is built once per run by the option resolver.
type Config struct {
	ColorScheme    int
	CommitIDLength int // 0 disables the commit id
	ShowBranch     bool
	ShowState      bool
}

// ShowCommitID reports whether the commit id field is enabled
func (c Config) ShowCommitID() bool {
	return c.CommitIDLength > 0
}

// TruncateCommitID returns the first CommitIDLength characters of id.
// Lengths past the end of id yield the whole id.
func (c Config) TruncateCommitID(id string) string {
	if c.CommitIDLength <= 0 {
		return ""
	}
	if c.CommitIDLength >= len(id) {
		return id
	}
	return id[:c.CommitIDLength]
}
