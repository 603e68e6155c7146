package domain

// HeadRef is the reference HEAD currently resolves to
type HeadRef struct {
	Name      string // Full name, e.g. refs/heads/main, or HEAD when detached
	ShortName string // Display name, e.g. main
}
