package cmd

import (
	adaptergit "gitline/internal/adapters/git"
	"gitline/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	StatusService *services.StatusService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() *Container {
	gitRepo := adaptergit.NewDiscoverer()

	return &Container{
		StatusService: services.NewStatusService(gitRepo),
	}
}
