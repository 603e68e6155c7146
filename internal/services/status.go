package services

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"gitline/internal/domain"
	"gitline/internal/logging"
	"gitline/internal/ports"
	"gitline/internal/theme"
)

// StatusService renders the prompt status line
type StatusService struct {
	discoverer ports.RepoDiscoverer
}

// NewStatusService creates a new StatusService
func NewStatusService(discoverer ports.RepoDiscoverer) *StatusService {
	return &StatusService{
		discoverer: discoverer,
	}
}

// WriteStatus renders the status line for the repository containing path and writes it to w.
// Nothing is written outside a repository.
func (s *StatusService) WriteStatus(ctx context.Context, w io.Writer, cfg domain.Config, path string) error {
	scheme := theme.SchemeFor(theme.NewRenderer(w), cfg.ColorScheme)

	line := s.Render(ctx, cfg, scheme, path)
	if line == "" {
		return nil
	}

	_, err := io.WriteString(w, line)
	return err
}

// Render builds the status line, e.g. "(main:abcdef1 N1M2 Rebase)".
// Backend failures omit the affected field; the only empty result is "no repository".
func (s *StatusService) Render(ctx context.Context, cfg domain.Config, scheme theme.Scheme, path string) string {
	if err := ctx.Err(); err != nil {
		logging.Logger.Debug("Render cancelled", "error", err)
		return ""
	}

	repo, err := s.discoverer.Discover(path)
	if err != nil {
		if !errors.Is(err, domain.ErrRepositoryNotFound) {
			logging.Logger.Warn("Failed to open repository", "path", path, "error", err)
		}
		return ""
	}

	var b strings.Builder
	b.WriteString("(")

	head, err := repo.Head()
	if err != nil {
		logging.Logger.Debug("Skipping head fields", "error", err)
		b.WriteString(")")
		return b.String()
	}
	logging.Logger.Debug("Resolved head", "ref", head.Name, "short_name", head.ShortName)

	if cfg.ShowBranch && head.ShortName != "" {
		b.WriteString(scheme.Render(domain.SlotBranch, head.ShortName))
	}
	if cfg.ShowBranch && cfg.ShowCommitID() {
		b.WriteString(":")
	}
	if cfg.ShowCommitID() {
		s.writeCommitID(&b, repo, cfg, scheme)
	}
	if cfg.ShowCommitID() && cfg.ShowState {
		b.WriteString(" ")
	}
	if cfg.ShowState {
		s.writeCounts(&b, repo, scheme)
		s.writeState(&b, repo, scheme)
	}

	b.WriteString(")")
	return b.String()
}

func (s *StatusService) writeCommitID(b *strings.Builder, repo ports.HeadReader, cfg domain.Config, scheme theme.Scheme) {
	id, err := repo.HeadCommitID()
	if err != nil {
		logging.Logger.Debug("Skipping commit id", "error", err)
		return
	}
	if cfg.CommitIDLength > len(id) {
		logging.Logger.Debug("Commit id length clamped", "requested", cfg.CommitIDLength, "available", len(id))
	}
	b.WriteString(scheme.Render(domain.SlotCommit, cfg.TruncateCommitID(id)))
}

func (s *StatusService) writeCounts(b *strings.Builder, repo ports.StatusReader, scheme theme.Scheme) {
	entries, err := repo.StatusEntries()
	if err != nil {
		logging.Logger.Debug("Skipping status counts", "error", err)
		return
	}

	counts := domain.CountStatuses(entries)
	if counts.IsClean() {
		logging.Logger.Debug("Working tree is clean", "entries", len(entries))
		return
	}
	for i, category := range domain.StatusCategories {
		if counts[i] == 0 {
			continue
		}
		block := string(category.Letter) + strconv.Itoa(counts[i])
		b.WriteString(scheme.Render(category.Slot, block))
	}
}

func (s *StatusService) writeState(b *strings.Builder, repo ports.StateReader, scheme theme.Scheme) {
	state, err := repo.State()
	if err != nil {
		logging.Logger.Debug("Skipping repository state", "error", err)
		return
	}
	if state.IsClean() {
		return
	}
	b.WriteString(" ")
	b.WriteString(scheme.Render(domain.SlotWarning, state.Label()))
}
