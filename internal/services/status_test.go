package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitline/internal/domain"
	"gitline/internal/ports"
	portsmocks "gitline/internal/ports/mocks"
	"gitline/internal/theme"
)

const testCommitID = "abcdef1234000000000000000000000000000000"

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

type fakeEntry struct {
	conflicted, deleted, modified, untracked, renamed, typeChanged bool
}

func (e fakeEntry) Path() string                { return "file.txt" }
func (e fakeEntry) IsConflicted() bool          { return e.conflicted }
func (e fakeEntry) IsWorktreeDeleted() bool     { return e.deleted }
func (e fakeEntry) IsWorktreeModified() bool    { return e.modified }
func (e fakeEntry) IsWorktreeNew() bool         { return e.untracked }
func (e fakeEntry) IsWorktreeRenamed() bool     { return e.renamed }
func (e fakeEntry) IsWorktreeTypeChanged() bool { return e.typeChanged }

func plainScheme() theme.Scheme {
	return theme.SchemeFor(theme.NewRenderer(io.Discard), theme.SchemePlain)
}

func newServiceWithRepo(t *testing.T) (*StatusService, *portsmocks.MockRepoReader) {
	discoverer := portsmocks.NewMockRepoDiscoverer(t)
	repo := portsmocks.NewMockRepoReader(t)
	discoverer.EXPECT().Discover("/work").Return(repo, nil)
	return NewStatusService(discoverer), repo
}

func mainHead() *domain.HeadRef {
	return &domain.HeadRef{Name: "refs/heads/main", ShortName: "main"}
}

func TestRender_NoRepository(t *testing.T) {
	discoverer := portsmocks.NewMockRepoDiscoverer(t)
	discoverer.EXPECT().Discover("/work").Return(nil, domain.ErrRepositoryNotFound)

	svc := NewStatusService(discoverer)
	cfg := domain.Config{ShowBranch: true, CommitIDLength: 7, ShowState: true}

	assert.Equal(t, "", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_OpenFailureIsSilent(t *testing.T) {
	discoverer := portsmocks.NewMockRepoDiscoverer(t)
	discoverer.EXPECT().Discover("/work").Return(nil, errors.New("corrupt config"))

	svc := NewStatusService(discoverer)

	assert.Equal(t, "", svc.Render(context.Background(), domain.Config{ShowBranch: true}, plainScheme(), "/work"))
}

func TestRender_CancelledContext(t *testing.T) {
	discoverer := portsmocks.NewMockRepoDiscoverer(t)
	svc := NewStatusService(discoverer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "", svc.Render(ctx, domain.Config{ShowBranch: true}, plainScheme(), "/work"))
	discoverer.AssertNotCalled(t, "Discover", "/work")
}

func TestRender_NoFieldsSelected(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)

	assert.Equal(t, "()", svc.Render(context.Background(), domain.Config{}, plainScheme(), "/work"))
}

func TestRender_BranchAndCommit(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().HeadCommitID().Return(testCommitID, nil)

	cfg := domain.Config{ShowBranch: true, CommitIDLength: 7}

	assert.Equal(t, "(main:abcdef1)", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_BranchOnly(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)

	cfg := domain.Config{ShowBranch: true}

	assert.Equal(t, "(main)", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_CommitLengthIsClamped(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().HeadCommitID().Return(testCommitID, nil)

	cfg := domain.Config{CommitIDLength: 45}

	assert.Equal(t, "("+testCommitID+")", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_UnresolvableHead(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(nil, domain.ErrHeadUnresolvable)

	cfg := domain.Config{ShowBranch: true, CommitIDLength: 7, ShowState: true}

	assert.Equal(t, "()", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_EmptyShortNameKeepsSeparator(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(&domain.HeadRef{Name: "HEAD"}, nil)
	repo.EXPECT().HeadCommitID().Return(testCommitID, nil)

	cfg := domain.Config{ShowBranch: true, CommitIDLength: 4}

	assert.Equal(t, "(:abcd)", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_CommitNotPeelable(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().HeadCommitID().Return("", domain.ErrNotACommit)
	repo.EXPECT().StatusEntries().Return(nil, nil)
	repo.EXPECT().State().Return(domain.StateClean, nil)

	cfg := domain.Config{ShowBranch: true, CommitIDLength: 7, ShowState: true}

	assert.Equal(t, "(main: )", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_StatusCountsInFixedOrder(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().StatusEntries().Return([]domain.StatusEntry{
		fakeEntry{modified: true},
		fakeEntry{untracked: true},
	}, nil)
	repo.EXPECT().State().Return(domain.StateClean, nil)

	cfg := domain.Config{ShowState: true}

	assert.Equal(t, "(N1M1)", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_AllCategories(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().HeadCommitID().Return(testCommitID, nil)
	repo.EXPECT().StatusEntries().Return([]domain.StatusEntry{
		fakeEntry{conflicted: true, modified: true},
		fakeEntry{renamed: true},
		fakeEntry{typeChanged: true},
		fakeEntry{deleted: true},
		fakeEntry{deleted: true},
		fakeEntry{untracked: true},
	}, nil)
	repo.EXPECT().State().Return(domain.StateMerge, nil)

	cfg := domain.Config{ShowBranch: true, CommitIDLength: 7, ShowState: true}

	assert.Equal(t, "(main:abcdef1 N1D2M1R1T1C1 Merge)",
		svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_TypeChangeAndConflict(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().StatusEntries().Return([]domain.StatusEntry{
		fakeEntry{typeChanged: true},
		fakeEntry{conflicted: true},
	}, nil)
	repo.EXPECT().State().Return(domain.StateMerge, nil)

	basic := theme.SchemeFor(theme.NewRenderer(io.Discard), theme.SchemeBasic)
	out := svc.Render(context.Background(), domain.Config{ShowState: true}, basic, "/work")

	assert.Equal(t, "(\x1b[34mT1\x1b[0m\x1b[31mC1\x1b[0m \x1b[33mMerge\x1b[0m)", out)
}

func TestRender_StateWithoutDirtyFiles(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().StatusEntries().Return(nil, nil)
	repo.EXPECT().State().Return(domain.StateRebase, nil)

	out := svc.Render(context.Background(), domain.Config{ShowState: true}, plainScheme(), "/work")

	assert.Equal(t, "( Rebase)", out)
	assert.Equal(t, 1, strings.Count(out, " "))
}

func TestRender_StateLabels(t *testing.T) {
	tests := []struct {
		state    domain.RepositoryState
		expected string
	}{
		{domain.StateRebaseInteractive, "( Rebase Interactive)"},
		{domain.StateCherryPickSequence, "( Cherry-pick Sequence)"},
		{domain.StateApplyMailboxOrRebase, "( Apply Mailbox or Rebase)"},
		{domain.StateClean, "()"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			svc, repo := newServiceWithRepo(t)
			repo.EXPECT().Head().Return(mainHead(), nil)
			repo.EXPECT().StatusEntries().Return(nil, nil)
			repo.EXPECT().State().Return(tt.state, nil)

			out := svc.Render(context.Background(), domain.Config{ShowState: true}, plainScheme(), "/work")
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRender_BackendErrorsOmitFields(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().StatusEntries().Return(nil, errors.New("index locked"))
	repo.EXPECT().State().Return(domain.StateClean, errors.New("no git dir"))

	cfg := domain.Config{ShowBranch: true, ShowState: true}

	assert.Equal(t, "(main)", svc.Render(context.Background(), cfg, plainScheme(), "/work"))
}

func TestRender_ColoredMatchesPlainWhenStripped(t *testing.T) {
	cfg := domain.Config{ShowBranch: true, CommitIDLength: 7, ShowState: true}

	render := func(scheme theme.Scheme) string {
		svc, repo := newServiceWithRepo(t)
		repo.EXPECT().Head().Return(mainHead(), nil)
		repo.EXPECT().HeadCommitID().Return(testCommitID, nil)
		repo.EXPECT().StatusEntries().Return([]domain.StatusEntry{fakeEntry{untracked: true}}, nil)
		repo.EXPECT().State().Return(domain.StateBisect, nil)
		return svc.Render(context.Background(), cfg, scheme, "/work")
	}

	plain := render(plainScheme())
	colored := render(theme.SchemeFor(theme.NewRenderer(io.Discard), theme.SchemeBasic))

	assert.Equal(t, "(main:abcdef1 N1 Bisect)", plain)
	assert.Equal(t,
		"(\x1b[34mmain\x1b[0m:\x1b[31mabcdef1\x1b[0m \x1b[32mN1\x1b[0m \x1b[33mBisect\x1b[0m)",
		colored)
	assert.Equal(t, plain, ansiEscape.ReplaceAllString(colored, ""))
}

func TestWriteStatus_UnknownSchemeIsPlain(t *testing.T) {
	svc, repo := newServiceWithRepo(t)
	repo.EXPECT().Head().Return(mainHead(), nil)
	repo.EXPECT().HeadCommitID().Return(testCommitID, nil)

	var out bytes.Buffer
	cfg := domain.Config{ColorScheme: 7, ShowBranch: true, CommitIDLength: 7}

	require.NoError(t, svc.WriteStatus(context.Background(), &out, cfg, "/work"))
	assert.Equal(t, "(main:abcdef1)", out.String())
}

func TestWriteStatus_NothingOutsideRepository(t *testing.T) {
	discoverer := portsmocks.NewMockRepoDiscoverer(t)
	discoverer.EXPECT().Discover("/work").Return(nil, domain.ErrRepositoryNotFound)

	var out bytes.Buffer
	err := NewStatusService(discoverer).WriteStatus(context.Background(), &out, domain.Config{ColorScheme: 1, ShowBranch: true}, "/work")

	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

var _ ports.RepoReader = (*portsmocks.MockRepoReader)(nil)
