package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cchk/cchk/internal/application"
	"github.com/cchk/cchk/internal/domain"
)

// fakeGit is an in-memory domain.GitReader.
type fakeGit struct {
	head       domain.CommitInfo
	hasCommits bool
	branch     string
	branchErr  error
	rebased    bool
	rebasedErr error
}

func (f *fakeGit) HasCommits() bool { return f.hasCommits }

func (f *fakeGit) HeadCommit() (domain.CommitInfo, error) {
	if !f.hasCommits {
		return domain.CommitInfo{}, errors.New("no commits")
	}
	return f.head, nil
}

func (f *fakeGit) BranchName() (string, error) { return f.branch, f.branchErr }

func (f *fakeGit) IsRebasedOnto(string) (bool, error) { return f.rebased, f.rebasedErr }

func newFakeGit() *fakeGit {
	return &fakeGit{
		hasCommits: true,
		head: domain.CommitInfo{
			Subject:     "feat: stored subject",
			Body:        "Stored body.",
			Message:     "feat: stored subject\n\nStored body.",
			AuthorName:  "Jane Doe",
			AuthorEmail: "jane@example.com",
		},
		branch: "feature/stored",
	}
}

func TestCheck_ExplicitMessageWins(t *testing.T) {
	svc := application.NewCheckService(newFakeGit())
	cfg := domain.DefaultConfig()

	report, ctx, err := svc.Check(cfg, domain.Scope{Commit: true}, application.Input{
		Message: "fix: explicit message",
	})
	require.NoError(t, err)
	assert.Equal(t, "fix: explicit message", ctx.Subject)
	assert.False(t, report.Failed())
}

func TestCheck_MessageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("feat: from hook file\n"), 0o644))

	svc := application.NewCheckService(newFakeGit())
	_, ctx, err := svc.Check(domain.DefaultConfig(), domain.Scope{Commit: true}, application.Input{
		MessageFile: path,
	})
	require.NoError(t, err)
	assert.Equal(t, "feat: from hook file", ctx.Subject)
}

func TestCheck_MessageFileUnreadable(t *testing.T) {
	svc := application.NewCheckService(newFakeGit())
	_, _, err := svc.Check(domain.DefaultConfig(), domain.Scope{Commit: true}, application.Input{
		MessageFile: filepath.Join(t.TempDir(), "missing"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputUnavailable)
}

func TestCheck_FallsBackToHead(t *testing.T) {
	git := newFakeGit()
	svc := application.NewCheckService(git)

	_, ctx, err := svc.Check(domain.DefaultConfig(), domain.Scope{Commit: true}, application.Input{})
	require.NoError(t, err)
	assert.Equal(t, "feat: stored subject", ctx.Subject)
	assert.Equal(t, "Jane Doe", ctx.AuthorName)
	assert.Equal(t, "jane@example.com", ctx.AuthorEmail)
}

func TestCheck_NoCommitsIsUsageError(t *testing.T) {
	git := newFakeGit()
	git.hasCommits = false
	svc := application.NewCheckService(git)

	_, _, err := svc.Check(domain.DefaultConfig(), domain.Scope{Commit: true}, application.Input{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputUnavailable)
}

func TestCheck_ExplicitAuthorWinsOverHead(t *testing.T) {
	svc := application.NewCheckService(newFakeGit())

	_, ctx, err := svc.Check(domain.DefaultConfig(), domain.Scope{Author: true}, application.Input{
		AuthorName:  "Override Name",
		AuthorEmail: "override@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Override Name", ctx.AuthorName)
	assert.Equal(t, "override@example.com", ctx.AuthorEmail)
}

func TestCheck_BranchFromGit(t *testing.T) {
	svc := application.NewCheckService(newFakeGit())

	report, ctx, err := svc.Check(domain.DefaultConfig(), domain.Scope{Branch: true}, application.Input{})
	require.NoError(t, err)
	assert.Equal(t, "feature/stored", ctx.Branch)
	assert.False(t, report.Failed())
}

func TestCheck_BranchIgnoreAuthorsReadsHeadAuthor(t *testing.T) {
	git := newFakeGit()
	git.head.AuthorName = "dependabot[bot]"
	git.head.AuthorEmail = "support@github.com"
	git.branch = "dependabot/npm_and_yarn/lodash-4.17.21"
	cfg := domain.DefaultConfig()
	cfg.Branch.IgnoreAuthors = []string{"dependabot[bot]"}
	svc := application.NewCheckService(git)

	report, ctx, err := svc.Check(cfg, domain.Scope{Branch: true}, application.Input{})
	require.NoError(t, err)
	assert.Equal(t, "dependabot[bot]", ctx.AuthorName,
		"branch-only runs resolve the HEAD author for the ignore list")
	assert.Empty(t, report.Results)
}

func TestCheck_BranchNameUnavailable(t *testing.T) {
	git := newFakeGit()
	git.branchErr = errors.New("not a repository")
	svc := application.NewCheckService(git)

	_, _, err := svc.Check(domain.DefaultConfig(), domain.Scope{Branch: true}, application.Input{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputUnavailable)
}

func TestCheck_RebaseTarget(t *testing.T) {
	git := newFakeGit()
	git.rebased = false
	cfg := domain.DefaultConfig()
	cfg.Branch.RequireRebaseTarget = "main"
	svc := application.NewCheckService(git)

	report, _, err := svc.Check(cfg, domain.Scope{Branch: true}, application.Input{Branch: "feature/x"})
	require.NoError(t, err)
	require.True(t, report.Failed())

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, domain.KindRebaseTarget, failures[0].Kind)
}

func TestCheck_RebaseAncestryUnknownPasses(t *testing.T) {
	git := newFakeGit()
	git.rebasedErr = errors.New("target not found")
	cfg := domain.DefaultConfig()
	cfg.Branch.RequireRebaseTarget = "main"
	svc := application.NewCheckService(git)

	report, _, err := svc.Check(cfg, domain.Scope{Branch: true}, application.Input{Branch: "feature/x"})
	require.NoError(t, err)
	assert.False(t, report.Failed(), "unknown ancestry must not fail the run")
}

func TestCheck_ScopeAll(t *testing.T) {
	svc := application.NewCheckService(newFakeGit())

	report, _, err := svc.Check(domain.DefaultConfig(), domain.ScopeAll(), application.Input{})
	require.NoError(t, err)
	assert.False(t, report.Failed())

	var kinds []domain.RuleKind
	for _, r := range report.Results {
		kinds = append(kinds, r.Kind)
	}
	assert.Contains(t, kinds, domain.KindConventionalFormat)
	assert.Contains(t, kinds, domain.KindAuthorName)
	assert.Contains(t, kinds, domain.KindBranchFormat)
}
