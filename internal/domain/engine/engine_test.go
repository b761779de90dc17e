package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cchk/cchk/internal/domain"
	"github.com/cchk/cchk/internal/domain/engine"
	"github.com/cchk/cchk/internal/domain/rulebuild"
)

func TestRun_ReportsAllFailuresAtOnce(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Commit.SubjectCapitalized = true
	cfg.Commit.RequireBody = true

	report := runCommit(cfg, "whatever happened here")

	require.True(t, report.Failed())
	failures := report.Failures()
	require.GreaterOrEqual(t, len(failures), 3, "format, capitalization and body all fail")

	var kinds []domain.RuleKind
	for _, f := range failures {
		kinds = append(kinds, f.Kind)
	}
	assert.Contains(t, kinds, domain.KindConventionalFormat)
	assert.Contains(t, kinds, domain.KindSubjectCapitalized)
	assert.Contains(t, kinds, domain.KindRequireBody)
}

func TestRun_OneResultPerRuleInOrder(t *testing.T) {
	cfg := domain.DefaultConfig()
	rules := rulebuild.Build(cfg, domain.Scope{Commit: true}, "", "")
	report := engine.Run(rules, domain.NewMessageContext("feat: add the parser"))

	require.Len(t, report.Results, len(rules))
	for i, r := range rules {
		assert.Equal(t, r.Kind, report.Results[i].Kind, "results follow builder order")
	}
	assert.False(t, report.Failed())
}

func TestRun_UnknownKindSkipped(t *testing.T) {
	rules := []domain.Rule{{Kind: domain.RuleKind("from_the_future")}}
	report := engine.Run(rules, domain.Context{})
	assert.Empty(t, report.Results)
}

func TestRun_PureFunctionOfInputs(t *testing.T) {
	cfg := domain.DefaultConfig()
	rules := rulebuild.Build(cfg, domain.ScopeAll(), "", "")
	ctx := domain.NewMessageContext("nope")
	ctx.Branch = "feature/x"

	first := engine.Run(rules, ctx)
	second := engine.Run(rules, ctx)
	assert.Equal(t, first, second)
}

// Exempt messages short-circuit the format rules but not the rest.
func TestRun_MergeCommitExemption(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Commit.RequireSignedOffBy = true

	report := runCommit(cfg, "Merge branch 'feature/x' into main")

	assert.True(t, resultFor(t, report, domain.KindConventionalFormat).Passed)
	assert.True(t, resultFor(t, report, domain.KindTypeAllowList).Passed)
	assert.False(t, resultFor(t, report, domain.KindSignoff).Passed,
		"exemption covers format rules only")
}

func TestRun_RevertAndFixupExemptions(t *testing.T) {
	cfg := domain.DefaultConfig()

	for _, msg := range []string{
		`Revert "feat: add parser"`,
		"fixup! feat: add parser",
		"WIP: rework the loader",
	} {
		report := runCommit(cfg, msg)
		assert.True(t, resultFor(t, report, domain.KindConventionalFormat).Passed, msg)
	}
}

func TestRun_ExemptionStopsAtWordBoundary(t *testing.T) {
	cfg := domain.DefaultConfig()

	// "wipe" shares a prefix with "wip" but is an ordinary subject, so the
	// format rules still apply.
	report := runCommit(cfg, "wipe the remaining legacy tables from the db")
	assert.False(t, resultFor(t, report, domain.KindConventionalFormat).Passed)

	report = runCommit(cfg, "Reverting the change by hand")
	assert.False(t, resultFor(t, report, domain.KindConventionalFormat).Passed)

	// A bare marker with nothing after it is still exempt.
	report = runCommit(cfg, "WIP")
	assert.True(t, resultFor(t, report, domain.KindConventionalFormat).Passed)
}

func TestRun_ExemptionsDisabledWhenDisallowed(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Commit.AllowWipCommits = false

	report := runCommit(cfg, "WIP: rework the loader")
	assert.False(t, resultFor(t, report, domain.KindNoWipCommits).Passed)
	assert.False(t, resultFor(t, report, domain.KindConventionalFormat).Passed,
		"a disallowed prefix is no longer exempt from the format rule")
}

func TestRun_PassingResultCarriesNoDiagnostics(t *testing.T) {
	cfg := domain.DefaultConfig()
	report := runCommit(cfg, "feat: add the parser")

	for _, r := range report.Results {
		require.True(t, r.Passed)
		assert.Empty(t, r.Message)
		assert.Empty(t, r.Suggestion)
		assert.Empty(t, r.Value)
	}
}
