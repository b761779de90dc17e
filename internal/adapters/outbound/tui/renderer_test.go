package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cchk/cchk/internal/adapters/outbound/tui"
	"github.com/cchk/cchk/internal/domain"
)

func TestRenderReport_AllPassed(t *testing.T) {
	report := domain.Report{Results: []domain.Result{
		{Kind: domain.KindConventionalFormat, Passed: true},
		{Kind: domain.KindSubjectMaxLength, Passed: true},
	}}

	out := tui.RenderReport(report, "feat: add parser")
	assert.Contains(t, out, "cchk")
	assert.Contains(t, out, "2 checks passed")
	assert.Contains(t, out, "feat: add parser")
	assert.NotContains(t, out, "failed")
}

func TestRenderReport_Failures(t *testing.T) {
	report := domain.Report{Results: []domain.Result{
		{Kind: domain.KindConventionalFormat, Passed: true},
		{
			Kind:       domain.KindSubjectMaxLength,
			Passed:     false,
			Value:      "feat: a very very long subject line",
			Message:    "Subject must be at most 20 characters",
			Suggestion: "Keep the subject concise (<= 20 characters)",
			Expected:   "subject length <= 20",
		},
	}}

	out := tui.RenderReport(report, "feat: a very very long subject line")
	assert.Contains(t, out, "1 of 2 checks failed")
	assert.Contains(t, out, string(domain.KindSubjectMaxLength))
	assert.Contains(t, out, "Subject must be at most 20 characters")
	assert.Contains(t, out, "subject length <= 20")
	assert.Contains(t, out, "Keep the subject concise")
}

func TestRenderReport_TruncatesLongInput(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcdefghij"
	}
	out := tui.RenderReport(domain.Report{}, long)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, long)
}

func TestRenderSummary(t *testing.T) {
	report := domain.Report{Results: []domain.Result{
		{Kind: domain.KindConventionalFormat, Passed: true},
		{Kind: domain.KindSignoff, Passed: false, Message: "Signed-off-by not found in commit message"},
	}}

	out := tui.RenderSummary(report)
	assert.Contains(t, out, string(domain.KindConventionalFormat))
	assert.Contains(t, out, string(domain.KindSignoff))
	assert.Contains(t, out, "Signed-off-by not found")
}
