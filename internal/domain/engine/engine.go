// Package engine executes validation rules against a context. A run is a
// pure function of (rules, context): no state survives across calls, rules
// run strictly in builder order, and every rule is evaluated so a single
// invocation reports all violations at once.
package engine

import (
	"fmt"
	"strings"

	"github.com/cchk/cchk/internal/domain"
)

// predicate checks one rule against the context and returns whether it
// passed, plus the offending value on failure.
type predicate func(domain.Rule, domain.Context) (bool, string)

// validators dispatches rule kinds to their predicates. Unknown kinds are
// skipped rather than failed, so a newer config cannot crash an older binary.
var validators = map[domain.RuleKind]predicate{
	domain.KindConventionalFormat:  checkConventionalFormat,
	domain.KindTypeAllowList:       checkTypeAllowList,
	domain.KindSubjectMaxLength:    checkSubjectMaxLength,
	domain.KindSubjectMinLength:    checkSubjectMinLength,
	domain.KindSubjectCapitalized:  checkSubjectCapitalized,
	domain.KindSubjectImperative:   checkSubjectImperative,
	domain.KindRequireBody:         checkRequireBody,
	domain.KindNoMergeCommits:      checkNoMergeCommits,
	domain.KindNoRevertCommits:     checkNoRevertCommits,
	domain.KindNoEmptyCommits:      checkNoEmptyCommits,
	domain.KindNoFixupCommits:      checkNoFixupCommits,
	domain.KindNoWipCommits:        checkNoWipCommits,
	domain.KindSignoff:             checkSignoff,
	domain.KindAuthorName:          checkAuthorName,
	domain.KindAuthorEmail:         checkAuthorEmail,
	domain.KindBranchFormat:        checkBranchFormat,
	domain.KindBranchTypeAllowList: checkBranchTypeAllowList,
	domain.KindRebaseTarget:        checkRebaseTarget,
}

// Run evaluates every rule against ctx and returns one result per rule, in
// order. It never short-circuits on failure.
func Run(rules []domain.Rule, ctx domain.Context) domain.Report {
	results := make([]domain.Result, 0, len(rules))

	for _, rule := range rules {
		check, ok := validators[rule.Kind]
		if !ok {
			continue
		}

		passed, value := check(rule, ctx)
		res := domain.Result{Kind: rule.Kind, Passed: passed}
		if !passed {
			res.Value = value
			res.Message = rule.Error
			res.Suggestion = rule.Suggest
			res.Expected = describeExpected(rule)
		}
		results = append(results, res)
	}

	return domain.Report{Results: results}
}

// describeExpected renders the constraint a failing rule checked against.
func describeExpected(rule domain.Rule) string {
	switch rule.Kind {
	case domain.KindSubjectMaxLength:
		return fmt.Sprintf("subject length <= %d", rule.Limit)
	case domain.KindSubjectMinLength:
		return fmt.Sprintf("subject length >= %d", rule.Limit)
	case domain.KindTypeAllowList, domain.KindBranchTypeAllowList:
		return "one of: " + strings.Join(rule.Allowed, ", ")
	case domain.KindRebaseTarget:
		return "rebased onto " + rule.Target
	default:
		if rule.Pattern != nil {
			return rule.Pattern.String()
		}
		return ""
	}
}
