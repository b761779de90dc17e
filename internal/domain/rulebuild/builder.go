// Package rulebuild turns the rule catalog and an effective configuration
// into the ordered list of active rules for one invocation.
package rulebuild

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cchk/cchk/internal/domain"
)

// Build produces the active rules for the requested scope, in a fixed,
// deterministic order. A rule whose governing toggle is disabled is omitted
// entirely: it emits no result and cannot affect the outcome.
//
// author identity (name, email) is used only for the ignore lists: an ignored
// author drops the corresponding scope's rules for this invocation.
func Build(cfg domain.Config, scope domain.Scope, authorName, authorEmail string) []domain.Rule {
	var rules []domain.Rule

	commitIgnored := authorIgnored(cfg.Commit.IgnoreAuthors, authorName, authorEmail)
	branchIgnored := authorIgnored(cfg.Branch.IgnoreAuthors, authorName, authorEmail)

	if scope.Commit && !commitIgnored {
		rules = append(rules, commitRules(cfg.Commit)...)
	}
	if scope.Author && !commitIgnored {
		rules = append(rules, authorRules()...)
	}
	if scope.Branch && !branchIgnored {
		rules = append(rules, branchRules(cfg.Branch)...)
	}

	return rules
}

// commitRules builds the commit-scope rules in their fixed sequence:
// format, type allow-list, length bounds, capitalization, imperative mood,
// body, special-case prohibitions, signoff.
func commitRules(cfg domain.CommitConfig) []domain.Rule {
	var rules []domain.Rule

	types := dedupe(cfg.AllowCommitTypes)
	exempt := subjectExemptions(cfg)

	if cfg.ConventionalCommits {
		entry := domain.Catalog[domain.KindConventionalFormat]
		rules = append(rules, domain.Rule{
			Kind:    entry.Kind,
			Pattern: conventionalCommitRegexp(types),
			Allowed: types,
			Exempt:  exempt,
			Error:   renderTypes(entry.Error, types),
			Suggest: renderTypes(entry.Suggest, types),
		})

		entry = domain.Catalog[domain.KindTypeAllowList]
		rules = append(rules, domain.Rule{
			Kind:    entry.Kind,
			Allowed: types,
			Exempt:  exempt,
			Error:   renderTypes(entry.Error, types),
			Suggest: renderTypes(entry.Suggest, types),
		})
	}

	if cfg.SubjectMaxLength > 0 {
		rules = append(rules, lengthRule(domain.KindSubjectMaxLength, "{max}", cfg.SubjectMaxLength))
	}
	if cfg.SubjectMinLength > 0 {
		rules = append(rules, lengthRule(domain.KindSubjectMinLength, "{min}", cfg.SubjectMinLength))
	}

	if cfg.SubjectCapitalized {
		rules = append(rules, catalogRule(domain.KindSubjectCapitalized))
	}
	if cfg.SubjectImperative {
		rules = append(rules, catalogRule(domain.KindSubjectImperative))
	}
	if cfg.RequireBody {
		rules = append(rules, catalogRule(domain.KindRequireBody))
	}

	// allow_* = false becomes an active prohibition rule.
	if !cfg.AllowMergeCommits {
		rules = append(rules, catalogRule(domain.KindNoMergeCommits))
	}
	if !cfg.AllowRevertCommits {
		rules = append(rules, catalogRule(domain.KindNoRevertCommits))
	}
	if !cfg.AllowEmptyCommits {
		rules = append(rules, catalogRule(domain.KindNoEmptyCommits))
	}
	if !cfg.AllowFixupCommits {
		rules = append(rules, catalogRule(domain.KindNoFixupCommits))
	}
	if !cfg.AllowWipCommits {
		rules = append(rules, catalogRule(domain.KindNoWipCommits))
	}

	if cfg.RequireSignedOffBy {
		entry := domain.Catalog[domain.KindSignoff]
		rules = append(rules, domain.Rule{
			Kind:          entry.Kind,
			Pattern:       regexp.MustCompile(entry.Pattern),
			RequiredName:  cfg.RequiredSignoffName,
			RequiredEmail: cfg.RequiredSignoffEmail,
			Error:         entry.Error,
			Suggest:       entry.Suggest,
		})
	}

	return rules
}

func authorRules() []domain.Rule {
	return []domain.Rule{
		catalogRule(domain.KindAuthorName),
		catalogRule(domain.KindAuthorEmail),
	}
}

// branchRules builds the branch-scope rules: format, type allow-list,
// rebase target.
func branchRules(cfg domain.BranchConfig) []domain.Rule {
	var rules []domain.Rule

	types := dedupe(cfg.AllowBranchTypes)
	literals := append(append([]string(nil), domain.AlwaysAllowedBranches...), dedupe(cfg.AllowBranchNames)...)

	if cfg.ConventionalBranch {
		entry := domain.Catalog[domain.KindBranchFormat]
		rules = append(rules, domain.Rule{
			Kind:    entry.Kind,
			Pattern: conventionalBranchRegexp(types),
			Allowed: types,
			Exempt:  literals,
			Error:   renderTypes(entry.Error, types),
			Suggest: renderTypes(entry.Suggest, types),
		})

		entry = domain.Catalog[domain.KindBranchTypeAllowList]
		rules = append(rules, domain.Rule{
			Kind:    entry.Kind,
			Allowed: types,
			Exempt:  literals,
			Error:   renderTypes(entry.Error, types),
			Suggest: renderTypes(entry.Suggest, types),
		})
	}

	if cfg.RequireRebaseTarget != "" {
		entry := domain.Catalog[domain.KindRebaseTarget]
		rules = append(rules, domain.Rule{
			Kind:    entry.Kind,
			Target:  cfg.RequireRebaseTarget,
			Error:   strings.ReplaceAll(entry.Error, "{target}", cfg.RequireRebaseTarget),
			Suggest: strings.ReplaceAll(entry.Suggest, "{target}", cfg.RequireRebaseTarget),
		})
	}

	return rules
}

// catalogRule instantiates a rule straight from its catalog entry.
func catalogRule(kind domain.RuleKind) domain.Rule {
	entry := domain.Catalog[kind]
	r := domain.Rule{
		Kind:    entry.Kind,
		Error:   entry.Error,
		Suggest: entry.Suggest,
	}
	if entry.Pattern != "" {
		r.Pattern = regexp.MustCompile(entry.Pattern)
	}
	return r
}

func lengthRule(kind domain.RuleKind, placeholder string, limit int) domain.Rule {
	entry := domain.Catalog[kind]
	n := strconv.Itoa(limit)
	return domain.Rule{
		Kind:    entry.Kind,
		Limit:   limit,
		Error:   strings.ReplaceAll(entry.Error, placeholder, n),
		Suggest: strings.ReplaceAll(entry.Suggest, placeholder, n),
	}
}

// subjectExemptions returns the subject prefixes that short-circuit the
// conventional-format and type-allow-list checks. A commit matching one of
// these is accepted by those two rules regardless of type; other rules
// (signoff, body) still apply.
func subjectExemptions(cfg domain.CommitConfig) []string {
	var exempt []string
	if cfg.AllowMergeCommits {
		exempt = append(exempt, "Merge")
	}
	if cfg.AllowRevertCommits {
		exempt = append(exempt, "Revert")
	}
	if cfg.AllowFixupCommits {
		exempt = append(exempt, "fixup!")
	}
	if cfg.AllowWipCommits {
		exempt = append(exempt, "WIP", "wip")
	}
	return exempt
}

// conventionalCommitRegexp assembles the Conventional Commits pattern from
// the allow-list: type, optional (scope), optional !, colon, description.
func conventionalCommitRegexp(types []string) *regexp.Regexp {
	sorted := append([]string(nil), types...)
	sort.Strings(sorted)
	for i, t := range sorted {
		sorted[i] = regexp.QuoteMeta(t)
	}
	pattern := fmt.Sprintf(`^(%s)(\([\w\-\.]+\))?(!)?: ([\w ])+([\s\S]*)`, strings.Join(sorted, "|"))
	return regexp.MustCompile(pattern)
}

// conventionalBranchRegexp assembles the Conventional Branch pattern:
// type, slash, non-empty description.
func conventionalBranchRegexp(types []string) *regexp.Regexp {
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = regexp.QuoteMeta(t)
	}
	pattern := fmt.Sprintf(`^(%s)/.+`, strings.Join(quoted, "|"))
	return regexp.MustCompile(pattern)
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

func renderTypes(template string, types []string) string {
	return strings.ReplaceAll(template, "{types}", strings.Join(types, ", "))
}

// authorIgnored reports whether the author matches an ignore-list entry,
// either by bare name or in "Name <email>" form.
func authorIgnored(ignored []string, name, email string) bool {
	if name == "" || len(ignored) == 0 {
		return false
	}
	ident := name
	if email != "" {
		ident = name + " <" + email + ">"
	}
	for _, entry := range ignored {
		if entry == name || entry == ident {
			return true
		}
	}
	return false
}
