package domain

import "regexp"

// RuleKind identifies a single checkable aspect of commit metadata.
type RuleKind string

const (
	// Commit scope.
	KindConventionalFormat RuleKind = "conventional_format"
	KindTypeAllowList      RuleKind = "type_allow_list"
	KindSubjectMaxLength   RuleKind = "subject_max_length"
	KindSubjectMinLength   RuleKind = "subject_min_length"
	KindSubjectCapitalized RuleKind = "subject_capitalized"
	KindSubjectImperative  RuleKind = "subject_imperative"
	KindRequireBody        RuleKind = "require_body"
	KindNoMergeCommits     RuleKind = "no_merge_commits"
	KindNoRevertCommits    RuleKind = "no_revert_commits"
	KindNoEmptyCommits     RuleKind = "no_empty_commits"
	KindNoFixupCommits     RuleKind = "no_fixup_commits"
	KindNoWipCommits       RuleKind = "no_wip_commits"
	KindSignoff            RuleKind = "signoff"

	// Author scope.
	KindAuthorName  RuleKind = "author_name"
	KindAuthorEmail RuleKind = "author_email"

	// Branch scope.
	KindBranchFormat        RuleKind = "branch_format"
	KindBranchTypeAllowList RuleKind = "branch_type_allow_list"
	KindRebaseTarget        RuleKind = "rebase_target"
)

// Rule is an active, fully parameterized validation rule. Rules are built
// fresh per invocation by the rule builder and owned by its output list.
type Rule struct {
	Kind    RuleKind
	Pattern *regexp.Regexp // nil when the check is not regex-based

	// Allowed is the allow-list the rule enforces (commit types for
	// commit-format rules, branch types for branch rules).
	Allowed []string

	// Exempt short-circuits the check. For commit rules these are subject
	// prefixes (Merge, Revert, fixup!, WIP); for branch rules they are
	// literal branch names, where a trailing * matches any suffix.
	Exempt []string

	Limit         int    // length bound for subject length rules
	Target        string // rebase target for the merge-base rule
	RequiredName  string // exact signoff name, when configured
	RequiredEmail string // exact signoff email, when configured

	Error   string
	Suggest string
}

// Scope selects which check categories an invocation runs.
type Scope struct {
	Commit bool
	Branch bool
	Author bool
}

// ScopeAll runs every category.
func ScopeAll() Scope { return Scope{Commit: true, Branch: true, Author: true} }
