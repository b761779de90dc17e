package domain

// CatalogEntry is the static descriptor of one checkable aspect: its default
// pattern plus error and suggestion templates. Entries never change after
// process start; the rule builder combines them with the effective config.
//
// Templates may contain {types}, {names}, {max}, {min}, and {target}
// placeholders, substituted by the rule builder.
type CatalogEntry struct {
	Kind    RuleKind
	Pattern string
	Error   string
	Suggest string
}

// DefaultAuthorNamePattern accepts latin names (including accented letters)
// and the GitHub "[bot]" convention.
const DefaultAuthorNamePattern = `^[A-Za-zÀ-ÖØ-öø-ÿ\x{0100}-\x{017F}\x{0180}-\x{024F} ,.'\-]+$|.*(\[bot\])`

// DefaultAuthorEmailPattern is deliberately loose: anything@anything.
const DefaultAuthorEmailPattern = `^.+@.+$`

// DefaultSignoffPattern matches a DCO trailer line anywhere in the message.
const DefaultSignoffPattern = `Signed-off-by:.*[A-Za-z0-9]\s+<.+@.+>`

// Catalog is the full rule catalog, indexed by kind.
var Catalog = map[RuleKind]CatalogEntry{
	KindConventionalFormat: {
		Kind:    KindConventionalFormat,
		Error:   "The commit message should follow Conventional Commits. See https://www.conventionalcommits.org",
		Suggest: "Use <type>(<scope>): <description> with one of: {types}",
	},
	KindTypeAllowList: {
		Kind:    KindTypeAllowList,
		Error:   "The commit type is not in the allow-list",
		Suggest: "Use one of the allowed commit types: {types}",
	},
	KindSubjectMaxLength: {
		Kind:    KindSubjectMaxLength,
		Error:   "Subject must be at most {max} characters",
		Suggest: "Keep the subject concise (<= {max} characters)",
	},
	KindSubjectMinLength: {
		Kind:    KindSubjectMinLength,
		Error:   "Subject must be at least {min} characters",
		Suggest: "Provide a meaningful subject (>= {min} characters)",
	},
	KindSubjectCapitalized: {
		Kind:    KindSubjectCapitalized,
		Error:   "Subject must start with a capital letter",
		Suggest: "Capitalize the first word of the subject",
	},
	KindSubjectImperative: {
		Kind:    KindSubjectImperative,
		Error:   "Commit message should use imperative mood (e.g., 'Add feature' not 'Added feature')",
		Suggest: "Use imperative mood in the subject line",
	},
	KindRequireBody: {
		Kind:    KindRequireBody,
		Error:   "Commit body is required",
		Suggest: "Add a body explaining the change",
	},
	KindNoMergeCommits: {
		Kind:    KindNoMergeCommits,
		Error:   "Merge commits are not allowed",
		Suggest: "Rebase or squash your changes instead of merging",
	},
	KindNoRevertCommits: {
		Kind:    KindNoRevertCommits,
		Error:   "Revert commits are not allowed",
		Suggest: "Avoid revert commits; rewrite history if necessary",
	},
	KindNoEmptyCommits: {
		Kind:    KindNoEmptyCommits,
		Error:   "Empty commit messages are not allowed",
		Suggest: "Provide a non-empty subject",
	},
	KindNoFixupCommits: {
		Kind:    KindNoFixupCommits,
		Error:   "Fixup commits are not allowed",
		Suggest: "Use interactive rebase to clean up fixup commits",
	},
	KindNoWipCommits: {
		Kind:    KindNoWipCommits,
		Error:   "WIP commits are not allowed",
		Suggest: "Complete the work before committing or remove 'WIP'",
	},
	KindSignoff: {
		Kind:    KindSignoff,
		Pattern: DefaultSignoffPattern,
		Error:   "Signed-off-by not found in commit message",
		Suggest: "Run git commit --amend --signoff, or commit with --signoff",
	},
	KindAuthorName: {
		Kind:    KindAuthorName,
		Pattern: DefaultAuthorNamePattern,
		Error:   "The committer name seems invalid",
		Suggest: "git config user.name 'Your Name'",
	},
	KindAuthorEmail: {
		Kind:    KindAuthorEmail,
		Pattern: DefaultAuthorEmailPattern,
		Error:   "The committer email seems invalid",
		Suggest: "git config user.email yourname@example.com",
	},
	KindBranchFormat: {
		Kind:    KindBranchFormat,
		Error:   "The branch name should follow Conventional Branch. See https://conventional-branch.github.io",
		Suggest: "git checkout -b <type>/<description> with one of: {types}, or add the name to branch.allow_branch_names",
	},
	KindBranchTypeAllowList: {
		Kind:    KindBranchTypeAllowList,
		Error:   "The branch type is not in the allow-list",
		Suggest: "Use one of the allowed branch types: {types}",
	},
	KindRebaseTarget: {
		Kind:    KindRebaseTarget,
		Error:   "Current branch is not rebased onto {target}",
		Suggest: "Rebase onto {target} before committing",
	},
}
