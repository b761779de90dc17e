package domain

import "fmt"

// DefaultCommitTypes follows Conventional Commits.
var DefaultCommitTypes = []string{
	"feat", "fix", "docs", "style", "refactor",
	"test", "chore", "perf", "build", "ci",
}

// DefaultBranchTypes follows Conventional Branch.
var DefaultBranchTypes = []string{
	"feature", "bugfix", "hotfix", "release", "chore", "feat", "fix",
}

// AlwaysAllowedBranches are branch names permitted regardless of configuration.
// "PR-*" matches any branch with the PR- prefix.
var AlwaysAllowedBranches = []string{"main", "master", "HEAD", "PR-*"}

// Config is the effective configuration for one invocation: every option
// carries exactly one winning value after merging CLI flags, environment
// variables, the TOML file, and built-in defaults.
type Config struct {
	Commit CommitConfig `koanf:"commit" json:"commit"`
	Branch BranchConfig `koanf:"branch" json:"branch"`
}

// CommitConfig holds the [commit] section options.
type CommitConfig struct {
	ConventionalCommits  bool     `koanf:"conventional_commits"   json:"conventional_commits"`
	SubjectCapitalized   bool     `koanf:"subject_capitalized"    json:"subject_capitalized"`
	SubjectImperative    bool     `koanf:"subject_imperative"     json:"subject_imperative"`
	SubjectMaxLength     int      `koanf:"subject_max_length"     json:"subject_max_length"`
	SubjectMinLength     int      `koanf:"subject_min_length"     json:"subject_min_length"`
	AllowCommitTypes     []string `koanf:"allow_commit_types"     json:"allow_commit_types"`
	AllowMergeCommits    bool     `koanf:"allow_merge_commits"    json:"allow_merge_commits"`
	AllowRevertCommits   bool     `koanf:"allow_revert_commits"   json:"allow_revert_commits"`
	AllowEmptyCommits    bool     `koanf:"allow_empty_commits"    json:"allow_empty_commits"`
	AllowFixupCommits    bool     `koanf:"allow_fixup_commits"    json:"allow_fixup_commits"`
	AllowWipCommits      bool     `koanf:"allow_wip_commits"      json:"allow_wip_commits"`
	RequireBody          bool     `koanf:"require_body"           json:"require_body"`
	RequireSignedOffBy   bool     `koanf:"require_signed_off_by"  json:"require_signed_off_by"`
	RequiredSignoffName  string   `koanf:"required_signoff_name"  json:"required_signoff_name"`
	RequiredSignoffEmail string   `koanf:"required_signoff_email" json:"required_signoff_email"`
	IgnoreAuthors        []string `koanf:"ignore_authors"         json:"ignore_authors"`
}

// BranchConfig holds the [branch] section options.
//
// IgnoreAuthors here is intentionally a separate list from the commit-level
// one: each list only bypasses the checks of its own section.
type BranchConfig struct {
	ConventionalBranch  bool     `koanf:"conventional_branch"   json:"conventional_branch"`
	AllowBranchTypes    []string `koanf:"allow_branch_types"    json:"allow_branch_types"`
	AllowBranchNames    []string `koanf:"allow_branch_names"    json:"allow_branch_names"`
	RequireRebaseTarget string   `koanf:"require_rebase_target" json:"require_rebase_target"`
	IgnoreAuthors       []string `koanf:"ignore_authors"        json:"ignore_authors"`
}

// DefaultConfig returns the built-in defaults. Every option has a value here,
// so resolution is total: nothing is ever left unset.
func DefaultConfig() Config {
	return Config{
		Commit: CommitConfig{
			ConventionalCommits: true,
			SubjectCapitalized:  false,
			SubjectImperative:   false,
			SubjectMaxLength:    80,
			SubjectMinLength:    5,
			AllowCommitTypes:    append([]string(nil), DefaultCommitTypes...),
			AllowMergeCommits:   true,
			AllowRevertCommits:  true,
			AllowEmptyCommits:   true,
			AllowFixupCommits:   true,
			AllowWipCommits:     true,
			RequireBody:         false,
			RequireSignedOffBy:  false,
			IgnoreAuthors:       []string{},
		},
		Branch: BranchConfig{
			ConventionalBranch: true,
			AllowBranchTypes:   append([]string(nil), DefaultBranchTypes...),
			AllowBranchNames:   []string{},
			IgnoreAuthors:      []string{},
		},
	}
}

// Validate checks the config for values no tier should be able to produce.
func (c Config) Validate() error {
	if c.Commit.SubjectMaxLength < 0 {
		return fmt.Errorf("commit.subject_max_length must be >= 0 (got %d)", c.Commit.SubjectMaxLength)
	}
	if c.Commit.SubjectMinLength < 0 {
		return fmt.Errorf("commit.subject_min_length must be >= 0 (got %d)", c.Commit.SubjectMinLength)
	}
	if c.Commit.SubjectMaxLength > 0 && c.Commit.SubjectMinLength > c.Commit.SubjectMaxLength {
		return fmt.Errorf("commit.subject_min_length %d exceeds subject_max_length %d",
			c.Commit.SubjectMinLength, c.Commit.SubjectMaxLength)
	}
	if c.Commit.ConventionalCommits && len(c.Commit.AllowCommitTypes) == 0 {
		return fmt.Errorf("commit.allow_commit_types must not be empty when conventional_commits is enabled")
	}
	if c.Branch.ConventionalBranch && len(c.Branch.AllowBranchTypes) == 0 {
		return fmt.Errorf("branch.allow_branch_types must not be empty when conventional_branch is enabled")
	}
	return nil
}
