package domain

// CommitInfo is the metadata of a single commit as read from git.
type CommitInfo struct {
	Subject     string
	Body        string
	Message     string // full message including trailers
	AuthorName  string
	AuthorEmail string
}

// GitReader supplies commit metadata from the repository. All methods are
// read-only; validation itself never touches git.
type GitReader interface {
	// HasCommits reports whether HEAD resolves to a commit.
	HasCommits() bool
	// HeadCommit returns the metadata of the HEAD commit.
	HeadCommit() (CommitInfo, error)
	// BranchName returns the current branch name, falling back to CI
	// environment hints when HEAD is detached.
	BranchName() (string, error)
	// IsRebasedOnto reports whether the target branch is an ancestor of
	// HEAD, i.e. the current branch is rebased onto it.
	IsRebasedOnto(target string) (bool, error)
}

// ConfigLoader resolves the effective configuration for one invocation.
type ConfigLoader interface {
	// Load merges built-in defaults, a discovered (or explicit) config
	// file, CCHK_* environment variables, and CLI overrides, in ascending
	// priority. overrides is keyed by option path (e.g.
	// "commit.subject_max_length").
	Load(dir, explicitPath string, overrides map[string]any) (Config, error)
}
