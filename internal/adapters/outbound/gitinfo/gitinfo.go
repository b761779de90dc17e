// Package gitinfo implements domain.GitReader using go-git. It is the only
// component that touches the repository, and only ever reads.
package gitinfo

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"

	"github.com/cchk/cchk/internal/domain"
	"github.com/cchk/cchk/internal/logging"
)

// GitInfoAdapter reads commit metadata from the repository at path.
type GitInfoAdapter struct {
	path string
	log  zerolog.Logger
}

func New(path string) *GitInfoAdapter {
	return &GitInfoAdapter{path: path, log: logging.Get("gitinfo")}
}

func (g *GitInfoAdapter) open() (*git.Repository, error) {
	return git.PlainOpenWithOptions(g.path, &git.PlainOpenOptions{DetectDotGit: true})
}

// HasCommits reports whether HEAD resolves to a commit.
func (g *GitInfoAdapter) HasCommits() bool {
	repo, err := g.open()
	if err != nil {
		return false
	}
	_, err = repo.Head()
	return err == nil
}

// HeadCommit returns the metadata of the HEAD commit.
func (g *GitInfoAdapter) HeadCommit() (domain.CommitInfo, error) {
	repo, err := g.open()
	if err != nil {
		return domain.CommitInfo{}, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return domain.CommitInfo{}, fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return domain.CommitInfo{}, fmt.Errorf("reading HEAD commit: %w", err)
	}

	message := strings.TrimRight(commit.Message, "\n")
	subject, body, _ := strings.Cut(message, "\n")

	return domain.CommitInfo{
		Subject:     strings.TrimSpace(subject),
		Body:        strings.TrimSpace(body),
		Message:     message,
		AuthorName:  commit.Author.Name,
		AuthorEmail: commit.Author.Email,
	}, nil
}

// BranchName returns the current branch. On a detached HEAD (common in CI
// checkouts) it falls back to the GitHub Actions ref variables, then "HEAD".
func (g *GitInfoAdapter) BranchName() (string, error) {
	repo, err := g.open()
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err == nil && head.Name().IsBranch() {
		return head.Name().Short(), nil
	}

	if name := os.Getenv("GITHUB_HEAD_REF"); name != "" {
		return name, nil
	}
	if name := os.Getenv("GITHUB_REF_NAME"); name != "" {
		return name, nil
	}
	return "HEAD", nil
}

// IsRebasedOnto reports whether the target branch tip is an ancestor of
// HEAD. target may be a branch name, any revision go-git can resolve, or a
// regular expression matched against local and remote branch names.
func (g *GitInfoAdapter) IsRebasedOnto(target string) (bool, error) {
	repo, err := g.open()
	if err != nil {
		return false, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return false, fmt.Errorf("getting HEAD: %w", err)
	}
	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return false, fmt.Errorf("reading HEAD commit: %w", err)
	}

	targetCommit, err := g.resolveTarget(repo, target)
	if err != nil {
		return false, err
	}

	ok, err := targetCommit.IsAncestor(headCommit)
	if err != nil {
		return false, fmt.Errorf("walking ancestry: %w", err)
	}
	return ok, nil
}

// resolveTarget resolves the rebase target to a commit: first as a plain
// revision locally and on origin, then as a pattern over branch names.
func (g *GitInfoAdapter) resolveTarget(repo *git.Repository, target string) (*object.Commit, error) {
	for _, rev := range []string{target, "origin/" + target} {
		hash, err := repo.ResolveRevision(plumbing.Revision(rev))
		if err != nil {
			continue
		}
		return repo.CommitObject(*hash)
	}

	re, err := regexp.Compile("^" + target + "$")
	if err != nil {
		return nil, fmt.Errorf("resolving rebase target %q: %w", target, err)
	}

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}
	defer refs.Close()

	var match *plumbing.Reference
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if match != nil || !(ref.Name().IsBranch() || ref.Name().IsRemote()) {
			return nil
		}
		name := strings.TrimPrefix(ref.Name().Short(), "origin/")
		if re.MatchString(name) {
			match = ref
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}
	if match == nil {
		return nil, fmt.Errorf("rebase target %q: no matching branch", target)
	}

	g.log.Debug().Str("target", target).Str("ref", match.Name().String()).Msg("resolved rebase target")
	return repo.CommitObject(match.Hash())
}
