package application

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cchk/cchk/internal/domain"
	"github.com/cchk/cchk/internal/domain/engine"
	"github.com/cchk/cchk/internal/domain/rulebuild"
	"github.com/cchk/cchk/internal/logging"
)

// Input carries the raw values supplied on the command line. Anything left
// empty is read from the repository instead.
type Input struct {
	Message     string // literal commit message
	MessageFile string // path to a commit-msg hook file
	Branch      string
	AuthorName  string
	AuthorEmail string
}

// CheckService orchestrates one validation run: gather context from input or
// git, build the active rules, execute the engine.
type CheckService struct {
	git domain.GitReader
	log zerolog.Logger
}

func NewCheckService(git domain.GitReader) *CheckService {
	return &CheckService{git: git, log: logging.Get("check")}
}

// Check runs the requested scope and returns the ordered report, along with
// the context it was evaluated against.
func (s *CheckService) Check(cfg domain.Config, scope domain.Scope, in Input) (domain.Report, domain.Context, error) {
	ctx, err := s.buildContext(cfg, scope, in)
	if err != nil {
		return domain.Report{}, ctx, err
	}

	rules := rulebuild.Build(cfg, scope, ctx.AuthorName, ctx.AuthorEmail)
	s.log.Debug().
		Int("rules", len(rules)).
		Str("branch", ctx.Branch).
		Msg("running validation")

	return engine.Run(rules, ctx), ctx, nil
}

// buildContext assembles the read-only input bundle for the engine.
func (s *CheckService) buildContext(cfg domain.Config, scope domain.Scope, in Input) (domain.Context, error) {
	var ctx domain.Context
	var head *domain.CommitInfo

	switch {
	case in.Message != "":
		ctx = domain.NewMessageContext(in.Message)
	case in.MessageFile != "":
		data, err := os.ReadFile(in.MessageFile)
		if err != nil {
			return ctx, fmt.Errorf("reading commit message file %s: %w: %v",
				in.MessageFile, domain.ErrInputUnavailable, err)
		}
		ctx = domain.NewMessageContext(string(data))
	case scope.Commit || scope.Author:
		if !s.git.HasCommits() {
			if scope.Commit {
				return ctx, fmt.Errorf("no commit found at HEAD: %w", domain.ErrInputUnavailable)
			}
			break // author scope with explicit identity needs no repo
		}
		info, err := s.git.HeadCommit()
		if err != nil {
			return ctx, fmt.Errorf("reading HEAD commit: %w: %v", domain.ErrInputUnavailable, err)
		}
		head = &info
		ctx = domain.NewMessageContext(info.Message)
	}

	ctx.AuthorName = in.AuthorName
	ctx.AuthorEmail = in.AuthorEmail
	// Ignore lists match on author identity, so scopes that never read the
	// commit itself still need the HEAD author resolved.
	needAuthor := scope.Author ||
		(scope.Commit && len(cfg.Commit.IgnoreAuthors) > 0) ||
		(scope.Branch && len(cfg.Branch.IgnoreAuthors) > 0)
	if head == nil && needAuthor && ctx.AuthorName == "" && s.git.HasCommits() {
		if info, err := s.git.HeadCommit(); err == nil {
			head = &info
		}
	}
	if head != nil {
		if ctx.AuthorName == "" {
			ctx.AuthorName = head.AuthorName
		}
		if ctx.AuthorEmail == "" {
			ctx.AuthorEmail = head.AuthorEmail
		}
	}

	if scope.Branch {
		ctx.Branch = in.Branch
		if ctx.Branch == "" {
			name, err := s.git.BranchName()
			if err != nil {
				return ctx, fmt.Errorf("resolving branch name: %w: %v", domain.ErrInputUnavailable, err)
			}
			ctx.Branch = name
		}

		if target := cfg.Branch.RequireRebaseTarget; target != "" {
			ok, err := s.git.IsRebasedOnto(target)
			if err != nil {
				// Unknown ancestry passes the rule rather than failing it.
				s.log.Debug().Err(err).Str("target", target).Msg("merge-base check unavailable")
			} else {
				ctx.RebasedOnTarget = &ok
			}
		}
	}

	return ctx, nil
}
