package cli

import (
	"github.com/spf13/cobra"

	"github.com/cchk/cchk/internal/application"
	"github.com/cchk/cchk/internal/domain"
)

func newBranchCmd() *cobra.Command {
	var (
		out         outputFlags
		name        string
		authorName  string
		authorEmail string
	)

	cmd := &cobra.Command{
		Use:   "branch [name]",
		Short: "Validate a branch name",
		Long: "Validate a branch name against the configured rules. The name comes " +
			"from the argument or the currently checked-out branch.",
		Args: cobra.MaximumNArgs(1),
	}
	collect := registerOverrideFlags(cmd, "branch")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && name == "" {
			name = args[0]
		}
		in := application.Input{
			Branch:      name,
			AuthorName:  authorName,
			AuthorEmail: authorEmail,
		}
		return runCheck(cmd, domain.Scope{Branch: true}, in, out, collect())
	}

	out.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Branch name to validate")
	cmd.Flags().StringVar(&authorName, "author-name", "", "Author name (defaults to the HEAD author)")
	cmd.Flags().StringVar(&authorEmail, "author-email", "", "Author email (defaults to the HEAD author)")

	return cmd
}
