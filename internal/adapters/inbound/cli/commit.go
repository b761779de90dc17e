package cli

import (
	"github.com/spf13/cobra"

	"github.com/cchk/cchk/internal/application"
	"github.com/cchk/cchk/internal/domain"
)

func newCommitCmd() *cobra.Command {
	var (
		out         outputFlags
		message     string
		messageFile string
		authorName  string
		authorEmail string
	)

	cmd := &cobra.Command{
		Use:   "commit [message]",
		Short: "Validate a commit message",
		Long: "Validate a commit message against the configured rules. The message " +
			"comes from the argument, --message, --message-file (for a commit-msg " +
			"hook), or the HEAD commit of the repository.",
		Args: cobra.MaximumNArgs(1),
	}
	collect := registerOverrideFlags(cmd, "commit")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && message == "" {
			message = args[0]
		}
		in := application.Input{
			Message:     message,
			MessageFile: messageFile,
			AuthorName:  authorName,
			AuthorEmail: authorEmail,
		}
		return runCheck(cmd, domain.Scope{Commit: true, Author: true}, in, out, collect())
	}

	out.register(cmd)
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message to validate")
	cmd.Flags().StringVarP(&messageFile, "message-file", "f", "", "File containing the commit message")
	cmd.Flags().StringVar(&authorName, "author-name", "", "Author name (defaults to the HEAD author)")
	cmd.Flags().StringVar(&authorEmail, "author-email", "", "Author email (defaults to the HEAD author)")

	return cmd
}
