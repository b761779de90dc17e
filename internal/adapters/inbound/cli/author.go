package cli

import (
	"github.com/spf13/cobra"

	"github.com/cchk/cchk/internal/application"
	"github.com/cchk/cchk/internal/domain"
)

func newAuthorCmd() *cobra.Command {
	var (
		out         outputFlags
		authorName  string
		authorEmail string
	)

	cmd := &cobra.Command{
		Use:   "author",
		Short: "Validate the commit author identity",
		Long: "Validate the author name and email against the identity rules. The " +
			"identity comes from --name/--email or the HEAD commit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := application.Input{
				AuthorName:  authorName,
				AuthorEmail: authorEmail,
			}
			return runCheck(cmd, domain.Scope{Author: true}, in, out, nil)
		},
	}

	out.register(cmd)
	cmd.Flags().StringVar(&authorName, "name", "", "Author name (defaults to the HEAD author)")
	cmd.Flags().StringVar(&authorEmail, "email", "", "Author email (defaults to the HEAD author)")

	return cmd
}
