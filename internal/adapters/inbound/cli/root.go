// Package cli wires the cchk commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cchk/cchk/internal/domain"
	"github.com/cchk/cchk/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "cchk",
		Short: "Lint commit metadata before it lands",
		Long: "cchk validates commit messages, branch names and author identity " +
			"against your project's conventions, locally and in CI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (skips discovery)")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v, -vv, -vvv)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCommitCmd())
	cmd.AddCommand(newBranchCmd())
	cmd.AddCommand(newAuthorCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, domain.ErrViolations) {
		fmt.Fprintf(os.Stderr, "cchk: %v\n", err)
	}
	return err
}
