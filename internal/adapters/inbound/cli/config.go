package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cchk/cchk/internal/adapters/outbound/config"
)

func newConfigCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: "Resolve the configuration the checks would run with (defaults, " +
			"config file and environment merged) and print it as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.New().Load(path, cfgPath, nil)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Repository path")

	return cmd
}
