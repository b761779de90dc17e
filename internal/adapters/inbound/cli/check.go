package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cchk/cchk/internal/adapters/outbound/config"
	"github.com/cchk/cchk/internal/adapters/outbound/gitinfo"
	"github.com/cchk/cchk/internal/adapters/outbound/tui"
	"github.com/cchk/cchk/internal/application"
	"github.com/cchk/cchk/internal/domain"
)

// outputFlags are shared by the commit, branch and author subcommands.
type outputFlags struct {
	path       string
	jsonOutput bool
	quiet      bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.path, "path", ".", "Repository path")
	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "Only print failing checks, one per line")
}

// registerOverrideFlags adds one flag per option of the given config
// section and returns a collector that yields the overrides the user
// actually set, keyed by config path.
func registerOverrideFlags(cmd *cobra.Command, section string) func() map[string]any {
	opts := config.SectionOptions(section)
	for _, o := range opts {
		usage := "Override " + o.Key
		switch o.Kind {
		case config.BoolValue:
			cmd.Flags().Bool(o.Flag, false, usage)
		case config.IntValue:
			cmd.Flags().Int(o.Flag, 0, usage)
		case config.StringValue:
			cmd.Flags().String(o.Flag, "", usage)
		case config.ListValue:
			cmd.Flags().StringSlice(o.Flag, nil, usage)
		}
	}

	return func() map[string]any {
		overrides := make(map[string]any)
		for _, o := range opts {
			flag := cmd.Flags().Lookup(o.Flag)
			if flag == nil || !flag.Changed {
				continue
			}
			switch o.Kind {
			case config.BoolValue:
				v, _ := cmd.Flags().GetBool(o.Flag)
				overrides[o.Key] = v
			case config.IntValue:
				v, _ := cmd.Flags().GetInt(o.Flag)
				overrides[o.Key] = v
			case config.StringValue:
				v, _ := cmd.Flags().GetString(o.Flag)
				overrides[o.Key] = v
			case config.ListValue:
				v, _ := cmd.Flags().GetStringSlice(o.Flag)
				overrides[o.Key] = v
			}
		}
		return overrides
	}
}

func runCheck(cmd *cobra.Command, scope domain.Scope, in application.Input, out outputFlags, overrides map[string]any) error {
	cfgPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.New().Load(out.path, cfgPath, overrides)
	if err != nil {
		return err
	}

	svc := application.NewCheckService(gitinfo.New(out.path))
	report, ctx, err := svc.Check(cfg, scope, in)
	if err != nil {
		return err
	}

	switch {
	case out.jsonOutput:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	case out.quiet:
		if report.Failed() {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(report))
		}
	default:
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, checkedLabel(scope, ctx)))
	}

	if report.Failed() {
		return domain.ErrViolations
	}
	return nil
}

func checkedLabel(scope domain.Scope, ctx domain.Context) string {
	switch {
	case scope.Commit:
		return ctx.Subject
	case scope.Branch:
		return ctx.Branch
	default:
		return ctx.AuthorIdent()
	}
}
