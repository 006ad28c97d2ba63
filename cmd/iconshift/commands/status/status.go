package status

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconshift/internal/cli"
	"github.com/arthur-debert/iconshift/pkg/commands"
	"github.com/arthur-debert/iconshift/pkg/summary"
)

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Flag("root").Value.String()

			env, err := cli.BuildEnv(root, false, false)
			if err != nil {
				return err
			}

			res, err := commands.Status(env)
			if err != nil {
				return err
			}

			fmt.Printf("Package: %s\n\n", res.Info.Package)

			rows := pterm.TableData{{"Component", "Kind", "Initial state", "Icon"}}
			for _, name := range res.Info.Activities {
				rows = append(rows, []string{name, "activity", "enabled", ""})
			}
			for _, alias := range res.Info.Aliases {
				kind := "alias"
				if alias.Managed {
					kind = "alias (managed)"
				}
				state := "disabled"
				if alias.Enabled {
					state = "enabled"
				}
				rows = append(rows, []string{alias.Name, kind, state, alias.Icon})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
				return err
			}

			if res.Summary != "" {
				fmt.Print(summary.RenderTerminal(res.Summary))
			}
			return nil
		},
	}

	return cmd
}
