package uninstall

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconshift/internal/cli"
	"github.com/arthur-debert/iconshift/pkg/commands"
	"github.com/arthur-debert/iconshift/pkg/style"
)

// NewCommand creates the uninstall command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Flag("root").Value.String()

			env, err := cli.BuildEnv(root, false, true)
			if err != nil {
				return err
			}

			res, err := commands.Uninstall(env)
			if err != nil {
				return err
			}

			switch {
			case res.RestoredFromBackup:
				style.Info(fmt.Sprintf("Restored %s from backup", env.Project.Manifest()))
			case res.ManifestChanged:
				style.Info(fmt.Sprintf("Removed managed alias blocks from %s", env.Project.Manifest()))
			default:
				style.Info("Manifest had no managed alias blocks")
			}
			style.Success("Uninstall complete")
			return nil
		},
	}
}
