package setup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconshift/internal/cli"
	"github.com/arthur-debert/iconshift/pkg/commands"
	"github.com/arthur-debert/iconshift/pkg/style"
)

// NewCommand creates the setup command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "setup",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			noBackup, _ := cmd.Flags().GetBool("no-backup")
			skipFileCheck, _ := cmd.Flags().GetBool("skip-file-check")
			root := cmd.Flag("root").Value.String()

			env, err := cli.BuildEnv(root, !skipFileCheck, !noBackup)
			if err != nil {
				return err
			}

			res, err := commands.Setup(env)
			if res != nil {
				for _, issue := range res.Issues {
					style.Warning(issue.String())
				}
			}
			if err != nil {
				return err
			}

			if res.ManifestChanged {
				style.Info(fmt.Sprintf("Updated %s", env.Project.Manifest()))
				if res.BackupPath != "" {
					style.Info(fmt.Sprintf("Backup written to %s", res.BackupPath))
				}
			} else {
				style.Info("Manifest already up to date")
			}
			style.Info(fmt.Sprintf("Copied %d icon resource(s)", len(res.ResourcesWritten)))
			style.Success(fmt.Sprintf("Setup complete, summary in %s", res.SummaryPath))
			return nil
		},
	}

	cmd.Flags().Bool("no-backup", false, "Skip backing up the manifest before rewriting it")
	cmd.Flags().Bool("skip-file-check", false, "Do not verify that icon image files exist")

	return cmd
}
