package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconshift/internal/cli"
	"github.com/arthur-debert/iconshift/pkg/commands"
	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/style"
)

// NewCommand creates the validate command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			skipFileCheck, _ := cmd.Flags().GetBool("skip-file-check")
			root := cmd.Flag("root").Value.String()

			env, err := cli.BuildEnv(root, !skipFileCheck, false)
			if err != nil {
				return err
			}

			cfg, issues, err := commands.Validate(env)
			if err != nil {
				return err
			}

			if len(issues) > 0 {
				for _, issue := range issues {
					style.Warning(issue.String())
				}
				return errors.Newf(errors.ErrConfigValid,
					"%d validation issue(s) found", len(issues))
			}

			style.Success(fmt.Sprintf("Configuration is valid: %d icon(s)", cfg.Len()))
			return nil
		},
	}

	cmd.Flags().Bool("skip-file-check", false, "Do not verify that icon image files exist")

	return cmd
}
