package iconshift

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconshift/cmd/iconshift/commands/icon"
	"github.com/arthur-debert/iconshift/cmd/iconshift/commands/setup"
	"github.com/arthur-debert/iconshift/cmd/iconshift/commands/status"
	"github.com/arthur-debert/iconshift/cmd/iconshift/commands/uninstall"
	"github.com/arthur-debert/iconshift/cmd/iconshift/commands/validate"
	"github.com/arthur-debert/iconshift/internal/version"
	"github.com/arthur-debert/iconshift/pkg/logging"
	"github.com/arthur-debert/iconshift/pkg/style"
)

// NewRootCmd creates the iconshift root command with all subcommands
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "iconshift",
		Short: MsgShort,
		Long:  MsgLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			style.Init()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(setup.NewCommand())
	rootCmd.AddCommand(uninstall.NewCommand())
	rootCmd.AddCommand(validate.NewCommand())
	rootCmd.AddCommand(status.NewCommand())
	rootCmd.AddCommand(icon.NewCommand())

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for iconshift`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("iconshift version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
