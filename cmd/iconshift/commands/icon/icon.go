package icon

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconshift/pkg/adb"
	"github.com/arthur-debert/iconshift/pkg/config"
	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/filesystem"
	"github.com/arthur-debert/iconshift/pkg/iconconfig"
	"github.com/arthur-debert/iconshift/pkg/selector"
	"github.com/arthur-debert/iconshift/pkg/style"
)

// NewCommand creates the icon command group with set, current and
// reset subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "icon",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
	}

	cmd.PersistentFlags().String("package", "", "Application id (overrides project settings)")
	cmd.PersistentFlags().String("serial", "", "adb device serial (overrides project settings)")

	cmd.AddCommand(newSetCommand())
	cmd.AddCommand(newCurrentCommand())
	cmd.AddCommand(newResetCommand())

	return cmd
}

func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [identifier]",
		Short: "Enable the launcher icon for an identifier",
		Long: `Enables the alias component for the given identifier on the connected
device and disables every other launcher component. An omitted,
empty or unknown identifier falls back to the configured default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := buildSelector(cmd)
			if err != nil {
				return err
			}

			requested := ""
			if len(args) == 1 {
				requested = args[0]
			}

			ok, err := sel.Select(requested)
			if err != nil {
				return err
			}
			if ok {
				current, _ := sel.Current()
				style.Success(fmt.Sprintf("Active icon: %s", current))
			}
			return nil
		},
	}
}

func newCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Report which launcher icon is active",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := buildSelector(cmd)
			if err != nil {
				return err
			}

			current, err := sel.Current()
			if err != nil {
				return err
			}
			fmt.Println(current)
			return nil
		},
	}
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Enable every launcher component (development escape hatch)",
		Long: `Enables the baseline and every alias component unconditionally, so a
device left with no enabled launcher component becomes launchable
again. Not part of the normal selection path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := buildSelector(cmd)
			if err != nil {
				return err
			}

			if err := sel.DevelopmentReset(); err != nil {
				return err
			}
			style.Success("All launcher components enabled")
			return nil
		},
	}
}

// buildSelector loads the project's icon configuration and binds a
// selector to the device named by settings and flags.
func buildSelector(cmd *cobra.Command) (*selector.Selector, error) {
	root := cmd.Flag("root").Value.String()

	settings, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	project := config.NewProject(root, settings)

	cfg, err := iconconfig.Load(filesystem.NewOS(), project.IconConfig())
	if err != nil {
		return nil, err
	}

	pkg := settings.Package
	if v := cmd.Flag("package").Value.String(); v != "" {
		pkg = v
	}
	if pkg == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"no application package configured; set package in .iconshift.toml or pass --package")
	}

	serial := settings.Serial
	if v := cmd.Flag("serial").Value.String(); v != "" {
		serial = v
	}

	return selector.FromConfiguration(adb.New(serial, pkg), cfg), nil
}
