// Package cli holds the shared wiring between the cobra commands and
// the command pipelines.
package cli

import (
	"github.com/arthur-debert/iconshift/pkg/backup"
	"github.com/arthur-debert/iconshift/pkg/commands"
	"github.com/arthur-debert/iconshift/pkg/config"
	"github.com/arthur-debert/iconshift/pkg/filesystem"
)

// BuildEnv resolves tool settings for a project root and assembles the
// command environment against the real filesystem.
func BuildEnv(root string, checkFilesystem, withBackup bool) (commands.Env, error) {
	settings, err := config.Load(root)
	if err != nil {
		return commands.Env{}, err
	}

	fs := filesystem.NewOS()
	env := commands.Env{
		FS:              fs,
		Project:         config.NewProject(root, settings),
		CheckFilesystem: checkFilesystem,
	}
	if withBackup {
		env.Backups = backup.NewStore(fs, backup.DefaultDir())
	}
	return env, nil
}
