// Package commands implements the setup, uninstall, validate and
// status pipelines behind the CLI verbs. Commands operate through a
// filesystem interface so the full pipelines are testable in memory.
package commands

import (
	"github.com/arthur-debert/iconshift/pkg/backup"
	"github.com/arthur-debert/iconshift/pkg/config"
	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/iconconfig"
	"github.com/arthur-debert/iconshift/pkg/logging"
	"github.com/arthur-debert/iconshift/pkg/manifest"
	"github.com/arthur-debert/iconshift/pkg/resources"
	"github.com/arthur-debert/iconshift/pkg/summary"
	"github.com/arthur-debert/iconshift/pkg/types"
)

// Env carries the shared dependencies of every command
type Env struct {
	FS      types.FS
	Project config.Project
	// Backups preserves manifests before their first mutation; nil
	// disables the backup step (tests, --no-backup)
	Backups *backup.Store
	// CheckFilesystem enables file-existence validation of image paths
	CheckFilesystem bool
}

// SetupResult reports what setup changed
type SetupResult struct {
	Config           *iconconfig.Configuration
	Issues           []iconconfig.Issue
	BackupPath       string
	ManifestChanged  bool
	ResourcesWritten []string
	SummaryPath      string
}

// Setup loads and validates the icon configuration, reconciles the
// manifest, copies icon bitmaps per density and writes the summary.
// Any validation issue aborts before the first mutation.
func Setup(env Env) (*SetupResult, error) {
	logger := logging.GetLogger("setup")

	cfg, err := iconconfig.Load(env.FS, env.Project.IconConfig())
	if err != nil {
		return nil, err
	}

	res := &SetupResult{Config: cfg}

	res.Issues = cfg.Validate(env.FS, env.CheckFilesystem, env.Project.Root)
	if len(res.Issues) > 0 {
		return res, errors.Newf(errors.ErrConfigValid,
			"icon configuration has %d validation issue(s)", len(res.Issues))
	}

	manifestPath := env.Project.Manifest()
	doc, err := env.FS.ReadFile(manifestPath)
	if err != nil {
		return res, errors.Wrapf(err, errors.ErrManifestRead, "cannot read manifest %s", manifestPath)
	}

	reconciled, err := manifest.Reconcile(string(doc), cfg)
	if err != nil {
		// The manifest is left untouched on a reconcile error
		return res, err
	}

	if reconciled != string(doc) {
		if env.Backups != nil {
			backupPath, err := env.Backups.Backup(manifestPath)
			if err != nil {
				return res, err
			}
			res.BackupPath = backupPath
		}
		if err := env.FS.WriteFile(manifestPath, []byte(reconciled), 0644); err != nil {
			return res, errors.Wrapf(err, errors.ErrManifestWrite, "cannot write manifest %s", manifestPath)
		}
		res.ManifestChanged = true
	}

	written, err := resources.Copy(env.FS, env.Project.Root, env.Project.ResDir(), cfg)
	res.ResourcesWritten = written
	if err != nil {
		return res, err
	}

	md := summary.Generate(cfg)
	if err := env.FS.WriteFile(env.Project.Summary(), []byte(md), 0644); err != nil {
		return res, errors.Wrapf(err, errors.ErrFileWrite, "cannot write summary %s", env.Project.Summary())
	}
	res.SummaryPath = env.Project.Summary()

	logger.Info().
		Bool("manifestChanged", res.ManifestChanged).
		Int("resources", len(res.ResourcesWritten)).
		Msg("setup complete")
	return res, nil
}

// UninstallResult reports what uninstall removed
type UninstallResult struct {
	RestoredFromBackup bool
	ManifestChanged    bool
	ResourcesCleaned   bool
	SummaryRemoved     bool
}

// Uninstall reverses setup: the manifest is restored from its newest
// backup when one exists, otherwise the managed alias blocks are
// stripped in place; copied bitmaps and the summary are deleted. It is
// safe to run against a project that was never set up.
func Uninstall(env Env) (*UninstallResult, error) {
	logger := logging.GetLogger("uninstall")
	res := &UninstallResult{}

	manifestPath := env.Project.Manifest()

	restored := false
	if env.Backups != nil {
		if _, err := env.Backups.Latest(manifestPath); err == nil {
			if err := env.Backups.Restore(manifestPath); err != nil {
				return res, err
			}
			restored = true
			res.RestoredFromBackup = true
			res.ManifestChanged = true
		}
	}

	if !restored {
		doc, err := env.FS.ReadFile(manifestPath)
		if err != nil {
			return res, errors.Wrapf(err, errors.ErrManifestRead, "cannot read manifest %s", manifestPath)
		}
		cleaned := manifest.RemoveManagedAliases(string(doc))
		if cleaned != string(doc) {
			if err := env.FS.WriteFile(manifestPath, []byte(cleaned), 0644); err != nil {
				return res, errors.Wrapf(err, errors.ErrManifestWrite, "cannot write manifest %s", manifestPath)
			}
			res.ManifestChanged = true
		}
	}

	// Resource cleanup needs the configuration to know which files a
	// previous setup wrote; a missing configuration just means there is
	// nothing to clean.
	if cfg, err := iconconfig.Load(env.FS, env.Project.IconConfig()); err == nil {
		if err := resources.Clean(env.FS, env.Project.ResDir(), cfg); err == nil {
			res.ResourcesCleaned = true
		}
	}

	if err := env.FS.Remove(env.Project.Summary()); err == nil {
		res.SummaryRemoved = true
	}

	logger.Info().
		Bool("restored", res.RestoredFromBackup).
		Bool("manifestChanged", res.ManifestChanged).
		Msg("uninstall complete")
	return res, nil
}

// Validate loads the configuration and returns every issue found
func Validate(env Env) (*iconconfig.Configuration, []iconconfig.Issue, error) {
	cfg, err := iconconfig.Load(env.FS, env.Project.IconConfig())
	if err != nil {
		return nil, nil, err
	}
	return cfg, cfg.Validate(env.FS, env.CheckFilesystem, env.Project.Root), nil
}

// StatusResult is a read-only view of the project's icon state
type StatusResult struct {
	Info    *manifest.Info
	Summary string
}

// Status inspects the manifest's declared aliases and picks up the
// generated summary when present.
func Status(env Env) (*StatusResult, error) {
	doc, err := env.FS.ReadFile(env.Project.Manifest())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "cannot read manifest %s", env.Project.Manifest())
	}

	info, err := manifest.Inspect(string(doc))
	if err != nil {
		return nil, err
	}

	res := &StatusResult{Info: info}
	if md, err := env.FS.ReadFile(env.Project.Summary()); err == nil {
		res.Summary = string(md)
	}
	return res, nil
}
