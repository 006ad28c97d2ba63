// Package resources copies icon bitmaps into the density-specific
// mipmap folders the managed alias blocks reference. Bitmaps are copied
// verbatim; no resizing happens here.
package resources

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/iconshift/pkg/android"
	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/iconconfig"
	"github.com/arthur-debert/iconshift/pkg/logging"
	"github.com/arthur-debert/iconshift/pkg/types"
)

// Copy places one bitmap per density bucket for every non-default icon:
// resDir/mipmap-<density>/ic_launcher_<identifier>.png. Per-density
// size overrides win over the primary image path. Bundled-asset paths
// cannot be read from the project tree and are skipped with a warning.
// Returns the destination paths written.
func Copy(fs types.FS, projectRoot, resDir string, cfg *iconconfig.Configuration) ([]string, error) {
	logger := logging.GetLogger("resources")

	var written []string
	for _, id := range cfg.Identifiers() {
		if id == iconconfig.BaselineIdentifier {
			continue
		}
		def, _ := cfg.Lookup(id)

		for _, density := range iconconfig.Densities {
			src := def.ImagePathFor(density)
			if isBundled(src) {
				logger.Warn().Str("icon", id).Str("path", src).
					Msg("bundled asset cannot be copied into resources, skipping")
				continue
			}
			if !filepath.IsAbs(src) && projectRoot != "" {
				src = filepath.Join(projectRoot, src)
			}

			data, err := fs.ReadFile(src)
			if err != nil {
				return written, errors.Wrapf(err, errors.ErrFileNotFound,
					"cannot read icon bitmap for %s", id).WithDetail("path", src)
			}

			dir := filepath.Join(resDir, android.MipmapDir(density))
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return written, errors.Wrapf(err, errors.ErrDirCreate,
					"cannot create resource directory %s", dir)
			}

			dst := filepath.Join(dir, android.IconFileName(id))
			if err := fs.WriteFile(dst, data, 0644); err != nil {
				return written, errors.Wrapf(err, errors.ErrFileCopy,
					"cannot write icon bitmap %s", dst)
			}
			written = append(written, dst)
		}
	}

	logger.Info().Int("files", len(written)).Msg("copied icon resources")
	return written, nil
}

// Clean removes every bitmap a previous Copy could have written for the
// configuration. Missing files are fine; Clean is safe to re-run.
func Clean(fs types.FS, resDir string, cfg *iconconfig.Configuration) error {
	logger := logging.GetLogger("resources")

	removed := 0
	for _, id := range cfg.Identifiers() {
		if id == iconconfig.BaselineIdentifier {
			continue
		}
		for _, density := range iconconfig.Densities {
			path := filepath.Join(resDir, android.MipmapDir(density), android.IconFileName(id))
			if err := fs.Remove(path); err == nil {
				removed++
			}
		}
	}

	logger.Info().Int("files", removed).Msg("removed icon resources")
	return nil
}

func isBundled(path string) bool {
	return strings.HasPrefix(path, "packages/")
}
