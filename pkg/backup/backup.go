// Package backup preserves unmodified copies of files the setup
// pipeline is about to rewrite, so uninstall can restore them exactly.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/logging"
	"github.com/arthur-debert/iconshift/pkg/types"
)

// Store keeps timestamped copies of files under a backup directory.
// Entries for one source path share a stable prefix derived from the
// path, so Latest can find the newest copy.
type Store struct {
	fs  types.FS
	dir string
	now func() time.Time
}

// DefaultDir is the backup location under the XDG state directory
func DefaultDir() string {
	return filepath.Join(xdg.StateHome, "iconshift", "backups")
}

// NewStore creates a backup store rooted at dir
func NewStore(fs types.FS, dir string) *Store {
	return &Store{fs: fs, dir: dir, now: time.Now}
}

// Backup copies path into the store and returns the backup file path
func (s *Store) Backup(path string) (string, error) {
	logger := logging.GetLogger("backup")

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupCreate, "cannot read %s for backup", path)
	}
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create backup directory %s", s.dir)
	}

	name := fmt.Sprintf("%s.%s.bak", s.prefix(path), s.now().UTC().Format("20060102-150405"))
	dst := filepath.Join(s.dir, name)
	if err := s.fs.WriteFile(dst, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupCreate, "cannot write backup %s", dst)
	}

	logger.Info().Str("source", path).Str("backup", dst).Msg("backed up file")
	return dst, nil
}

// Latest returns the newest backup recorded for path
func (s *Store) Latest(path string) (string, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupMissing, "no backups recorded for %s", path)
	}

	prefix := s.prefix(path) + "."
	var matches []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			matches = append(matches, entry.Name())
		}
	}
	if len(matches) == 0 {
		return "", errors.Newf(errors.ErrBackupMissing, "no backups recorded for %s", path)
	}

	// Timestamps sort lexically
	sort.Strings(matches)
	return filepath.Join(s.dir, matches[len(matches)-1]), nil
}

// Restore writes the newest backup of path back to path
func (s *Store) Restore(path string) error {
	src, err := s.Latest(path)
	if err != nil {
		return err
	}
	data, err := s.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrBackupRestore, "cannot read backup %s", src)
	}
	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrBackupRestore, "cannot restore %s", path)
	}

	logger := logging.GetLogger("backup")
	logger.Info().Str("source", src).Str("target", path).Msg("restored file")
	return nil
}

// prefix derives a stable file name prefix for a source path: its base
// name plus a short hash of the full path, so same-named files from
// different projects never collide.
func (s *Store) prefix(path string) string {
	sum := sha256.Sum256([]byte(path))
	return fmt.Sprintf("%s.%s", filepath.Base(path), hex.EncodeToString(sum[:6]))
}
