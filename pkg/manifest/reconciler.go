package manifest

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/iconconfig"
	"github.com/arthur-debert/iconshift/pkg/logging"
)

// applicationAnchor is the closing boundary of the single top-level
// application element; managed blocks are inserted immediately before
// its line.
const applicationAnchor = "</application>"

// managedBlockPattern matches exactly one managed block per match: the
// marker comment line through the first closing alias tag, including
// the trailing newline. Non-greedy so a match never consumes content
// beyond one block, and anchored on the marker so foreign alias blocks
// are never touched.
var managedBlockPattern = regexp.MustCompile(
	`(?m)^[ \t]*<!-- Activity alias for [A-Za-z][A-Za-z0-9_]* icon -->[ \t]*\r?\n(?s:.*?)</activity-alias>[ \t]*(?:\r?\n|$)`)

// RemoveManagedAliases strips every managed alias block from the
// document, leaving all other content byte-identical.
func RemoveManagedAliases(doc string) string {
	return managedBlockPattern.ReplaceAllString(doc, "")
}

// Reconcile converges the document's managed alias declarations to
// exactly match the configuration's icon set: every previously managed
// block is removed, then one block per non-default icon is inserted
// before the application closing boundary. The transform is pure and
// idempotent; on error the input is returned unchanged semantics-wise
// (the caller keeps its original document).
func Reconcile(doc string, cfg *iconconfig.Configuration) (string, error) {
	logger := logging.GetLogger("manifest")

	cleaned := RemoveManagedAliases(doc)

	idx := strings.LastIndex(cleaned, applicationAnchor)
	if idx < 0 {
		return "", errors.Newf(errors.ErrManifestMissingAnchor,
			"manifest has no %s element to anchor alias blocks", applicationAnchor)
	}

	var blocks strings.Builder
	count := 0
	for _, id := range cfg.Identifiers() {
		def, _ := cfg.Lookup(id)
		block := RenderAliasBlock(def)
		if block == "" {
			continue
		}
		blocks.WriteString(block)
		count++
	}

	logger.Debug().Int("aliases", count).Msg("reconciled manifest alias blocks")

	if count == 0 {
		return cleaned, nil
	}

	// Insert at the start of the anchor's line so the closing tag keeps
	// its original indentation. When the anchor shares its line with
	// other content, fall back to inserting directly before the tag.
	lineStart := strings.LastIndex(cleaned[:idx], "\n") + 1
	if strings.TrimSpace(cleaned[lineStart:idx]) != "" {
		return cleaned[:idx] + "\n" + blocks.String() + cleaned[idx:], nil
	}
	return cleaned[:lineStart] + blocks.String() + cleaned[lineStart:], nil
}
