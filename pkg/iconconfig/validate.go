package iconconfig

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/iconshift/pkg/types"
)

// IssueKind classifies a validation finding
type IssueKind string

const (
	// IssueEmptyIdentifier flags an icon keyed by an empty string
	IssueEmptyIdentifier IssueKind = "empty-identifier"
	// IssueEmptyPath flags an icon with no image path
	IssueEmptyPath IssueKind = "empty-path"
	// IssueFileNotFound flags an image path with no file behind it
	IssueFileNotFound IssueKind = "file-not-found"
	// IssueBadIdentifier flags an identifier that would produce an
	// invalid component name
	IssueBadIdentifier IssueKind = "bad-identifier"
	// IssueReservedIdentifier flags an identifier that collides with
	// the baseline activity name
	IssueReservedIdentifier IssueKind = "reserved-identifier"
	// IssueUnknownDefault flags a default_icon that names no configured icon
	IssueUnknownDefault IssueKind = "unknown-default"
)

// Issue is one validation finding, tagged with the offending identifier.
type Issue struct {
	Kind       IssueKind
	Identifier string
	Path       string
	Message    string
}

func (i Issue) String() string {
	if i.Identifier != "" {
		return fmt.Sprintf("%s: %s", i.Identifier, i.Message)
	}
	return i.Message
}

// Identifiers become component name suffixes, so they are restricted to
// characters valid in an activity class name. Anything else is rejected
// rather than sanitized.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// baselineSuffix is the identifier that would collide with the baseline
// .MainActivity component name.
const baselineSuffix = "Main"

// bundledAssetPrefixes name path roots that refer to bundled package
// assets rather than files in the project tree; file-existence checks
// skip them.
var bundledAssetPrefixes = []string{"packages/"}

// Validate checks every icon and the default reference, collecting all
// issues rather than stopping at the first. File existence is only
// checked when checkFilesystem is true; paths are resolved against
// projectRoot, and bundled-asset paths are skipped.
//
// A default_icon naming no configured icon is reported as an issue
// (strict policy); the literal "default" always refers to the baseline
// component and is exempt.
func (c *Configuration) Validate(fs types.FS, checkFilesystem bool, projectRoot string) []Issue {
	var issues []Issue

	for _, id := range c.Identifiers() {
		def, _ := c.Lookup(id)

		if id == "" {
			issues = append(issues, Issue{
				Kind:    IssueEmptyIdentifier,
				Message: "icon identifier must not be empty",
			})
		} else if !identifierPattern.MatchString(id) {
			issues = append(issues, Issue{
				Kind:       IssueBadIdentifier,
				Identifier: id,
				Message:    fmt.Sprintf("identifier %q is not a valid component name suffix (want letters, digits, underscores, starting with a letter)", id),
			})
		} else if id == baselineSuffix {
			issues = append(issues, Issue{
				Kind:       IssueReservedIdentifier,
				Identifier: id,
				Message:    fmt.Sprintf("identifier %q collides with the baseline activity", id),
			})
		}

		if def.ImagePath == "" {
			issues = append(issues, Issue{
				Kind:       IssueEmptyPath,
				Identifier: id,
				Message:    "icon has no image path",
			})
			continue
		}

		if checkFilesystem {
			issues = append(issues, checkFiles(fs, projectRoot, def)...)
		}
	}

	if d := c.defaultIcon; d != "" && d != BaselineIdentifier && !c.Contains(d) {
		issues = append(issues, Issue{
			Kind:       IssueUnknownDefault,
			Identifier: d,
			Message:    fmt.Sprintf("default_icon %q names no configured icon", d),
		})
	}

	return issues
}

// BaselineIdentifier is the sentinel identifier representing the
// baseline component. It never gets an alias of its own.
const BaselineIdentifier = "default"

func checkFiles(fs types.FS, projectRoot string, def Definition) []Issue {
	var issues []Issue

	paths := []string{def.ImagePath}
	for _, d := range Densities {
		if p, ok := def.SizeOverrides[d]; ok && p != "" {
			paths = append(paths, p)
		}
	}

	for _, p := range paths {
		if isBundledAsset(p) {
			continue
		}
		resolved := p
		if projectRoot != "" && !filepath.IsAbs(p) {
			resolved = filepath.Join(projectRoot, p)
		}
		if _, err := fs.Stat(resolved); err != nil {
			issues = append(issues, Issue{
				Kind:       IssueFileNotFound,
				Identifier: def.Identifier,
				Path:       p,
				Message:    fmt.Sprintf("image file %s does not exist", p),
			})
		}
	}

	return issues
}

func isBundledAsset(path string) bool {
	for _, prefix := range bundledAssetPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
