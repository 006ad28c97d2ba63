package manifest

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/iconshift/pkg/errors"
)

// Alias describes one activity-alias declaration found in a manifest.
type Alias struct {
	// Name is the declared android:name, usually package-relative
	Name string
	// Enabled is the declared initial state (absent attribute means enabled)
	Enabled bool
	// Icon is the declared android:icon resource reference
	Icon string
	// Target is the declared android:targetActivity
	Target string
	// Managed reports whether the block carries the reconciler's marker
	Managed bool
}

// Info is a structured read of a manifest's launcher surface.
type Info struct {
	// Package is the manifest's application id
	Package string
	// Activities lists declared activity names
	Activities []string
	// Aliases lists declared activity-alias entries in document order
	Aliases []Alias
}

// ManagedAliases returns only the reconciler-owned aliases
func (i *Info) ManagedAliases() []Alias {
	var out []Alias
	for _, a := range i.Aliases {
		if a.Managed {
			out = append(out, a)
		}
	}
	return out
}

var markerCommentPattern = regexp.MustCompile(`^\s*Activity alias for [A-Za-z][A-Za-z0-9_]* icon\s*$`)

// Inspect parses the manifest as XML and reports its declared
// activities and aliases. Unlike Reconcile, which treats the document
// as text, Inspect needs well-formed XML and reports MANIFEST_MALFORMED
// otherwise.
func Inspect(doc string) (*Info, error) {
	d := etree.NewDocument()
	if err := d.ReadFromString(doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestMalformed, "manifest is not well-formed XML")
	}

	root := d.SelectElement("manifest")
	if root == nil {
		return nil, errors.New(errors.ErrManifestMalformed, "document has no manifest element")
	}

	app := root.SelectElement("application")
	if app == nil {
		return nil, errors.New(errors.ErrManifestMissingAnchor, "manifest has no application element")
	}

	info := &Info{Package: root.SelectAttrValue("package", "")}

	// Track the preceding comment so managed markers can be paired with
	// the alias element they announce.
	lastComment := ""
	for _, token := range app.Child {
		switch t := token.(type) {
		case *etree.Comment:
			lastComment = t.Data
		case *etree.Element:
			switch t.Tag {
			case "activity":
				info.Activities = append(info.Activities, t.SelectAttrValue("android:name", ""))
			case "activity-alias":
				info.Aliases = append(info.Aliases, Alias{
					Name:    t.SelectAttrValue("android:name", ""),
					Enabled: t.SelectAttrValue("android:enabled", "true") != "false",
					Icon:    t.SelectAttrValue("android:icon", ""),
					Target:  t.SelectAttrValue("android:targetActivity", ""),
					Managed: markerCommentPattern.MatchString(lastComment),
				})
			}
			lastComment = ""
		}
	}

	return info, nil
}

// MarkerIdentifier extracts the icon identifier from a managed alias
// name, the inverse of the name derivation.
func MarkerIdentifier(aliasName string) string {
	name := aliasName
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "Activity")
}
