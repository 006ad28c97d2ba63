// Package android holds the Android-side naming conventions shared by
// the manifest reconciler, the resource copier and the runtime selector.
package android

import (
	"strings"

	"github.com/arthur-debert/iconshift/pkg/iconconfig"
)

const (
	// ActionMain is the action treated as the main entry point
	ActionMain = "android.intent.action.MAIN"

	// CategoryLauncher means the activity should be displayed in the
	// top-level launcher
	CategoryLauncher = "android.intent.category.LAUNCHER"

	// BaselineActivity is the relative name of the primary entry point
	// that represents the default icon state
	BaselineActivity = ".MainActivity"
)

// AliasActivity returns the relative component name for an icon
// identifier. The derivation is deterministic: .christmasActivity for
// identifier christmas.
func AliasActivity(identifier string) string {
	return "." + identifier + "Activity"
}

// IconResource returns the mipmap resource reference an alias declares
// for its identifier.
func IconResource(identifier string) string {
	return "@mipmap/ic_launcher_" + identifier
}

// IconFileName returns the bitmap file name copied into each density
// folder for an identifier.
func IconFileName(identifier string) string {
	return "ic_launcher_" + identifier + ".png"
}

// MipmapDir returns the resource directory name for a density bucket
func MipmapDir(density iconconfig.Density) string {
	return "mipmap-" + string(density)
}

// Qualified expands a relative component name against an application
// package, matching ComponentName semantics: a leading dot is resolved
// against the package, anything else is already fully qualified.
func Qualified(pkg, component string) string {
	if strings.HasPrefix(component, ".") {
		return pkg + component
	}
	return component
}
