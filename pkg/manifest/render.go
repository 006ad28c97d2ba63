package manifest

import (
	"strings"
	"text/template"

	"github.com/arthur-debert/iconshift/pkg/android"
	"github.com/arthur-debert/iconshift/pkg/iconconfig"
)

// Managed alias blocks are recognized by their leading marker comment.
// The comment plus the alias element is the unit the reconciler owns;
// everything else in the manifest is off limits.
const managedMarkerPrefix = "Activity alias for "

// aliasTemplate renders one managed alias block. The component name,
// icon resource and delegation target are all derived deterministically
// from the identifier; the intent filter mirrors the baseline launcher
// entry. The alias starts disabled so installing the app never changes
// the visible icon by itself.
const aliasTemplate = `        <!-- Activity alias for {{.Identifier}} icon -->
        <activity-alias
            android:name="{{.Component}}"
            android:enabled="false"
            android:exported="true"
            android:icon="{{.Icon}}"
            android:targetActivity="` + android.BaselineActivity + `">
            <intent-filter>
                <action android:name="` + android.ActionMain + `" />
                <category android:name="` + android.CategoryLauncher + `" />
            </intent-filter>
        </activity-alias>
`

var aliasTmpl = template.Must(template.New("alias").Parse(aliasTemplate))

type aliasData struct {
	Identifier string
	Component  string
	Icon       string
}

// RenderAliasBlock produces the managed manifest block for one icon
// definition. The identifier "default" is represented by the baseline
// component and renders nothing.
func RenderAliasBlock(def iconconfig.Definition) string {
	if def.Identifier == iconconfig.BaselineIdentifier {
		return ""
	}

	var b strings.Builder
	// The template only substitutes pre-validated identifiers; execution
	// cannot fail.
	_ = aliasTmpl.Execute(&b, aliasData{
		Identifier: def.Identifier,
		Component:  android.AliasActivity(def.Identifier),
		Icon:       android.IconResource(def.Identifier),
	})
	return b.String()
}
