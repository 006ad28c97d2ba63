// Package summary generates the human-readable overview of configured
// icons written at setup time, and renders it for terminal display.
package summary

import (
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/iconshift/pkg/android"
	"github.com/arthur-debert/iconshift/pkg/iconconfig"
)

const summaryTemplate = `# App Icons

This file is generated by iconshift. It describes the launcher icon
variants configured for this project. Do not edit by hand; change the
icon configuration and run setup again.

Default icon: ` + "`{{.Default}}`" + `

| Identifier | Label | Component | Image |
|------------|-------|-----------|-------|
{{- range .Icons}}
| {{.Identifier}} | {{.Label}} | ` + "`{{.Component}}`" + ` | {{.Image}} |
{{- end}}
{{- range .Icons}}
{{- if .Description}}

## {{.Identifier}}

{{.Description}}
{{- end}}
{{- end}}
`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

type row struct {
	Identifier  string
	Label       string
	Component   string
	Image       string
	Description string
}

type data struct {
	Default string
	Icons   []row
}

// Generate produces the markdown summary for a configuration
func Generate(cfg *iconconfig.Configuration) string {
	d := data{Default: cfg.DefaultIcon()}
	if d.Default == "" {
		d.Default = iconconfig.BaselineIdentifier
	}

	for _, id := range cfg.Identifiers() {
		def, _ := cfg.Lookup(id)
		component := android.BaselineActivity
		if id != iconconfig.BaselineIdentifier {
			component = android.AliasActivity(id)
		}
		label := def.Label
		if label == "" {
			label = id
		}
		d.Icons = append(d.Icons, row{
			Identifier:  id,
			Label:       label,
			Component:   component,
			Image:       def.ImagePath,
			Description: def.Description,
		})
	}

	var b strings.Builder
	_ = summaryTmpl.Execute(&b, d)
	return b.String()
}

// RenderTerminal converts the markdown summary to styled terminal
// output, falling back to the plain text when rendering fails.
func RenderTerminal(markdown string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
