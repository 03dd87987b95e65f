// Package export renders a tonal ramp as configuration snippets for
// downstream tooling. All emitters are deterministic; writing the
// result anywhere is the caller's concern.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/greghuntoon-figma/color-utils/internal/colour"
)

//go:embed *.tmpl
var templates embed.FS

// CSS renders the palette as CSS custom properties, one variable per
// ramp step keyed by the palette's token name.
func CSS(p colour.Palette) ([]byte, error) {
	return render("css_variables.tmpl", p)
}

// TailwindConfig renders the palette as a tailwind.config.js colour
// block keyed by the palette's token name.
func TailwindConfig(p colour.Palette) ([]byte, error) {
	return render("tailwind.config.js.tmpl", p)
}

// render executes a named embedded template over the palette.
func render(name string, p colour.Palette) ([]byte, error) {
	tmplContent, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
