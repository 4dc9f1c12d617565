package main

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/paintbox/internal/editor"
	"github.com/example/paintbox/internal/theme"
)

// parseColor accepts a palette name, an SVG/X11 color name, or #RRGGBB
// and #RRGGBBAA with straight alpha.
func parseColor(s string) (color.NRGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.NRGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := editor.LookupPaletteColor(spec); ok {
		return c, nil
	}
	if c, ok := colornames.Map[spec]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if strings.HasPrefix(spec, "#") {
		c, err := theme.ParseColor(spec)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
}

func formatColor(c color.NRGBA) string {
	return theme.Hex(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}
