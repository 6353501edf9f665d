package render

import (
	"fmt"
	"strings"

	"tools.zach/dev/palettegen/internal/palette"
)

// Tailwind renders a tailwind.config.js extending the theme with one
// entry per color slug mapping shade keys to hex values. Tailwind wants
// the values without the "#" prefix.
func Tailwind(colors []palette.Color) string {
	var b strings.Builder
	b.WriteString(`/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [],
  theme: {
    extend: {
      colors: {
`)

	for _, c := range colors {
		fmt.Fprintf(&b, "        '%s': {\n", c.Slug())
		shades := palette.Shades(c)
		for _, key := range palette.ShadeKeys {
			fmt.Fprintf(&b, "          '%s': '%s',\n", key, strings.TrimPrefix(shades[key], "#"))
		}
		b.WriteString("        },\n")
	}

	b.WriteString(`      },
    },
  },
  plugins: [],
}
`)
	return b.String()
}
