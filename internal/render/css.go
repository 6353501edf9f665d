// Package render turns a parsed color list into the text artifacts:
// CSS custom properties, the HTML preview page, Markdown brand
// guidelines and a Tailwind color config.
//
// Every renderer is a pure function from the same immutable
// []palette.Color to a string; writing the result to disk is the
// driver's job. Output is deterministic: same input, same bytes.
package render

import (
	"fmt"
	"strings"

	"tools.zach/dev/palettegen/internal/palette"
)

// CSS renders the custom-property sheet: one :root block with base
// hex/rgb/hsl variables and the ten shade variables per color, followed
// by background/text/border utility classes.
func CSS(colors []palette.Color) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	b.WriteString("  /* Primary Colors */\n")

	for _, c := range colors {
		slug := c.Slug()
		fmt.Fprintf(&b, "  --color-%s: %s;\n", slug, c.Hex)
		fmt.Fprintf(&b, "  --color-%s-rgb: %d, %d, %d;\n", slug, c.R, c.G, c.B)
		fmt.Fprintf(&b, "  --color-%s-hsl: %.1f, %.1f%%, %.1f%%;\n", slug, c.H, c.S, c.L)

		shades := palette.Shades(c)
		fmt.Fprintf(&b, "\n  /* %s Shades */\n", c.Name)
		for _, key := range palette.ShadeKeys {
			fmt.Fprintf(&b, "  --color-%s-%s: %s;\n", slug, key, shades[key])
		}
	}

	b.WriteString("}\n\n")

	b.WriteString("/* Utility Classes */\n")
	for _, c := range colors {
		slug := c.Slug()
		fmt.Fprintf(&b, ".bg-%s { background-color: var(--color-%s); }\n", slug, slug)
		fmt.Fprintf(&b, ".text-%s { color: var(--color-%s); }\n", slug, slug)
		fmt.Fprintf(&b, ".border-%s { border-color: var(--color-%s); }\n", slug, slug)
	}

	return b.String()
}
