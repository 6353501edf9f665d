package render

import (
	"fmt"
	"strings"

	"tools.zach/dev/palettegen/internal/palette"
)

// Markdown renders the brand-guidelines document: one section per color
// with its hex/RGB/HSL values and CSS variable, followed by shared
// usage, CSS and accessibility guidance.
func Markdown(colors []palette.Color) string {
	var b strings.Builder
	b.WriteString(`# Color Palette Brand Guidelines

## Overview
This document outlines the color palette and usage guidelines for the brand.

## Primary Colors

`)

	for _, c := range colors {
		slug := c.Slug()
		fmt.Fprintf(&b, "### %s\n\n", c.Name)
		fmt.Fprintf(&b, "**Hex:** `%s`  \n", c.Hex)
		fmt.Fprintf(&b, "**RGB:** `rgb(%d, %d, %d)`  \n", c.R, c.G, c.B)
		fmt.Fprintf(&b, "**HSL:** `hsl(%.1f, %.1f%%, %.1f%%)`  \n", c.H, c.S, c.L)
		fmt.Fprintf(&b, "**CSS Variable:** `var(--color-%s)`\n\n", slug)
		b.WriteString(`**Usage:**
- Primary brand color
- Use for key CTAs and important elements
- Maintains brand identity

**Shades Available:**
- 50 (lightest) to 900 (darkest)
`)
		fmt.Fprintf(&b, "- Access via CSS variable: `var(--color-%s-[50-900])`\n\n---\n\n", slug)
	}

	b.WriteString(markdownGuidance)
	return b.String()
}

// markdownGuidance is the static tail shared by every palette.
const markdownGuidance = `
## Usage Guidelines

### Do's
- Use primary colors for brand elements and CTAs
- Use lighter shades (50-300) for backgrounds
- Use medium shades (400-600) for primary actions
- Use darker shades (700-900) for text and emphasis
- Maintain sufficient contrast ratios for accessibility (WCAG AA minimum)

### Don'ts
- Don't use colors that clash with the brand palette
- Don't use colors at full opacity on light backgrounds without consideration
- Don't mix too many colors in a single design
- Don't use dark shades on dark backgrounds

## CSS Usage

Import the palette CSS file:
` + "```css" + `
@import 'palette.css';
` + "```" + `

Use CSS variables:
` + "```css" + `
.my-element {
    background-color: var(--color-fire-red);
    color: var(--color-fire-red-900);
}
` + "```" + `

Use utility classes:
` + "```html" + `
<div class="bg-fire-red text-white">Content</div>
` + "```" + `

## Accessibility

All color combinations should meet WCAG 2.1 Level AA contrast requirements:
- Normal text: 4.5:1 contrast ratio
- Large text: 3:1 contrast ratio
- UI components: 3:1 contrast ratio

Test your color combinations using tools like:
- WebAIM Contrast Checker
- Chrome DevTools Accessibility panel
`
