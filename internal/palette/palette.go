// Package palette holds the color model shared by every generator stage:
// parsing the colors file, hex and HSL conversions, slug derivation,
// contrast-aware text color selection, and the ten-step shade ramp.
//
// A [Color] is immutable once parsed. All derived values (slugs, shades,
// text colors) are pure functions of it, so renderers can be handed the
// same slice without coordination.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/crazy3lf/colorconv"
)

// ///////////////////////////////////////////////
// Color
// ///////////////////////////////////////////////

// Color is one parsed palette entry.
//
// Hex is normalized to lowercase "#rrggbb". H is the hue in degrees
// [0, 360); S and L are percentages [0, 100] as produced by the HSL
// conversion, matching how they appear in CSS output.
type Color struct {
	Hex  string
	Name string

	R, G, B uint8
	H, S, L float64
}

// New builds a Color from a hex code (with or without a leading "#")
// and a display name. The name is stored as given; callers are expected
// to have trimmed it.
func New(hex, name string) (Color, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return Color{}, err
	}
	h, s, l := colorconv.RGBToHSL(r, g, b)
	return Color{
		Hex:  FormatHex(r, g, b),
		Name: name,
		R:    r,
		G:    g,
		B:    b,
		H:    normalizeHue(h),
		S:    s * 100,
		L:    l * 100,
	}, nil
}

// Slug returns the identifier used for CSS variables, Tailwind keys and
// image file names: the name lowercased with spaces replaced by hyphens.
func (c Color) Slug() string {
	return strings.ReplaceAll(strings.ToLower(c.Name), " ", "-")
}

// UpperHex returns the hex code uppercased with its "#" prefix, the form
// shown to humans in the HTML preview and on rendered swatches.
func (c Color) UpperHex() string {
	return strings.ToUpper(c.Hex)
}

// RGBA returns the color as an opaque image/color value for rasterizing.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ///////////////////////////////////////////////
// Contrast
// ///////////////////////////////////////////////

// Luminance returns the perceived brightness in [0, 1] using the
// Rec. 601 weights: 0.299 R + 0.587 G + 0.114 B.
func (c Color) Luminance() float64 {
	return luminance(c.R, c.G, c.B)
}

func luminance(r, g, b uint8) float64 {
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// Dark reports whether the color reads as dark, i.e. its luminance is
// below 0.5 and light text should be drawn on top of it.
func (c Color) Dark() bool {
	return c.Luminance() < 0.5
}

// TextColor returns the hex of a readable text color for this
// background: "#FFFFFF" on dark colors, "#000000" on light ones.
func (c Color) TextColor() string {
	if c.Dark() {
		return "#FFFFFF"
	}
	return "#000000"
}

// ShadowColor returns the inverse of [Color.TextColor], used as a drop
// shadow behind swatch labels so they stay legible on mid-tones.
func (c Color) ShadowColor() string {
	if c.Dark() {
		return "#000000"
	}
	return "#FFFFFF"
}

// TextColorFor picks the readable text color for an arbitrary hex
// background without building a full Color, for callers that only hold
// a derived shade hex. Unparsable input gets black text.
func TextColorFor(hex string) string {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return "#000000"
	}
	if luminance(r, g, b) < 0.5 {
		return "#FFFFFF"
	}
	return "#000000"
}

// ///////////////////////////////////////////////
// Hex conversions
// ///////////////////////////////////////////////

// ParseHex parses a six-digit hex color, case-insensitive, with or
// without a leading "#".
func ParseHex(hex string) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: want 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// FormatHex formats RGB channels as lowercase "#rrggbb".
func FormatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// normalizeHue maps a hue in degrees into [0, 360), the domain the HSL
// conversions require.
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
