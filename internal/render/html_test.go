package render

import (
	"strings"
	"testing"
)

// ///////////////////////////////////////////////
// HTML Renderer Tests
// ///////////////////////////////////////////////

func TestHTMLDefaults(t *testing.T) {
	out := HTML(testColors(t, [2]string{"#ff0000", "Fire Red"}), HTMLOptions{})

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Color Palette</title>",
		`<link rel="stylesheet" href="palette.css">`,
		"<h1>COLOR PALETTE</h1>",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestHTMLOptionsApplied(t *testing.T) {
	opts := HTMLOptions{
		Title:        "acme colors",
		CSSFile:      "acme.css",
		ImageSection: true,
		PaletteImage: "acme-palette.png",
	}
	out := HTML(testColors(t, [2]string{"#ff0000", "Fire Red"}), opts)

	for _, want := range []string{
		"<title>acme colors</title>",
		"<h1>ACME COLORS</h1>",
		`href="acme.css"`,
		"copyImage('acme-palette.png')",
		"downloadImage('acme-palette.png', 'color_palette.png')",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestHTMLColorBlock(t *testing.T) {
	out := HTML(testColors(t, [2]string{"#ff0000", "Fire Red"}), HTMLOptions{})

	// Red is dark, so its labels get white text.
	for _, want := range []string{
		`<div class="color-block" style="background-color: #ff0000;"`,
		`<div class="color-name" style="color: #FFFFFF;">Fire Red</div>`,
		`<div class="color-hex" style="color: #FFFFFF;">#FF0000</div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestHTMLShadeStrip(t *testing.T) {
	out := HTML(testColors(t, [2]string{"#ff0000", "Fire Red"}), HTMLOptions{})

	if got := strings.Count(out, `class="shade-block"`); got != 10 {
		t.Errorf("got %d shade blocks, want 10", got)
	}
	// Shade 50 of red is light, so it gets black text and an uppercase
	// hex label.
	for _, want := range []string{
		"copyHex('#fff2f2')",
		`<div class="shade-label" style="color: #000000;">50</div>`,
		`<div class="shade-hex" style="color: #000000;">#FFF2F2</div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestHTMLImageSectionOmitted(t *testing.T) {
	out := HTML(testColors(t, [2]string{"#ff0000", "Fire Red"}), HTMLOptions{ImageSection: false})

	if strings.Contains(out, `<div class="palette-image-section">`) {
		t.Error("image section rendered although disabled")
	}
	if strings.Contains(out, "PALETTE IMAGE") {
		t.Error("image actions rendered although disabled")
	}
	// The grid still has to be closed before the script block.
	if !strings.Contains(out, "</div>\n\n    <script>") {
		t.Error("palette grid not closed before script block")
	}
}

func TestHTMLMultipleColors(t *testing.T) {
	out := HTML(testColors(t,
		[2]string{"#ff0000", "Fire Red"},
		[2]string{"#3b82f6", "Brand Blue"},
	), HTMLOptions{})

	if got := strings.Count(out, `class="color-block"`); got != 2 {
		t.Errorf("got %d color blocks, want 2", got)
	}
	if got := strings.Count(out, `class="shade-block"`); got != 20 {
		t.Errorf("got %d shade blocks, want 20", got)
	}
	red := strings.Index(out, "Fire Red")
	blue := strings.Index(out, "Brand Blue")
	if red < 0 || blue < 0 || red > blue {
		t.Error("color blocks out of input order")
	}
}
