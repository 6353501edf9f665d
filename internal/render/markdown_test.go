package render

import (
	"strings"
	"testing"
)

// ///////////////////////////////////////////////
// Markdown Renderer Tests
// ///////////////////////////////////////////////

func TestMarkdownHeading(t *testing.T) {
	out := Markdown(testColors(t, [2]string{"#ff0000", "Fire Red"}))
	if !strings.HasPrefix(out, "# Color Palette Brand Guidelines\n") {
		t.Errorf("unexpected document heading: %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestMarkdownColorSection(t *testing.T) {
	out := Markdown(testColors(t, [2]string{"#ff0000", "Fire Red"}))

	for _, want := range []string{
		"### Fire Red\n",
		"**Hex:** `#ff0000`  \n",
		"**RGB:** `rgb(255, 0, 0)`  \n",
		"**HSL:** `hsl(0.0, 100.0%, 50.0%)`  \n",
		"**CSS Variable:** `var(--color-fire-red)`",
		"`var(--color-fire-red-[50-900])`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}
}

func TestMarkdownSharedGuidance(t *testing.T) {
	out := Markdown(testColors(t, [2]string{"#3b82f6", "Brand Blue"}))

	for _, want := range []string{
		"## Usage Guidelines",
		"### Do's",
		"### Don'ts",
		"## CSS Usage",
		"@import 'palette.css';",
		"## Accessibility",
		"WebAIM Contrast Checker",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}
}

func TestMarkdownSectionPerColor(t *testing.T) {
	out := Markdown(testColors(t,
		[2]string{"#ff0000", "Fire Red"},
		[2]string{"#3b82f6", "Brand Blue"},
		[2]string{"#1a1a2e", "Midnight"},
	))

	if got := strings.Count(out, "\n---\n"); got != 3 {
		t.Errorf("got %d section separators, want 3", got)
	}
	for _, name := range []string{"### Fire Red", "### Brand Blue", "### Midnight"} {
		if !strings.Contains(out, name) {
			t.Errorf("Markdown missing section %q", name)
		}
	}
}
