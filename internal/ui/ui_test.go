// Tests for styled text helpers and the quiet flag. Color escape output
// depends on the terminal, so tests pin color.NoColor for determinism.
package ui

import (
	"testing"

	"github.com/fatih/color"
)

// plainColors forces uncolored output for the duration of a test.
func plainColors(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

// ///////////////////////////////////////////////
// Styled Text
// ///////////////////////////////////////////////

func TestStyledFormatsWithoutColor(t *testing.T) {
	plainColors(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"success", Success("wrote %d files", 6), "wrote 6 files"},
		{"info", Info("watching %s", "colors.txt"), "watching colors.txt"},
		{"warn", Warn("skipped"), "skipped"},
		{"error", Error("no colors found"), "no colors found"},
		{"muted", Muted("images disabled"), "images disabled"},
		{"bold", Bold("Palette"), "Palette"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// IsRich
// ///////////////////////////////////////////////

func TestIsRichRespectsNoColor(t *testing.T) {
	origNo, origForce := noColor, forceColor
	t.Cleanup(func() { noColor, forceColor = origNo, origForce })

	noColor, forceColor = true, false
	if IsRich() {
		t.Error("IsRich() = true with NO_COLOR set")
	}
}

func TestIsRichForceColorOverridesNoColor(t *testing.T) {
	origNo, origForce := noColor, forceColor
	origPlain := color.NoColor
	t.Cleanup(func() {
		noColor, forceColor = origNo, origForce
		color.NoColor = origPlain
	})

	noColor, forceColor = true, true
	color.NoColor = false
	if !IsRich() {
		t.Error("IsRich() = false with FORCE_COLOR set")
	}
}

// ///////////////////////////////////////////////
// Quiet Flag
// ///////////////////////////////////////////////

func TestSetQuiet(t *testing.T) {
	t.Cleanup(func() { SetQuiet(false) })

	if Quiet() {
		t.Fatal("expected quiet off by default")
	}
	SetQuiet(true)
	if !Quiet() {
		t.Error("expected quiet on after SetQuiet(true)")
	}
	SetQuiet(false)
	if Quiet() {
		t.Error("expected quiet off after SetQuiet(false)")
	}
}
