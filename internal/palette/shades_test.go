package palette

import (
	"regexp"
	"testing"
)

// relight re-derives the lightness percentage of a rendered shade so
// ramp ordering can be checked through the same conversion the
// generator uses.
func relight(t *testing.T, hex string) float64 {
	t.Helper()
	c, err := New(hex, "x")
	if err != nil {
		t.Fatalf("New(%q): %v", hex, err)
	}
	return c.L
}

func mustColor(t *testing.T, hex, name string) Color {
	t.Helper()
	c, err := New(hex, name)
	if err != nil {
		t.Fatalf("New(%q): %v", hex, err)
	}
	return c
}

// ///////////////////////////////////////////////
// Ramp Shape Tests
// ///////////////////////////////////////////////

func TestShadeKeysOrder(t *testing.T) {
	want := []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
	if len(ShadeKeys) != len(want) {
		t.Fatalf("ShadeKeys has %d entries, want %d", len(ShadeKeys), len(want))
	}
	for i, k := range want {
		if ShadeKeys[i] != k {
			t.Errorf("ShadeKeys[%d] = %q, want %q", i, ShadeKeys[i], k)
		}
	}
}

func TestShadesHasExactlyTenKeys(t *testing.T) {
	ramp := Shades(mustColor(t, "#3b82f6", "Brand Blue"))
	if len(ramp) != len(ShadeKeys) {
		t.Fatalf("ramp has %d entries, want %d", len(ramp), len(ShadeKeys))
	}
	for _, k := range ShadeKeys {
		if _, ok := ramp[k]; !ok {
			t.Errorf("ramp missing key %q", k)
		}
	}
}

func TestShadesWellFormedHex(t *testing.T) {
	hexRe := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for _, base := range []string{"#ff0000", "#3b82f6", "#f59e0b", "#1a1a2e", "#ffffff", "#000000"} {
		ramp := Shades(mustColor(t, base, "x"))
		for _, k := range ShadeKeys {
			if !hexRe.MatchString(ramp[k]) {
				t.Errorf("base %s shade %s = %q, not lowercase #rrggbb", base, k, ramp[k])
			}
		}
	}
}

// ///////////////////////////////////////////////
// Ramp Property Tests
// ///////////////////////////////////////////////

func TestShadesBaseIdentity(t *testing.T) {
	for _, base := range []string{"#ff0000", "#3b82f6", "#f59e0b", "#1a1a2e", "#ffffff", "#000000"} {
		c := mustColor(t, base, "x")
		if got := Shades(c)["500"]; got != c.Hex {
			t.Errorf("Shades(%s)[500] = %q, want base hex verbatim", base, got)
		}
	}
}

func TestShadesMonotoneLightness(t *testing.T) {
	for _, base := range []string{"#ff0000", "#00ff00", "#0000ff", "#3b82f6", "#f59e0b", "#6d28d9"} {
		t.Run(base, func(t *testing.T) {
			ramp := Shades(mustColor(t, base, "x"))
			prev := relight(t, ramp[ShadeKeys[0]])
			for _, k := range ShadeKeys[1:] {
				cur := relight(t, ramp[k])
				if cur > prev {
					t.Errorf("lightness increases at shade %s: %.2f -> %.2f", k, prev, cur)
				}
				prev = cur
			}
		})
	}
}

func TestShadesStayOnBaseSide(t *testing.T) {
	for _, base := range []string{"#ff0000", "#3b82f6", "#f59e0b", "#1a1a2e", "#fefefe", "#ffffff", "#000000"} {
		t.Run(base, func(t *testing.T) {
			baseL := relight(t, base)
			ramp := Shades(mustColor(t, base, "x"))
			for _, k := range []string{"50", "100", "200", "300", "400"} {
				if l := relight(t, ramp[k]); l < baseL {
					t.Errorf("lighter shade %s has lightness %.2f below base %.2f", k, l, baseL)
				}
			}
			for _, k := range []string{"600", "700", "800", "900"} {
				if l := relight(t, ramp[k]); l > baseL {
					t.Errorf("darker shade %s has lightness %.2f above base %.2f", k, l, baseL)
				}
			}
		})
	}
}

// ///////////////////////////////////////////////
// Known Value Tests
// ///////////////////////////////////////////////

// Pure red has exact HSL (0, 1, 0.5), so its ramp endpoints land on
// channel values with no rounding ambiguity.
func TestShadesRedKnownValues(t *testing.T) {
	ramp := Shades(mustColor(t, "#ff0000", "Fire Red"))
	tests := []struct {
		key  string
		want string
	}{
		{"50", "#fff2f2"},
		{"500", "#ff0000"},
		{"900", "#260000"},
	}
	for _, tt := range tests {
		if got := ramp[tt.key]; got != tt.want {
			t.Errorf("red shade %s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// ///////////////////////////////////////////////
// Extreme Base Tests
// ///////////////////////////////////////////////

func TestShadesWhiteBase(t *testing.T) {
	ramp := Shades(mustColor(t, "#ffffff", "Snow"))
	for _, k := range []string{"50", "100", "200", "300", "400", "500"} {
		if ramp[k] != "#ffffff" {
			t.Errorf("white shade %s = %q, want #ffffff", k, ramp[k])
		}
	}
	prev := relight(t, ramp["500"])
	for _, k := range []string{"600", "700", "800", "900"} {
		cur := relight(t, ramp[k])
		if cur >= prev {
			t.Errorf("white darker ramp not descending at %s: %.2f -> %.2f", k, prev, cur)
		}
		prev = cur
	}
}

func TestShadesBlackBase(t *testing.T) {
	ramp := Shades(mustColor(t, "#000000", "Ink"))
	for _, k := range []string{"500", "600", "700", "800", "900"} {
		if ramp[k] != "#000000" {
			t.Errorf("black shade %s = %q, want #000000", k, ramp[k])
		}
	}
	prev := relight(t, ramp["50"])
	for _, k := range []string{"100", "200", "300", "400"} {
		cur := relight(t, ramp[k])
		if cur >= prev {
			t.Errorf("black lighter ramp not descending at %s: %.2f -> %.2f", k, prev, cur)
		}
		prev = cur
	}
}
