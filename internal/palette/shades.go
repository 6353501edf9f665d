package palette

import (
	"math"

	"github.com/crazy3lf/colorconv"
)

// ///////////////////////////////////////////////
// Shade ramp
// ///////////////////////////////////////////////

// ShadeKeys lists the ten ramp steps in order, lightest to darkest.
// Renderers iterate this slice so every output lists shades in the same
// order.
var ShadeKeys = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// ShadeRamp maps a shade key from [ShadeKeys] to a lowercase "#rrggbb"
// value. The "500" entry is always the source color's hex verbatim.
type ShadeRamp map[string]string

// shadeStep pairs a ramp key with its interpolation ratio.
type shadeStep struct {
	key   string
	ratio float64
}

// Lighter steps interpolate toward white: l' = 1 - (1-l)*ratio, so a
// smaller ratio lands closer to white. Darker steps interpolate toward
// black: l' = l * (1-ratio).
var (
	lighterSteps = []shadeStep{
		{"50", 0.05},
		{"100", 0.15},
		{"200", 0.30},
		{"300", 0.50},
		{"400", 0.70},
	}
	darkerSteps = []shadeStep{
		{"600", 0.30},
		{"700", 0.50},
		{"800", 0.70},
		{"900", 0.85},
	}
)

// Shades derives the ten-step ramp for c. Hue and saturation are held
// constant; only lightness moves. Lightness is clamped into
// [base, 0.99] for lighter steps and [0.01, base] for darker ones, so
// the ramp stays inside the gamut and never crosses the base even for
// near-white or near-black inputs.
func Shades(c Color) ShadeRamp {
	h := normalizeHue(c.H)
	s := clamp01(c.S / 100)
	l := clamp01(c.L / 100)

	ramp := make(ShadeRamp, len(ShadeKeys))
	for _, st := range lighterSteps {
		raw := 1 - (1-l)*st.ratio
		nl := math.Min(0.99, math.Max(l+0.01, raw))
		if nl < l {
			nl = l
		}
		ramp[st.key] = shadeHex(c, h, s, nl)
	}
	ramp["500"] = c.Hex
	for _, st := range darkerSteps {
		raw := l * (1 - st.ratio)
		nl := math.Max(0.01, math.Min(l-0.01, raw))
		if nl > l {
			nl = l
		}
		ramp[st.key] = shadeHex(c, h, s, nl)
	}
	return ramp
}

// shadeHex converts an HSL triple back to hex. The inputs are already
// clamped into the converter's domain, so failure is unreachable; the
// base hex keeps the ramp total in that case.
func shadeHex(c Color, h, s, l float64) string {
	r, g, b, err := colorconv.HSLToRGB(h, s, l)
	if err != nil {
		return c.Hex
	}
	return FormatHex(r, g, b)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
