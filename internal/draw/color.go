package draw

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a "#rrggbb" colour. Malformed input yields opaque black.
func Hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return toNRGBA(c, 1)
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(a) * 255))
	return c
}

// HSLA builds a colour from hue in degrees (wrapped into [0, 360)),
// saturation and lightness in [0, 1], and alpha in [0, 1].
func HSLA(h, s, l, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return toNRGBA(colorful.Hsl(h, s, l).Clamped(), a)
}

// Blend mixes a toward b by t in [0, 1] in RGB space. Alpha is interpolated
// linearly.
func Blend(a, b color.Color, t float64) color.NRGBA {
	t = clamp01(t)
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	if !okA || !okB {
		return color.NRGBA{}
	}
	na := color.NRGBAModel.Convert(a).(color.NRGBA)
	nb := color.NRGBAModel.Convert(b).(color.NRGBA)
	alpha := (float64(na.A)*(1-t) + float64(nb.A)*t) / 255
	return toNRGBA(ca.BlendRgb(cb, t).Clamped(), alpha)
}

// Luminance returns the perceived lightness of c in [0, 1].
func Luminance(c color.Color) float64 {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	l, _, _ := cf.Lab()
	return clamp01(l)
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
