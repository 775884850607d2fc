package utils

import "fmt"

// HSLToHex converts HSL (h in degrees, s and l in 0..1) to a #RRGGBB string
func HSLToHex(h, s, l float64) string {
	r, g, b := HSLToRGB(h, s, l)
	return RGBToHex(r, g, b)
}

// RGBToHex formats an RGB triple as #RRGGBB
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// HSLToRGB converts HSL color space to RGB.
// h: hue (0-360), s: saturation (0-1), l: lightness (0-1)
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	h = ClampFloat(h, 0, 360) / 360.0
	s = ClampFloat(s, 0, 1)
	l = ClampFloat(l, 0, 1)

	var r1, g1, b1 float64

	if s == 0 {
		// Achromatic (gray)
		r1, g1, b1 = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r1 = hueToRGB(p, q, h+1.0/3.0)
		g1 = hueToRGB(p, q, h)
		b1 = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(r1*255 + 0.5), uint8(g1*255 + 0.5), uint8(b1*255 + 0.5)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// QuantizeRGB reduces a color to QuantizeBits bits per channel and returns
// the packed bucket key. Colors in the same bucket look alike.
func QuantizeRGB(r, g, b uint8) uint16 {
	shift := 8 - QuantizeBits
	return uint16(r>>shift)<<(2*QuantizeBits) | uint16(g>>shift)<<QuantizeBits | uint16(b>>shift)
}

// Luminance returns the relative luminance of an RGB color in 0..1
func Luminance(r, g, b uint8) float64 {
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255.0
}
