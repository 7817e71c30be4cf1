// Package palette implements the palette core: HSV color handling, the
// nine-slot store with lockable entries, and the harmony engine that
// regenerates unlocked slots from a chosen color theory.
package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HexDigits is the character set the hex editor accepts. Input is filtered
// against this set at the UI boundary before it reaches the core.
const HexDigits = "0123456789abcdefABCDEF"

// Color is a hue/saturation/value triple. Hue is in degrees [0,360),
// saturation and value in [0,1]. The canonical serialized form is a
// six-digit hex RGB string without a leading '#'.
type Color struct {
	H float64
	S float64
	V float64
}

// ColorFromHex parses a hex string into a Color. See HexToRGB for how
// short or malformed input is handled.
func ColorFromHex(text string) Color {
	h, s, v := RGBToHSV(HexToRGB(text))
	return Color{H: h, S: s, V: v}
}

// Hex returns the six-digit lowercase hex form of the color, no '#'.
func (c Color) Hex() string {
	return HSVToHex(c.H, c.S, c.V)
}

// normalizeHex reduces arbitrary input to exactly six hex digits: a leading
// '#' is stripped, non-hex bytes are dropped, overlong input is truncated
// and short input is right-padded with '0'. Undefined trailing channels
// therefore read as zero, which matches the neutral placeholder slots the
// store creates.
func normalizeHex(text string) string {
	var b strings.Builder
	b.Grow(6)
	for _, r := range strings.TrimPrefix(text, "#") {
		if b.Len() == 6 {
			break
		}
		if strings.ContainsRune(HexDigits, r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) < 6 {
		out += strings.Repeat("0", 6-len(out))
	}
	return out
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// HexToRGB parses up to six hex digits into an RGB triple. The function is
// total: it never fails, whatever the input looks like.
func HexToRGB(text string) (r, g, b uint8) {
	t := normalizeHex(text)
	r = hexNibble(t[0])<<4 | hexNibble(t[1])
	g = hexNibble(t[2])<<4 | hexNibble(t[3])
	b = hexNibble(t[4])<<4 | hexNibble(t[5])
	return r, g, b
}

// RGBToHSV converts an RGB triple to hue [0,360), saturation and value [0,1].
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	return c.Hsv()
}

// HSVToHex converts an HSV triple to its six-digit hex form, no '#'.
// Out-of-range components are clamped rather than rejected.
func HSVToHex(h, s, v float64) string {
	c := colorful.Hsv(normHue(h), clamp01(s), clamp01(v))
	return strings.TrimPrefix(c.Clamped().Hex(), "#")
}

// normHue wraps a hue in degrees into [0,360).
func normHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
