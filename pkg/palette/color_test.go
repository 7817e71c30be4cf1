package palette

import (
	"math"
	"testing"
)

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func TestHexRoundTripWithinOnePerChannel(t *testing.T) {
	cases := []string{
		"000000", "ffffff", "ff0000", "00ff00", "0000ff",
		"9d87ae", "50fa7b", "abcdef", "123456", "deadbe",
		"808080", "010203", "fefefe", "7f7f7f",
	}

	for _, hex := range cases {
		r0, g0, b0 := HexToRGB(hex)
		h, s, v := RGBToHSV(r0, g0, b0)
		out := HSVToHex(h, s, v)
		r1, g1, b1 := HexToRGB(out)

		if absDiff(r0, r1) > 1 || absDiff(g0, g1) > 1 || absDiff(b0, b1) > 1 {
			t.Fatalf("round trip of %s drifted to %s", hex, out)
		}
	}
}

func TestHexToRGBPadsShortInput(t *testing.T) {
	r, g, b := HexToRGB("ff")
	if r != 0xff || g != 0 || b != 0 {
		t.Fatalf("HexToRGB(\"ff\") = %d,%d,%d want 255,0,0", r, g, b)
	}

	r, g, b = HexToRGB("")
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("HexToRGB(\"\") = %d,%d,%d want 0,0,0", r, g, b)
	}
}

func TestHexToRGBIsTotalOverJunkInput(t *testing.T) {
	// The boundary filters input to the hex alphabet, but the parser must
	// still survive anything.
	cases := []string{"#ff00zz", "not a color", "ABCDEF0123", "##", "ＦＦ"}
	for _, in := range cases {
		HexToRGB(in) // must not panic
	}

	r, g, b := HexToRGB("#AbCdEf")
	if r != 0xab || g != 0xcd || b != 0xef {
		t.Fatalf("mixed-case parse = %d,%d,%d want 171,205,239", r, g, b)
	}
}

func TestRGBToHSVKnownValues(t *testing.T) {
	h, s, v := RGBToHSV(255, 0, 0)
	if math.Abs(h) > 0.01 || math.Abs(s-1) > 0.01 || math.Abs(v-1) > 0.01 {
		t.Fatalf("red = %f,%f,%f want 0,1,1", h, s, v)
	}

	h, s, v = RGBToHSV(0, 0, 0)
	if s != 0 || v != 0 {
		t.Fatalf("black = %f,%f,%f want s=0 v=0", h, s, v)
	}

	h, _, _ = RGBToHSV(0, 0, 255)
	if math.Abs(h-240) > 0.01 {
		t.Fatalf("blue hue = %f want 240", h)
	}
}

func TestHSVToHexClampsOutOfRange(t *testing.T) {
	if got := HSVToHex(0, 2, 2); got != "ff0000" {
		t.Fatalf("oversaturated red = %s want ff0000", got)
	}
	if got := HSVToHex(-120, 1, 1); got != HSVToHex(240, 1, 1) {
		t.Fatalf("negative hue did not wrap: %s", got)
	}
}

func TestNormHue(t *testing.T) {
	if got := normHue(-10); got != 350 {
		t.Fatalf("normHue(-10) = %f want 350", got)
	}
	if got := normHue(720); got != 0 {
		t.Fatalf("normHue(720) = %f want 0", got)
	}
	if got := normHue(359.5); got != 359.5 {
		t.Fatalf("normHue(359.5) = %f want 359.5", got)
	}
}
