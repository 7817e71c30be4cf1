package palette

import (
	"math"
	"math/rand"
	"testing"
)

func testEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)))
}

// hueDiff returns the absolute circular distance between two hues.
func hueDiff(a, b float64) float64 {
	d := math.Abs(normHue(a) - normHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// signedHueDiff returns b-a wrapped into (-180, 180].
func signedHueDiff(a, b float64) float64 {
	d := normHue(b) - normHue(a)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}

func colorsOf(s *Store) []Color {
	var out []Color
	s.each(func(_ int, sl *Slot) {
		out = append(out, sl.Color)
	})
	return out
}

func TestGenerateOnEmptyStoreIsNoop(t *testing.T) {
	e := testEngine(1)
	empty := &Store{}
	for _, th := range Theories() {
		e.Generate(empty, th) // must not panic or index slot 0
	}
	if empty.Count() != 0 {
		t.Fatalf("empty store gained slots")
	}
}

func TestGenerateNeverTouchesLockedSlots(t *testing.T) {
	for _, th := range Theories() {
		e := testEngine(42)
		s := NewStore()
		s.SetHex(1, "aa5533")
		s.SetHex(3, "112233")
		s.ToggleLock(1)
		s.ToggleLock(3)

		before1, _ := s.HexAt(1)
		before3, _ := s.HexAt(3)
		e.Generate(s, th)
		after1, _ := s.HexAt(1)
		after3, _ := s.HexAt(3)

		if before1 != after1 || before3 != after3 {
			t.Fatalf("%s mutated locked slots: %s->%s, %s->%s",
				th, before1, after1, before3, after3)
		}
	}
}

func TestGenerateClampsEverything(t *testing.T) {
	for _, th := range Theories() {
		e := testEngine(7)
		s := NewStore()
		for s.Count() < Capacity {
			s.Add()
		}
		e.Generate(s, th)
		for i, c := range colorsOf(s) {
			if c.H < 0 || c.H >= 360 {
				t.Fatalf("%s slot %d hue %f out of [0,360)", th, i, c.H)
			}
			if c.S < 0 || c.S > 1 || c.V < 0 || c.V > 1 {
				t.Fatalf("%s slot %d sat/val %f/%f out of [0,1]", th, i, c.S, c.V)
			}
		}
	}
}

func TestComplementaryHuesOpposeAcrossTheWheel(t *testing.T) {
	e := testEngine(11)
	s := &Store{}
	s.slots[0] = &Slot{}
	s.slots[1] = &Slot{}
	s.slots[2] = &Slot{}

	e.Generate(s, Complementary)
	cs := colorsOf(s)

	// Members alternate base/complement; each jittered by at most 4.
	if d := hueDiff(cs[0].H, cs[1].H); math.Abs(d-180) > 8 {
		t.Fatalf("pair hue distance = %f want 180 +/- 8", d)
	}
	if d := hueDiff(cs[0].H, cs[2].H); d > 8 {
		t.Fatalf("repeat of base hue drifted %f from base", d)
	}
}

func TestComplementaryScenarioDefaultPalette(t *testing.T) {
	e := testEngine(23)
	s := NewStore()
	e.Generate(s, Complementary)

	cs := colorsOf(s)
	base := cs[0].H
	for i, c := range cs {
		// Exactly two hue clusters: even logical positions near the base,
		// odd ones near its complement.
		want := base
		if i%2 == 1 {
			want = base + 180
		}
		if d := hueDiff(c.H, want); d > 8 {
			t.Fatalf("slot %d hue %f is %f away from its cluster", i, c.H, d)
		}
		if c.S < 0.52 || c.S > 0.88 {
			t.Fatalf("slot %d saturation %f outside [0.52,0.88]", i, c.S)
		}
		if c.V < 0.47 || c.V > 0.87 {
			t.Fatalf("slot %d value %f outside [0.47,0.87]", i, c.V)
		}
	}
}

func TestAnalogousSpacingWithoutLocks(t *testing.T) {
	e := testEngine(5)
	s := NewStore() // five occupied, none locked
	e.Generate(s, Analogous)

	cs := colorsOf(s)
	for i := 0; i < len(cs)-1; i++ {
		// Adjacent logical positions sit 10 degrees apart, each end
		// jittered by up to 3.
		d := signedHueDiff(cs[i].H, cs[i+1].H)
		if d < 4 || d > 16 {
			t.Fatalf("adjacent hue step %d->%d = %f want 10 +/- 6", i, i+1, d)
		}
	}
}

func TestAnalogousCentersOnLockedSlot(t *testing.T) {
	e := testEngine(9)
	s := NewStore()
	s.SetHex(2, "ff0000") // hue 0 anchor at logical position 2
	s.ToggleLock(2)

	e.Generate(s, Analogous)
	cs := colorsOf(s)

	// Position 0 sits two steps before the center, position 4 two after.
	if d := signedHueDiff(cs[0].H, cs[2].H); math.Abs(d-20) > 6 {
		t.Fatalf("center minus first = %f want 20 +/- 6", d)
	}
	if d := signedHueDiff(cs[2].H, cs[4].H); math.Abs(d-20) > 6 {
		t.Fatalf("last minus center = %f want 20 +/- 6", d)
	}
}

func TestTriadOffsets(t *testing.T) {
	e := testEngine(13)
	s := &Store{}
	for i := 0; i < 3; i++ {
		s.slots[i] = &Slot{}
	}
	e.Generate(s, Triad)
	cs := colorsOf(s)

	if d := signedHueDiff(cs[0].H, cs[1].H); math.Abs(d-120) > 8 {
		t.Fatalf("triad second offset = %f want 120 +/- 8", d)
	}
	if d := signedHueDiff(cs[0].H, cs[2].H); math.Abs(d-240) > 8 && math.Abs(d+120) > 8 {
		t.Fatalf("triad third offset = %f want 240 +/- 8", d)
	}
}

func TestSquareKeepsSatValWhenLocked(t *testing.T) {
	e := testEngine(17)
	s := NewStore()
	s.SetHex(0, "ff0000")
	s.ToggleLock(0)
	s.SetHex(1, "336699")
	before, _ := s.At(1)

	e.Generate(s, Square)
	after, _ := s.At(1)

	if math.Abs(after.Color.S-before.Color.S) > 1e-9 ||
		math.Abs(after.Color.V-before.Color.V) > 1e-9 {
		t.Fatalf("square with locks should hold sat/val: %+v -> %+v",
			before.Color, after.Color)
	}
	if d := hueDiff(after.Color.H, 90); d > 8 {
		t.Fatalf("square member 1 hue = %f want 90 +/- 8 from red anchor", after.Color.H)
	}
}

func TestMonochromeSweepsSatAndVal(t *testing.T) {
	e := testEngine(3)
	s := NewStore()
	e.Generate(s, Monochrome)

	cs := colorsOf(s)
	first := cs[0]
	for i, c := range cs {
		if d := hueDiff(c.H, first.H); d > 1 {
			t.Fatalf("monochrome hue drifted %f at slot %d", d, i)
		}
		if i > 0 {
			if c.S <= cs[i-1].S || c.V <= cs[i-1].V {
				t.Fatalf("monochrome sweep not increasing at slot %d", i)
			}
		}
	}
	if math.Abs(cs[0].S-0.1) > 1e-9 || math.Abs(cs[len(cs)-1].S-0.9) > 1e-9 {
		t.Fatalf("saturation sweep endpoints = %f..%f want 0.1..0.9",
			cs[0].S, cs[len(cs)-1].S)
	}
}

func TestShadowsDescendAfterLockedAnchor(t *testing.T) {
	e := testEngine(29)
	s := NewStore()
	s.SetHex(2, "cc4422")
	s.ToggleLock(2)
	anchorValBefore, _ := s.At(2)

	e.Generate(s, Shadows)
	cs := colorsOf(s)
	anchor := cs[2]

	if anchor != anchorValBefore.Color {
		t.Fatalf("anchor slot changed")
	}

	// After the anchor: strictly decreasing, ending one even step above 0.
	prev := anchor.V
	for i := 3; i < len(cs); i++ {
		if cs[i].V >= prev {
			t.Fatalf("value did not decrease at slot %d: %f >= %f", i, cs[i].V, prev)
		}
		prev = cs[i].V
	}
	step := anchor.V / float64(len(cs)-2)
	if math.Abs(cs[len(cs)-1].V-step) > 1e-9 {
		t.Fatalf("final value = %f want one step (%f) above black", cs[len(cs)-1].V, step)
	}

	// Before the anchor: value climbs toward white moving away from it.
	if !(cs[0].V > cs[1].V && cs[1].V > anchor.V) {
		t.Fatalf("values before anchor should rise toward white: %f, %f, %f",
			cs[0].V, cs[1].V, anchor.V)
	}

	// Shadows hold the anchor saturation and hue everywhere.
	for i, c := range cs {
		if math.Abs(c.S-anchor.S) > 1e-9 || hueDiff(c.H, anchor.H) > 1e-9 {
			t.Fatalf("slot %d hue/sat drifted from anchor", i)
		}
	}
}

func TestLightsDesaturateTowardWhite(t *testing.T) {
	e := testEngine(31)
	s := NewStore()
	s.SetHex(1, "227744")
	s.ToggleLock(1)

	e.Generate(s, Lights)
	cs := colorsOf(s)
	anchor := cs[1]

	// After the anchor: brighter and less saturated with each step.
	for i := 2; i < len(cs); i++ {
		if cs[i].V <= cs[i-1].V {
			t.Fatalf("value did not increase at slot %d", i)
		}
		if cs[i].S > cs[i-1].S {
			t.Fatalf("saturation did not fall at slot %d", i)
		}
	}
	// Before the anchor: darker, climbing up from black.
	if cs[0].V >= anchor.V {
		t.Fatalf("slot before anchor should be darker: %f >= %f", cs[0].V, anchor.V)
	}
}

func TestNeutralsDesaturateSymmetrically(t *testing.T) {
	e := testEngine(37)
	s := NewStore()
	s.SetHex(2, "4488cc")
	s.ToggleLock(2)

	e.Generate(s, Neutrals)
	cs := colorsOf(s)
	anchor := cs[2]

	for i, c := range cs {
		if hueDiff(c.H, anchor.H) > 1e-9 {
			t.Fatalf("neutrals hue drifted at slot %d", i)
		}
	}
	// Farthest slots fully desaturate; saturation falls with distance.
	if cs[0].S != 0 || cs[4].S != 0 {
		t.Fatalf("far slots should reach saturation 0, got %f and %f", cs[0].S, cs[4].S)
	}
	if !(cs[1].S > cs[0].S && cs[3].S > cs[4].S) {
		t.Fatalf("saturation should rise toward the anchor")
	}
}

func TestAnchorCircularMeanHandlesWrap(t *testing.T) {
	// Locked hues straddling the wrap (350 and 10) must average to ~0,
	// not to the naive arithmetic 180.
	got := circularMeanDeg([]float64{350, 10})
	if hueDiff(got, 0) > 0.01 {
		t.Fatalf("circular mean of 350,10 = %f want ~0", got)
	}

	got = circularMeanDeg([]float64{90, 180})
	if hueDiff(got, 135) > 0.01 {
		t.Fatalf("circular mean of 90,180 = %f want 135", got)
	}
}

func TestGenerateIsDeterministicUnderFixedSeed(t *testing.T) {
	run := func() []Color {
		e := testEngine(99)
		s := NewStore()
		e.Generate(s, Hexad)
		return colorsOf(s)
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different colors at slot %d", i)
		}
	}
}

func TestSingleUnlockedSlotGetsRandomAnchor(t *testing.T) {
	e := testEngine(41)
	s := &Store{}
	s.slots[4] = &Slot{}

	e.Generate(s, Complementary)
	sl, _ := s.At(0)
	if sl.Color == (Color{}) {
		t.Fatalf("lone slot should have received the generated anchor color")
	}
	if math.Abs(sl.Color.V-0.65) > 0.23 {
		t.Fatalf("lone slot value %f strayed from the complementary base", sl.Color.V)
	}
}
