package palette

import (
	"math"
	"math/rand"
	"time"
)

// Engine regenerates the unlocked slots of a store according to a theory.
// The random source is injected so generation is deterministic under a
// fixed seed. An Engine is not safe for concurrent use; callers serialize
// generation per store.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine backed by the given random source, or a
// time-seeded one when rng is nil.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Generate runs the named theory over the store, writing a new color into
// every occupied, unlocked slot. Locked slots are never touched. An empty
// store is a no-op.
func (e *Engine) Generate(st *Store, th Theory) {
	if st == nil || st.Count() == 0 {
		return
	}

	switch th {
	case Analogous:
		e.generateAnalogous(st)
	case Complementary:
		e.generateGroup(st, groupConfig{
			size: 2, jitter: 4,
			baseSat: 0.70, baseVal: 0.65,
			satLo: 0.12, satHi: 0.18,
			valLo: 0.15, valHi: 0.22, valDown: 0.18,
		})
	case Triad:
		e.generateGroup(st, groupConfig{
			size: 3, jitter: 4,
			baseSat: 0.72, baseVal: 0.68,
			satLo: 0.12, satHi: 0.18,
			valLo: 0.15, valHi: 0.22, valDown: 0.22,
		})
	case Square:
		e.generateSquare(st)
	case Tetrad:
		e.generateGroup(st, groupConfig{
			size: 4, jitter: 4,
			baseSat: 0.68, baseVal: 0.63,
			satLo: 0.12, satHi: 0.16,
			valLo: 0.15, valHi: 0.20, valDown: 0.20,
		})
	case Hexad:
		e.generateGroup(st, groupConfig{
			size: 6, jitter: 4,
			baseSat: 0.65, baseVal: 0.60,
			satLo: 0.10, satHi: 0.14,
			valLo: 0.12, valHi: 0.18, valDown: 0.18,
		})
	case Monochrome:
		e.generateMonochrome(st)
	case Shadows:
		e.generateShades(st, false)
	case Lights:
		e.generateShades(st, true)
	case Neutrals:
		e.generateNeutrals(st)
	}
}

// anchor is the reference the active theory works from: either the blend
// of all locked slots, or a freshly randomized first slot when nothing is
// locked.
type anchor struct {
	hue    float64
	sat    float64
	val    float64
	pos    int  // logical position of the anchoring slot
	locked bool // whether locked slots contributed
}

// anchorFor derives the anchor. With locked slots present, the anchor hue
// is the circular mean of their hues and sat/val are arithmetic means.
// Otherwise the lowest-index occupied slot is seeded with a uniformly
// random hue and the theory's base sat/val, and becomes the anchor.
func (e *Engine) anchorFor(st *Store, baseSat, baseVal float64) (anchor, bool) {
	var hues, sats, vals []float64
	firstLocked := -1
	var seed *Slot
	st.each(func(pos int, sl *Slot) {
		if seed == nil {
			seed = sl
		}
		if sl.Locked {
			if firstLocked < 0 {
				firstLocked = pos
			}
			hues = append(hues, sl.Color.H)
			sats = append(sats, sl.Color.S)
			vals = append(vals, sl.Color.V)
		}
	})
	if seed == nil {
		return anchor{}, false
	}

	if len(hues) > 0 {
		return anchor{
			hue:    circularMeanDeg(hues),
			sat:    mean(sats),
			val:    mean(vals),
			pos:    firstLocked,
			locked: true,
		}, true
	}

	seed.Color = Color{H: e.rng.Float64() * 360, S: baseSat, V: baseVal}
	return anchor{hue: seed.Color.H, sat: baseSat, val: baseVal}, true
}

// circularMeanDeg averages hues on the circle via their unit vectors, so
// locked hues straddling the 0/360 wrap (say 350 and 10) resolve to ~0
// instead of the naive arithmetic 180.
func circularMeanDeg(hues []float64) float64 {
	var sx, sy float64
	for _, h := range hues {
		r := h * math.Pi / 180
		sx += math.Cos(r)
		sy += math.Sin(r)
	}
	if sx == 0 && sy == 0 {
		return 0
	}
	return normHue(math.Atan2(sy, sx) * 180 / math.Pi)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// jitterDeg draws an integer hue perturbation from [-n, n), matching the
// inclusive-exclusive draw of the group themes.
func (e *Engine) jitterDeg(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(e.rng.Intn(2*n) - n)
}

// rangePct draws an integer percentage from [lo, hi) and scales it to [0,1].
func (e *Engine) rangePct(lo, hi int) float64 {
	return float64(e.rng.Intn(hi-lo)+lo) / 100.0
}

// signedPct draws a uniform variation from [-v, v).
func (e *Engine) signedPct(v float64) float64 {
	return (e.rng.Float64()*2 - 1) * v
}

// groupConfig parameterizes the fixed-offset themes (Complementary through
// Hexad): group size, hue jitter and the sat/val spread ranges.
type groupConfig struct {
	size    int
	jitter  int
	baseSat float64
	baseVal float64
	satLo   float64
	satHi   float64
	valLo   float64
	valHi   float64 // upward swing cap
	valDown float64 // downward swing cap
}

// groupSpread is the deterministic sat/val offset for repeat group vi of
// groups. The first group keeps the base; later groups alternate above and
// below it with linearly growing magnitude so repeated hues stay visually
// distinguishable.
func groupSpread(vi, groups int, lo, hiUp, hiDown float64) float64 {
	if vi <= 0 || groups <= 1 {
		return 0
	}
	frac := 0.0
	if groups > 2 {
		frac = float64(vi-1) / float64(groups-2)
	}
	if vi%2 == 1 {
		return lo + (hiUp-lo)*frac
	}
	return -(lo + (hiDown-lo)*frac)
}

func (e *Engine) generateGroup(st *Store, cfg groupConfig) {
	a, ok := e.anchorFor(st, cfg.baseSat, cfg.baseVal)
	if !ok {
		return
	}

	baseSat, baseVal := cfg.baseSat, cfg.baseVal
	if a.locked {
		baseSat, baseVal = a.sat, a.val
	}

	total := st.Count()
	groups := (total + cfg.size - 1) / cfg.size
	step := 360.0 / float64(cfg.size)

	st.each(func(pos int, sl *Slot) {
		if sl.Locked {
			return
		}
		member := pos % cfg.size
		vi := pos / cfg.size
		sl.Color = Color{
			H: normHue(a.hue + float64(member)*step + e.jitterDeg(cfg.jitter)),
			S: clamp01(baseSat + groupSpread(vi, groups, cfg.satLo, cfg.satHi, cfg.satHi)),
			V: clamp01(baseVal + groupSpread(vi, groups, cfg.valLo, cfg.valHi, cfg.valDown)),
		}
	})
}

// generateAnalogous walks hues away from a center slot in 10 degree steps
// per logical position of distance, bidirectionally: positions before the
// center step negative, positions after step positive.
func (e *Engine) generateAnalogous(st *Store) {
	a, ok := e.anchorFor(st, 0.65, 0.65)
	if !ok {
		return
	}

	center := st.Count() / 2
	variation := 0.10
	baseSat, baseVal := 0.65, 0.65
	if a.locked {
		center = a.pos
		variation = 0.05
		baseSat, baseVal = a.sat, a.val
	}

	st.each(func(pos int, sl *Slot) {
		if sl.Locked {
			return
		}
		dist := float64(pos - center)
		sl.Color = Color{
			H: normHue(a.hue + dist*10 + e.jitterDeg(3)),
			S: clamp01(baseSat + e.signedPct(variation)),
			V: clamp01(baseVal + e.signedPct(variation)),
		}
	})
}

// generateSquare spreads hues over the four square offsets with a wider
// jitter. Without locks every unlocked slot also draws a fresh random
// sat/val; with locks present, unlocked slots keep the sat/val they had.
func (e *Engine) generateSquare(st *Store) {
	a, ok := e.anchorFor(st, e.rangePct(55, 80), e.rangePct(50, 75))
	if !ok {
		return
	}

	st.each(func(pos int, sl *Slot) {
		if sl.Locked {
			return
		}
		sl.Color.H = normHue(a.hue + float64(pos%4)*90 + e.jitterDeg(8))
		if !a.locked {
			sl.Color.S = e.rangePct(55, 80)
			sl.Color.V = e.rangePct(50, 75)
		}
	})
}

// generateMonochrome holds the hue at the anchor and sweeps saturation and
// value linearly across fixed ranges over the logical positions. When a
// lock exists the sweep is blended 70/30 toward the anchor's sat/val.
func (e *Engine) generateMonochrome(st *Store) {
	a, ok := e.anchorFor(st, 0.65, 0.65)
	if !ok {
		return
	}

	total := st.Count()
	st.each(func(pos int, sl *Slot) {
		if sl.Locked {
			return
		}
		t := 0.0
		if total > 1 {
			t = float64(pos) / float64(total-1)
		}
		sat := 0.1 + 0.8*t
		val := 0.2 + 0.7*t
		if a.locked {
			sat = 0.7*sat + 0.3*a.sat
			val = 0.7*val + 0.3*a.val
		}
		// Hue drift is a token fraction of the usual jitter; monochrome
		// slots must read as one hue.
		sl.Color = Color{
			H: normHue(a.hue + e.jitterDeg(2)*0.1),
			S: clamp01(sat),
			V: clamp01(val),
		}
	})
}

// generateShades interpolates value away from the anchor position in even
// steps, stopping one increment short of the extreme. Shadows run toward
// black after the anchor and toward white before it; Lights is the mirror
// image and additionally desaturates toward white.
func (e *Engine) generateShades(st *Store, toLight bool) {
	a, ok := e.anchorFor(st, 0.65, 0.65)
	if !ok {
		return
	}

	total := st.Count()
	after := total - a.pos // anchor inclusive
	before := a.pos

	var stepFrom, stepTo float64
	if toLight {
		stepFrom = (1 - a.val) / float64(after)
		if before > 0 {
			stepTo = a.val / float64(before)
		}
	} else {
		stepFrom = a.val / float64(after)
		if before > 0 {
			stepTo = (1 - a.val) / float64(before)
		}
	}

	var satStepFrom, satStepTo float64
	if toLight {
		if after > 1 {
			satStepFrom = a.sat / float64(after-1)
		}
		if before > 0 {
			satStepTo = a.sat / float64(before)
		}
	}

	st.each(func(pos int, sl *Slot) {
		if sl.Locked {
			return
		}

		var val float64
		switch {
		case pos < a.pos:
			if toLight {
				val = stepTo * float64(pos)
			} else {
				val = 1 - stepTo*float64(pos)
			}
		case pos == a.pos:
			val = a.val
		default:
			steps := float64(pos - a.pos)
			if toLight {
				val = a.val + stepFrom*steps
			} else {
				val = a.val - stepFrom*steps
			}
		}

		sat := a.sat
		if toLight {
			switch {
			case pos < a.pos:
				sat = math.Min(a.sat, satStepTo*float64(pos))
			case pos > a.pos:
				sat = math.Max(0, a.sat-satStepFrom*float64(pos-a.pos))
			}
		}

		sl.Color = Color{H: a.hue, S: clamp01(sat), V: clamp01(val)}
	})
}

// generateNeutrals desaturates symmetrically away from the anchor in both
// directions, with value riding a small curve that peaks at the far ends.
func (e *Engine) generateNeutrals(st *Store) {
	a, ok := e.anchorFor(st, 0.65, 0.65)
	if !ok {
		return
	}

	total := st.Count()
	maxDist := a.pos
	if d := total - 1 - a.pos; d > maxDist {
		maxDist = d
	}
	if maxDist == 0 {
		maxDist = 1
	}

	st.each(func(pos int, sl *Slot) {
		if sl.Locked {
			return
		}
		f := math.Abs(float64(pos-a.pos)) / float64(maxDist)
		sl.Color = Color{
			H: a.hue,
			S: clamp01(a.sat * (1 - f)),
			V: clamp01(a.val + 0.05*f),
		}
	})
}
