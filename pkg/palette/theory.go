package palette

// Theory names one of the harmony algorithms the engine can run.
type Theory int

const (
	Analogous Theory = iota
	Complementary
	Triad
	Square
	Tetrad
	Hexad
	Monochrome
	Shadows
	Lights
	Neutrals

	theoryCount
)

var theoryNames = [theoryCount]string{
	Analogous:     "Analogous",
	Complementary: "Complementary",
	Triad:         "Triad",
	Square:        "Square",
	Tetrad:        "Tetrad",
	Hexad:         "Hexad",
	Monochrome:    "Monochrome",
	Shadows:       "Shadows",
	Lights:        "Lights",
	Neutrals:      "Neutrals",
}

func (t Theory) String() string {
	if t < 0 || t >= theoryCount {
		return "Unknown"
	}
	return theoryNames[t]
}

// Valid reports whether t names a real theory.
func (t Theory) Valid() bool {
	return t >= 0 && t < theoryCount
}

// Theories returns all theories in display order.
func Theories() []Theory {
	out := make([]Theory, theoryCount)
	for i := range out {
		out[i] = Theory(i)
	}
	return out
}

// TheoryByName resolves a theory from its display name. Used when restoring
// the default theory from saved state.
func TheoryByName(name string) (Theory, bool) {
	for i, n := range theoryNames {
		if n == name {
			return Theory(i), true
		}
	}
	return Analogous, false
}
