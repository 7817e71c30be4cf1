// Package icons provides consistent icon representations using Nerd Fonts
// for the palette interface, with plain-Unicode fallbacks.
package icons

import (
	"os"
	"strings"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

var (
	// Lock marker for protected slots
	Locked = Icon{
		NerdFont: "", // Nerd Font padlock
		Fallback: "●",
	}

	// Open marker for slots the engine may overwrite
	Unlocked = Icon{
		NerdFont: "", // Nerd Font open padlock
		Fallback: "○",
	}

	// Selection cursor
	Selected = Icon{
		NerdFont: "", // Nerd Font right arrow
		Fallback: "▶",
	}

	// Swatch block used to paint color cells
	Swatch = Icon{
		NerdFont: "█",
		Fallback: "█",
	}

	// Theory marker in the selector list
	Theory = Icon{
		NerdFont: "", // Nerd Font droplet
		Fallback: "◆",
	}
)

// useNerdFonts reports whether Nerd Font glyphs should be used. Honors the
// TINTBOX_NERD_FONTS override, otherwise sniffs common terminal hints.
func useNerdFonts() bool {
	if v := os.Getenv("TINTBOX_NERD_FONTS"); v != "" {
		return v == "1" || strings.EqualFold(v, "true")
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	switch termProgram {
	case "iTerm.app", "WezTerm", "kitty", "ghostty":
		return true
	}
	return os.Getenv("NERD_FONTS") == "1"
}

// String returns the appropriate representation of the icon.
func (i Icon) String() string {
	if useNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}
