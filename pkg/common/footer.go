package common

import (
	"strings"

	"tintbox/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Footer manages the bottom footer bar with keyboard shortcuts and a
// transient status line (clipboard confirmations, input errors).
type Footer struct {
	width           int
	height          int
	focused         string // "swatches" or "slots"
	status          string
	statusIsError   bool
	shortcutOverlay *ShortcutOverlay
}

// Styling for footer elements
var (
	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription))

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription))

	footerSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.SeparatorColor))

	footerStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.SuccessStatus))

	footerErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.ErrorStatus))

	footerStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// NewFooter creates a new footer component
func NewFooter() *Footer {
	return &Footer{
		height: 1,
	}
}

// SetShortcutOverlay sets the shortcut overlay for the footer
func (f *Footer) SetShortcutOverlay(overlay *ShortcutOverlay) {
	f.shortcutOverlay = overlay
}

// SetSize updates the footer dimensions
func (f *Footer) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetFocus updates which pane is focused
func (f *Footer) SetFocus(focused string) {
	f.focused = focused
}

// SetStatus replaces the shortcut line with a transient status message.
func (f *Footer) SetStatus(message string, isError bool) {
	f.status = message
	f.statusIsError = isError
}

// ClearStatus restores the shortcut line.
func (f *Footer) ClearStatus() {
	f.status = ""
	f.statusIsError = false
}

// HasStatus reports whether a transient status message is being shown.
func (f *Footer) HasStatus() bool {
	return f.status != ""
}

// GetShortcuts returns the current shortcuts to display
func (f *Footer) GetShortcuts() []Shortcut {
	if f.shortcutOverlay != nil {
		f.shortcutOverlay.SetFocus(f.focused)
		return f.shortcutOverlay.FormatShortcuts()
	}
	return []Shortcut{}
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 {
		return ""
	}

	// A status message takes over the whole line until cleared
	if f.status != "" {
		style := footerStatusStyle
		if f.statusIsError {
			style = footerErrorStyle
		}
		return lipgloss.Place(
			f.width,
			f.height,
			lipgloss.Center,
			lipgloss.Center,
			footerStyle.Render(style.Render(f.status)),
		)
	}

	shortcuts := f.GetShortcuts()
	if len(shortcuts) == 0 {
		return ""
	}

	var paneShortcuts []Shortcut
	var quitShortcut *Shortcut
	var helpShortcut *Shortcut

	for _, shortcut := range shortcuts {
		if shortcut.Key == "q" && shortcut.IsGlobal {
			quitShortcut = &shortcut
		} else if shortcut.Key == "?" && shortcut.IsGlobal {
			helpShortcut = &shortcut
		} else if !shortcut.IsGlobal {
			paneShortcuts = append(paneShortcuts, shortcut)
		}
	}

	// Highlight color follows the focused pane
	highlight := theme.TextPrimary
	if f.focused == "swatches" {
		highlight = theme.TintboxColor
	}

	var parts []string

	for i, shortcut := range paneShortcuts {
		if i > 0 {
			parts = append(parts, footerSeparatorStyle.Render(" • "))
		}

		keyStyle := footerKeyStyle.Bold(true).Foreground(lipgloss.Color(highlight))
		part := keyStyle.Render(shortcut.Key) + " " + footerDescStyle.Render(shortcut.Description)
		parts = append(parts, part)
	}

	// Separator before global shortcuts (quit/help)
	if len(parts) > 0 && (quitShortcut != nil || helpShortcut != nil) {
		parts = append(parts, footerSeparatorStyle.Render(" │ "))
	}

	if quitShortcut != nil {
		part := footerKeyStyle.Bold(true).Render(quitShortcut.Key) + " " + footerDescStyle.Render(quitShortcut.Description)
		parts = append(parts, part)
	}

	if helpShortcut != nil {
		if quitShortcut != nil {
			parts = append(parts, footerSeparatorStyle.Render(" • "))
		}
		part := footerKeyStyle.Bold(true).Render(helpShortcut.Key) + " " + footerDescStyle.Render(helpShortcut.Description)
		parts = append(parts, part)
	}

	content := strings.Join(parts, "")

	// Center the footer content
	return lipgloss.Place(
		f.width,
		f.height,
		lipgloss.Center,
		lipgloss.Center,
		footerStyle.Render(content),
	)
}
