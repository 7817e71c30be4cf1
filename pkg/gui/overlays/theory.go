package overlays

import (
	"strings"

	"tintbox/pkg/gui/icons"
	"tintbox/pkg/gui/theme"
	"tintbox/pkg/palette"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TheoryDialog lets the user pick the harmony theory used for generation
type TheoryDialog struct {
	theories []palette.Theory
	cursor   int
	current  palette.Theory
	width    int
	height   int
}

// Styling for theory dialog
var (
	theoryDialogStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(theme.TextDescription)).
				Padding(1, 2)

	theoryTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TintboxColor)).
				Bold(true).
				MarginBottom(1)

	theoryItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextPrimary))

	theoryDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted))

	theorySelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TintboxColor)).
				Bold(true)

	theoryFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextDescription)).
				Italic(true).
				MarginTop(1)
)

// theoryDescriptions gives each theory a one-line hint shown in the dialog
var theoryDescriptions = map[palette.Theory]string{
	palette.Analogous:     "neighbouring hues around the anchor",
	palette.Complementary: "anchor hue and its opposite",
	palette.Triad:         "three hues 120° apart",
	palette.Square:        "four hues 90° apart",
	palette.Tetrad:        "four hues in two complementary pairs",
	palette.Hexad:         "six hues 60° apart",
	palette.Monochrome:    "one hue, swept saturation and value",
	palette.Shadows:       "anchor hue darkening toward black",
	palette.Lights:        "anchor hue washing toward white",
	palette.Neutrals:      "anchor hue fading toward grey",
}

// NewTheoryDialog creates a new theory selection dialog
func NewTheoryDialog(current palette.Theory) *TheoryDialog {
	theories := palette.Theories()
	cursor := 0
	for i, th := range theories {
		if th == current {
			cursor = i
			break
		}
	}

	return &TheoryDialog{
		theories: theories,
		cursor:   cursor,
		current:  current,
	}
}

// Init implements tea.Model
func (d *TheoryDialog) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (d *TheoryDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "down", "j":
			if d.cursor < len(d.theories)-1 {
				d.cursor++
			}
		case "enter", " ":
			selected := d.theories[d.cursor]
			return d, func() tea.Msg {
				return TheorySelectedMsg{Theory: selected}
			}
		case "esc":
			return d, func() tea.Msg {
				return TheoryDialogCancelledMsg{}
			}
		}
	}
	return d, nil
}

// SetSize updates the dialog dimensions
func (d *TheoryDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View implements tea.Model and renders the dialog
func (d *TheoryDialog) View() string {
	var content []string

	content = append(content, theoryTitleStyle.Render(icons.Theory.String()+" Harmony theory"))

	for i, th := range d.theories {
		name := th.String()
		marker := "  "
		nameStyle := theoryItemStyle
		if i == d.cursor {
			marker = icons.Selected.String() + " "
			nameStyle = theorySelectedStyle
		}

		line := marker + nameStyle.Render(padRight(name, 14)) +
			theoryDescStyle.Render(theoryDescriptions[th])
		if th == d.current {
			line += theoryDescStyle.Render(" (current)")
		}
		content = append(content, line)
	}

	content = append(content, theoryFooterStyle.Render("↑/↓ move • ↵ select • esc cancel"))

	return theoryDialogStyle.Render(strings.Join(content, "\n"))
}

// TheorySelectedMsg indicates a theory was chosen
type TheorySelectedMsg struct {
	Theory palette.Theory
}

// TheoryDialogCancelledMsg indicates the dialog was dismissed
type TheoryDialogCancelledMsg struct{}

// padRight pads a string to the right with spaces
func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
