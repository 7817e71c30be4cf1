package overlays

import (
	"strings"

	"tintbox/pkg/gui/theme"
	"tintbox/pkg/palette"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EditDialog lets the user type a hex value for the selected slot, with a
// live preview of the color the current input would produce.
type EditDialog struct {
	input    textinput.Model
	position int // Logical position of the slot being edited
	width    int
	height   int
	help     help.Model
	keys     editKeyMap
}

// editKeyMap defines the keybindings for the edit dialog
type editKeyMap struct {
	Apply  key.Binding
	Clear  key.Binding
	Escape key.Binding
}

// ShortHelp returns keybindings to show in the mini help view
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Clear, k.Escape}
}

// FullHelp returns keybindings to show in the full help view
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Apply, k.Clear, k.Escape},
	}
}

// Styling for edit dialog
var (
	editDialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.TextDescription)).
			Padding(1, 2)

	editTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TintboxColor)).
			Bold(true).
			MarginBottom(1)

	editLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextPrimary)).
			Bold(true)

	editFooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription)).
			Italic(true).
			MarginTop(1)
)

// NewEditDialog creates a hex editor dialog seeded with the slot's current hex
func NewEditDialog(position int, currentHex string) *EditDialog {
	input := textinput.New()
	input.Placeholder = "rrggbb"
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextDescription))
	input.Prompt = "# "
	input.CharLimit = 6
	input.Width = 10
	input.SetValue(currentHex)
	input.Focus()

	h := help.New()
	h.ShowAll = false // Only show short help

	keys := editKeyMap{
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "apply"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+backspace"),
			key.WithHelp("ctrl+⌫", "clear"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}

	return &EditDialog{
		input:    input,
		position: position,
		help:     h,
		keys:     keys,
	}
}

// Position returns the logical position of the slot being edited
func (d *EditDialog) Position() int {
	return d.position
}

// Init implements tea.Model
func (d *EditDialog) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (d *EditDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			text := d.input.Value()
			pos := d.position
			return d, func() tea.Msg {
				return EditConfirmedMsg{Position: pos, Hex: text}
			}
		case "esc":
			return d, func() tea.Msg {
				return EditCancelledMsg{}
			}
		case "ctrl+backspace", "ctrl+h":
			d.input.SetValue("")
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)

	// Keep only hex digits; anything else is dropped as it is typed
	filtered := filterHex(d.input.Value())
	if filtered != d.input.Value() {
		d.input.SetValue(filtered)
		d.input.CursorEnd()
	}

	return d, cmd
}

// SetSize updates the dialog dimensions
func (d *EditDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View implements tea.Model and renders the dialog
func (d *EditDialog) View() string {
	var content []string

	content = append(content, editTitleStyle.Render("Edit slot color"))
	content = append(content, editLabelStyle.Render("Hex value"))
	content = append(content, d.input.View())
	content = append(content, "")

	// Live preview of what the current input resolves to
	preview := palette.ColorFromHex(d.input.Value())
	previewBlock := lipgloss.NewStyle().
		Background(lipgloss.Color("#" + preview.Hex())).
		Width(20).
		Render(strings.Repeat(" ", 20))
	content = append(content, previewBlock)
	content = append(content, lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TextMuted)).
		Render("#"+preview.Hex()))

	content = append(content, editFooterStyle.Render(d.help.View(d.keys)))

	return editDialogStyle.Render(strings.Join(content, "\n"))
}

// filterHex strips everything that is not a hexadecimal digit
func filterHex(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(palette.HexDigits, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EditConfirmedMsg indicates the hex editor was confirmed
type EditConfirmedMsg struct {
	Position int
	Hex      string
}

// EditCancelledMsg indicates the hex editor was dismissed
type EditCancelledMsg struct{}
