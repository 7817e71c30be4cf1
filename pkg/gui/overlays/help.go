package overlays

import (
	"strings"

	"tintbox/pkg/common"
	"tintbox/pkg/gui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpDialog represents a help overlay showing all shortcuts
type HelpDialog struct {
	keyMap *common.GlobalKeyMap
	width  int
	height int
}

// Styling for help dialog
var (
	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(theme.TextDescription)).
				Padding(1, 2).
				MaxWidth(65)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.TintboxColor)).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(theme.InfoStatus)).
				MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.WarningStatus))

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextPrimary))

	helpFooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription)).
			Italic(true).
			MarginTop(1)
)

// NewHelpDialog creates a new help dialog
func NewHelpDialog(keyMap *common.GlobalKeyMap) *HelpDialog {
	return &HelpDialog{keyMap: keyMap}
}

// Init implements tea.Model
func (h *HelpDialog) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

// SetSize updates the dialog dimensions
func (h *HelpDialog) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View implements tea.Model and renders the help dialog content
func (h *HelpDialog) View() string {
	var content []string

	content = append(content, helpTitleStyle.Render("Tintbox - Palette Harmony"))
	content = append(content, "")

	shortcuts := common.AllShortcuts(h.keyMap)

	for _, section := range h.keyMap.HelpSectionOrder() {
		items, ok := shortcuts[section]
		if !ok {
			continue
		}

		content = append(content, helpSectionStyle.Render(section))

		for _, shortcut := range items {
			line := "  " + helpKeyStyle.Render(padRight(shortcut.Key, 12)) +
				helpDescStyle.Render(shortcut.Description)
			content = append(content, line)
		}
	}

	// Ordinal locks are a family of bindings, listed as one row
	content = append(content, helpSectionStyle.Render("Ordinal locks"))
	content = append(content, "  "+helpKeyStyle.Render(padRight("alt+1..9", 12))+
		helpDescStyle.Render("lock/unlock storage cell directly"))

	content = append(content, "")
	content = append(content, helpFooterStyle.Render("Press any key to close"))

	return helpOverlayStyle.Render(strings.Join(content, "\n"))
}
