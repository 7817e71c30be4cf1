package overlays

import (
	_ "embed"
	"strings"

	"tintbox/pkg/gui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

//go:embed ascii-art.txt
var welcomeAsciiArt string

// WelcomeOverlay represents the first-time user welcome overlay
type WelcomeOverlay struct {
	width  int
	height int
}

// Styling for welcome overlay
var (
	welcomeOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(theme.TextDescription)).
				Padding(1, 2).
				MaxWidth(65)

	welcomeAsciiStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TintboxColor)).
				MarginBottom(1)

	welcomeSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextPrimary)).
				Align(lipgloss.Center).
				Bold(true).
				Width(55).
				MarginBottom(2)

	welcomeFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextDescription)).
				Italic(true).
				Align(lipgloss.Center).
				MarginTop(1)
)

// NewWelcomeOverlay creates a new welcome overlay
func NewWelcomeOverlay() *WelcomeOverlay {
	return &WelcomeOverlay{}
}

// Init implements tea.Model
func (w *WelcomeOverlay) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (w *WelcomeOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return w, nil
}

// SetSize updates the overlay dimensions
func (w *WelcomeOverlay) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View implements tea.Model and renders the welcome overlay content
func (w *WelcomeOverlay) View() string {
	var content []string

	content = append(content, welcomeAsciiStyle.Render(welcomeAsciiArt))
	content = append(content, "")

	content = append(content, welcomeSubtitleStyle.Render("Harmonic palettes in your terminal"))
	content = append(content, "")

	content = append(content, welcomeFooterStyle.Render("Press any key to close"))

	return welcomeOverlayStyle.Render(strings.Join(content, "\n"))
}

// WelcomeOverlayClosedMsg indicates the welcome overlay was closed
type WelcomeOverlayClosedMsg struct{}
