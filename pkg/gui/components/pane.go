package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tintbox/pkg/gui/theme"
)

// PaneBaseStyle is the shared chrome every pane is framed with.
var PaneBaseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(theme.BorderMuted))

// PaneContentHorizontalPadding returns the spaces kept between a pane's
// border and its content on each side.
func PaneContentHorizontalPadding() int {
	return 1
}

// PaneFullWidth converts a content width into the full width a pane
// occupies on screen, borders and padding included.
func PaneFullWidth(contentWidth int) int {
	return contentWidth + PaneContentHorizontalPadding()*2 + PaneBaseStyle.GetHorizontalFrameSize()
}

// ApplyPaneContentPadding pads content to the pane's inner width so the
// border hugs a consistent box regardless of line lengths.
func ApplyPaneContentPadding(content string, contentWidth int) string {
	pad := PaneContentHorizontalPadding()
	return lipgloss.NewStyle().
		PaddingLeft(pad).
		PaddingRight(pad).
		Width(contentWidth + pad*2).
		Render(content)
}

// TitleStyle defines how a pane's title should be rendered
type TitleStyle struct {
	Type      string // "plain" or "accent"
	Color     string // hex color for accent titles, ignored for plain
	Text      string // the title text
	Shortcuts string // shown when active, e.g. "[←/→ select]", "[2]"
}

// Pane is the common interface for the palette UI panes.
type Pane interface {
	// Core pane functionality
	SetSize(width, height int)
	SetActive(active bool)
	IsActive() bool
	GetIndex() int

	// Title management
	GetTitle() string
	GetTitleStyle() TitleStyle

	// Content and rendering
	View() string
	Update(msg tea.Msg) (Pane, tea.Cmd)

	// Navigation and key handling. MovePrev/MoveNext step the pane's own
	// notion of a cursor: left/right over swatches, up/down in lists.
	HandleKey(key string) (handled bool, cmd tea.Cmd)
	MovePrev() bool
	MoveNext() bool

	// Pane-specific shortcuts shown while this pane is active.
	GetPaneSpecificKeybindings() []key.Binding
}

// BasePane provides default implementations for common pane functionality
type BasePane struct {
	index    int
	width    int
	height   int
	isActive bool
	title    string
}

// NewBasePane creates a new BasePane with the given index and title
func NewBasePane(index int, title string) *BasePane {
	return &BasePane{
		index: index,
		title: title,
	}
}

// SetSize updates the pane dimensions
func (p *BasePane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetActive sets whether this pane is currently focused
func (p *BasePane) SetActive(active bool) {
	p.isActive = active
}

// IsActive returns whether this pane is currently focused
func (p *BasePane) IsActive() bool {
	return p.isActive
}

// GetIndex returns the pane's index (used for the 1/2 focus keybindings)
func (p *BasePane) GetIndex() int {
	return p.index
}

// GetTitle returns the pane's title
func (p *BasePane) GetTitle() string {
	return p.title
}

// GetTitleStyle returns the default title style (plain text with pane number)
func (p *BasePane) GetTitleStyle() TitleStyle {
	shortcuts := ""
	if !p.isActive {
		shortcuts = "[" + string(rune('1'+p.index)) + "]"
	}
	return TitleStyle{
		Type:      "plain",
		Text:      p.title,
		Shortcuts: shortcuts,
	}
}

// View returns a default empty view - should be overridden by implementations
func (p *BasePane) View() string {
	return ""
}

// Update handles tea.Msg updates - default implementation does nothing
func (p *BasePane) Update(msg tea.Msg) (Pane, tea.Cmd) {
	return p, nil
}

// HandleKey processes keyboard input - default implementation handles nothing
func (p *BasePane) HandleKey(key string) (handled bool, cmd tea.Cmd) {
	return false, nil
}

// MovePrev provides the default no-navigation implementation
func (p *BasePane) MovePrev() bool {
	return false
}

// MoveNext provides the default no-navigation implementation
func (p *BasePane) MoveNext() bool {
	return false
}

// GetPaneSpecificKeybindings returns pane-specific keybindings - default is empty
func (p *BasePane) GetPaneSpecificKeybindings() []key.Binding {
	return []key.Binding{}
}

// GetWidth returns the current width
func (p *BasePane) GetWidth() int {
	return p.width
}

// GetHeight returns the current height
func (p *BasePane) GetHeight() int {
	return p.height
}
