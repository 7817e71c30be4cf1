package panes

import (
	"fmt"

	"tintbox/pkg/common"
	"tintbox/pkg/gui/components"
	"tintbox/pkg/gui/icons"
	"tintbox/pkg/gui/theme"
	"tintbox/pkg/palette"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SwatchPane renders the palette as a row of color swatches
type SwatchPane struct {
	*components.BasePane
	store  *palette.Store
	keyMap *common.GlobalKeyMap
	theory palette.Theory
}

// NewSwatchPane creates a new SwatchPane instance
func NewSwatchPane(store *palette.Store, keyMap *common.GlobalKeyMap) *SwatchPane {
	return &SwatchPane{
		BasePane: components.NewBasePane(0, "Palette"), // Pane index 0
		store:    store,
		keyMap:   keyMap,
	}
}

// SetTheory updates the theory shown in the pane title
func (s *SwatchPane) SetTheory(theory palette.Theory) {
	s.theory = theory
}

// MovePrev moves the selection one slot to the left
func (s *SwatchPane) MovePrev() bool {
	return s.store.SelectPrev()
}

// MoveNext moves the selection one slot to the right
func (s *SwatchPane) MoveNext() bool {
	return s.store.SelectNext()
}

// HandleKey processes keyboard input when the pane is active
func (s *SwatchPane) HandleKey(key string) (handled bool, cmd tea.Cmd) {
	if !s.IsActive() {
		return false, nil
	}

	switch key {
	case "left", "h":
		s.MovePrev()
		return true, nil
	case "right", "n":
		s.MoveNext()
		return true, nil
	default:
		return false, nil
	}
}

// GetTitle returns the dynamic title for the swatch pane
func (s *SwatchPane) GetTitle() string {
	return fmt.Sprintf("Palette · %s", s.theory)
}

// GetTitleStyle returns the title style for the swatch pane
func (s *SwatchPane) GetTitleStyle() components.TitleStyle {
	shortcuts := ""
	if s.IsActive() {
		help := s.keyMap.Generate.Help()
		shortcuts = fmt.Sprintf("[%s: %s]", help.Key, help.Desc)
	} else {
		shortcuts = "[1]"
	}

	return components.TitleStyle{
		Type:      "accent",
		Color:     theme.TintboxColor,
		Text:      s.GetTitle(),
		Shortcuts: shortcuts,
	}
}

// Update handles tea.Msg updates for the swatch pane
func (s *SwatchPane) Update(msg tea.Msg) (components.Pane, tea.Cmd) {
	return s, nil
}

// GetPaneSpecificKeybindings returns swatch pane specific keybindings
func (s *SwatchPane) GetPaneSpecificKeybindings() []key.Binding {
	return []key.Binding{
		s.keyMap.AddSlot,
		s.keyMap.RemoveSlot,
		s.keyMap.ToggleLock,
	}
}

// View renders the swatch pane content
func (s *SwatchPane) View() string {
	count := s.store.Count()
	if count == 0 {
		return s.renderEmptyState("No slots")
	}

	innerWidth := s.GetWidth()
	innerHeight := s.GetHeight()

	// Each swatch gets an equal column; one space gap between columns
	swatchWidth := (innerWidth - (count - 1)) / count
	if swatchWidth < 3 {
		swatchWidth = 3
	}

	// Two label rows (ordinal, hex) below the color block
	blockHeight := innerHeight - 3
	if blockHeight < 1 {
		blockHeight = 1
	}

	columns := make([]string, 0, count)
	selected := s.store.Selected()

	for pos := 0; pos < count; pos++ {
		sl, ok := s.store.At(pos)
		if !ok {
			continue
		}
		columns = append(columns, s.renderSwatch(sl, pos, pos == selected, swatchWidth, blockHeight))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(columns)...)
	return components.ApplyPaneContentPadding(row, innerWidth)
}

// renderSwatch renders a single swatch column: color block plus labels
func (s *SwatchPane) renderSwatch(sl palette.Slot, pos int, selected bool, width, height int) string {
	hex := sl.Color.Hex()

	blockStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Background(lipgloss.Color("#" + hex))

	block := blockStyle.Render("")

	// Ordinal label, with lock and selection markers
	label := fmt.Sprintf("%d", pos+1)
	if sl.Locked {
		label += " " + icons.Locked.String()
	}

	labelStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(theme.TextDescription))

	hexStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(theme.TextMuted))

	if selected {
		labelStyle = labelStyle.
			Foreground(lipgloss.Color(theme.TintboxColor)).
			Bold(true)
		hexStyle = hexStyle.Foreground(lipgloss.Color(theme.TextPrimary))
		label = icons.Selected.String() + " " + label
	}
	if sl.Locked {
		labelStyle = labelStyle.Foreground(lipgloss.Color(theme.LockAccent))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		block,
		labelStyle.Render(label),
		hexStyle.Render("#"+hex),
	)
}

// renderEmptyState renders a centered message for empty states
func (s *SwatchPane) renderEmptyState(message string) string {
	style := lipgloss.NewStyle().
		Width(components.PaneFullWidth(s.GetWidth())).
		Height(s.GetHeight()).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(lipgloss.Color(theme.TextMuted))

	return style.Render(message)
}

// joinWithGap interleaves a one-column gap between swatch columns
func joinWithGap(columns []string) []string {
	if len(columns) <= 1 {
		return columns
	}
	out := make([]string, 0, len(columns)*2-1)
	for i, col := range columns {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, col)
	}
	return out
}
