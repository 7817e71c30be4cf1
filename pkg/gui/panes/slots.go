package panes

import (
	"fmt"
	"strings"

	"tintbox/pkg/common"
	"tintbox/pkg/gui/components"
	"tintbox/pkg/gui/icons"
	"tintbox/pkg/gui/theme"
	"tintbox/pkg/palette"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SlotPane lists every occupied slot with its hex value and lock state
type SlotPane struct {
	*components.BasePane
	store     *palette.Store
	keyMap    *common.GlobalKeyMap
	fullWidth int // Cached width including pane padding
}

// NewSlotPane creates a new SlotPane instance
func NewSlotPane(store *palette.Store, keyMap *common.GlobalKeyMap) *SlotPane {
	return &SlotPane{
		BasePane: components.NewBasePane(1, "Slots"), // Pane index 1
		store:    store,
		keyMap:   keyMap,
	}
}

// SetSize updates the dimensions of the slot pane
func (p *SlotPane) SetSize(width, height int) {
	p.BasePane.SetSize(width, height)
	p.fullWidth = components.PaneFullWidth(width)
}

// MovePrev moves the selection up one slot
func (p *SlotPane) MovePrev() bool {
	return p.store.SelectPrev()
}

// MoveNext moves the selection down one slot
func (p *SlotPane) MoveNext() bool {
	return p.store.SelectNext()
}

// HandleKey processes keyboard input when the pane is active
func (p *SlotPane) HandleKey(key string) (handled bool, cmd tea.Cmd) {
	if !p.IsActive() {
		return false, nil
	}

	switch key {
	case "up", "k", "left":
		p.MovePrev()
		return true, nil
	case "down", "j", "right":
		p.MoveNext()
		return true, nil
	default:
		return false, nil
	}
}

// GetTitle returns the dynamic title for the slot pane
func (p *SlotPane) GetTitle() string {
	return fmt.Sprintf("Slots (%d/%d)", p.store.Count(), palette.Capacity)
}

// GetTitleStyle returns the title style for the slot pane
func (p *SlotPane) GetTitleStyle() components.TitleStyle {
	shortcuts := ""
	if p.IsActive() {
		help := p.keyMap.EditColor.Help()
		shortcuts = fmt.Sprintf("[%s: %s]", help.Key, help.Desc)
	} else {
		shortcuts = "[2]"
	}

	return components.TitleStyle{
		Type:      "plain",
		Color:     "",
		Text:      p.GetTitle(),
		Shortcuts: shortcuts,
	}
}

// Update handles tea.Msg updates for the slot pane
func (p *SlotPane) Update(msg tea.Msg) (components.Pane, tea.Cmd) {
	return p, nil
}

// GetPaneSpecificKeybindings returns slot pane specific keybindings
func (p *SlotPane) GetPaneSpecificKeybindings() []key.Binding {
	return []key.Binding{
		p.keyMap.EditColor,
		p.keyMap.CopyHex,
		p.keyMap.ToggleLock,
	}
}

// View renders the slot pane content
func (p *SlotPane) View() string {
	count := p.store.Count()
	if count == 0 {
		return p.renderEmptyState("No slots")
	}

	var output strings.Builder
	innerWidth := p.GetWidth()
	if p.fullWidth == 0 {
		p.fullWidth = components.PaneFullWidth(innerWidth)
	}

	selected := p.store.Selected()
	for pos := 0; pos < count; pos++ {
		sl, ok := p.store.At(pos)
		if !ok {
			continue
		}
		if pos > 0 {
			output.WriteString("\n")
		}
		output.WriteString(p.renderSlotRow(sl, pos, pos == selected, innerWidth))
	}

	return output.String()
}

// renderSlotRow renders a single slot row: chip, ordinal, hex, lock state
func (p *SlotPane) renderSlotRow(sl palette.Slot, pos int, selected bool, innerWidth int) string {
	hex := "#" + sl.Color.Hex()

	chipStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	ordStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextDescription))
	hexStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextPrimary))

	lockIcon := icons.Unlocked
	lockStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextMuted))
	if sl.Locked {
		lockIcon = icons.Locked
		lockStyle = lockStyle.Foreground(lipgloss.Color(theme.LockAccent))
	}

	if selected && p.IsActive() {
		bg := lipgloss.Color(theme.RowHighlight)
		chipStyle = chipStyle.Background(bg)
		ordStyle = ordStyle.Background(bg).Bold(true)
		hexStyle = hexStyle.Background(bg).Bold(true)
		lockStyle = lockStyle.Background(bg)

		bgStyle := lipgloss.NewStyle().Background(bg)
		row := chipStyle.Render(icons.Swatch.String()) +
			bgStyle.Render(" ") +
			ordStyle.Render(fmt.Sprintf("%d", pos+1)) +
			bgStyle.Render("  ") +
			hexStyle.Render(hex) +
			bgStyle.Render("  ") +
			lockStyle.Render(lockIcon.String())

		// Pad to full width with background
		currentWidth := lipgloss.Width(row)
		if currentWidth < innerWidth {
			row += bgStyle.Render(strings.Repeat(" ", innerWidth-currentWidth))
		}

		padCount := components.PaneContentHorizontalPadding()
		if padCount > 0 {
			pad := bgStyle.Render(strings.Repeat(" ", padCount))
			row = pad + row + pad
		}

		finalWidth := lipgloss.Width(row)
		if p.fullWidth > 0 && finalWidth < p.fullWidth {
			row += bgStyle.Render(strings.Repeat(" ", p.fullWidth-finalWidth))
		}

		return row
	}

	row := chipStyle.Render(icons.Swatch.String()) + " " +
		ordStyle.Render(fmt.Sprintf("%d", pos+1)) + "  " +
		hexStyle.Render(hex) + "  " +
		lockStyle.Render(lockIcon.String())

	return components.ApplyPaneContentPadding(row, innerWidth)
}

// renderEmptyState renders a centered message for empty states
func (p *SlotPane) renderEmptyState(message string) string {
	style := lipgloss.NewStyle().
		Width(components.PaneFullWidth(p.GetWidth())).
		Height(p.GetHeight()).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(lipgloss.Color(theme.TextMuted))

	return style.Render(message)
}
