package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines global keybindings that work across the palette UI.
//
// Note: this contains both truly global keybindings (quit, help) and
// conceptually pane-specific ones that need to be globally accessible, e.g.
// 'l' (toggle lock) belongs to the swatch pane but works from either pane.
type GlobalKeyMap struct {
	// Truly global keys - work from any pane, any context
	Quit        key.Binding // q, Ctrl+C - quit application
	Keybindings key.Binding // ? - show help

	// Selection movement - works within either pane
	Left  key.Binding // ←, h - previous slot
	Right key.Binding // →, l is taken by lock, so n steps forward too

	// Pane switching
	FocusSwatches key.Binding // 1 - focus swatch pane
	FocusSlots    key.Binding // 2 - focus slot detail pane

	// Palette mutation
	AddSlot    key.Binding // a - add slot
	RemoveSlot key.Binding // d - remove selected slot
	ToggleLock key.Binding // l - toggle lock on selected slot
	EditColor  key.Binding // z - open hex editor
	CopyHex    key.Binding // c - copy selected hex to clipboard

	// Generation
	Generate     key.Binding // space - regenerate unlocked slots
	SelectTheory key.Binding // x - open theory selector

	// Dialog actions - global because dialogs overlay all content
	Confirm key.Binding // Enter - confirm dialog action
	Cancel  key.Binding // Esc - cancel dialog

	// Ordinal lock fast path: alt+1..9 addresses storage cells directly
	LockOrdinals []key.Binding
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	ordinals := make([]key.Binding, 9)
	for i := range ordinals {
		n := string(rune('1' + i))
		ordinals[i] = key.NewBinding(
			key.WithKeys("alt+"+n),
			key.WithHelp("alt+"+n, "lock slot "+n),
		)
	}

	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Keybindings: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keybindings"),
		),

		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous slot"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→", "next slot"),
		),

		FocusSwatches: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "focus swatches"),
		),
		FocusSlots: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "focus slots"),
		),

		AddSlot: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add slot"),
		),
		RemoveSlot: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove slot"),
		),
		ToggleLock: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lock/unlock"),
		),
		EditColor: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "edit hex"),
		),
		CopyHex: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),

		Generate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "generate"),
		),
		SelectTheory: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "select theory"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),

		LockOrdinals: ordinals,
	}
}

// ShortHelp returns a slice of key bindings to show in the short help view
func (k *GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Generate,
		k.Keybindings,
		k.Quit,
	}
}

// FullHelp returns a slice of key bindings to show in the full help view
func (k *GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Keybindings},
		{k.Left, k.Right, k.FocusSwatches, k.FocusSlots},
		{k.AddSlot, k.RemoveSlot, k.ToggleLock, k.EditColor, k.CopyHex},
		{k.Generate, k.SelectTheory},
		{k.Confirm, k.Cancel},
	}
}

// GetHelpSections returns help sections with categorized keybindings
func (k *GlobalKeyMap) GetHelpSections() map[string][]key.Binding {
	return map[string][]key.Binding{
		"Global": {
			k.Quit,
			k.Keybindings,
		},
		"Navigation": {
			k.Left,
			k.Right,
			k.FocusSwatches,
			k.FocusSlots,
		},
		"Palette": {
			k.AddSlot,
			k.RemoveSlot,
			k.ToggleLock,
			k.EditColor,
			k.CopyHex,
		},
		"Generation": {
			k.Generate,
			k.SelectTheory,
		},
		"Dialogs": {
			k.Confirm,
			k.Cancel,
		},
	}
}

// HelpSectionOrder returns the display order of the help sections.
func (k *GlobalKeyMap) HelpSectionOrder() []string {
	return []string{"Generation", "Palette", "Navigation", "Dialogs", "Global"}
}
