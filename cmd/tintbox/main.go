package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"tintbox/internal/debug"
	"tintbox/internal/version"
	"tintbox/pkg/common"
	"tintbox/pkg/config"
	"tintbox/pkg/gui/components"
	"tintbox/pkg/gui/layout"
	"tintbox/pkg/gui/overlays"
	"tintbox/pkg/gui/panes"
	"tintbox/pkg/gui/theme"
	"tintbox/pkg/overlay"
	"tintbox/pkg/palette"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// page identifies which input context owns the keyboard
type page int

const (
	pageMain   page = iota // Panes receive input
	pageTheory             // Theory selector dialog is open
	pageEdit               // Hex editor dialog is open
)

const statusDuration = 2500 * time.Millisecond

type model struct {
	layout  *layout.Layout
	store   *palette.Store
	engine  *palette.Engine
	theory  palette.Theory
	page    page
	ready   bool
	focused layout.FocusState

	keyMap          *common.GlobalKeyMap
	shortcutOverlay *common.ShortcutOverlay
	footer          *common.Footer

	helpDialog         *overlays.HelpDialog
	showHelp           bool
	welcomeOverlay     *overlays.WelcomeOverlay
	showWelcomeOverlay bool
	theoryDialog       *overlays.TheoryDialog
	editDialog         *overlays.EditDialog

	debugLogger *debug.DebugLogger

	swatchPane *panes.SwatchPane
	slotPane   *panes.SlotPane
}

func initialModel() model {
	keyMap := common.NewGlobalKeyMap()
	store := palette.NewStore()
	engine := palette.NewEngine(nil)

	// Restore the theory the user last picked, if any
	theory := palette.Analogous
	if name, err := config.GetDefaultTheory(); err == nil && name != "" {
		if th, ok := palette.TheoryByName(name); ok {
			theory = th
		}
	}

	shortcutOverlay := common.NewShortcutOverlay(keyMap)
	shortcutOverlay.SetFocus(layout.FocusSwatches.String())

	footer := common.NewFooter()
	footer.SetShortcutOverlay(shortcutOverlay)
	footer.SetFocus(layout.FocusSwatches.String())

	// Check if welcome overlay should be shown
	welcomeShown, _ := config.GetWelcomeShownState()

	debugLogger := debug.InitDebugLogger()
	debug.DebugLog("Debug logger initialized successfully")

	swatchPane := panes.NewSwatchPane(store, keyMap)
	swatchPane.SetTheory(theory)
	slotPane := panes.NewSlotPane(store, keyMap)

	return model{
		layout:             layout.NewLayout(0, 0), // Updated on first WindowSizeMsg
		store:              store,
		engine:             engine,
		theory:             theory,
		page:               pageMain,
		focused:            layout.FocusSwatches,
		keyMap:             keyMap,
		shortcutOverlay:    shortcutOverlay,
		footer:             footer,
		helpDialog:         overlays.NewHelpDialog(keyMap),
		welcomeOverlay:     overlays.NewWelcomeOverlay(),
		showWelcomeOverlay: !welcomeShown,
		debugLogger:        debugLogger,
		swatchPane:         swatchPane,
		slotPane:           slotPane,
	}
}

func (m model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

type statusClearMsg struct{}

// setStatus shows a transient footer message and schedules its removal
func (m *model) setStatus(message string, isError bool) tea.Cmd {
	m.footer.SetStatus(message, isError)
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// switchToPane handles switching focus between the two panes
func (m model) switchToPane(target layout.FocusState) (model, tea.Cmd) {
	m.focused = target
	m.swatchPane.SetActive(target == layout.FocusSwatches)
	m.slotPane.SetActive(target == layout.FocusSlots)
	m.footer.SetFocus(target.String())
	m.shortcutOverlay.SetFocus(target.String())
	return m, nil
}

// activePane returns the pane that currently owns navigation keys
func (m model) activePane() components.Pane {
	if m.focused == layout.FocusSlots {
		return m.slotPane
	}
	return m.swatchPane
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.ready = true

		m.swatchPane.SetActive(m.focused == layout.FocusSwatches)
		m.slotPane.SetActive(m.focused == layout.FocusSlots)

		m.footer.SetSize(msg.Width, 1)
		m.helpDialog.SetSize(msg.Width, msg.Height)

		swatchWidth, swatchHeight := m.layout.GetSwatchDimensions()
		m.swatchPane.SetSize(swatchWidth, swatchHeight)

		slotsWidth, slotsHeight := m.layout.GetSlotsDimensions()
		m.slotPane.SetSize(slotsWidth, slotsHeight)

	case overlays.TheorySelectedMsg:
		m.theory = msg.Theory
		m.swatchPane.SetTheory(msg.Theory)
		m.page = pageMain
		m.theoryDialog = nil

		// Remember the choice for the next start
		if err := config.SetDefaultTheory(msg.Theory.String()); err != nil {
			debug.DebugLog("Failed to save default theory: %v", err)
		}
		return m, nil

	case overlays.TheoryDialogCancelledMsg:
		m.page = pageMain
		m.theoryDialog = nil
		return m, nil

	case overlays.EditConfirmedMsg:
		m.store.SetHex(msg.Position, msg.Hex)
		m.page = pageMain
		m.editDialog = nil
		return m, nil

	case overlays.EditCancelledMsg:
		m.page = pageMain
		m.editDialog = nil
		return m, nil

	case statusClearMsg:
		m.footer.ClearStatus()
		return m, nil

	case tea.KeyMsg:
		// If welcome overlay is visible, any key closes it
		if m.showWelcomeOverlay {
			m.showWelcomeOverlay = false
			// Mark welcome as shown so it doesn't appear again
			if err := config.SetWelcomeShown(true); err != nil {
				debug.DebugLog("Failed to persist welcome state: %v", err)
			}
			return m, nil
		}

		// If help dialog is visible, any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Dialog pages own the keyboard completely
		if m.page == pageTheory && m.theoryDialog != nil {
			dialogModel, cmd := m.theoryDialog.Update(msg)
			m.theoryDialog = dialogModel.(*overlays.TheoryDialog)
			return m, cmd
		}
		if m.page == pageEdit && m.editDialog != nil {
			dialogModel, cmd := m.editDialog.Update(msg)
			m.editDialog = dialogModel.(*overlays.EditDialog)
			return m, cmd
		}

		return m.handleMainKey(msg)
	}

	return m, nil
}

// handleMainKey dispatches keys on the main page
func (m model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMap

	// Ordinal locks address storage cells directly, skipping the
	// logical-position mapping
	for i, binding := range keys.LockOrdinals {
		if key.Matches(msg, binding) {
			if m.store.ToggleLockOrdinal(i + 1) {
				debug.DebugLog("Toggled lock on storage cell %d", i+1)
			}
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, keys.Quit):
		if m.debugLogger != nil {
			m.debugLogger.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Keybindings):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, keys.FocusSwatches):
		return m.switchToPane(layout.FocusSwatches)

	case key.Matches(msg, keys.FocusSlots):
		return m.switchToPane(layout.FocusSlots)

	case key.Matches(msg, keys.AddSlot):
		if !m.store.Add() {
			return m, m.setStatus(fmt.Sprintf("Palette is full (%d slots)", palette.Capacity), true)
		}
		return m, nil

	case key.Matches(msg, keys.RemoveSlot):
		if !m.store.Remove(m.store.Selected()) {
			return m, m.setStatus(fmt.Sprintf("At least %d slots are required", palette.MinOccupied), true)
		}
		return m, nil

	case key.Matches(msg, keys.ToggleLock):
		m.store.ToggleLock(m.store.Selected())
		return m, nil

	case key.Matches(msg, keys.Generate):
		m.engine.Generate(m.store, m.theory)
		debug.DebugLog("Generated palette with theory %s", m.theory)
		return m, nil

	case key.Matches(msg, keys.SelectTheory):
		m.page = pageTheory
		m.theoryDialog = overlays.NewTheoryDialog(m.theory)
		m.theoryDialog.SetSize(m.layout.GetWidth(), m.layout.GetHeight())
		return m, m.theoryDialog.Init()

	case key.Matches(msg, keys.EditColor):
		pos := m.store.Selected()
		hex, ok := m.store.HexAt(pos)
		if !ok {
			return m, nil
		}
		m.page = pageEdit
		m.editDialog = overlays.NewEditDialog(pos, hex)
		m.editDialog.SetSize(m.layout.GetWidth(), m.layout.GetHeight())
		return m, m.editDialog.Init()

	case key.Matches(msg, keys.CopyHex):
		hex, ok := m.store.HexAt(m.store.Selected())
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll("#" + hex); err != nil {
			debug.DebugLog("Clipboard write failed: %v", err)
			return m, m.setStatus("Clipboard unavailable", true)
		}
		return m, m.setStatus(fmt.Sprintf("Copied #%s", hex), false)
	}

	// Everything else goes to the focused pane
	if pane := m.activePane(); pane != nil {
		if handled, cmd := pane.HandleKey(msg.String()); handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m model) renderPaneTitle(pane components.Pane) string {
	if pane == nil {
		return ""
	}

	titleStyle := pane.GetTitleStyle()

	// Style the text based on the title type
	var styledText string
	if titleStyle.Type == "accent" && pane.IsActive() {
		textStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(titleStyle.Color)).
			Bold(true)
		styledText = textStyle.Render(titleStyle.Text)
	} else {
		var textStyle lipgloss.Style
		if pane.IsActive() {
			textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextPrimary)).Bold(true)
		} else {
			textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextDescription))
		}
		styledText = textStyle.Render(titleStyle.Text)
	}

	// Add shortcuts with appropriate styling
	if titleStyle.Shortcuts != "" {
		shortcutStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted))
		return styledText + " " + shortcutStyle.Render(titleStyle.Shortcuts)
	}

	return styledText
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	swatchTitle := m.renderPaneTitle(m.swatchPane)
	slotsTitle := m.renderPaneTitle(m.slotPane)

	swatchPane, slotsPane := m.layout.RenderPanes(
		m.swatchPane.View(),
		m.slotPane.View(),
		m.focused,
	)

	// Add padding to titles
	swatchTitleWithPadding := lipgloss.NewStyle().PaddingLeft(1).Render(swatchTitle)
	slotsTitleWithPadding := lipgloss.NewStyle().PaddingLeft(1).Render(slotsTitle)

	// Add titles above panes
	swatchWithTitle := lipgloss.JoinVertical(lipgloss.Left, swatchTitleWithPadding, swatchPane)
	slotsWithTitle := lipgloss.JoinVertical(lipgloss.Left, slotsTitleWithPadding, slotsPane)

	gap := strings.Repeat(" ", layout.HorizontalGapWidth)
	mainPanes := lipgloss.JoinHorizontal(lipgloss.Top, swatchWithTitle, gap, slotsWithTitle)

	// Add top/bottom padding and outer horizontal margins
	panesWithPadding := lipgloss.NewStyle().
		PaddingTop(layout.TopPaddingRows).
		PaddingBottom(layout.BottomSpacerRows).
		PaddingLeft(layout.HorizontalMargin).
		PaddingRight(layout.HorizontalMargin).
		Render(mainPanes)

	// Add footer at the bottom
	var bottomComponents []string
	bottomComponents = append(bottomComponents, panesWithPadding)
	bottomComponents = append(bottomComponents, m.footer.View())
	for i := 0; i < layout.BottomMarginRows; i++ {
		bottomComponents = append(bottomComponents, "")
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left, bottomComponents...)

	// Welcome overlay has the highest priority
	if m.showWelcomeOverlay {
		m.welcomeOverlay.SetSize(m.layout.GetWidth(), m.layout.GetHeight())
		return overlay.PlaceOverlay(0, 0, m.welcomeOverlay.View(), mainView, true, true)
	}

	if m.showHelp {
		return overlay.PlaceOverlay(0, 0, m.helpDialog.View(), mainView, true, true)
	}

	if m.page == pageTheory && m.theoryDialog != nil {
		m.theoryDialog.SetSize(m.layout.GetWidth(), m.layout.GetHeight())
		return overlay.PlaceOverlay(0, 0, m.theoryDialog.View(), mainView, true, true)
	}

	if m.page == pageEdit && m.editDialog != nil {
		m.editDialog.SetSize(m.layout.GetWidth(), m.layout.GetHeight())
		return overlay.PlaceOverlay(0, 0, m.editDialog.View(), mainView, true, true)
	}

	return mainView
}

func runTintbox() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tintbox requires an interactive terminal")
	}

	// Color fidelity matters here more than in most TUIs
	if termenv.ColorProfile() != termenv.TrueColor {
		fmt.Fprintln(os.Stderr, "Warning: terminal does not report truecolor support; colors will be approximated")
	}

	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}
	return nil
}

func main() {
	var showVersion bool

	var rootCmd = &cobra.Command{
		Use:   "tintbox",
		Short: "A terminal UI for building harmonic color palettes",
		Long: `Tintbox is a keyboard-driven palette builder. It keeps up to nine color
slots, lets you lock the ones you like, and regenerates the rest according
to a chosen color-harmony theory (analogous, complementary, triad, square,
tetrad, hexad, monochrome, shadows, lights, neutrals).

Press space to generate, x to pick a theory, l to lock a slot,
and ? for the full list of keybindings once running.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Println(version.Short())
				return nil
			}
			return runTintbox()
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
