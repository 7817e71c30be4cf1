package layout

import (
	"github.com/charmbracelet/lipgloss"

	"tintbox/pkg/gui/components"
	"tintbox/pkg/gui/theme"
)

type FocusState int

const (
	FocusSwatches FocusState = iota
	FocusSlots
)

// String returns the string representation of the focus state
func (f FocusState) String() string {
	switch f {
	case FocusSwatches:
		return "swatches"
	case FocusSlots:
		return "slots"
	default:
		return "unknown"
	}
}

const (
	TopPaddingRows     = 1
	BottomSpacerRows   = 1
	PaneTitleRows      = 1
	FooterRows         = 1
	BottomMarginRows   = 1
	HorizontalMargin   = 2
	HorizontalGapWidth = 2
)

// Layout manages the pane layout and dimensions for the UI: a wide swatch
// pane on the left and the slot detail pane on the right.
type Layout struct {
	width  int
	height int

	// Content dimensions (without borders)
	swatchContentWidth int
	slotsContentWidth  int
	contentHeight      int

	// Full pane dimensions (with borders)
	swatchWidth int
	slotsWidth  int
	paneHeight  int
}

// NewLayout creates a new layout with the given terminal dimensions
func NewLayout(width, height int) *Layout {
	l := &Layout{
		width:  width,
		height: height,
	}
	l.calculate()
	return l
}

// Update recalculates the layout for new terminal dimensions
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

// calculate computes all pane dimensions based on terminal size
func (l *Layout) calculate() {
	// Reserve space for non-pane rows (top padding, titles, footer spacing)
	chromeHeight := TopPaddingRows + BottomSpacerRows + PaneTitleRows + FooterRows + BottomMarginRows
	availableHeight := l.height - chromeHeight

	totalHorizontalMargins := HorizontalMargin*2 + HorizontalGapWidth
	usableWidth := l.width - totalHorizontalMargins
	if usableWidth < 0 {
		usableWidth = 0
	}

	frameWidth := components.PaneBaseStyle.GetHorizontalFrameSize()
	frameHeight := components.PaneBaseStyle.GetVerticalFrameSize()
	contentPaddingWidth := components.PaneContentHorizontalPadding() * 2
	minPaneHeight := frameHeight + 1 // at least one line of content inside the frame
	if availableHeight < minPaneHeight {
		availableHeight = minPaneHeight
	}

	// Two columns; subtract frame and internal padding for each to get the
	// width actually available to content.
	totalChromeWidth := (frameWidth + contentPaddingWidth) * 2
	availableContentWidth := usableWidth - totalChromeWidth
	if availableContentWidth < 0 {
		availableContentWidth = 0
	}

	// Split content: roughly two thirds for swatches, the rest for details.
	l.swatchContentWidth = int(float64(availableContentWidth) * 0.65)
	l.slotsContentWidth = availableContentWidth - l.swatchContentWidth

	l.swatchWidth = l.swatchContentWidth + contentPaddingWidth + frameWidth
	l.slotsWidth = l.slotsContentWidth + contentPaddingWidth + frameWidth

	l.paneHeight = availableHeight
	l.contentHeight = availableHeight - frameHeight
	if l.contentHeight < 1 {
		l.contentHeight = 1
	}
}

// RenderPanes renders both panes with the given content, highlighting the
// focused pane's border.
func (l *Layout) RenderPanes(swatchContent, slotsContent string, focused FocusState) (string, string) {
	swatchStyle := components.PaneBaseStyle
	slotsStyle := components.PaneBaseStyle

	switch focused {
	case FocusSwatches:
		swatchStyle = swatchStyle.BorderForeground(lipgloss.Color(theme.TintboxColor))
	case FocusSlots:
		slotsStyle = slotsStyle.BorderForeground(lipgloss.Color(theme.BorderActive))
	}

	frameHeight := components.PaneBaseStyle.GetVerticalFrameSize()
	contentHeight := l.paneHeight - frameHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	horizontalPadding := components.PaneContentHorizontalPadding() * 2
	swatchFullWidth := l.swatchContentWidth + horizontalPadding
	slotsFullWidth := l.slotsContentWidth + horizontalPadding

	if lipgloss.Width(swatchContent) < swatchFullWidth {
		swatchContent = components.ApplyPaneContentPadding(swatchContent, l.swatchContentWidth)
	}
	if lipgloss.Width(slotsContent) < slotsFullWidth {
		slotsContent = components.ApplyPaneContentPadding(slotsContent, l.slotsContentWidth)
	}

	swatchWrapped := lipgloss.NewStyle().
		Width(swatchFullWidth).
		MaxHeight(contentHeight).
		Render(swatchContent)
	swatchAligned := lipgloss.PlaceVertical(contentHeight, lipgloss.Top, swatchWrapped)
	swatchPane := swatchStyle.
		Height(l.paneHeight - frameHeight).
		Render(swatchAligned)

	slotsWrapped := lipgloss.NewStyle().
		Width(slotsFullWidth).
		MaxHeight(contentHeight).
		Render(slotsContent)
	slotsAligned := lipgloss.PlaceVertical(contentHeight, lipgloss.Top, slotsWrapped)
	slotsPane := slotsStyle.
		Height(l.paneHeight - frameHeight).
		Render(slotsAligned)

	return swatchPane, slotsPane
}

// GetSwatchDimensions returns the content dimensions for the swatch pane
func (l *Layout) GetSwatchDimensions() (width, height int) {
	return l.swatchContentWidth, l.contentHeight
}

// GetSlotsDimensions returns the content dimensions for the slots pane
func (l *Layout) GetSlotsDimensions() (width, height int) {
	return l.slotsContentWidth, l.contentHeight
}

// GetWidth returns the layout width
func (l *Layout) GetWidth() int {
	return l.width
}

// GetHeight returns the layout height
func (l *Layout) GetHeight() int {
	return l.height
}

// PaneHeight returns the full height of each pane, borders included
func (l *Layout) PaneHeight() int {
	return l.paneHeight
}
