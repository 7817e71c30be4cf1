package theme

// Theme defines all colors used throughout the application with semantic
// naming. These style the chrome only; swatch colors always come from the
// palette itself.
var (
	// Brand colors
	TintboxColor = "#e8a33d" // tintbox amber for branding and active elements

	// Text colors
	TextPrimary     = "#ffffff" // white text for focused/active elements
	TextDescription = "#c9c9c9" // light gray for descriptions and help text
	TextMuted       = "#7a7a7a" // dark gray for very subtle text like hex codes

	// Border colors
	BorderActive = "#c9c9c9" // brighter gray for the focused pane border
	BorderMuted  = "#7a7a7a" // standard border color

	// Status/semantic colors
	SuccessStatus = "#50fa7b" // green for copy confirmations
	WarningStatus = "#ffb86c" // orange for warnings (degraded color profile)
	ErrorStatus   = "#ff5555" // red for errors (clipboard failures)
	InfoStatus    = "#8be9fd" // cyan for info, theory names

	// UI colors
	HighlightBg    = "#282a36" // background for highlighted text
	SeparatorColor = "#4a4a4a" // very dark gray for separators
	LockAccent     = "#f1fa8c" // yellow for lock markers
	RowHighlight   = "#525252" // subtle medium gray for row highlighting
)
