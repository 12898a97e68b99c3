package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ReportLinePrefix   = "• "
)

// Layout sizing
const (
	// Fraction of the split given to the entry list
	DesktopListOffset = 0.4
	MobileListOffset  = 0.45

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 320
)

// Load reports list at most this many rejected lines
const MaxReportedLines = 10
