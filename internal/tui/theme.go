package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Teal      = lipgloss.Color("#26A69A")
	DarkTeal  = lipgloss.Color("#00796B")
	DimTeal   = lipgloss.Color("#004D40")
	Amber     = lipgloss.Color("#FFB300")
	Red       = lipgloss.Color("#FF4136")
	Black     = lipgloss.Color("#0D0208")
	MidGray   = lipgloss.Color("#3a3a4e")
	LightGray = lipgloss.Color("#aaaaaa")
	White     = lipgloss.Color("#e0e0e0")

	// Panes
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MidGray).
			Padding(0, 1)

	PaneActiveStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Teal).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	// Form
	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Width(10)

	LabelActiveStyle = lipgloss.NewStyle().
				Foreground(Teal).
				Bold(true).
				Width(10)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(DarkTeal).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	StatusModeStyle = lipgloss.NewStyle().
			Background(Teal).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(White)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(MidGray)
)
