package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/kvpairs/internal/version"
)

// AppName is shown in the title bar
const AppName = "KVPAIRS"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	KeyColumnWidth  = 25 // Pair listing pads keys to this width
	PopupWidthRatio = 60 // Popup width as a percentage of the terminal
	MinPopupWidth   = 40
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FFD75F") // Yellow
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BackgroundColor = lipgloss.Color("#3A3A3A") // Dark gray
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Padding(1, 0)

	// Pair listing
	ListBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	PairStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	EmptyListStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Menu item style (unselected)
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Menu item style (selected)
	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Italic(true).
				Bold(true)

	PopupStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Padding(1, 2)

	PopupTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(BackgroundColor).
			Bold(true)

	// Edit fields
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(AccentColor).
				Background(lipgloss.Color("#FFFFAF")).
				Foreground(lipgloss.Color("#000000"))

	BlurredInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(SubtleColor)

	InputLabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Bold(true)

	ExitPromptStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)
)

// RenderTitle renders the application title with version
func RenderTitle() string {
	return TitleStyle.Render(AppName + " v" + AppVersion())
}

// RenderMenuItem renders a menu label; labels arrive already decorated
func RenderMenuItem(label string, selected bool) string {
	if selected {
		return SelectedMenuItemStyle.Render(label)
	}
	return MenuItemStyle.Render(label)
}

// popupWidth returns the popup width for a terminal width
func popupWidth(termWidth int) int {
	w := termWidth * PopupWidthRatio / 100
	if w < MinPopupWidth {
		w = MinPopupWidth
	}
	return w
}
