package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	// Background colors
	ColorBgPrimary   = lipgloss.Color("#282C34")
	ColorBgHighlight = lipgloss.Color("#2C313C")

	// Foreground colors
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorFgComment = lipgloss.Color("#5C6370")

	// Syntax colors
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")

	// UI colors
	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	// Countdown styles
	TimerStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true).
			Padding(0, 1)

	TimerLowStyle = TimerStyle.
			Foreground(ColorRed)

	// Tile styles
	TileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorFgPrimary).
			Background(ColorBgHighlight).
			Bold(true).
			Width(4).
			Align(lipgloss.Center)

	TileDimStyle = TileStyle.
			Foreground(ColorFgComment).
			Background(ColorBgPrimary)

	// Status badge styles, keyed by status class
	StatusIdleStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	StatusInProgressStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	StatusOverStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	StatusStoppedStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	// Frame around the game
	BoardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Dimmed/info style for less important messages
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)
