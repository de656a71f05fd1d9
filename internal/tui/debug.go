package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/letterbox/tui-go/internal/session"
)

// DebugPanel keeps a log of session transitions for display
type DebugPanel struct {
	enabled bool     // Whether the panel is shown
	lines   []string // Recent debug log lines
	buffer  int      // Max lines to keep in buffer
	now     func() time.Time
}

// NewDebugPanel creates a new debug panel
func NewDebugPanel(enabled bool) *DebugPanel {
	return &DebugPanel{
		enabled: enabled,
		buffer:  100, // Keep last 100 debug lines
		now:     time.Now,
	}
}

// IsEnabled returns whether the panel is shown
func (d *DebugPanel) IsEnabled() bool {
	return d.enabled
}

// Toggle shows or hides the panel. Lines are kept while hidden.
func (d *DebugPanel) Toggle() {
	d.enabled = !d.enabled
}

// AddLine adds a new debug line with timestamp
func (d *DebugPanel) AddLine(line string) {
	timestamp := d.now().Format("15:04:05.000")
	d.lines = append(d.lines, timestamp+" "+line)
	// Keep only last N debug lines
	if len(d.lines) > d.buffer {
		d.lines = d.lines[len(d.lines)-d.buffer:]
	}
}

// AddEvent adds a debug event (formats event type prominently)
func (d *DebugPanel) AddEvent(eventType string, details string) {
	line := "[" + eventType + "]"
	if details != "" {
		line += " " + details
	}
	d.AddLine(line)
}

// AddTransition records a session status change
func (d *DebugPanel) AddTransition(tr session.Transition) {
	round := tr.Round
	if len(round) > 8 {
		round = round[:8]
	}
	details := tr.From.String() + " → " + tr.To.String()
	if round != "" {
		details += " (" + round + ")"
	}
	d.AddEvent(tr.Cause, details)
}

// Lines returns the current debug lines
func (d *DebugPanel) Lines() []string {
	return d.lines
}

// Render renders the debug panel
func (d *DebugPanel) Render(width, height int) string {
	if !d.enabled {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Render("DEBUG")

	// Calculate available height for content (minus title and borders)
	contentHeight := height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}

	var lines []string
	startIdx := 0
	if len(d.lines) > contentHeight {
		startIdx = len(d.lines) - contentHeight
	}
	for i := startIdx; i < len(d.lines); i++ {
		line := d.lines[i]
		// Truncate long lines
		maxLen := width - 4
		if maxLen < 10 {
			maxLen = 10
		}
		if len([]rune(line)) > maxLen {
			line = string([]rune(line)[:maxLen-3]) + "..."
		}
		lines = append(lines, line)
	}

	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(lines, "\n"))
}
