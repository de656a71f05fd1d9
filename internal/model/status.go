package model

// Status represents the page-level state of a game session
type Status int

const (
	StatusIdle       Status = iota // Board dealt, clock not running
	StatusInProgress               // Clock running
	StatusOver                     // Time ran out (or any stop under the single policy)
	StatusStopped                  // Stopped by the player
)

// String returns a short name for logs and the debug panel
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInProgress:
		return "in-progress"
	case StatusOver:
		return "over"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Class returns the status class shown on the status surface.
// Idle has no class.
func (s Status) Class() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusOver:
		return "game-over"
	case StatusStopped:
		return "stopped"
	default:
		return ""
	}
}

// Icon returns the badge icon for the status
func (s Status) Icon() string {
	switch s {
	case StatusInProgress:
		return "●"
	case StatusOver:
		return "✓"
	case StatusStopped:
		return "⊘"
	default:
		return "○"
	}
}

// StatusClasses lists every class a status can apply, in a stable order
func StatusClasses() []string {
	return []string{
		StatusInProgress.Class(),
		StatusOver.Class(),
		StatusStopped.Class(),
	}
}

// IsTerminal reports whether the session has ended its round
func (s Status) IsTerminal() bool {
	return s == StatusOver || s == StatusStopped
}
