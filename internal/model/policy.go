package model

import "fmt"

// TerminalPolicy decides which status a stopped round ends in
type TerminalPolicy string

const (
	PolicyDual   TerminalPolicy = "dual"   // Expiry ends in Over, manual stop in Stopped
	PolicySingle TerminalPolicy = "single" // Every stop ends in Over
)

// ParsePolicy validates a policy name
func ParsePolicy(name string) (TerminalPolicy, error) {
	switch TerminalPolicy(name) {
	case PolicyDual, PolicySingle:
		return TerminalPolicy(name), nil
	default:
		return "", fmt.Errorf("unknown terminal policy %q", name)
	}
}

// StopStatus maps a stop to its terminal status under the policy
func (p TerminalPolicy) StopStatus(isExpired bool) Status {
	if isExpired || p == PolicySingle {
		return StatusOver
	}
	return StatusStopped
}
