package valueobject

import (
	"errors"
	"strings"
)

// ErrInvalidPriority is returned when a priority string is not recognized
var ErrInvalidPriority = errors.New("invalid priority value")

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned when no priority is given
const DefaultPriority = PriorityLow

// ParsePriority converts a string to a Priority. An empty string yields the default.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPriority, nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return "", ErrInvalidPriority
	}
}

// IsValid reports whether the priority is one of the known levels
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// String returns the wire representation
func (p Priority) String() string {
	return string(p)
}

// Rank orders priorities from low (0) to high (2)
func (p Priority) Rank() int {
	switch p {
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	default:
		return 0
	}
}
