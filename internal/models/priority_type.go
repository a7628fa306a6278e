package models

import (
	"fmt"
	"strings"
)

// Priority represents a task priority level. The zero value is LOW;
// use PriorityMedium (or NewTask) for the default.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// Priorities lists every level from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// String returns the stored name of the priority
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityHigh:
		return "HIGH"
	default:
		return "MEDIUM"
	}
}

// Label returns a capitalised display label
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// Next cycles LOW -> MEDIUM -> HIGH -> LOW
func (p Priority) Next() Priority {
	return (p + 1) % Priority(len(Priorities))
}

// ParsePriority maps a case-insensitive name to a priority
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return PriorityLow, nil
	case "MEDIUM":
		return PriorityMedium, nil
	case "HIGH":
		return PriorityHigh, nil
	}
	return PriorityMedium, fmt.Errorf("invalid priority '%s' (must be: low, medium, high)", s)
}

// PriorityFromStored decodes a stored name, falling back to MEDIUM for unknown values
func PriorityFromStored(s string) Priority {
	p, err := ParsePriority(s)
	if err != nil {
		return PriorityMedium
	}
	return p
}

// MarshalText stores the priority by name
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText
func (p *Priority) UnmarshalText(b []byte) error {
	parsed, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
