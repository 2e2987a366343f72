// Package component defines the tower components managed by escapetower
// and the fixed-capacity inventory that holds them.
package component

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits, in bytes.
const (
	// MaxNameLen is the longest name kept; longer input is truncated.
	MaxNameLen = 29
	// MaxTypeLen is the longest type kept; longer input is truncated.
	MaxTypeLen = 19
)

// Priority bounds. 10 is the highest priority.
const (
	MinPriority = 1
	MaxPriority = 10
)

// Component is a single registered tower component.
// Components carry no identity; they are ordered purely by field value.
type Component struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Priority int    `yaml:"priority"`
}

// New builds a component, truncating name and type to their limits
// and rejecting empty text fields or an out-of-range priority.
func New(name, typ string, priority int) (Component, error) {
	c := Component{
		Name:     Truncate(name, MaxNameLen),
		Type:     Truncate(typ, MaxTypeLen),
		Priority: priority,
	}
	if err := c.Validate(); err != nil {
		return Component{}, err
	}
	return c, nil
}

// Validate checks the field constraints of a component.
func (c Component) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Type == "" {
		return ErrEmptyType
	}
	if c.Priority < MinPriority || c.Priority > MaxPriority {
		return fmt.Errorf("%w: got %d", ErrPriorityRange, c.Priority)
	}
	return nil
}

// Truncate shortens s to at most maxBytes bytes without splitting a rune.
func Truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// CompareName orders components by name, byte-wise ascending.
func CompareName(a, b Component) int {
	return strings.Compare(a.Name, b.Name)
}

// CompareType orders components by type, byte-wise ascending.
func CompareType(a, b Component) int {
	return strings.Compare(a.Type, b.Type)
}

// ComparePriorityDesc orders components by priority, highest first.
// It returns a negative value when a should come before b.
func ComparePriorityDesc(a, b Component) int {
	switch {
	case a.Priority > b.Priority:
		return -1
	case a.Priority < b.Priority:
		return 1
	default:
		return 0
	}
}
