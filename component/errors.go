package component

import "errors"

// Validation and inventory errors.
var (
	// ErrEmptyName is returned when a component has no name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyType is returned when a component has no type.
	ErrEmptyType = errors.New("type cannot be empty")

	// ErrPriorityRange is returned when a priority falls outside [MinPriority, MaxPriority].
	ErrPriorityRange = errors.New("priority out of range")

	// ErrInventoryFull is returned when adding past Capacity.
	ErrInventoryFull = errors.New("inventory is full")

	// ErrSealed is returned when adding to an inventory after registration ended.
	ErrSealed = errors.New("inventory is sealed")
)
