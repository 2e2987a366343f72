package session

import "errors"

// Session errors.
var (
	// ErrNotSortedByName is returned when a search is requested while the
	// inventory is not known to be sorted by name.
	ErrNotSortedByName = errors.New("inventory is not sorted by name")

	// ErrUnknownAlgorithm is returned for a sort ID with no algorithm.
	ErrUnknownAlgorithm = errors.New("unknown sort algorithm")
)
