// Package search implements binary search over a name-sorted inventory.
package search

import (
	"strings"

	"github.com/c360studio/escapetower/component"
)

// NotFound is the Index of a Result that matched nothing.
const NotFound = -1

// Result is the outcome of a search.
type Result struct {
	// Index is the position of the match, or NotFound.
	Index int
	// Found reports whether a component with the queried name exists.
	Found bool
	// Comparisons is the number of probes made, one name comparison each.
	Comparisons int64
}

// BinaryByName looks for a component named query in items, which must be
// sorted ascending by name. Sortedness is not checked; on unsorted input
// the result is meaningless. When names repeat, any matching index may be
// returned.
func BinaryByName(items []component.Component, query string) Result {
	r := Result{Index: NotFound}
	lo, hi := 0, len(items)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		r.Comparisons++
		switch c := strings.Compare(items[mid].Name, query); {
		case c == 0:
			r.Index = mid
			r.Found = true
			return r
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return r
}
