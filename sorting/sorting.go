// Package sorting implements the three instrumented in-place sorts used to
// organize the tower inventory, plus a timing harness around them.
//
// Every sort reports the number of key comparisons it performed. Element
// moves are tallied separately and are not part of the reported metric.
package sorting

import (
	"github.com/c360studio/escapetower/component"
)

// Result is the instrumentation produced by a single sort run.
type Result struct {
	// Comparisons is the number of key comparisons performed.
	Comparisons int64
	// Swaps is the number of element exchanges or shifts performed.
	Swaps int64
}

// Func is an in-place sort over a component slice.
type Func func(items []component.Component) Result

// BubbleSortByName sorts items by name, ascending, using bubble sort
// with early exit once a full pass makes no swap. Sorted input costs
// exactly len(items)-1 comparisons.
func BubbleSortByName(items []component.Component) Result {
	var r Result
	n := len(items)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			r.Comparisons++
			if component.CompareName(items[j], items[j+1]) > 0 {
				items[j], items[j+1] = items[j+1], items[j]
				r.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return r
}

// InsertionSortByType sorts items by type, ascending, using insertion sort.
// The comparison that stops the inner scan is counted. The sort is stable.
func InsertionSortByType(items []component.Component) Result {
	var r Result
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 {
			r.Comparisons++
			if component.CompareType(items[j], key) <= 0 {
				break
			}
			items[j+1] = items[j]
			r.Swaps++
			j--
		}
		items[j+1] = key
	}
	return r
}

// SelectionSortByPriority sorts items by priority, highest first, using
// selection sort. It always performs n(n-1)/2 comparisons. Equal
// priorities keep the first one found as the maximum, and the swap into
// place may reorder ties: the sort is not stable.
func SelectionSortByPriority(items []component.Component) Result {
	var r Result
	n := len(items)
	for i := 0; i < n-1; i++ {
		maxIdx := i
		for j := i + 1; j < n; j++ {
			r.Comparisons++
			if component.ComparePriorityDesc(items[j], items[maxIdx]) < 0 {
				maxIdx = j
			}
		}
		if maxIdx != i {
			items[i], items[maxIdx] = items[maxIdx], items[i]
			r.Swaps++
		}
	}
	return r
}
