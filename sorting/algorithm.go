package sorting

// ID identifies one of the supported sorts.
type ID string

const (
	IDBubbleName        ID = "bubble-name"
	IDInsertionType     ID = "insertion-type"
	IDSelectionPriority ID = "selection-priority"
)

// Algorithm describes a sort: what it is called, which key it orders by,
// and the function that runs it.
type Algorithm struct {
	ID ID
	// Label is the algorithm name shown to users (e.g. "Bubble").
	Label string
	// Key is the field ordered by, upper case for display (e.g. "NAME").
	Key string
	// Descending is set when higher key values come first.
	Descending bool
	Run        Func
}

var algorithms = []Algorithm{
	{ID: IDBubbleName, Label: "Bubble", Key: "NAME", Run: BubbleSortByName},
	{ID: IDInsertionType, Label: "Insertion", Key: "TYPE", Run: InsertionSortByType},
	{ID: IDSelectionPriority, Label: "Selection", Key: "PRIORITY", Descending: true, Run: SelectionSortByPriority},
}

// Algorithms returns the supported sorts in menu order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Lookup returns the algorithm with the given ID.
func Lookup(id ID) (Algorithm, bool) {
	for _, a := range algorithms {
		if a.ID == id {
			return a, true
		}
	}
	return Algorithm{}, false
}
