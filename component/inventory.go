package component

import "fmt"

// Capacity is the maximum number of components an inventory holds.
const Capacity = 20

// Inventory is a fixed-capacity, ordered collection of components.
// Its length grows during registration and is frozen by Seal.
// An Inventory is not safe for concurrent use.
type Inventory struct {
	items  [Capacity]Component
	n      int
	sealed bool
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends a validated component.
func (inv *Inventory) Add(c Component) error {
	if inv.sealed {
		return ErrSealed
	}
	if inv.n == Capacity {
		return fmt.Errorf("%w: capacity %d", ErrInventoryFull, Capacity)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	inv.items[inv.n] = c
	inv.n++
	return nil
}

// Seal ends registration; later Add calls fail with ErrSealed.
func (inv *Inventory) Seal() {
	inv.sealed = true
}

// Sealed reports whether registration has ended.
func (inv *Inventory) Sealed() bool {
	return inv.sealed
}

// Len returns the number of registered components.
func (inv *Inventory) Len() int {
	return inv.n
}

// Items returns the registered components. The slice aliases the
// inventory's storage, so reordering it reorders the inventory.
func (inv *Inventory) Items() []Component {
	return inv.items[:inv.n:inv.n]
}

// At returns the component at index i.
func (inv *Inventory) At(i int) Component {
	if i < 0 || i >= inv.n {
		panic(fmt.Sprintf("component: index %d out of range [0,%d)", i, inv.n))
	}
	return inv.items[i]
}

// Snapshot returns a copy of the registered components.
func (inv *Inventory) Snapshot() []Component {
	out := make([]Component, inv.n)
	copy(out, inv.items[:inv.n])
	return out
}
