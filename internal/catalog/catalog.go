// Package catalog holds the immutable pool of learnable vocabulary
// items. The catalog is loaded once per process from authored JSON and
// is read-only afterwards; all learner state lives elsewhere.
package catalog

// Catalog is an ordered, immutable collection of items with lookup by ID.
// Order is the authoring order, which new-item session selection relies on.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// New builds a catalog from the given items, preserving their order.
// A duplicate ID keeps the first occurrence.
func New(items []Item) *Catalog {
	c := &Catalog{
		byID: make(map[string]Item, len(items)),
	}
	for _, it := range items {
		if _, exists := c.byID[it.ID]; exists {
			continue
		}
		c.byID[it.ID] = it
		c.items = append(c.items, it)
	}
	return c
}

// Get returns the item with the given ID.
func (c *Catalog) Get(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Items returns all items in authoring order. The returned slice is a
// copy; mutating it does not affect the catalog.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Category returns the items in the given category, in authoring order.
func (c *Catalog) Category(name string) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Category == name {
			out = append(out, it)
		}
	}
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
