package model

// Item is a catalog entry. Deleted items stay in the catalog with their id
// and are hidden from normal reads.
type Item struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Deleted bool    `json:"deleted"`
}

// ItemPatch carries the fields of a partial item update. Nil means untouched.
type ItemPatch struct {
	Name  *string
	Price *float64
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}

// Apply merges the present fields into item.
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
}
