package model

// CartItem is one line of a cart. Name and Available are captured when the
// item is first added and are not re-synced with the catalog afterwards.
type CartItem struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
}

// Cart holds lines in insertion order. Price is a running total of the item
// prices at the time of each add; it is never recomputed from the catalog,
// so later catalog price changes do not move it.
type Cart struct {
	ID    uint       `json:"id"`
	Items []CartItem `json:"items"`
	Price float64    `json:"price"`
}

// NewCart returns an empty cart whose Items encodes as [] rather than null.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// TotalQuantity sums the quantities of all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Items {
		total += line.Quantity
	}
	return total
}

// FindLine returns the line for itemID, or nil.
func (c *Cart) FindLine(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = make([]CartItem, len(c.Items))
	copy(clone.Items, c.Items)
	return &clone
}
