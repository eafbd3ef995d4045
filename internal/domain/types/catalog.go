package types

// Product is an item listed by a business.
//
// The acceptance flags are nil when absent on input; catalog.Normalize fills
// them in, so every product held by the store has all four set.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	Stock           int      `json:"stock"`
	BusinessID      string   `json:"businessId"`
	Image           string   `json:"image"`
	Images          []string `json:"images"`
	AcceptsDelivery *bool    `json:"acceptsDelivery,omitempty"`
	AcceptsPickup   *bool    `json:"acceptsPickup,omitempty"`
	AcceptsPaypal   *bool    `json:"acceptsPaypal,omitempty"`
	AcceptsCash     *bool    `json:"acceptsCash,omitempty"`
	Featured        *bool    `json:"featured,omitempty"`
}

// Clone returns a deep copy of p.
func (p Product) Clone() Product {
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	p.AcceptsDelivery = cloneBool(p.AcceptsDelivery)
	p.AcceptsPickup = cloneBool(p.AcceptsPickup)
	p.AcceptsPaypal = cloneBool(p.AcceptsPaypal)
	p.AcceptsCash = cloneBool(p.AcceptsCash)
	p.Featured = cloneBool(p.Featured)
	return p
}

// IsFeatured reports whether the product is flagged for the home page.
func (p Product) IsFeatured() bool { return p.Featured != nil && *p.Featured }

// CartLine is one product in the active session's cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Clone returns a deep copy of l.
func (l CartLine) Clone() CartLine {
	l.Product = l.Product.Clone()
	return l
}
