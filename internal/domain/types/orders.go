package types

import "time"

// OrderItem snapshots one product line at checkout time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a customer's purchase from a single business.
//
// Total is fixed when the order is created and is never recomputed from live
// product prices.
type Order struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	BusinessID    string        `json:"businessId"`
	Products      []OrderItem   `json:"products"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Clone returns a deep copy of o.
func (o Order) Clone() Order {
	if o.Products != nil {
		o.Products = append([]OrderItem(nil), o.Products...)
	}
	return o
}
