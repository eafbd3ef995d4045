package order

import (
	"errors"
	"fmt"

	"campusmart/internal/catalog"
	"campusmart/internal/domain"
	"campusmart/internal/money"
)

var (
	// ErrEmptyCart is returned when checking out a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidPaymentMethod is returned for payment methods outside the supported set.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrInvalidOrder is returned for orders whose lines or total are out of range.
	ErrInvalidOrder = errors.New("invalid order")
)

// Validate checks the value invariants of o. An empty status or payment
// method is allowed; any other value must belong to its enumerated set. Each
// line needs a quantity of at least one and a finite, non-negative price, and
// so does the total.
func Validate(o domain.Order) error {
	if o.Status != "" && !o.Status.Valid() {
		return fmt.Errorf("order status %q: %w", o.Status, domain.ErrInvalidStatus)
	}
	if o.PaymentMethod != "" && !o.PaymentMethod.Valid() {
		return fmt.Errorf("payment method %q: %w", o.PaymentMethod, ErrInvalidPaymentMethod)
	}
	if !catalog.ValidPrice(o.Total) {
		return fmt.Errorf("order total %v: %w", o.Total, ErrInvalidOrder)
	}
	for _, it := range o.Products {
		if it.Quantity < 1 || !catalog.ValidPrice(it.Price) {
			return fmt.Errorf("order line %q quantity %d price %v: %w", it.ProductID, it.Quantity, it.Price, ErrInvalidOrder)
		}
	}
	return nil
}

// FromCart groups cart lines by the business that sells each product and
// builds one pending order per business, in the order businesses first appear
// in the cart. Prices and quantities are snapshotted; ids and timestamps are
// left for Service.Add to fill.
func FromCart(customerID string, lines []domain.CartLine, method domain.PaymentMethod) ([]domain.Order, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("payment method %q: %w", method, ErrInvalidPaymentMethod)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var orders []domain.Order
	index := make(map[string]int)
	for _, l := range lines {
		biz := l.Product.BusinessID
		i, ok := index[biz]
		if !ok {
			i = len(orders)
			index[biz] = i
			orders = append(orders, domain.Order{
				CustomerID:    customerID,
				BusinessID:    biz,
				Status:        domain.OrderPending,
				PaymentMethod: method,
			})
		}
		orders[i].Products = append(orders[i].Products, domain.OrderItem{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
			Price:     l.Product.Price,
		})
	}
	for i := range orders {
		orders[i].Total = money.Sum(orders[i].Products, func(it domain.OrderItem) (float64, int) {
			return it.Price, it.Quantity
		})
	}
	return orders, nil
}
