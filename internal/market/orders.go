package market

import (
	"fmt"

	"campusmart/internal/domain"
	ordersvc "campusmart/internal/services/order"
)

// Orders returns the order log, newest first.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Orders()
}

// OrdersForCustomer returns the orders placed by customerID, newest first.
func (s *Store) OrdersForCustomer(customerID string) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.ForCustomer(customerID)
}

// OrdersForBusiness returns the orders received by businessID, newest first.
func (s *Store) OrdersForBusiness(businessID string) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.ForBusiness(businessID)
}

// AddOrder prepends o to the order log and returns the stored record. Orders
// failing order.Validate are rejected and nothing is stored.
func (s *Store) AddOrder(o domain.Order) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, err := s.orders.Add(o)
	if err != nil {
		return domain.Order{}, err
	}
	s.commit(domain.SlotOrders)
	return stored, nil
}

// UpdateOrderStatus sets the status of orderID. Any enumerated status is
// accepted regardless of the current one.
func (s *Store) UpdateOrderStatus(orderID string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed, err := s.orders.UpdateStatus(orderID, status)
	if err != nil {
		return err
	}
	if changed {
		s.commit(domain.SlotOrders)
	}
	return nil
}

// DeleteOrder removes orderID from the log.
func (s *Store) DeleteOrder(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orders.Delete(orderID) {
		s.commit(domain.SlotOrders)
	}
}

// Checkout turns the cart into one pending order per business, clears the
// cart and notifies each business owner and the customer. It returns the new
// orders in the order their businesses first appear in the cart.
func (s *Store) Checkout(method domain.PaymentMethod) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, domain.ErrAuthenticationRequired
	}
	customer := s.user.ID

	drafts, err := ordersvc.FromCart(customer, s.cart.Lines(), method)
	if err != nil {
		return nil, err
	}

	for _, d := range drafts {
		if err := ordersvc.Validate(d); err != nil {
			return nil, err
		}
	}
	placed := make([]domain.Order, 0, len(drafts))
	for _, d := range drafts {
		o, err := s.orders.Add(d)
		if err != nil {
			return nil, err
		}
		placed = append(placed, o)
	}
	s.cart.Clear()

	for _, o := range placed {
		meta := domain.NotificationMeta{Kind: domain.NotificationOrder, ID: o.ID}
		if owner, ok := (directory{s}).BusinessOwner(o.BusinessID); ok {
			s.inbox.Add(owner, domain.Notification{
				Title:   "Nuevo pedido recibido",
				Message: fmt.Sprintf("Pedido %s por $%.2f (%s).", o.ID, o.Total, o.PaymentMethod),
				Meta:    meta,
			})
		}
		s.inbox.Add(customer, domain.Notification{
			Title:   "Pedido realizado",
			Message: fmt.Sprintf("Tu pedido %s por $%.2f fue registrado.", o.ID, o.Total),
			Meta:    meta,
		})
	}

	s.commit(domain.SlotOrders, domain.SlotCart, domain.SlotNotifications)
	return placed, nil
}
