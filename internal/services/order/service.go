package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"campusmart/internal/domain"
)

// Service holds the order log.
type Service struct {
	orders []domain.Order
	clock  domain.Clock
	newID  domain.IDGenerator
}

// New returns an empty order log. Nil clock or newID fall back to
// time.Now and random UUIDs.
func New(clock domain.Clock, newID domain.IDGenerator) *Service {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Service{clock: clock, newID: newID}
}

// Restore replaces the log with orders loaded from storage, keeping their order.
func (s *Service) Restore(orders []domain.Order) {
	s.orders = make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		s.orders = append(s.orders, o.Clone())
	}
}

// Orders returns a copy of the log, newest first.
func (s *Service) Orders() []domain.Order {
	out := make([]domain.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// Get returns the order with orderID.
func (s *Service) Get(orderID string) (domain.Order, bool) {
	if i := s.find(orderID); i >= 0 {
		return s.orders[i].Clone(), true
	}
	return domain.Order{}, false
}

// ForCustomer returns the orders placed by customerID, newest first.
func (s *Service) ForCustomer(customerID string) []domain.Order {
	return s.filter(func(o domain.Order) bool { return o.CustomerID == customerID })
}

// ForBusiness returns the orders placed with businessID, newest first.
func (s *Service) ForBusiness(businessID string) []domain.Order {
	return s.filter(func(o domain.Order) bool { return o.BusinessID == businessID })
}

// Add prepends order to the log and returns the stored record.
//
// An empty id, zero creation time or empty status are filled with a fresh id,
// the current time and pending. Orders failing Validate are rejected and the
// log is left unchanged.
func (s *Service) Add(order domain.Order) (domain.Order, error) {
	if err := Validate(order); err != nil {
		return domain.Order{}, err
	}
	order = order.Clone()
	if order.ID == "" {
		order.ID = s.newID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.clock().UTC()
	}
	if order.Status == "" {
		order.Status = domain.OrderPending
	}
	s.orders = append([]domain.Order{order}, s.orders...)
	return order.Clone(), nil
}

// UpdateStatus sets the status of orderID. Unknown ids are a no-op; a status
// outside the enumerated set is rejected.
func (s *Service) UpdateStatus(orderID string, status domain.OrderStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("order status %q: %w", status, domain.ErrInvalidStatus)
	}
	i := s.find(orderID)
	if i < 0 {
		return false, nil
	}
	s.orders[i].Status = status
	return true, nil
}

// Delete removes orderID from the log. It reports whether an order was removed.
func (s *Service) Delete(orderID string) bool {
	i := s.find(orderID)
	if i < 0 {
		return false
	}
	s.orders = append(s.orders[:i], s.orders[i+1:]...)
	return true
}

func (s *Service) find(orderID string) int {
	for i, o := range s.orders {
		if o.ID == orderID {
			return i
		}
	}
	return -1
}

func (s *Service) filter(match func(domain.Order) bool) []domain.Order {
	out := make([]domain.Order, 0)
	for _, o := range s.orders {
		if match(o) {
			out = append(out, o.Clone())
		}
	}
	return out
}

// Compile-time assertion that Service implements domain.OrderService.
var _ domain.OrderService = (*Service)(nil)
