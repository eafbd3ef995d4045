package market

import "campusmart/internal/domain"

// Cart returns the cart lines in the order they were added.
func (s *Store) Cart() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// CartTotal returns the sum of price × quantity over the cart lines.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// CartCount returns the number of units in the cart.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// AddToCart adds quantity units of product, merging with an existing line for
// the same product id. A quantity below one adds a single unit. Products
// failing catalog.Validate are rejected.
func (s *Store) AddToCart(product domain.Product, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Add(product, quantity); err != nil {
		return err
	}
	s.commit(domain.SlotCart)
	return nil
}

// UpdateCartQuantity sets the quantity of a line. Zero or less removes it.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.UpdateQuantity(productID, quantity) {
		s.commit(domain.SlotCart)
	}
}

// RemoveFromCart drops the line for productID.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Remove(productID) {
		s.commit(domain.SlotCart)
	}
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Clear() {
		s.commit(domain.SlotCart)
	}
}
