package cart

import (
	"campusmart/internal/catalog"
	"campusmart/internal/domain"
	"campusmart/internal/money"
)

// Service holds the cart lines in the order products were first added.
type Service struct {
	lines []domain.CartLine
}

// New returns an empty cart.
func New() *Service { return &Service{} }

// Restore replaces the cart with lines loaded from storage.
//
// Product snapshots are normalized, lines with a quantity below one are
// dropped, as are lines whose product fails catalog.Validate, and duplicate
// product ids are merged into the first line.
func (s *Service) Restore(lines []domain.CartLine) {
	s.lines = s.lines[:0]
	for _, l := range catalog.NormalizeLines(lines) {
		if l.Quantity < 1 || catalog.Validate(l.Product) != nil {
			continue
		}
		if i := s.find(l.Product.ID); i >= 0 {
			s.lines[i].Quantity += l.Quantity
			continue
		}
		s.lines = append(s.lines, l)
	}
}

// Lines returns a copy of the cart lines.
func (s *Service) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.Clone()
	}
	return out
}

// Line returns the line for productID.
func (s *Service) Line(productID string) (domain.CartLine, bool) {
	if i := s.find(productID); i >= 0 {
		return s.lines[i].Clone(), true
	}
	return domain.CartLine{}, false
}

// Add increments the line for product by quantity, or appends a new line.
// A quantity below one counts as one. Products failing catalog.Validate are
// rejected.
func (s *Service) Add(product domain.Product, quantity int) error {
	if err := catalog.Validate(product); err != nil {
		return err
	}
	if quantity < 1 {
		quantity = 1
	}
	if i := s.find(product.ID); i >= 0 {
		s.lines[i].Quantity += quantity
		return nil
	}
	s.lines = append(s.lines, domain.CartLine{Product: catalog.Normalize(product), Quantity: quantity})
	return nil
}

// UpdateQuantity sets the quantity of the line for productID, removing the
// line when quantity is zero or below. It reports whether the cart changed.
func (s *Service) UpdateQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return s.Remove(productID)
	}
	i := s.find(productID)
	if i < 0 || s.lines[i].Quantity == quantity {
		return false
	}
	s.lines[i].Quantity = quantity
	return true
}

// Remove drops the line for productID. It reports whether a line was removed.
func (s *Service) Remove(productID string) bool {
	i := s.find(productID)
	if i < 0 {
		return false
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return true
}

// Clear empties the cart. It reports whether there was anything to remove.
func (s *Service) Clear() bool {
	if len(s.lines) == 0 {
		return false
	}
	s.lines = nil
	return true
}

// RefreshProduct rewrites the snapshot of product in its cart line so the
// cart shows the latest name, price and stock. It reports whether a line
// matched; invalid products are ignored.
func (s *Service) RefreshProduct(product domain.Product) bool {
	i := s.find(product.ID)
	if i < 0 || catalog.Validate(product) != nil {
		return false
	}
	s.lines[i].Product = catalog.Normalize(product)
	return true
}

// Total returns the sum of price × quantity over all lines.
func (s *Service) Total() float64 {
	return money.Sum(s.lines, func(l domain.CartLine) (float64, int) {
		return l.Product.Price, l.Quantity
	})
}

// Count returns the number of units in the cart.
func (s *Service) Count() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Service) find(productID string) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Compile-time assertion that Service implements domain.CartService.
var _ domain.CartService = (*Service)(nil)
