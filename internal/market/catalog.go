package market

import (
	"campusmart/internal/catalog"
	"campusmart/internal/domain"
)

// Products returns every product in registry order.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Values()
}

// Product returns the product with id.
func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Get(id)
}

// ProductsByBusiness returns the products listed by businessID.
func (s *Store) ProductsByBusiness(businessID string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Filter(func(p domain.Product) bool { return p.BusinessID == businessID })
}

// FeaturedProducts returns the products flagged as featured.
func (s *Store) FeaturedProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Filter(domain.Product.IsFeatured)
}

// AddProduct normalizes p and inserts it, or replaces the product with the
// same id in place. An empty id is assigned. Products failing
// catalog.Validate are rejected with catalog.ErrInvalidProduct.
func (s *Store) AddProduct(p domain.Product) (domain.Product, error) {
	if err := catalog.Validate(p); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.newID()
	}
	p = catalog.Normalize(p)
	s.products.Put(p)
	s.commit(domain.SlotProducts)
	return p, nil
}

// UpdateProduct normalizes p, replaces the product with its id and refreshes
// the matching cart line snapshot. Unknown ids are a no-op; invalid products
// are rejected as in AddProduct.
func (s *Store) UpdateProduct(p domain.Product) (bool, error) {
	if err := catalog.Validate(p); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.products.Has(p.ID) {
		return false, nil
	}
	p = catalog.Normalize(p)
	s.products.Put(p)

	slots := []string{domain.SlotProducts}
	if s.cart.RefreshProduct(p) {
		slots = append(slots, domain.SlotCart)
	}
	s.commit(slots...)
	return true, nil
}

// DeleteProduct removes the product with id. Cart lines and orders that
// mention it are left as they are.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.products.Delete(id) {
		s.commit(domain.SlotProducts)
	}
}
