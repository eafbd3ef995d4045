package market

import "campusmart/internal/domain"

// SetUser starts a session for u, or ends it when u is nil.
func (s *Store) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
	} else {
		c := u.Clone()
		s.user = &c
	}
	s.commit(domain.SlotUser)
}

// CurrentUser returns the session user.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return s.user.Clone(), true
}

// Users returns every account in registry order.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.Values()
}

// User returns the account with id.
func (s *Store) User(id string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.Get(id)
}

// UpsertUser stores u, replacing the account with the same id or, failing
// that, the same email. An email match keeps the existing account's id when u
// has none. A businessId that names no business is dropped. If the replaced
// account is the session user the session is refreshed too.
func (s *Store) UpsertUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u = u.Clone()
	if u.BusinessID != nil && !s.businesses.Has(*u.BusinessID) {
		u.BusinessID = nil
	}

	replaced := ""
	switch {
	case u.ID != "" && s.users.Has(u.ID):
		replaced = u.ID
		s.users.Put(u)
	default:
		existing, ok := s.users.Find(func(x domain.User) bool { return u.Email != "" && x.Email == u.Email })
		if ok {
			if u.ID == "" {
				u.ID = existing.ID
			}
			replaced = existing.ID
			s.users.Swap(existing.ID, u)
		} else {
			if u.ID == "" {
				u.ID = s.newID()
			}
			s.users.Put(u)
		}
	}

	slots := []string{domain.SlotUsers}
	if replaced != "" && s.user != nil && s.user.ID == replaced {
		c := u.Clone()
		s.user = &c
		slots = append(slots, domain.SlotUser)
	}
	s.commit(slots...)
	return u.Clone()
}

// DeleteUser removes the account with id.
func (s *Store) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.users.Delete(id) {
		s.commit(domain.SlotUsers)
	}
}

// Businesses returns every business in registry order.
func (s *Store) Businesses() []domain.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.businesses.Values()
}

// Business returns the business with id.
func (s *Store) Business(id string) (domain.Business, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.businesses.Get(id)
}

// AddBusiness inserts b, or replaces the business with the same id in place.
// An empty id is assigned.
func (s *Store) AddBusiness(b domain.Business) domain.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = s.newID()
	}
	s.businesses.Put(b)
	s.commit(domain.SlotBusinesses)
	return b.Clone()
}

// UpdateBusiness replaces the business with b's id. Unknown ids are a no-op.
func (s *Store) UpdateBusiness(b domain.Business) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.businesses.Has(b.ID) {
		return false
	}
	s.businesses.Put(b)
	s.commit(domain.SlotBusinesses)
	return true
}

// DeleteBusiness removes the business with id and clears every account's
// reference to it. Products listed by the business are kept.
func (s *Store) DeleteBusiness(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.businesses.Delete(id) {
		return
	}
	owned := func(u domain.User) bool { return u.HasBusiness(id) }
	unlink := func(u *domain.User) { u.BusinessID = nil }

	slots := []string{domain.SlotBusinesses}
	if s.users.UpdateWhere(owned, unlink) > 0 {
		slots = append(slots, domain.SlotUsers)
	}
	if s.user != nil && owned(*s.user) {
		unlink(s.user)
		slots = append(slots, domain.SlotUser)
	}
	s.commit(slots...)
}
