package seed_test

import (
	"testing"

	"campusmart/internal/catalog"
	"campusmart/internal/domain"
	"campusmart/internal/seed"
)

func TestDefault_ReferencesResolve(t *testing.T) {
	d := seed.Default()

	businesses := make(map[string]bool)
	for _, b := range d.Businesses {
		businesses[b.ID] = true
	}
	hasAdmin := false
	for _, u := range d.Users {
		if !u.Role.Valid() {
			t.Errorf("user %s has invalid role %q", u.ID, u.Role)
		}
		if u.ID == domain.AdminUserID {
			hasAdmin = true
		}
		if u.BusinessID != nil && !businesses[*u.BusinessID] {
			t.Errorf("user %s references missing business %s", u.ID, *u.BusinessID)
		}
	}
	if !hasAdmin {
		t.Error("seed has no admin account")
	}
	for _, p := range d.Products {
		if !businesses[p.BusinessID] {
			t.Errorf("product %s references missing business %s", p.ID, p.BusinessID)
		}
	}
}

func TestDefault_ProductsAreNormalized(t *testing.T) {
	for _, p := range seed.Default().Products {
		n := catalog.Normalize(p)
		if n.Image != p.Image || len(n.Images) != len(p.Images) || p.AcceptsCash == nil {
			t.Errorf("product %s is not normalized", p.ID)
		}
	}
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	a := seed.Default()
	*a.Users[1].BusinessID = "changed"
	a.Products[0].Images[0] = "changed"

	b := seed.Default()
	if *b.Users[1].BusinessID == "changed" || b.Products[0].Images[0] == "changed" {
		t.Fatal("Default shares state between calls")
	}
}
