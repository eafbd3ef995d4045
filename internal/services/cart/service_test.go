package cart_test

import (
	"errors"
	"math"
	"testing"

	"campusmart/internal/catalog"
	"campusmart/internal/domain"
	"campusmart/internal/services/cart"
)

func product(id string, price float64) domain.Product {
	return domain.Product{ID: id, Name: id, Price: price, BusinessID: "b1"}
}

func TestCart_AddMergesQuantities(t *testing.T) {
	c := cart.New()
	adds := []int{2, 3, 1, 4}
	want := 0
	for _, q := range adds {
		c.Add(product("p1", 5), q)
		want += q
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line for p1, got %d", len(lines))
	}
	if lines[0].Quantity != want {
		t.Fatalf("quantity = %d, want %d", lines[0].Quantity, want)
	}
}

func TestCart_Scenario(t *testing.T) {
	c := cart.New()

	c.Add(product("p1", 5), 2)
	if got := c.Lines(); len(got) != 1 || got[0].Quantity != 2 {
		t.Fatalf("after first add: %+v", got)
	}
	if c.Total() != 10 {
		t.Fatalf("total = %v, want 10", c.Total())
	}

	c.Add(product("p1", 5), 3)
	if got := c.Lines(); got[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", got[0].Quantity)
	}
	if c.Total() != 25 {
		t.Fatalf("total = %v, want 25", c.Total())
	}

	if !c.UpdateQuantity("p1", 0) {
		t.Fatal("expected update to zero to change the cart")
	}
	if len(c.Lines()) != 0 {
		t.Fatalf("cart not empty: %+v", c.Lines())
	}
	if c.Total() != 0 {
		t.Fatalf("empty cart total = %v", c.Total())
	}
}

func TestCart_UpdateNonPositiveEqualsRemove(t *testing.T) {
	for _, q := range []int{0, -1, -10} {
		a, b := cart.New(), cart.New()
		for _, c := range []*cart.Service{a, b} {
			c.Add(product("p1", 2), 1)
			c.Add(product("p2", 3), 2)
		}
		a.UpdateQuantity("p1", q)
		b.Remove("p1")

		la, lb := a.Lines(), b.Lines()
		if len(la) != len(lb) || la[0].Product.ID != lb[0].Product.ID || a.Total() != b.Total() {
			t.Fatalf("q=%d: update %+v differs from remove %+v", q, la, lb)
		}
	}
}

func TestCart_TotalTracksEveryChange(t *testing.T) {
	c := cart.New()
	c.Add(product("p1", 1.25), 2)
	c.Add(product("p2", 0.1), 3)
	if got := c.Total(); got != 2.8 {
		t.Fatalf("total = %v, want 2.8", got)
	}
	c.UpdateQuantity("p2", 1)
	if got := c.Total(); got != 2.6 {
		t.Fatalf("total = %v, want 2.6", got)
	}
	c.RefreshProduct(product("p1", 2))
	if got := c.Total(); got != 4.1 {
		t.Fatalf("total after price change = %v, want 4.1", got)
	}
	if c.Count() != 3 {
		t.Fatalf("count = %d, want 3", c.Count())
	}
}

func TestCart_AddDefaultsQuantityToOne(t *testing.T) {
	c := cart.New()
	c.Add(product("p1", 1), 0)
	if got := c.Lines(); got[0].Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", got[0].Quantity)
	}
}

func TestCart_UnknownIDsAreNoOps(t *testing.T) {
	c := cart.New()
	c.Add(product("p1", 1), 1)
	if c.Remove("nope") || c.UpdateQuantity("nope", 3) || c.RefreshProduct(product("nope", 9)) {
		t.Fatal("operations on unknown ids must report no change")
	}
	if len(c.Lines()) != 1 {
		t.Fatal("cart changed")
	}
}

func TestCart_RestoreNormalizesAndMerges(t *testing.T) {
	c := cart.New()
	c.Restore([]domain.CartLine{
		{Product: domain.Product{ID: "p1", Price: 1, Image: "p1.png"}, Quantity: 1},
		{Product: domain.Product{ID: "p2", Price: 1}, Quantity: 0},
		{Product: domain.Product{ID: "p1", Price: 1}, Quantity: 2},
	})
	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("restored lines = %+v", lines)
	}
	p := lines[0].Product
	if len(p.Images) != 1 || p.Images[0] != "p1.png" || p.AcceptsCash == nil || !*p.AcceptsCash {
		t.Fatalf("snapshot not normalized: %+v", p)
	}
}

func TestCart_LinesAreCopies(t *testing.T) {
	c := cart.New()
	c.Add(product("p1", 1), 1)
	lines := c.Lines()
	lines[0].Quantity = 99
	lines[0].Product.Price = 100
	if c.Total() != 1 {
		t.Fatalf("cart observed caller mutation, total = %v", c.Total())
	}
}

func TestCart_Line(t *testing.T) {
	c := cart.New()
	c.Add(product("p1", 2), 3)

	l, ok := c.Line("p1")
	if !ok || l.Quantity != 3 || l.Product.ID != "p1" {
		t.Fatalf("Line(p1) = %+v, %v", l, ok)
	}
	if _, ok := c.Line("p2"); ok {
		t.Fatal("Line(p2) should not exist")
	}
}

func TestCart_RejectsInvalidProducts(t *testing.T) {
	tests := []struct {
		name string
		p    domain.Product
	}{
		{"NaN price", product("p1", math.NaN())},
		{"infinite price", product("p1", math.Inf(1))},
		{"negative price", product("p1", -5)},
		{"negative stock", domain.Product{ID: "p1", Price: 1, Stock: -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New()
			if err := c.Add(tt.p, 2); !errors.Is(err, catalog.ErrInvalidProduct) {
				t.Fatalf("err = %v, want ErrInvalidProduct", err)
			}
			if len(c.Lines()) != 0 || c.Total() != 0 {
				t.Fatalf("cart changed: %+v", c.Lines())
			}
		})
	}
}

func TestCart_InvalidSnapshotsAreNotKept(t *testing.T) {
	c := cart.New()
	c.Restore([]domain.CartLine{
		{Product: product("bad", -1), Quantity: 2},
		{Product: product("ok", 2), Quantity: 1},
	})
	if lines := c.Lines(); len(lines) != 1 || lines[0].Product.ID != "ok" {
		t.Fatalf("restored lines = %+v", lines)
	}

	if c.RefreshProduct(product("ok", math.NaN())) {
		t.Fatal("refresh accepted a NaN price")
	}
	if c.Total() != 2 {
		t.Fatalf("total = %v, want 2", c.Total())
	}
}
