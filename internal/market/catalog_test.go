package market_test

import (
	"errors"
	"math"
	"testing"

	"campusmart/internal/catalog"
	"campusmart/internal/domain"
	"campusmart/internal/market"
	ordersvc "campusmart/internal/services/order"
)

func addProduct(t *testing.T, s *market.Store, p domain.Product) domain.Product {
	t.Helper()
	stored, err := s.AddProduct(p)
	if err != nil {
		t.Fatalf("AddProduct(%+v): %v", p, err)
	}
	return stored
}

func TestAddProduct_Normalizes(t *testing.T) {
	s, _ := newStore(t)
	got := addProduct(t, s, domain.Product{Name: "Agua", Images: []string{"", "/a.jpg"}, AcceptsCash: catalog.Bool(false)})

	if got.ID == "" {
		t.Fatal("id not assigned")
	}
	stored, ok := s.Product(got.ID)
	if !ok {
		t.Fatal("product not stored")
	}
	if stored.Image != "/a.jpg" || len(stored.Images) != 1 {
		t.Fatalf("images not normalized: %+v", stored)
	}
	if *stored.AcceptsCash || !*stored.AcceptsDelivery || !*stored.AcceptsPickup || !*stored.AcceptsPaypal {
		t.Fatalf("flags not normalized: %+v", stored)
	}
}

func TestUpdateProduct_RefreshesCartSnapshot(t *testing.T) {
	s, _ := newStore(t)
	p := addProduct(t, s, domain.Product{ID: "p1", Name: "Café", Price: 10})
	s.AddToCart(p, 2)

	if ok, err := s.UpdateProduct(domain.Product{ID: "p1", Name: "Café grande", Price: 12}); !ok || err != nil {
		t.Fatalf("update failed: %v", err)
	}
	line := s.Cart()[0]
	if line.Product.Name != "Café grande" || line.Product.Price != 12 || line.Quantity != 2 {
		t.Fatalf("cart line = %+v", line)
	}
	if s.CartTotal() != 24 {
		t.Fatalf("total = %v, want 24", s.CartTotal())
	}

	if ok, _ := s.UpdateProduct(domain.Product{ID: "p9"}); ok {
		t.Fatal("update of unknown id must be a no-op")
	}
	if len(s.Products()) != 1 {
		t.Fatal("update appended a product")
	}
}

func TestDeleteProduct(t *testing.T) {
	s, backend := newStore(t)
	p := addProduct(t, s, domain.Product{ID: "p1", Price: 4})
	s.AddToCart(p, 1)
	before := s.Products()

	s.DeleteProduct("p9")
	if got := s.Products(); len(got) != len(before) {
		t.Fatal("deleting a missing product changed the registry")
	}

	s.DeleteProduct("p1")
	if _, ok := s.Product("p1"); ok {
		t.Fatal("product not deleted")
	}
	if len(s.Cart()) != 1 {
		t.Fatal("cart lines keep stale product references")
	}
	if r := open(t, backend); len(r.Products()) != 0 {
		t.Fatal("delete not persisted")
	}
}

func TestProductQueries(t *testing.T) {
	s, _ := newStore(t)
	addProduct(t, s, domain.Product{ID: "p1", BusinessID: "b1", Featured: catalog.Bool(true)})
	addProduct(t, s, domain.Product{ID: "p2", BusinessID: "b2"})
	addProduct(t, s, domain.Product{ID: "p3", BusinessID: "b1", Featured: catalog.Bool(false)})

	if got := s.ProductsByBusiness("b1"); len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p3" {
		t.Fatalf("by business = %+v", got)
	}
	if got := s.FeaturedProducts(); len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("featured = %+v", got)
	}
}

func TestProducts_RejectInvalidValues(t *testing.T) {
	s, backend := newStore(t)
	addProduct(t, s, domain.Product{ID: "p1", Price: 5, Stock: 2})

	bad := []domain.Product{
		{ID: "nan", Price: math.NaN()},
		{ID: "inf", Price: math.Inf(1)},
		{ID: "neg", Price: -1},
		{ID: "stock", Price: 1, Stock: -4},
	}
	for _, p := range bad {
		if _, err := s.AddProduct(p); !errors.Is(err, catalog.ErrInvalidProduct) {
			t.Errorf("AddProduct(%s): err = %v", p.ID, err)
		}
		p.ID = "p1"
		if ok, err := s.UpdateProduct(p); ok || !errors.Is(err, catalog.ErrInvalidProduct) {
			t.Errorf("UpdateProduct(%v): ok = %v, err = %v", p.Price, ok, err)
		}
		if err := s.AddToCart(p, 1); !errors.Is(err, catalog.ErrInvalidProduct) {
			t.Errorf("AddToCart(%v): err = %v", p.Price, err)
		}
	}

	if got := s.Products(); len(got) != 1 || got[0].Price != 5 || got[0].Stock != 2 {
		t.Fatalf("products = %+v", got)
	}
	if len(s.Cart()) != 0 || s.CartTotal() != 0 {
		t.Fatalf("cart = %+v", s.Cart())
	}

	addProduct(t, s, domain.Product{ID: "p2", Price: 3})
	if r := open(t, backend); len(r.Products()) != 2 {
		t.Fatalf("reopened products = %+v", r.Products())
	}
}

func TestAddOrder_RejectsInvalidOrders(t *testing.T) {
	s, _ := newStore(t)

	if _, err := s.AddOrder(domain.Order{CustomerID: "c1", Status: "shipped"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("unknown status: err = %v", err)
	}
	nan := domain.Order{
		CustomerID: "c1",
		Products:   []domain.OrderItem{{ProductID: "p1", Quantity: 1, Price: math.NaN()}},
		Total:      1,
	}
	if _, err := s.AddOrder(nan); !errors.Is(err, ordersvc.ErrInvalidOrder) {
		t.Fatalf("NaN item: err = %v", err)
	}
	if len(s.Orders()) != 0 {
		t.Fatalf("orders = %+v", s.Orders())
	}
}
