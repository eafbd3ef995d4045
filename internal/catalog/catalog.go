// Package catalog canonicalizes product records before they enter or leave the store.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"campusmart/internal/domain"
)

// ErrInvalidProduct is returned for products with a negative or non-finite
// price or a negative stock.
var ErrInvalidProduct = errors.New("invalid product")

// Validate checks the value invariants of p: a finite price of at least zero
// and a stock of at least zero.
func Validate(p domain.Product) error {
	if !ValidPrice(p.Price) {
		return fmt.Errorf("product %q price %v: %w", p.ID, p.Price, ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %q stock %d: %w", p.ID, p.Stock, ErrInvalidProduct)
	}
	return nil
}

// ValidPrice reports whether v is a finite amount of at least zero.
func ValidPrice(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// Normalize returns p in canonical form.
//
//   - Images keeps the non-empty entries of p.Images; if none remain it falls
//     back to [p.Image] when p.Image is set.
//   - Image is p.Image when set, otherwise the first of Images, otherwise "".
//   - Each acceptance flag defaults to true only when it is nil; an explicit
//     false is kept.
//
// Normalize is idempotent and never aliases p's slices or pointers.
func Normalize(p domain.Product) domain.Product {
	out := p.Clone()

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 && p.Image != "" {
		images = append(images, p.Image)
	}
	out.Images = images

	switch {
	case p.Image != "":
		out.Image = p.Image
	case len(images) > 0:
		out.Image = images[0]
	default:
		out.Image = ""
	}

	out.AcceptsDelivery = defaultTrue(p.AcceptsDelivery)
	out.AcceptsPickup = defaultTrue(p.AcceptsPickup)
	out.AcceptsPaypal = defaultTrue(p.AcceptsPaypal)
	out.AcceptsCash = defaultTrue(p.AcceptsCash)
	return out
}

// NormalizeAll normalizes every product in ps into a new slice.
func NormalizeAll(ps []domain.Product) []domain.Product {
	out := make([]domain.Product, len(ps))
	for i, p := range ps {
		out[i] = Normalize(p)
	}
	return out
}

// NormalizeLines normalizes the product snapshot embedded in each cart line.
func NormalizeLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	for i, l := range lines {
		out[i] = domain.CartLine{Product: Normalize(l.Product), Quantity: l.Quantity}
	}
	return out
}

// Bool returns a pointer to v, for building optional flags.
func Bool(v bool) *bool { return &v }

func defaultTrue(v *bool) *bool {
	if v == nil {
		return Bool(true)
	}
	return Bool(*v)
}
