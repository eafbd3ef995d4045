// Package cart maintains the shopping cart of the active session.
//
// The cart holds at most one line per product id. Adding a product that is
// already present merges quantities; a quantity update to zero or below
// removes the line. The total is derived on every read and never stored.
package cart
