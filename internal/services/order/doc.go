// Package order keeps the order log and turns a cart into orders at checkout.
//
// Orders are kept newest first. Totals are fixed when an order is created.
// Status changes accept any member of the enumerated status set, in any
// order; there is no transition table.
package order
