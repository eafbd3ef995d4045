// Package market is the store facade collaborators talk to.
//
// A Store owns the session user, the user, business and product registries,
// the cart, the order log, reports, notification inboxes and the onboarding
// flag. Every mutating operation runs to completion under one lock, updates
// memory and then saves the slots it touched through the persistence port.
// Save failures are logged and never undo the in-memory change.
//
// Reads return deep copies. Mutations on unknown ids are silent no-ops.
package market
