// Package domain defines the marketplace data model and the contracts shared
// across the app. It contains plain types (state) and contracts (interfaces) only.
package domain
