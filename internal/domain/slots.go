package domain

// Slot names, one per persisted collection.
const (
	SlotUser               = "user"
	SlotUsers              = "users"
	SlotCart               = "cart"
	SlotOrders             = "orders"
	SlotProducts           = "products"
	SlotBusinesses         = "businesses"
	SlotReports            = "reports"
	SlotNotifications      = "notifications"
	SlotOnboardingComplete = "onboarding-complete"
)

// Slots lists every slot name in load order.
var Slots = []string{
	SlotUser,
	SlotUsers,
	SlotCart,
	SlotOrders,
	SlotProducts,
	SlotBusinesses,
	SlotReports,
	SlotNotifications,
	SlotOnboardingComplete,
}
