package interfaces

import domaintypes "campusmart/internal/domain/types"

// CartService keeps the active session's cart, one line per product id.
type CartService interface {
	Restore(lines []domaintypes.CartLine)
	Lines() []domaintypes.CartLine
	Add(product domaintypes.Product, quantity int) error
	UpdateQuantity(productID string, quantity int) bool
	Remove(productID string) bool
	Clear() bool
	RefreshProduct(product domaintypes.Product) bool
	Total() float64
	Count() int
}

// OrderService keeps the newest-first order log.
type OrderService interface {
	Restore(orders []domaintypes.Order)
	Orders() []domaintypes.Order
	ForCustomer(customerID string) []domaintypes.Order
	ForBusiness(businessID string) []domaintypes.Order
	Add(order domaintypes.Order) (domaintypes.Order, error)
	UpdateStatus(orderID string, status domaintypes.OrderStatus) (bool, error)
	Delete(orderID string) bool
}

// NotificationService keeps per-recipient, newest-first inboxes.
type NotificationService interface {
	Restore(inboxes map[string][]domaintypes.Notification)
	Snapshot() map[string][]domaintypes.Notification
	ForUser(userID string) []domaintypes.Notification
	Add(userID string, n domaintypes.Notification) domaintypes.Notification
	MarkAsRead(userID, notificationID string) bool
	MarkAllAsRead(userID string) bool
	Delete(userID, notificationID string) bool
	UnreadCount(userID string) int
}

// ReportService opens and moderates reports.
type ReportService interface {
	Restore(reports []domaintypes.Report)
	Reports() []domaintypes.Report
	ByStatus(status domaintypes.ReportStatus) []domaintypes.Report
	Create(reporterID string, input domaintypes.ReportInput) (domaintypes.Report, error)
	UpdateStatus(reportID string, status domaintypes.ReportStatus) (bool, error)
	Delete(reportID string) bool
}
