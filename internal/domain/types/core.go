package types

// Role classifies a user account.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleEntrepreneur Role = "entrepreneur"
	RoleCustomer     Role = "customer"
	RoleStudent      Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEntrepreneur, RoleCustomer, RoleStudent:
		return true
	}
	return false
}

// String returns the string form of the role.
func (r Role) String() string { return string(r) }

// AdminUserID is the fixed account that receives every moderation notice.
const AdminUserID = "admin"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a member of the enumerated order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// String returns the string form of the status.
func (s OrderStatus) String() string { return string(s) }

// PaymentMethod is the method a customer picked at checkout. It is recorded only.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentPaypal   PaymentMethod = "paypal"
	PaymentTransfer PaymentMethod = "transfer"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPaypal, PaymentTransfer:
		return true
	}
	return false
}

// String returns the string form of the payment method.
func (m PaymentMethod) String() string { return string(m) }
