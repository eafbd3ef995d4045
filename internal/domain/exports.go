package domain

import (
	interfaces "campusmart/internal/domain/interfaces"
	types "campusmart/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Role             = types.Role
	User             = types.User
	Business         = types.Business
	Product          = types.Product
	CartLine         = types.CartLine
	OrderStatus      = types.OrderStatus
	OrderItem        = types.OrderItem
	Order            = types.Order
	PaymentMethod    = types.PaymentMethod
	ReportType       = types.ReportType
	ReportStatus     = types.ReportStatus
	Report           = types.Report
	ReportInput      = types.ReportInput
	NotificationKind = types.NotificationKind
	NotificationMeta = types.NotificationMeta
	Notification     = types.Notification
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SlotBackend         = interfaces.SlotBackend
	SlotPort            = interfaces.SlotPort
	Clock               = interfaces.Clock
	IDGenerator         = interfaces.IDGenerator
	CartService         = interfaces.CartService
	OrderService        = interfaces.OrderService
	NotificationService = interfaces.NotificationService
	ReportService       = interfaces.ReportService
)

// Enumerations re-exported for callers that only import domain.
const (
	RoleAdmin        = types.RoleAdmin
	RoleEntrepreneur = types.RoleEntrepreneur
	RoleCustomer     = types.RoleCustomer
	RoleStudent      = types.RoleStudent

	AdminUserID = types.AdminUserID

	OrderPending   = types.OrderPending
	OrderConfirmed = types.OrderConfirmed
	OrderPreparing = types.OrderPreparing
	OrderReady     = types.OrderReady
	OrderDelivered = types.OrderDelivered
	OrderCancelled = types.OrderCancelled

	PaymentCash     = types.PaymentCash
	PaymentPaypal   = types.PaymentPaypal
	PaymentTransfer = types.PaymentTransfer

	ReportProduct  = types.ReportProduct
	ReportBusiness = types.ReportBusiness
	ReportUser     = types.ReportUser

	ReportPending   = types.ReportPending
	ReportReviewed  = types.ReportReviewed
	ReportResolved  = types.ReportResolved
	ReportDismissed = types.ReportDismissed

	NotificationReport = types.NotificationReport
	NotificationOrder  = types.NotificationOrder
	NotificationSystem = types.NotificationSystem
)
