package types

import "time"

// ReportType names the kind of entity a report targets.
type ReportType string

const (
	ReportProduct  ReportType = "product"
	ReportBusiness ReportType = "business"
	ReportUser     ReportType = "user"
)

// Valid reports whether t is a known report target kind.
func (t ReportType) Valid() bool {
	switch t {
	case ReportProduct, ReportBusiness, ReportUser:
		return true
	}
	return false
}

// ReportStatus is the moderation state of a report.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportReviewed  ReportStatus = "reviewed"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

// Valid reports whether s is a known report status.
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportReviewed, ReportResolved, ReportDismissed:
		return true
	}
	return false
}

// Report is a moderation complaint about a product, business or user.
//
// OwnerUserID is resolved once, when the report is created.
type Report struct {
	ID          string       `json:"id"`
	Type        ReportType   `json:"type"`
	TargetID    string       `json:"targetId"`
	TargetName  string       `json:"targetName"`
	Reason      string       `json:"reason"`
	ReporterID  string       `json:"reporterId"`
	ReportedAt  time.Time    `json:"reportedAt"`
	Status      ReportStatus `json:"status"`
	OwnerUserID *string      `json:"ownerUserId,omitempty"`
}

// Clone returns a copy that shares no pointers with r.
func (r Report) Clone() Report {
	r.OwnerUserID = cloneString(r.OwnerUserID)
	return r
}

// ReportInput is what a collaborator supplies to open a report.
type ReportInput struct {
	Type       ReportType `json:"type"`
	TargetID   string     `json:"targetId"`
	TargetName string     `json:"targetName"`
	Reason     string     `json:"reason"`
}

// NotificationKind correlates a notification with the record that caused it.
type NotificationKind string

const (
	NotificationReport NotificationKind = "report"
	NotificationOrder  NotificationKind = "order"
	NotificationSystem NotificationKind = "system"
)

// NotificationMeta links a notification back to its source record.
type NotificationMeta struct {
	Kind NotificationKind `json:"kind"`
	ID   string           `json:"id,omitempty"`
}

// Notification is one inbox entry for a single recipient.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	Read      bool             `json:"read"`
	Meta      NotificationMeta `json:"meta"`
}
