package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusmart/internal/domain"
)

var (
	// ErrReasonRequired is returned when a report has an empty or blank reason.
	ErrReasonRequired = errors.New("report reason is required")
	// ErrInvalidReportType is returned for report types outside product, business and user.
	ErrInvalidReportType = errors.New("invalid report type")
)

// Directory answers the ownership lookups used to find who owns a reported target.
type Directory interface {
	// ProductBusiness returns the business id of productID.
	ProductBusiness(productID string) (string, bool)
	// BusinessOwner returns the id of the user whose businessId is businessID.
	BusinessOwner(businessID string) (string, bool)
}

// Notifier delivers a notification to one recipient.
type Notifier interface {
	Add(userID string, n domain.Notification) domain.Notification
}

// Notification texts.
const (
	titleAdmin    = "Nuevo reporte recibido"
	titleOwner    = "Tu perfil recibió un reporte"
	titleReporter = "Reporte enviado"
)

// Service holds the report log, newest first.
type Service struct {
	reports   []domain.Report
	directory Directory
	notifier  Notifier
	clock     domain.Clock
	newID     domain.IDGenerator
}

// New returns an empty report log. Nil clock or newID fall back to time.Now
// and random UUIDs.
func New(directory Directory, notifier Notifier, clock domain.Clock, newID domain.IDGenerator) *Service {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Service{directory: directory, notifier: notifier, clock: clock, newID: newID}
}

// Restore replaces the log with reports loaded from storage.
func (s *Service) Restore(reports []domain.Report) {
	s.reports = make([]domain.Report, 0, len(reports))
	for _, r := range reports {
		s.reports = append(s.reports, r.Clone())
	}
}

// Reports returns a copy of the log, newest first.
func (s *Service) Reports() []domain.Report {
	return s.filter(func(domain.Report) bool { return true })
}

// ByStatus returns the reports currently in status, newest first.
func (s *Service) ByStatus(status domain.ReportStatus) []domain.Report {
	return s.filter(func(r domain.Report) bool { return r.Status == status })
}

// Create opens a pending report filed by reporterID and notifies the
// administrator, the target's owner and the reporter.
//
// An empty reporterID fails with domain.ErrAuthenticationRequired before any
// other check; nothing is recorded on error.
func (s *Service) Create(reporterID string, input domain.ReportInput) (domain.Report, error) {
	if reporterID == "" {
		return domain.Report{}, domain.ErrAuthenticationRequired
	}
	if !input.Type.Valid() {
		return domain.Report{}, fmt.Errorf("report type %q: %w", input.Type, ErrInvalidReportType)
	}
	if strings.TrimSpace(input.Reason) == "" {
		return domain.Report{}, ErrReasonRequired
	}

	r := domain.Report{
		ID:         s.newID(),
		Type:       input.Type,
		TargetID:   input.TargetID,
		TargetName: input.TargetName,
		Reason:     input.Reason,
		ReporterID: reporterID,
		ReportedAt: s.clock().UTC(),
		Status:     domain.ReportPending,
	}
	if owner, ok := s.resolveOwner(input.Type, input.TargetID); ok {
		r.OwnerUserID = &owner
	}
	s.reports = append([]domain.Report{r}, s.reports...)
	s.fanOut(r)
	return r.Clone(), nil
}

// UpdateStatus sets the status of reportID. Unknown ids are a no-op.
func (s *Service) UpdateStatus(reportID string, status domain.ReportStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("report status %q: %w", status, domain.ErrInvalidStatus)
	}
	for i := range s.reports {
		if s.reports[i].ID == reportID {
			s.reports[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

// Delete removes reportID. It reports whether a report was removed.
func (s *Service) Delete(reportID string) bool {
	for i := range s.reports {
		if s.reports[i].ID == reportID {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Service) resolveOwner(t domain.ReportType, targetID string) (string, bool) {
	switch t {
	case domain.ReportProduct:
		if s.directory == nil {
			return "", false
		}
		biz, ok := s.directory.ProductBusiness(targetID)
		if !ok {
			return "", false
		}
		return s.directory.BusinessOwner(biz)
	case domain.ReportBusiness:
		if s.directory == nil {
			return "", false
		}
		return s.directory.BusinessOwner(targetID)
	case domain.ReportUser:
		return targetID, targetID != ""
	}
	return "", false
}

func (s *Service) fanOut(r domain.Report) {
	if s.notifier == nil {
		return
	}
	meta := domain.NotificationMeta{Kind: domain.NotificationReport, ID: r.ID}

	s.notifier.Add(domain.AdminUserID, domain.Notification{
		Title:   titleAdmin,
		Message: fmt.Sprintf("Reporte de %s sobre %q: %s", r.Type, r.TargetName, r.Reason),
		Meta:    meta,
	})
	if r.OwnerUserID != nil && *r.OwnerUserID != r.ReporterID {
		s.notifier.Add(*r.OwnerUserID, domain.Notification{
			Title:   titleOwner,
			Message: fmt.Sprintf("%q fue reportado. Motivo: %s", r.TargetName, r.Reason),
			Meta:    meta,
		})
	}
	s.notifier.Add(r.ReporterID, domain.Notification{
		Title:   titleReporter,
		Message: fmt.Sprintf("Recibimos tu reporte sobre %q. Lo revisaremos pronto.", r.TargetName),
		Meta:    meta,
	})
}

func (s *Service) filter(match func(domain.Report) bool) []domain.Report {
	out := make([]domain.Report, 0)
	for _, r := range s.reports {
		if match(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Compile-time assertion that Service implements domain.ReportService.
var _ domain.ReportService = (*Service)(nil)
