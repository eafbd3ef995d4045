package market_test

import (
	"errors"
	"testing"

	"campusmart/internal/domain"
	reportsvc "campusmart/internal/services/report"
)

func TestCreateReport_RequiresSession(t *testing.T) {
	s, backend := newStore(t)

	_, err := s.CreateReport(domain.ReportInput{Type: domain.ReportUser, TargetID: "u2", Reason: "spam"})
	if !errors.Is(err, domain.ErrAuthenticationRequired) {
		t.Fatalf("err = %v, want ErrAuthenticationRequired", err)
	}
	if len(s.Reports()) != 0 || len(s.NotificationsForUser(domain.AdminUserID)) != 0 {
		t.Fatal("store changed on a rejected report")
	}
	if slotWritten(t, backend, domain.SlotReports) || slotWritten(t, backend, domain.SlotNotifications) {
		t.Fatal("rejected report was persisted")
	}
}

func TestCreateReport_FansOut(t *testing.T) {
	s, _ := newStore(t)
	s.AddBusiness(domain.Business{ID: "b1"})
	s.UpsertUser(domain.User{ID: "owner", BusinessID: strptr("b1")})
	s.AddProduct(domain.Product{ID: "p1", BusinessID: "b1"})
	s.SetUser(&domain.User{ID: "reporter"})

	r, err := s.CreateReport(domain.ReportInput{Type: domain.ReportProduct, TargetID: "p1", TargetName: "Latte", Reason: "frío"})
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if r.OwnerUserID == nil || *r.OwnerUserID != "owner" || r.Status != domain.ReportPending {
		t.Fatalf("report = %+v", r)
	}

	total := 0
	for _, u := range []string{domain.AdminUserID, "owner", "reporter"} {
		n := s.NotificationsForUser(u)
		if len(n) != 1 || n[0].Meta.ID != r.ID {
			t.Fatalf("%s inbox = %+v", u, n)
		}
		total += len(n)
	}
	if total != 3 {
		t.Fatalf("fan-out produced %d notifications, want 3", total)
	}
}

func TestCreateReport_Validation(t *testing.T) {
	s, _ := newStore(t)
	s.SetUser(&domain.User{ID: "u1"})

	if _, err := s.CreateReport(domain.ReportInput{Type: domain.ReportUser, TargetID: "u2", Reason: " "}); !errors.Is(err, reportsvc.ErrReasonRequired) {
		t.Fatalf("blank reason: err = %v", err)
	}
	if _, err := s.CreateReport(domain.ReportInput{Type: "comment", Reason: "x"}); !errors.Is(err, reportsvc.ErrInvalidReportType) {
		t.Fatalf("bad type: err = %v", err)
	}
}

func TestReports_StatusAndDelete(t *testing.T) {
	s, _ := newStore(t)
	s.SetUser(&domain.User{ID: "u1"})
	r, _ := s.CreateReport(domain.ReportInput{Type: domain.ReportUser, TargetID: "u2", Reason: "spam"})
	inboxBefore := len(s.NotificationsForUser(domain.AdminUserID))

	if err := s.UpdateReportStatus(r.ID, domain.ReportReviewed); err != nil {
		t.Fatal(err)
	}
	if got := s.ReportsByStatus(domain.ReportReviewed); len(got) != 1 {
		t.Fatalf("reviewed = %+v", got)
	}
	if err := s.UpdateReportStatus(r.ID, "closed"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("err = %v", err)
	}
	s.DeleteReport("missing")
	s.DeleteReport(r.ID)
	if len(s.Reports()) != 0 {
		t.Fatal("report not deleted")
	}
	if len(s.NotificationsForUser(domain.AdminUserID)) != inboxBefore {
		t.Fatal("moderation changes must not notify")
	}
}

func TestNotifications(t *testing.T) {
	s, backend := newStore(t)
	a := s.AddNotification("u1", domain.Notification{Title: "a", Meta: domain.NotificationMeta{Kind: domain.NotificationSystem}})
	b := s.AddNotification("u1", domain.Notification{Title: "b"})
	s.AddNotification("u2", domain.Notification{Title: "c"})

	if got := s.NotificationsForUser("u1"); len(got) != 2 || got[0].ID != b.ID {
		t.Fatalf("u1 inbox = %+v", got)
	}
	if got := s.NotificationsForUser("nobody"); len(got) != 0 {
		t.Fatal("unknown user should have an empty inbox")
	}

	s.MarkNotificationAsRead("u1", a.ID)
	if s.UnreadCount("u1") != 1 {
		t.Fatalf("unread = %d", s.UnreadCount("u1"))
	}
	s.MarkAllNotificationsAsRead("u1")
	if s.UnreadCount("u1") != 0 || s.UnreadCount("u2") != 1 {
		t.Fatal("mark all is not scoped to one user")
	}
	s.DeleteNotification("u1", b.ID)
	if got := s.NotificationsForUser("u1"); len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("after delete = %+v", got)
	}

	r := open(t, backend)
	if got := r.NotificationsForUser("u1"); len(got) != 1 || !got[0].Read {
		t.Fatalf("reopened u1 inbox = %+v", got)
	}
}

func TestOnboarding(t *testing.T) {
	s, backend := newStore(t)
	if s.IsOnboardingComplete() {
		t.Fatal("onboarding complete on a fresh store")
	}
	s.CompleteOnboarding()
	if !s.IsOnboardingComplete() || !open(t, backend).IsOnboardingComplete() {
		t.Fatal("onboarding flag not kept")
	}
}
