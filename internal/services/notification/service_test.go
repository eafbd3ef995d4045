package notification_test

import (
	"fmt"
	"testing"
	"time"

	"campusmart/internal/domain"
	"campusmart/internal/services/notification"
)

func newService() *notification.Service {
	n := 0
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		return base.Add(time.Duration(n) * time.Minute)
	}
	ids := func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
	return notification.New(clock, ids)
}

func TestNotifications_AddPrependsPerUser(t *testing.T) {
	s := newService()
	s.Add("u1", domain.Notification{Title: "first"})
	s.Add("u2", domain.Notification{Title: "other"})
	s.Add("u1", domain.Notification{Title: "second"})

	got := s.ForUser("u1")
	if len(got) != 2 || got[0].Title != "second" || got[1].Title != "first" {
		t.Fatalf("u1 inbox = %+v", got)
	}
	if got[0].ID == "" || got[0].CreatedAt.IsZero() {
		t.Fatalf("id/createdAt not filled: %+v", got[0])
	}
	if len(s.ForUser("u2")) != 1 {
		t.Fatal("u2 inbox should be independent")
	}
}

func TestNotifications_UnknownUserIsEmpty(t *testing.T) {
	s := newService()
	got := s.ForUser("nobody")
	if got == nil || len(got) != 0 {
		t.Fatalf("ForUser(nobody) = %#v, want empty non-nil list", got)
	}
	if s.UnreadCount("nobody") != 0 || s.MarkAllAsRead("nobody") || s.Delete("nobody", "x") {
		t.Fatal("operations on unknown users must be no-ops")
	}
}

func TestNotifications_MarkReadIsScopedToUser(t *testing.T) {
	s := newService()
	a := s.Add("u1", domain.Notification{Title: "a"})
	s.Add("u1", domain.Notification{Title: "b"})
	s.Add("u2", domain.Notification{ID: a.ID, Title: "same id elsewhere"})

	if !s.MarkAsRead("u1", a.ID) {
		t.Fatal("expected mark as read to change the flag")
	}
	if s.MarkAsRead("u1", a.ID) {
		t.Fatal("marking twice should report no change")
	}
	if s.UnreadCount("u1") != 1 {
		t.Fatalf("u1 unread = %d, want 1", s.UnreadCount("u1"))
	}
	if s.UnreadCount("u2") != 1 {
		t.Fatal("u2 notification was touched")
	}

	if !s.MarkAllAsRead("u1") || s.UnreadCount("u1") != 0 {
		t.Fatal("mark all did not clear u1")
	}
	if s.UnreadCount("u2") != 1 {
		t.Fatal("mark all leaked to u2")
	}
}

func TestNotifications_Delete(t *testing.T) {
	s := newService()
	a := s.Add("u1", domain.Notification{Title: "a"})
	b := s.Add("u1", domain.Notification{Title: "b"})

	if !s.Delete("u1", a.ID) {
		t.Fatal("expected delete")
	}
	got := s.ForUser("u1")
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("inbox after delete = %+v", got)
	}
	if s.Delete("u1", "missing") {
		t.Fatal("deleting a missing id must be a no-op")
	}
}

func TestNotifications_SnapshotIsolation(t *testing.T) {
	s := newService()
	s.Add("u1", domain.Notification{Title: "a"})

	snap := s.Snapshot()
	snap["u1"][0].Read = true
	snap["u9"] = []domain.Notification{{Title: "injected"}}

	view := s.ForUser("u1")
	view[0].Read = true

	if s.UnreadCount("u1") != 1 {
		t.Fatal("service observed mutation of a returned view")
	}
	if len(s.ForUser("u9")) != 0 {
		t.Fatal("service observed snapshot map mutation")
	}

	s.Restore(snap)
	if s.UnreadCount("u1") != 0 || len(s.ForUser("u9")) != 1 {
		t.Fatal("restore did not load snapshot")
	}
}
