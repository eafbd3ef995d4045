package notification

import (
	"time"

	"github.com/google/uuid"

	"campusmart/internal/domain"
)

// Service holds every recipient's inbox.
type Service struct {
	inboxes map[string][]domain.Notification
	clock   domain.Clock
	newID   domain.IDGenerator
}

// New returns a service with no inboxes. Nil clock or newID fall back to
// time.Now and random UUIDs.
func New(clock domain.Clock, newID domain.IDGenerator) *Service {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Service{
		inboxes: make(map[string][]domain.Notification),
		clock:   clock,
		newID:   newID,
	}
}

// Restore replaces all inboxes with the mapping loaded from storage.
func (s *Service) Restore(inboxes map[string][]domain.Notification) {
	s.inboxes = cloneInboxes(inboxes)
}

// Snapshot returns a deep copy of every inbox.
func (s *Service) Snapshot() map[string][]domain.Notification {
	return cloneInboxes(s.inboxes)
}

// ForUser returns a copy of userID's inbox, newest first. Unknown users get an empty list.
func (s *Service) ForUser(userID string) []domain.Notification {
	inbox := s.inboxes[userID]
	out := make([]domain.Notification, len(inbox))
	copy(out, inbox)
	return out
}

// Add prepends n to userID's inbox and returns the stored notification.
// An empty id or zero creation time are filled in.
func (s *Service) Add(userID string, n domain.Notification) domain.Notification {
	if n.ID == "" {
		n.ID = s.newID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.clock().UTC()
	}
	s.inboxes[userID] = append([]domain.Notification{n}, s.inboxes[userID]...)
	return n
}

// MarkAsRead sets the read flag on one notification in userID's inbox.
// It reports whether the flag changed.
func (s *Service) MarkAsRead(userID, notificationID string) bool {
	inbox := s.inboxes[userID]
	for i := range inbox {
		if inbox[i].ID == notificationID {
			if inbox[i].Read {
				return false
			}
			inbox[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllAsRead sets the read flag on every notification in userID's inbox.
// It reports whether any flag changed.
func (s *Service) MarkAllAsRead(userID string) bool {
	changed := false
	inbox := s.inboxes[userID]
	for i := range inbox {
		if !inbox[i].Read {
			inbox[i].Read = true
			changed = true
		}
	}
	return changed
}

// Delete removes one notification from userID's inbox. It reports whether one was removed.
func (s *Service) Delete(userID, notificationID string) bool {
	inbox := s.inboxes[userID]
	for i := range inbox {
		if inbox[i].ID == notificationID {
			s.inboxes[userID] = append(inbox[:i], inbox[i+1:]...)
			return true
		}
	}
	return false
}

// UnreadCount returns how many notifications in userID's inbox are unread.
func (s *Service) UnreadCount(userID string) int {
	n := 0
	for _, item := range s.inboxes[userID] {
		if !item.Read {
			n++
		}
	}
	return n
}

func cloneInboxes(in map[string][]domain.Notification) map[string][]domain.Notification {
	out := make(map[string][]domain.Notification, len(in))
	for userID, inbox := range in {
		out[userID] = append([]domain.Notification(nil), inbox...)
	}
	return out
}

// Compile-time assertion that Service implements domain.NotificationService.
var _ domain.NotificationService = (*Service)(nil)
