package market

import "campusmart/internal/domain"

// Reports returns every report, newest first.
func (s *Store) Reports() []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reports.Reports()
}

// ReportsByStatus returns the reports currently in status, newest first.
func (s *Store) ReportsByStatus(status domain.ReportStatus) []domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reports.ByStatus(status)
}

// CreateReport files a report as the session user. Without a session it
// fails with domain.ErrAuthenticationRequired and changes nothing.
func (s *Store) CreateReport(input domain.ReportInput) (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reporter := ""
	if s.user != nil {
		reporter = s.user.ID
	}
	r, err := s.reports.Create(reporter, input)
	if err != nil {
		return domain.Report{}, err
	}
	s.commit(domain.SlotReports, domain.SlotNotifications)
	return r, nil
}

// UpdateReportStatus sets the status of reportID.
func (s *Store) UpdateReportStatus(reportID string, status domain.ReportStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed, err := s.reports.UpdateStatus(reportID, status)
	if err != nil {
		return err
	}
	if changed {
		s.commit(domain.SlotReports)
	}
	return nil
}

// DeleteReport removes reportID.
func (s *Store) DeleteReport(reportID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reports.Delete(reportID) {
		s.commit(domain.SlotReports)
	}
}

// NotificationsForUser returns userID's inbox, newest first.
func (s *Store) NotificationsForUser(userID string) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inbox.ForUser(userID)
}

// AddNotification prepends n to userID's inbox.
func (s *Store) AddNotification(userID string, n domain.Notification) domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.inbox.Add(userID, n)
	s.commit(domain.SlotNotifications)
	return stored
}

// MarkNotificationAsRead marks one of userID's notifications as read.
func (s *Store) MarkNotificationAsRead(userID, notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inbox.MarkAsRead(userID, notificationID) {
		s.commit(domain.SlotNotifications)
	}
}

// MarkAllNotificationsAsRead marks every notification in userID's inbox as read.
func (s *Store) MarkAllNotificationsAsRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inbox.MarkAllAsRead(userID) {
		s.commit(domain.SlotNotifications)
	}
}

// DeleteNotification removes one notification from userID's inbox.
func (s *Store) DeleteNotification(userID, notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inbox.Delete(userID, notificationID) {
		s.commit(domain.SlotNotifications)
	}
}

// UnreadCount returns the number of unread notifications for userID.
func (s *Store) UnreadCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inbox.UnreadCount(userID)
}

// CompleteOnboarding records that the onboarding flow was finished.
func (s *Store) CompleteOnboarding() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onboarded {
		return
	}
	s.onboarded = true
	s.commit(domain.SlotOnboardingComplete)
}

// IsOnboardingComplete reports whether onboarding was finished.
func (s *Store) IsOnboardingComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarded
}
