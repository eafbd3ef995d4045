// Package notification keeps each user's inbox.
//
// Inboxes are keyed by recipient user id and ordered newest first. Reading an
// inbox that was never written returns an empty list. The read flag only
// changes through MarkAsRead and MarkAllAsRead.
package notification
