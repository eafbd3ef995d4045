package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "Read and manage an inbox",
	}
	cmd.PersistentFlags().String("user", "", "inbox owner (default: session user)")
	cmd.AddCommand(notificationsListCmd(), notificationReadCmd(), notificationsReadAllCmd(), notificationDeleteCmd())
	return cmd
}

func notificationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := userOrSession(cmd)
			if err != nil {
				return err
			}
			var rows [][]string
			for _, n := range wire.Store.NotificationsForUser(user) {
				mark := " "
				if !n.Read {
					mark = "*"
				}
				rows = append(rows, []string{mark, n.ID, n.Title, n.Message, string(n.Meta.Kind), n.CreatedAt.Format(time.RFC3339)})
			}
			out := cmd.OutOrStdout()
			if err := table(out, "\tID\tTITLE\tMESSAGE\tKIND\tCREATED", rows); err != nil {
				return err
			}
			fmt.Fprintf(out, "Unread: %d\n", wire.Store.UnreadCount(user))
			return nil
		},
	}
}

func notificationReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := userOrSession(cmd)
			if err != nil {
				return err
			}
			wire.Store.MarkNotificationAsRead(user, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Unread: %d\n", wire.Store.UnreadCount(user))
			return nil
		},
	}
}

func notificationsReadAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := userOrSession(cmd)
			if err != nil {
				return err
			}
			wire.Store.MarkAllNotificationsAsRead(user)
			fmt.Fprintln(cmd.OutOrStdout(), "Unread: 0")
			return nil
		},
	}
}

func notificationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <notification-id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := userOrSession(cmd)
			if err != nil {
				return err
			}
			wire.Store.DeleteNotification(user, args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
