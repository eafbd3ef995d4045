package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <user-id>",
		Short: "Start a session as an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := wire.Store.User(args[0])
			if !ok {
				return fmt.Errorf("no user %q", args[0])
			}
			wire.Store.SetUser(&u)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", u.Name, u.Role)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.SetUser(nil)
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := sessionUser()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			return nil
		},
	}
}

func onboardingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Show whether onboarding was completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "complete: %t\n", wire.Store.IsOnboardingComplete())
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "complete",
		Short: "Mark onboarding as completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.CompleteOnboarding()
			fmt.Fprintln(cmd.OutOrStdout(), "complete: true")
			return nil
		},
	})
	return cmd
}
