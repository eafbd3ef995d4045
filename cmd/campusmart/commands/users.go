package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"campusmart/internal/domain"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(usersListCmd(), usersUpsertCmd(), usersDeleteCmd())
	return cmd
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, u := range wire.Store.Users() {
				rows = append(rows, []string{u.ID, u.Name, u.Email, u.Role.String(), deref(u.BusinessID)})
			}
			return table(cmd.OutOrStdout(), "ID\tNAME\tEMAIL\tROLE\tBUSINESS", rows)
		},
	}
}

func usersUpsertCmd() *cobra.Command {
	var u domain.User
	var role, business string
	cmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create an account or replace the one with the same id or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			u.Role = domain.Role(role)
			if !u.Role.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			if business != "" {
				u.BusinessID = &business
			}
			stored := wire.Store.UpsertUser(u)
			fmt.Fprintf(cmd.OutOrStdout(), "User %s saved\n", stored.ID)
			if business != "" && stored.BusinessID == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "business %q does not exist; reference dropped\n", business)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&u.ID, "id", "", "user id (generated when empty and no email matches)")
	f.StringVar(&u.Name, "name", "", "display name")
	f.StringVar(&u.Email, "email", "", "email address")
	f.StringVar(&role, "role", string(domain.RoleCustomer), "admin, entrepreneur, customer or student")
	f.StringVar(&business, "business", "", "owned business id")
	return cmd
}

func usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.DeleteUser(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
