package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"campusmart/internal/domain"
)

func businessesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "businesses",
		Aliases: []string{"business"},
		Short:   "Manage businesses",
	}
	cmd.AddCommand(businessesListCmd(), businessAddCmd(), businessUpdateCmd(), businessDeleteCmd())
	return cmd
}

func businessesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List businesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, b := range wire.Store.Businesses() {
				rows = append(rows, []string{
					b.ID, b.Name, b.Category, b.Owner,
					strconv.FormatFloat(b.Rating, 'f', 1, 64), strconv.Itoa(b.TotalSales),
				})
			}
			return table(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tOWNER\tRATING\tSALES", rows)
		},
	}
}

// businessFlags binds a Business to flags shared by add and update.
func businessFlags(cmd *cobra.Command, b *domain.Business, instagram *string) {
	f := cmd.Flags()
	f.StringVar(&b.ID, "id", "", "business id")
	f.StringVar(&b.Name, "name", "", "name")
	f.StringVar(&b.Description, "description", "", "description")
	f.StringVar(&b.Category, "category", "", "category")
	f.StringVar(&b.Owner, "owner", "", "owner display name")
	f.StringVar(&b.Faculty, "faculty", "", "faculty")
	f.StringVar(&b.Phone, "phone", "", "phone")
	f.StringVar(&b.Email, "email", "", "contact email")
	f.StringVar(instagram, "instagram", "", "instagram handle")
	f.Float64Var(&b.Rating, "rating", 0, "rating")
	f.IntVar(&b.TotalSales, "total-sales", 0, "total sales")
	f.StringVar(&b.JoinedDate, "joined", "", "joined date (YYYY-MM-DD, default today)")
	f.StringVar(&b.Logo, "logo", "", "logo URL")
	f.StringVar(&b.Banner, "banner", "", "banner URL")
}

func businessAddCmd() *cobra.Command {
	var b domain.Business
	var instagram, owner string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a business, replacing one with the same id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if b.JoinedDate == "" {
				b.JoinedDate = time.Now().Format(time.DateOnly)
			}
			if instagram != "" {
				b.Instagram = &instagram
			}
			stored := wire.Store.AddBusiness(b)
			if owner != "" {
				u, ok := wire.Store.User(owner)
				if !ok {
					return fmt.Errorf("no user %q", owner)
				}
				u.BusinessID = &stored.ID
				wire.Store.UpsertUser(u)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Business %s saved\n", stored.ID)
			return nil
		},
	}
	businessFlags(cmd, &b, &instagram)
	cmd.Flags().StringVar(&owner, "owner-user", "", "link this user id as the owner")
	return cmd
}

func businessUpdateCmd() *cobra.Command {
	var b domain.Business
	var instagram string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace an existing business",
		RunE: func(cmd *cobra.Command, args []string) error {
			if instagram != "" {
				b.Instagram = &instagram
			}
			if !wire.Store.UpdateBusiness(b) {
				return fmt.Errorf("no business %q", b.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Business %s updated\n", b.ID)
			return nil
		},
	}
	businessFlags(cmd, &b, &instagram)
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func businessDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <business-id>",
		Short: "Delete a business and unlink its owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.DeleteBusiness(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
