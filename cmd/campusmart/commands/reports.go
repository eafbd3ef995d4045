package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"campusmart/internal/domain"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "File and moderate reports",
	}
	cmd.AddCommand(reportsListCmd(), reportCreateCmd(), reportStatusCmd(), reportDeleteCmd())
	return cmd
}

func reportsListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := wire.Store.Reports()
			if status != "" {
				reports = wire.Store.ReportsByStatus(domain.ReportStatus(status))
			}
			var rows [][]string
			for _, r := range reports {
				rows = append(rows, []string{
					r.ID, string(r.Type), r.TargetID, r.TargetName, r.ReporterID,
					deref(r.OwnerUserID), string(r.Status), r.ReportedAt.Format(time.RFC3339),
				})
			}
			return table(cmd.OutOrStdout(), "ID\tTYPE\tTARGET\tNAME\tREPORTER\tOWNER\tSTATUS\tREPORTED", rows)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only reports in this status")
	return cmd
}

func reportCreateCmd() *cobra.Command {
	var in domain.ReportInput
	var kind string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Report a product, business or user as the session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Type = domain.ReportType(kind)
			r, err := wire.Store.CreateReport(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report %s filed\n", r.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "type", "", "product, business or user")
	f.StringVar(&in.TargetID, "target", "", "reported entity id")
	f.StringVar(&in.TargetName, "name", "", "reported entity display name")
	f.StringVar(&in.Reason, "reason", "", "why it is being reported")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func reportStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <report-id> <status>",
		Short: "Set a report's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Store.UpdateReportStatus(args[0], domain.ReportStatus(args[1])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report %s: %s\n", args[0], args[1])
			return nil
		},
	}
}

func reportDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <report-id>",
		Short: "Delete a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.DeleteReport(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
