package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/agrirent/internal/access"
	"github.com/me/agrirent/pkg/model"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Business reports (admin)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "revenue",
		Short:   "Revenue per equipment item",
		PreRunE: requireView(access.AdminReportsPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := client.RevenueReport(cmd.Context())
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			w := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(w, "No revenue recorded.")
				return nil
			}
			fmt.Fprintf(w, "%-30s  %8s  %12s\n", "EQUIPMENT", "RENTALS", "REVENUE")
			fmt.Fprintf(w, "%-30s  %8s  %12s\n", "---------", "-------", "-------")
			for _, r := range rows {
				fmt.Fprintf(w, "%-30s  %8d  %12.2f\n", r.Name, r.RentalCount, r.Revenue)
			}
			fmt.Fprintf(w, "%-30s  %8s  %12.2f\n", "TOTAL", "", model.RevenueTotal(rows))
			return nil
		},
	})
	return cmd
}

func newAuditLogsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "audit-logs",
		Short:   "Show the audit trail (admin)",
		PreRunE: requireView(access.AdminAuditPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := client.AuditLogs(cmd.Context())
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			w := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(w, "No audit entries.")
				return nil
			}
			if limit > 0 && len(logs) > limit {
				logs = logs[:limit]
			}
			fmt.Fprintf(w, "%-20s  %-16s  %s\n", "TIME", "USER", "ACTION")
			fmt.Fprintf(w, "%-20s  %-16s  %s\n", "----", "----", "------")
			for _, l := range logs {
				ts := l.ReadableTime
				if ts == "" {
					ts = l.Time().Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(w, "%-20s  %-16s  %s\n", ts, l.Username, l.Action)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum entries to show (0 for all)")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show the admin dashboard numbers",
		PreRunE: requireView(access.AdminPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := client.DashboardStats(cmd.Context())
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Equipment:       %d\n", stats.TotalEquipment)
			fmt.Fprintf(w, "Customers:       %d\n", stats.TotalCustomers)
			fmt.Fprintf(w, "Total rentals:   %d\n", stats.TotalRentals)
			fmt.Fprintf(w, "Active rentals:  %d\n", stats.ActiveRentals)
			fmt.Fprintf(w, "Total revenue:   %.2f\n", stats.TotalRevenue)
			return nil
		},
	}
}
