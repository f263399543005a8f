package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/me/agrirent/internal/access"
	"github.com/me/agrirent/pkg/model"
)

func newRentCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:     "rent <equipment-id>",
		Short:   "Rent a piece of equipment",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireView(access.CustomerBrowsePath),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, err := client.CreateRental(cmd.Context(), model.NewRental{EquipmentID: id, Days: days})
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "Number of days")
	return cmd
}

func newRentalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rentals",
		Short: "List and manage rentals",
	}
	cmd.AddCommand(
		newRentalsMyCmd(),
		newRentalsStatsCmd(),
		newRentalsAllCmd(),
		newRentalsReturnCmd(),
	)
	return cmd
}

func newRentalsMyCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:     "my",
		Short:   "List your rentals",
		PreRunE: requireView(access.CustomerRentalsPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			rentals, err := client.MyRentals(cmd.Context())
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			printRentals(cmd.OutOrStdout(), model.FilterRentals(rentals, model.RentalStatus(status)), false)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (rented, returned)")
	return cmd
}

func newRentalsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show your rental summary",
		PreRunE: requireView(access.CustomerPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := client.DashboardStats(cmd.Context())
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Total rentals:   %d\n", stats.TotalRentals)
			fmt.Fprintf(w, "Active rentals:  %d\n", stats.ActiveRentals)
			fmt.Fprintf(w, "Total spent:     %.2f\n", stats.TotalSpent)
			return nil
		},
	}
}

func newRentalsAllCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:     "all",
		Short:   "List every rental (admin)",
		PreRunE: requireView(access.AdminRentalsPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			rentals, err := client.AllRentals(cmd.Context())
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			printRentals(cmd.OutOrStdout(), model.FilterRentals(rentals, model.RentalStatus(status)), true)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (rented, returned)")
	return cmd
}

func newRentalsReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "return <rental-id>",
		Short:   "Mark a rental as returned (admin)",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireView(access.AdminRentalsPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, err := client.ReturnRental(cmd.Context(), id)
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
}

func printRentals(w io.Writer, rentals []model.Rental, withUser bool) {
	if len(rentals) == 0 {
		fmt.Fprintln(w, "No rentals found.")
		return
	}
	if withUser {
		fmt.Fprintf(w, "%-6s  %-16s  %-30s  %5s  %10s  %s\n", "ID", "CUSTOMER", "EQUIPMENT", "DAYS", "TOTAL", "STATUS")
		fmt.Fprintf(w, "%-6s  %-16s  %-30s  %5s  %10s  %s\n", "--", "--------", "---------", "----", "-----", "------")
	} else {
		fmt.Fprintf(w, "%-6s  %-30s  %5s  %10s  %s\n", "ID", "EQUIPMENT", "DAYS", "TOTAL", "STATUS")
		fmt.Fprintf(w, "%-6s  %-30s  %5s  %10s  %s\n", "--", "---------", "----", "-----", "------")
	}
	for _, r := range rentals {
		if withUser {
			fmt.Fprintf(w, "%-6d  %-16s  %-30s  %5d  %10.2f  %s\n", r.ID, r.Username, r.EquipmentName, r.Days, r.Total, r.Status)
		} else {
			fmt.Fprintf(w, "%-6d  %-30s  %5d  %10.2f  %s\n", r.ID, r.EquipmentName, r.Days, r.Total, r.Status)
		}
	}
}
