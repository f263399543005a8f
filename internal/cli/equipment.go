package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/agrirent/internal/access"
	"github.com/me/agrirent/pkg/model"
)

func newEquipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Browse or manage equipment",
	}
	cmd.AddCommand(
		newEquipmentListCmd(),
		newEquipmentAllCmd(),
		newEquipmentAddCmd(),
		newEquipmentToggleCmd("activate", true),
		newEquipmentToggleCmd("deactivate", false),
	)
	return cmd
}

func newEquipmentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List equipment available to rent",
		PreRunE: requireView(access.CustomerBrowsePath),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := client.ListEquipment(cmd.Context())
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			printEquipment(cmd.OutOrStdout(), items, false)
			return nil
		},
	}
}

func newEquipmentAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "all",
		Short:   "List all equipment including inactive items (admin)",
		PreRunE: requireView(access.AdminEquipmentPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := client.ListAllEquipment(cmd.Context())
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			printEquipment(cmd.OutOrStdout(), items, true)
			return nil
		},
	}
}

func newEquipmentAddCmd() *cobra.Command {
	var eq model.NewEquipment

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add equipment to the inventory (admin)",
		PreRunE: requireView(access.AdminEquipmentPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := client.AddEquipment(cmd.Context(), eq)
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&eq.Name, "name", "", "Equipment name")
	cmd.Flags().Float64Var(&eq.Price, "price", 0, "Price per day")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("price")
	return cmd
}

func newEquipmentToggleCmd(verb string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:     verb + " <id>",
		Short:   fmt.Sprintf("%s an equipment item (admin)", capitalize(verb)),
		Args:    cobra.ExactArgs(1),
		PreRunE: requireView(access.AdminEquipmentPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			toggle := client.DeactivateEquipment
			if active {
				toggle = client.ActivateEquipment
			}
			msg, err := toggle(cmd.Context(), id)
			if err != nil {
				return checkAPI(cmd.Context(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
}

func printEquipment(w io.Writer, items []model.Equipment, withStatus bool) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No equipment found.")
		return
	}
	if withStatus {
		fmt.Fprintf(w, "%-6s  %-30s  %10s  %s\n", "ID", "NAME", "PRICE/DAY", "STATUS")
		fmt.Fprintf(w, "%-6s  %-30s  %10s  %s\n", "--", "----", "---------", "------")
	} else {
		fmt.Fprintf(w, "%-6s  %-30s  %10s\n", "ID", "NAME", "PRICE/DAY")
		fmt.Fprintf(w, "%-6s  %-30s  %10s\n", "--", "----", "---------")
	}
	for _, eq := range items {
		if withStatus {
			status := "active"
			if !eq.IsActive {
				status = "inactive"
			}
			fmt.Fprintf(w, "%-6d  %-30s  %10.2f  %s\n", eq.ID, eq.Name, eq.Price, status)
		} else {
			fmt.Fprintf(w, "%-6d  %-30s  %10.2f\n", eq.ID, eq.Name, eq.Price)
		}
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
