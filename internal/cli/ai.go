package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/agrirent/internal/access"
	"github.com/me/agrirent/pkg/model"
)

func newAICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Ask the AI assistant",
	}
	cmd.AddCommand(newAIRecommendCmd(), newAIChatCmd(), newAIContractCmd())
	return cmd
}

func newAIRecommendCmd() *cobra.Command {
	var req model.RecommendRequest

	cmd := &cobra.Command{
		Use:     "recommend",
		Short:   "Get equipment recommendations for your farm",
		PreRunE: requireView(access.CustomerRecommendPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if req.Season == "" {
				req.Season = model.SeasonFor(time.Now())
			}

			rentals, err := client.MyRentals(ctx)
			if err != nil {
				return checkAPI(ctx, err)
			}
			for _, r := range rentals {
				req.PreviousRentals = append(req.PreviousRentals, r.EquipmentName)
			}

			resp, err := client.Recommend(ctx, req)
			if err != nil {
				return checkAPI(ctx, err)
			}

			w := cmd.OutOrStdout()
			if len(resp.Recommendations) == 0 {
				fmt.Fprintln(w, "No recommendations.")
				return nil
			}
			fmt.Fprintf(w, "%-4s  %-30s  %5s  %s\n", "#", "EQUIPMENT", "DAYS", "REASON")
			fmt.Fprintf(w, "%-4s  %-30s  %5s  %s\n", "-", "---------", "----", "------")
			for _, r := range resp.Recommendations {
				fmt.Fprintf(w, "%-4d  %-30s  %5d  %s\n", r.Priority, r.Equipment, r.EstimatedDays, r.Reason)
			}
			if resp.TotalEstimatedCost > 0 {
				fmt.Fprintf(w, "\nEstimated cost: %.2f\n", resp.TotalEstimatedCost)
			}
			if resp.SeasonalTips != "" {
				fmt.Fprintf(w, "Tip: %s\n", resp.SeasonalTips)
			}
			if resp.CostAnalysis != "" {
				fmt.Fprintf(w, "Cost analysis: %s\n", resp.CostAnalysis)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FarmSize, "farm-size", "", "Farm size in acres")
	cmd.Flags().StringVar(&req.CropType, "crop", "", "Crop type")
	cmd.Flags().StringVar(&req.Season, "season", "", "Season (default: current season)")
	cmd.Flags().StringVar(&req.Budget, "budget", "", "Budget")
	cmd.Flags().StringVar(&req.SoilType, "soil", "", "Soil type")
	cmd.MarkFlagRequired("crop")
	return cmd
}

func newAIChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "chat <question>...",
		Short:   "Ask the assistant a question",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: requireView(access.CustomerChatPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := client.ListEquipment(ctx)
			if err != nil {
				return checkAPI(ctx, err)
			}
			req := model.ChatRequest{
				Question: strings.Join(args, " "),
				Context: model.ChatContext{
					Equipment: items,
					UserType:  gate.Current().Role().String(),
					Season:    model.SeasonFor(time.Now()),
				},
			}
			resp, err := client.Chat(ctx, req)
			if err != nil {
				return checkAPI(ctx, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Response)
			return nil
		},
	}
}

func newAIContractCmd() *cobra.Command {
	var (
		equipmentID int64
		days        int
		startDate   string
		deposit     float64
		outPath     string
	)

	cmd := &cobra.Command{
		Use:     "contract",
		Short:   "Draft a rental contract",
		PreRunE: requireView(access.CustomerRentalsPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := client.ListEquipment(ctx)
			if err != nil {
				return checkAPI(ctx, err)
			}
			var eq *model.Equipment
			for i := range items {
				if items[i].ID == equipmentID {
					eq = &items[i]
				}
			}
			if eq == nil {
				return fmt.Errorf("equipment %d is not available", equipmentID)
			}
			if days <= 0 {
				return fmt.Errorf("days must be at least 1")
			}
			if startDate == "" {
				startDate = time.Now().Format("2006-01-02")
			}

			resp, err := client.Contract(ctx, model.ContractRequest{
				CustomerName:  gate.Current().User.DisplayName(),
				EquipmentName: eq.Name,
				Days:          days,
				StartDate:     startDate,
				DailyRate:     eq.Price,
				TotalCost:     eq.Price * float64(days),
				Deposit:       deposit,
			})
			if err != nil {
				return checkAPI(ctx, err)
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(resp.ContractHTML), 0o644); err != nil {
					return fmt.Errorf("write contract: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Contract written to %s\n", outPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.ContractHTML)
			return nil
		},
	}

	cmd.Flags().Int64Var(&equipmentID, "equipment", 0, "Equipment ID")
	cmd.Flags().IntVar(&days, "days", 1, "Number of days")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date YYYY-MM-DD (default today)")
	cmd.Flags().Float64Var(&deposit, "deposit", 0, "Security deposit")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the contract HTML to a file")
	cmd.MarkFlagRequired("equipment")
	return cmd
}
