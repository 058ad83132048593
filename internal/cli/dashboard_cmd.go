package cli

import (
	"fmt"

	"github.com/alexanderramin/cardboard/internal/cli/formatter"
	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	req := contract.NewDashboardRequest()

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show category distribution, vote totals and recent suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.dashboardUseCase().Summary(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&req.RecentLimit, "recent", req.RecentLimit, "Number of recent suggestions to list (0 hides the list)")
	cmd.Flags().BoolVar(&req.IncludeAutomated, "include-generated", false, "Include generated suggestions in the recent list")

	return cmd
}
