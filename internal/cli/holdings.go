package cli

import (
	"sort"

	"github.com/spf13/cobra"
)

func newHoldingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holdings <request-id>",
		Short: "Show holdings for the accounts matching a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd)
			requestID := args[0]

			pipeline, err := app.Pipeline()
			if err != nil {
				return err
			}

			breakdown, err := pipeline.AccountHoldings(requestID)
			if err != nil {
				return err
			}

			if out.IsJSON() {
				return out.JSON(breakdown)
			}

			out.Printf("Request: %s\n", breakdown.RequestID)
			out.Printf("Matched accounts: %d\n", breakdown.MatchedAccounts)

			ids := make([]string, 0, len(breakdown.AccountHoldings))
			for id := range breakdown.AccountHoldings {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				holdings := breakdown.AccountHoldings[id]
				out.Printf("\n%s (%d positions, total %.2f)\n", id, holdings.PositionCount, holdings.TotalValue)
				for _, p := range holdings.Positions {
					out.Printf("  %-8s %10.2f shares @ %10.2f = %12.2f\n", p.Ticker, p.Qty, p.Price, p.PositionTotal)
				}
			}
			return nil
		},
	}
	return cmd
}
