package cli

import (
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "recommend <request-id>",
		Short: "Generate trade recommendations for a rebalance request",
		Long: `Recommend filters accounts for the request, resolves a market condition
for each held ticker (security level first, sector level as fallback), and
emits BUY/SELL trades sized at the current held quantity. Holdings without
a directional condition produce no trade, and accounts with no resulting
trades are omitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd)
			requestID := args[0]

			pipeline, err := app.Pipeline()
			if err != nil {
				return err
			}

			recommendation, err := pipeline.Generate(requestID)
			if err != nil {
				return err
			}

			if app.Journal != nil {
				if jerr := app.Journal.Record(cmd.Context(), recommendation); jerr != nil {
					app.Logger.Warn().Err(jerr).Msg("Failed to journal recommendation")
				}
			}

			if save {
				if _, err := app.Loader.SaveJSON(recommendation, "trade_recommendations.json"); err != nil {
					return err
				}
			}

			if out.IsJSON() {
				return out.JSON(recommendation)
			}

			out.Printf("Request: %s\n", recommendation.RequestIdentifier)
			out.Printf("Accounts with trades: %d\n", len(recommendation.Accounts))
			for _, account := range recommendation.Accounts {
				out.Printf("\n%s\n", account.AccountID)
				for _, trade := range account.Trades {
					out.Printf("  %-6s %-8s %d\n", trade.RecommendedTrade, trade.Ticker, trade.Qty)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the recommendation to the output directory")
	return cmd
}
