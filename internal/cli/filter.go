package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"portfolio-rebalancer/internal/models"
	"portfolio-rebalancer/internal/rebalance"
)

func newFilterCmd(app *App) *cobra.Command {
	var all bool
	var save bool

	cmd := &cobra.Command{
		Use:   "filter [request-id]",
		Short: "Filter accounts for a rebalance request",
		Long: `Filter applies a request's criteria to the customer accounts table and
prints the match summary. With --all, every loaded request is processed
independently.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd)

			pipeline, err := app.Pipeline()
			if err != nil {
				return err
			}

			if all {
				return runFilterAll(app, out, save)
			}

			if len(args) == 0 {
				return fmt.Errorf("request-id required unless --all is given")
			}
			requestID := args[0]

			summary, err := pipeline.ProcessRequest(requestID)
			if err != nil {
				return err
			}

			if save {
				if _, err := app.Loader.SaveJSON(summary, "filter_"+requestID+".json"); err != nil {
					return err
				}
			}

			if out.IsJSON() {
				return out.JSON(summary)
			}
			printSummary(out, requestID, summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "process every loaded request")
	cmd.Flags().BoolVar(&save, "save", false, "write results to the output directory")
	return cmd
}

func runFilterAll(app *App, out *Output, save bool) error {
	pipeline, err := app.Pipeline()
	if err != nil {
		return err
	}

	results := pipeline.ProcessAll()

	if save {
		if _, err := app.Loader.SaveJSON(flattenResults(results), "filter_all.json"); err != nil {
			return err
		}
	}

	if out.IsJSON() {
		return out.JSON(flattenResults(results))
	}

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	total := 0
	for _, id := range ids {
		result := results[id]
		if result.Err != nil {
			out.Printf("%s : error: %v\n", id, result.Err)
			continue
		}
		out.Printf("%s : %d accounts\n", id, result.Summary.Count)
		total += result.Summary.Count
	}
	out.Printf("\nTotal filtered accounts across all requests: %d\n", total)
	return nil
}

// flattenResults converts batch results to a JSON-friendly shape, replacing
// error values with their messages.
func flattenResults(results map[string]rebalance.RequestResult) map[string]interface{} {
	out := make(map[string]interface{}, len(results))
	for id, result := range results {
		if result.Err != nil {
			out[id] = map[string]string{"error": result.Err.Error()}
			continue
		}
		out[id] = result.Summary
	}
	return out
}

func printSummary(out *Output, requestID string, summary models.Summary) {
	out.Printf("Request: %s\n", requestID)
	out.Printf("Matched accounts: %d\n", summary.Count)
	for _, id := range summary.Accounts {
		out.Printf("  %s\n", id)
	}
	if summary.Statistics == nil {
		return
	}
	out.Println()
	if summary.Statistics.AvgAge != nil {
		out.Printf("Average age: %.1f\n", *summary.Statistics.AvgAge)
	}
	if summary.Statistics.AvgAnnualIncome != nil {
		out.Printf("Average annual income: %.2f\n", *summary.Statistics.AvgAnnualIncome)
	}
	printDistribution(out, "Risk tolerance", summary.Statistics.RiskDistribution)
	printDistribution(out, "State", summary.Statistics.StateDistribution)
	printDistribution(out, "Time horizon", summary.Statistics.TimeHorizonDistribution)
}

func printDistribution(out *Output, label string, dist map[string]int) {
	if len(dist) == 0 {
		return
	}
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out.Printf("%s:\n", label)
	for _, k := range keys {
		out.Printf("  %-20s %d\n", k, dist[k])
	}
}
