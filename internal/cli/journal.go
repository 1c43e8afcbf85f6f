package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recorded recommendation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd)

			if app.Journal == nil {
				return fmt.Errorf("journal is disabled or unavailable")
			}

			entries, err := app.Journal.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if out.IsJSON() {
				return out.JSON(entries)
			}

			if len(entries) == 0 {
				out.Println("No recorded recommendations")
				return nil
			}
			for _, entry := range entries {
				out.Printf("%s  %s  accounts=%d trades=%d\n",
					entry.RecordedAt.Format("2006-01-02 15:04:05"),
					entry.RequestID, entry.Accounts, entry.Trades)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to list")
	return cmd
}
