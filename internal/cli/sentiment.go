package cli

import (
	"os"

	"github.com/spf13/cobra"

	apperrors "portfolio-rebalancer/internal/errors"
)

func newSentimentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sentiment <article-file>",
		Short: "Extract entity sentiments from a news article",
		Long: `Sentiment runs the configured LLM extractor over an article text file and
prints the extracted company/sector sentiment entities. Requires an OpenAI
API key in credentials or OPENAI_API_KEY.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd)

			if app.Extractor == nil {
				return apperrors.ErrExtractorOffline
			}

			article, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			entities, err := app.Extractor.Extract(cmd.Context(), string(article))
			if err != nil {
				return err
			}

			if out.IsJSON() {
				return out.JSON(entities)
			}

			out.Printf("Extracted %d entities\n", len(entities))
			for _, entity := range entities {
				out.Printf("  %-8s %-24s %s\n", entity.Type, entity.Name, entity.Sentiment)
			}
			return nil
		},
	}
	return cmd
}
