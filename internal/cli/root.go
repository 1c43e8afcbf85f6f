// Package cli provides the command-line interface for the rebalancing
// application.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"portfolio-rebalancer/internal/config"
	"portfolio-rebalancer/internal/filter"
	"portfolio-rebalancer/internal/loader"
	"portfolio-rebalancer/internal/logging"
	"portfolio-rebalancer/internal/rebalance"
	"portfolio-rebalancer/internal/sentiment"
	"portfolio-rebalancer/internal/store"
)

// Version information
const Version = "0.1.0"

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Loader    *loader.Loader
	Journal   store.Journal
	Extractor sentiment.Extractor

	pipeline *rebalance.Pipeline
}

// Pipeline loads the input data on first use and returns the shared
// pipeline instance.
func (a *App) Pipeline() (*rebalance.Pipeline, error) {
	if a.pipeline != nil {
		return a.pipeline, nil
	}

	data, err := a.Loader.LoadAll()
	if err != nil {
		return nil, err
	}

	engine := filter.NewEngine(a.Logger)
	engine.StrictAttributes = a.Config.Filter.StrictAttributes

	a.pipeline = rebalance.NewPipeline(data, engine, a.Logger)
	return a.pipeline, nil
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Loader: loader.NewLoader(cfg.Data, logger),
	}

	// Journal is optional: commands degrade with a warning when the
	// database cannot open.
	if cfg.Journal.Enabled {
		journal, err := store.NewSQLiteJournal(cfg.Journal.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to open recommendation journal")
		} else {
			app.Journal = journal
		}
	}

	if cfg.Credentials.OpenAI.APIKey != "" {
		app.Extractor = sentiment.NewOpenAIExtractor(
			cfg.Credentials.OpenAI.APIKey,
			cfg.Sentiment.Model,
			cfg.Sentiment.MaxAttempts,
			logger,
		)
		logger.Debug().Str("model", cfg.Sentiment.Model).Msg("Sentiment extractor initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "rebalancer",
		Short: "Portfolio rebalancer - criteria filtering and trade recommendations",
		Long: `Portfolio rebalancer filters customer accounts against declarative
rebalance criteria, joins the matches with holdings and market-condition
data, and emits buy/sell trade recommendations.

Use 'rebalancer requests' to list loaded rebalance requests.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/rebalancer)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newFilterCmd(app),
		newRecommendCmd(app),
		newHoldingsCmd(app),
		newRequestsCmd(app),
		newJournalCmd(app),
		newSentimentCmd(app),
	)

	return rootCmd
}
