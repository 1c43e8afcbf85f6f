package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Portfolio Rebalancer Configuration

[data]
# Base path that relative data file paths resolve against
base_path = "."
# Customer accounts table
accounts_file = "data/market_data/customer_accounts.csv"
# Customer holdings table
holdings_file = "data/market_data/customer_accounts_holdings.csv"
# Market conditions table
market_file = "data/market_data/market_conditions.csv"
# Ticker -> GICS sector reference table
sector_file = "data/market_data/sector_reference.csv"
# Rebalance requests
requests_file = "data/api_data/rebalance_requests.json"
# Directory for JSON output files
output_dir = "output"

[filter]
# When true, criteria whose attribute has no known mapping are skipped with
# a warning instead of being applied with the attribute name as-is
strict_attributes = false

[journal]
# Record generated recommendations in a local SQLite journal
enabled = true

[logging]
# Log level: debug, info, warn, error
level = "info"
# Also write logs to a rotating file
file = false

[sentiment]
# LLM model for news sentiment extraction
model = "gpt-4o-mini"
# Retry attempts for extraction calls
max_attempts = 3
`

const credentialsTemplate = `# Portfolio Rebalancer Credentials
# WARNING: Keep this file secure! Do not commit to version control.

[openai]
api_key = ""
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}

func createTemplateCredentials(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "credentials.toml")
	// Use restricted permissions for credentials file
	if err := os.WriteFile(path, []byte(credentialsTemplate), 0600); err != nil {
		return fmt.Errorf("writing credentials template: %w", err)
	}

	return nil
}
