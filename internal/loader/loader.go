// Package loader reads the input tables consumed by the rebalancing
// pipeline: CSV reference data and the rebalance request JSON.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"portfolio-rebalancer/internal/config"
	"portfolio-rebalancer/internal/dataset"
	apperrors "portfolio-rebalancer/internal/errors"
	"portfolio-rebalancer/internal/models"
	"portfolio-rebalancer/internal/rebalance"
)

// Loader reads input files according to the data configuration.
type Loader struct {
	cfg    config.DataConfig
	logger zerolog.Logger
}

// NewLoader creates a loader for the configured data locations.
func NewLoader(cfg config.DataConfig, logger zerolog.Logger) *Loader {
	return &Loader{cfg: cfg, logger: logger}
}

// LoadAccounts reads the customer accounts CSV into a generic table. The
// accounts schema is open-ended, so columns are taken from the header row
// rather than a fixed struct.
func (l *Loader) LoadAccounts() (dataset.Table, error) {
	path := l.cfg.Resolve(l.cfg.AccountsFile)
	f, err := os.Open(path)
	if err != nil {
		return dataset.Table{}, apperrors.NewLoadError("accounts", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return dataset.Table{}, apperrors.NewLoadError("accounts", path, err)
	}
	if len(records) == 0 {
		return dataset.New(nil, nil), nil
	}

	columns := records[0]
	rows := make([]dataset.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(dataset.Row, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows = append(rows, row)
	}

	l.logger.Info().Int("accounts", len(rows)).Msg("Loaded customer accounts")
	return dataset.New(columns, rows), nil
}

// LoadHoldings reads the customer holdings CSV.
func (l *Loader) LoadHoldings() ([]models.Holding, error) {
	path := l.cfg.Resolve(l.cfg.HoldingsFile)
	var holdings []models.Holding
	if err := unmarshalCSV(path, &holdings); err != nil {
		return nil, apperrors.NewLoadError("holdings", path, err)
	}
	l.logger.Info().Int("holdings", len(holdings)).Msg("Loaded customer holdings")
	return holdings, nil
}

// LoadMarketConditions reads the market conditions CSV.
func (l *Loader) LoadMarketConditions() ([]models.MarketCondition, error) {
	path := l.cfg.Resolve(l.cfg.MarketFile)
	var conditions []models.MarketCondition
	if err := unmarshalCSV(path, &conditions); err != nil {
		return nil, apperrors.NewLoadError("market_conditions", path, err)
	}
	return conditions, nil
}

// LoadSectors reads the ticker → GICS sector reference CSV.
func (l *Loader) LoadSectors() ([]models.SectorMapping, error) {
	path := l.cfg.Resolve(l.cfg.SectorFile)
	var sectors []models.SectorMapping
	if err := unmarshalCSV(path, &sectors); err != nil {
		return nil, apperrors.NewLoadError("sector_reference", path, err)
	}
	return sectors, nil
}

// LoadRequests reads the rebalance requests JSON. Request identifiers are
// expected to be UUIDs; malformed identifiers are logged and kept, since
// downstream lookups are by exact string match.
func (l *Loader) LoadRequests() ([]models.RebalanceRequest, error) {
	path := l.cfg.Resolve(l.cfg.RequestsFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewLoadError("requests", path, err)
	}

	var requests []models.RebalanceRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		return nil, apperrors.NewLoadError("requests", path, err)
	}

	for _, req := range requests {
		if _, err := uuid.Parse(req.RequestIdentifier); err != nil {
			l.logger.Warn().
				Str("request_id", req.RequestIdentifier).
				Msg("Request identifier is not a valid UUID")
		}
	}

	l.logger.Info().Int("requests", len(requests)).Msg("Loaded rebalance requests")
	return requests, nil
}

// LoadAll loads every input table the pipeline needs.
func (l *Loader) LoadAll() (rebalance.PipelineData, error) {
	var data rebalance.PipelineData
	var err error

	if data.Accounts, err = l.LoadAccounts(); err != nil {
		return data, err
	}
	if data.Holdings, err = l.LoadHoldings(); err != nil {
		return data, err
	}
	if data.Conditions, err = l.LoadMarketConditions(); err != nil {
		return data, err
	}
	if data.Sectors, err = l.LoadSectors(); err != nil {
		return data, err
	}
	if data.Requests, err = l.LoadRequests(); err != nil {
		return data, err
	}
	return data, nil
}

func unmarshalCSV(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.UnmarshalFile(f, out)
}
