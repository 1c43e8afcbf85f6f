package loader

import (
	"encoding/json"
	"os"
	"path/filepath"

	apperrors "portfolio-rebalancer/internal/errors"
)

// SaveJSON writes data as indented JSON into the configured output
// directory, creating the directory if needed, and returns the written
// path.
func (l *Loader) SaveJSON(data interface{}, filename string) (string, error) {
	outDir := l.cfg.Resolve(l.cfg.OutputDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", apperrors.Wrap(err, "creating output directory")
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", apperrors.Wrap(err, "encoding output")
	}

	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", apperrors.Wrapf(err, "writing %s", path)
	}

	l.logger.Info().Str("path", path).Msg("Wrote output file")
	return path, nil
}
