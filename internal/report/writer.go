// Package report persists the inventory record as timestamped CSV and JSON
// files under the reports directory.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"hwscan/internal/logging"
	"hwscan/internal/record"
)

// Writer writes report files into Dir, creating it on demand.
type Writer struct {
	Dir    string
	Logger *logging.Logger
}

// NewWriter creates a writer for the given directory.
func NewWriter(dir string, logger *logging.Logger) *Writer {
	return &Writer{Dir: dir, Logger: logger}
}

// Write persists the record as <base>.csv and <base>.json and returns both
// paths. CSV rows stringify every value; JSON keeps numbers numeric.
func (w *Writer) Write(rec *record.Record, base string) (csvPath, jsonPath string, err error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	csvPath = filepath.Join(w.Dir, base+".csv")
	if err := w.writeCSV(rec, csvPath); err != nil {
		return "", "", err
	}

	jsonPath = filepath.Join(w.Dir, base+".json")
	if err := w.writeJSON(rec, jsonPath); err != nil {
		return "", "", err
	}

	w.Logger.Info("report.saved", "Reports written", map[string]any{
		"csv":    csvPath,
		"json":   jsonPath,
		"fields": rec.Len(),
	})
	return csvPath, jsonPath, nil
}

func (w *Writer) writeCSV(rec *record.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV report: %w", err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"Specification", "Value"}); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, field := range rec.Fields() {
		if err := cw.Write([]string{field.Key, record.FormatValue(field.Value)}); err != nil {
			f.Close()
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush CSV report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close CSV report: %w", err)
	}
	return nil
}

func (w *Writer) writeJSON(rec *record.Record, path string) error {
	data, err := rec.MarshalIndentJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
