package report

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Manifest records what one scan produced, with checksums so a report pair
// can be verified after the fact.
type Manifest struct {
	ScanID     string         `json:"scan_id"`
	Hostname   string         `json:"hostname"`
	StartedAt  string         `json:"started_at"`
	FinishedAt string         `json:"finished_at"`
	Files      []ManifestFile `json:"files"`
}

// ManifestFile describes one written report file.
type ManifestFile struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
	SHA256    string `json:"sha256"`
}

// WriteManifest hashes the given report files and writes
// <base>.manifest.json next to them, returning its path.
func (w *Writer) WriteManifest(scanID, hostname string, started, finished time.Time, base string, files []string) (string, error) {
	m := Manifest{
		ScanID:     scanID,
		Hostname:   hostname,
		StartedAt:  started.UTC().Format(time.RFC3339),
		FinishedAt: finished.UTC().Format(time.RFC3339),
	}
	for _, path := range files {
		sum, size, err := sha256File(path)
		if err != nil {
			return "", fmt.Errorf("failed to hash %s: %w", path, err)
		}
		m.Files = append(m.Files, ManifestFile{Path: path, SizeBytes: size, SHA256: sum})
	}

	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	path := filepath.Join(w.Dir, base+".manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

func sha256File(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), size, nil
}
