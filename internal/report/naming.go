package report

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// Filename builds the timestamped report base name from optional user
// input. A blank or whitespace-only input selects defaultName. The
// timestamp embeds the prompt-time clock, so consecutive runs never
// collide.
func Filename(input, defaultName string, now time.Time) string {
	base := strings.TrimSpace(input)
	if base == "" {
		base = defaultName
	}
	return base + "_" + now.Format(timestampLayout)
}

// DefaultDir returns the reports directory next to the executable, keeping
// the output location stable regardless of the invocation directory.
func DefaultDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "reports"), nil
}
