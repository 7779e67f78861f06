package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	// LevelDebug indicates fine-grained diagnostic logging.
	LevelDebug Level = iota
	// LevelInfo indicates informational logging.
	LevelInfo
	// LevelWarn indicates non-fatal warnings.
	LevelWarn
	// LevelError indicates error logging requiring attention.
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel parses a level name as used in configuration files.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Event is one structured log line.
type Event struct {
	Timestamp string         `json:"ts"`
	Level     string         `json:"level"`
	Name      string         `json:"event"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Logger writes structured JSON events to a writer. Loggers derived with
// With share the same writer and mutex, so a single Logger tree is safe for
// concurrent use.
type Logger struct {
	mu       *sync.Mutex
	minLevel Level
	out      io.Writer
	file     *os.File
	base     map[string]any
}

// NewLogger creates a logger writing to stderr.
func NewLogger(minLevel Level) *Logger {
	return &Logger{mu: &sync.Mutex{}, minLevel: minLevel, out: os.Stderr}
}

// NewFileLogger creates a logger appending to the given file, creating the
// parent directory if needed.
func NewFileLogger(minLevel Level, path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{mu: &sync.Mutex{}, minLevel: minLevel, out: f, file: f}, nil
}

// Close closes the log file if one is open.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// With returns a logger whose events always carry the given payload fields.
// Event-specific payload fields override base fields on key collision.
func (l *Logger) With(payload map[string]any) *Logger {
	base := make(map[string]any, len(l.base)+len(payload))
	for k, v := range l.base {
		base[k] = v
	}
	for k, v := range payload {
		base[k] = v
	}
	child := *l
	child.base = base
	return &child
}

// Log writes a structured event if the level clears the threshold.
func (l *Logger) Log(level Level, name, message string, payload map[string]any) {
	if level < l.minLevel {
		return
	}

	merged := payload
	if len(l.base) > 0 {
		merged = make(map[string]any, len(l.base)+len(payload))
		for k, v := range l.base {
			merged[k] = v
		}
		for k, v := range payload {
			merged[k] = v
		}
	}

	event := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Name:      name,
		Message:   message,
		Payload:   merged,
	}

	data, err := json.Marshal(event)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal log event: %v\n", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := fmt.Fprintln(l.out, string(data)); err != nil && l.out != os.Stderr {
		fmt.Fprintf(os.Stderr, "failed to write log event: %v\n", err)
	}
}

// Debug logs a debug-level event.
func (l *Logger) Debug(name, message string, payload map[string]any) {
	l.Log(LevelDebug, name, message, payload)
}

// Info logs an info-level event.
func (l *Logger) Info(name, message string, payload map[string]any) {
	l.Log(LevelInfo, name, message, payload)
}

// Warn logs a warn-level event.
func (l *Logger) Warn(name, message string, payload map[string]any) {
	l.Log(LevelWarn, name, message, payload)
}

// Error logs an error-level event.
func (l *Logger) Error(name, message string, payload map[string]any) {
	l.Log(LevelError, name, message, payload)
}
