// Package record holds the flat inventory record produced by one scan: an
// insertion-ordered mapping from field name to a string or numeric value.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Field is one collected fact. Value is either a string or a float64.
type Field struct {
	Key   string
	Value any
}

// Record preserves field insertion order, which both report formats and the
// console summary must reproduce.
type Record struct {
	fields []Field
	index  map[string]int
}

// New creates an empty record.
func New() *Record {
	return &Record{index: make(map[string]int)}
}

// Set adds a field, or replaces the value of an existing field in place
// without changing its position.
func (r *Record) Set(key string, value any) {
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value for a key.
func (r *Record) Get(key string) (any, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// GetString returns the value for a key rendered as report text.
func (r *Record) GetString(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return FormatValue(v), true
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns the fields in insertion order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// FormatValue renders a field value as report text. Floats use the shortest
// decimal representation so that CSV rows and JSON numbers read identically.
func FormatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// MarshalIndentJSON renders the record as a single JSON object with 4-space
// indentation. Keys keep insertion order and numeric values stay numeric,
// which encoding/json's map marshalling cannot provide.
func (r *Record) MarshalIndentJSON() ([]byte, error) {
	if len(r.fields) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, f := range r.fields {
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key %q: %w", f.Key, err)
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value for %q: %w", f.Key, err)
		}
		buf.WriteString("    ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(r.fields)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
