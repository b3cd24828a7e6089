package document

import (
	"strings"

	"github.com/goccy/go-json"
)

// Record is a free-form JSON object as submitted by the public forms.
// Numbers are held as json.Number so they survive a load/save cycle unchanged.
type Record map[string]any

const (
	FieldID        = "id"
	FieldType      = "type"
	FieldTimestamp = "timestamp"
	FieldEmail     = "email"
)

// String returns the value stored under key as a string.
// Missing keys, nulls and non-scalar values yield "".
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Has reports whether key is present with a non-null value.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// SetDefault stores value under key unless the key already holds a non-null value.
func (r Record) SetDefault(key string, value any) {
	if !r.Has(key) {
		r[key] = value
	}
}

// SetIfAbsent stores value under key only when the key is missing; an explicit null is kept.
func (r Record) SetIfAbsent(key string, value any) {
	if _, ok := r[key]; !ok {
		r[key] = value
	}
}

func (r Record) ID() string {
	return r.String(FieldID)
}

func (r Record) Type() string {
	return strings.TrimSpace(r.String(FieldType))
}

func (r Record) Timestamp() string {
	return r.String(FieldTimestamp)
}

func (r Record) Email() string {
	return strings.TrimSpace(r.String(FieldEmail))
}

// IndexOf returns the position of the first record whose id equals id, or -1.
func IndexOf(records []Record, id string) int {
	if id == "" {
		return -1
	}
	for i, rec := range records {
		if rec.ID() == id {
			return i
		}
	}
	return -1
}

// Remove returns records without the element at i. The backing array is not reused.
func Remove(records []Record, i int) []Record {
	out := make([]Record, 0, len(records)-1)
	out = append(out, records[:i]...)
	return append(out, records[i+1:]...)
}
