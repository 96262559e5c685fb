package frame

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Field is one key/value pair of a record.
type Field struct {
	Key   string
	Value any
}

// Record is a single JSON object returned by the API with its key order
// preserved. It doubles as the attribute bag returned for single-record
// endpoints such as company profiles.
type Record []Field

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the value under key formatted as text, or "" when absent.
func (r Record) String(key string) string {
	v, ok := r.Get(key)
	if !ok || v == nil {
		return ""
	}
	return formatCell(v)
}

// Float returns the numeric value under key.
func (r Record) Float(key string) (float64, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// Keys returns the record's keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Map returns the record as an unordered map.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, f := range r {
		m[f.Key] = f.Value
	}
	return m
}

// MarshalJSON encodes the record as a JSON object in key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(jsonValue(f.Value))
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", f.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseRecords decodes a JSON array of objects into records, keeping the
// upstream key order. A single JSON object yields one record. Non-object
// array elements are skipped.
func ParseRecords(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON payload")
	}
	return FromResult(gjson.ParseBytes(data))
}

// FromResult converts an already located gjson value into records.
func FromResult(res gjson.Result) ([]Record, error) {
	switch {
	case res.IsArray():
		items := res.Array()
		records := make([]Record, 0, len(items))
		for _, item := range items {
			if !item.IsObject() {
				continue
			}
			records = append(records, objectRecord(item))
		}
		return records, nil
	case res.IsObject():
		return []Record{objectRecord(res)}, nil
	case !res.Exists() || res.Type == gjson.Null:
		return []Record{}, nil
	default:
		return nil, fmt.Errorf("expected JSON array or object, got %s", res.Type)
	}
}

func objectRecord(obj gjson.Result) Record {
	rec := make(Record, 0, 16)
	obj.ForEach(func(key, value gjson.Result) bool {
		rec = append(rec, Field{Key: key.String(), Value: value.Value()})
		return true
	})
	return rec
}
