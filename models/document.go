package models

import (
	"bytes"
	"encoding/json"
)

// Document is the top level response wrapping the projected rows.
type Document struct {
	Data []Row `json:"data"`
}

// Row is a JSON object whose keys keep their insertion order when marshalled.
type Row struct {
	keys   []string
	values []interface{}
}

func NewRow(capacity int) Row {
	return Row{
		keys:   make([]string, 0, capacity),
		values: make([]interface{}, 0, capacity),
	}
}

func (r *Row) Set(key string, value interface{}) {
	r.keys = append(r.keys, key)
	r.values = append(r.values, value)
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, r.values[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, value interface{}) error {
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	// Encode always appends a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
