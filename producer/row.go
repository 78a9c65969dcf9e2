package producer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is one composed object. Names and Values have the same length, Names
// is shared between all rows of a composition and must not be modified.
type Row struct {
	Names  []string
	Values []any
}

// Get returns the value of the field name.
func (r Row) Get(name string) (any, bool) {
	for i, n := range r.Names {
		if n == name {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Map returns the row as a map.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.Names))
	for i, n := range r.Names {
		m[n] = r.Values[i]
	}
	return m
}

// MarshalJSON encodes the row as an object with the fields in order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, n := range r.Names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object into the row, keeping the order of the
// fields.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("row must be a JSON object, got %v", tok)
	}

	r.Names, r.Values = nil, nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		var v any
		err = dec.Decode(&v)
		if err != nil {
			return err
		}

		r.Names = append(r.Names, tok.(string))
		r.Values = append(r.Values, v)
	}

	_, err = dec.Token()
	return err
}
