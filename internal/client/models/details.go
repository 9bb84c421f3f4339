package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Details is an ordered string-to-string map holding the open, form-defined
// extra fields of a record. Key order is semantically meaningful: the detail
// view replays entries in insertion order, which for fetched records is the
// server's serialization order.
//
// The remote store serializes counter values as JSON numbers and blanks as
// empty strings; decoding normalizes both to strings.
type Details struct {
	keys   []string
	values map[string]string
}

// Set stores value under key, appending the key on first use and
// overwriting in place afterwards. Keys are never renamed or reordered.
func (d *Details) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value for key and whether it is present.
func (d *Details) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (d *Details) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries.
func (d *Details) Len() int {
	return len(d.keys)
}

// Clone returns an independent copy.
func (d *Details) Clone() Details {
	var out Details
	for _, k := range d.keys {
		out.Set(k, d.values[k])
	}
	return out
}

// MarshalJSON encodes the details as a JSON object preserving key order.
func (d Details) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object, preserving the order keys appear
// in and normalizing scalar values to strings. Nested objects or arrays are
// rejected; the details contract is flat key/value only.
func (d *Details) UnmarshalJSON(b []byte) error {
	*d = Details{}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil // JSON null: empty details
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("details: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("details: non-string key %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		switch v := valTok.(type) {
		case string:
			d.Set(key, v)
		case json.Number:
			d.Set(key, v.String())
		case bool:
			if v {
				d.Set(key, "true")
			} else {
				d.Set(key, "false")
			}
		case nil:
			d.Set(key, "")
		default:
			return fmt.Errorf("details: unsupported value for %q", key)
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
