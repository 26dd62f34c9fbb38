// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// MarshalJSON encodes the record as a JSON object in key order.
// Floats always carry a decimal point so that they decode as floats.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case *Record:
		buf.WriteByte('{')
		for i, k := range x.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encodeJSON(buf, x.list.Values[i]); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, e); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case float64:
		s, err := formatFloat(x)
		if err != nil {
			return err
		}
		buf.WriteString(s)
	case bool, int, string:
		b, err := json.Marshal(x)
		if err != nil {
			return err
		}
		buf.Write(b)
	default:
		return fmt.Errorf("document: unsupported value of type %T", v)
	}
	return nil
}

// formatFloat formats f in the shortest form that parses back to f,
// adding ".0" to integral values.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("document: unsupported float value %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

// UnmarshalJSON decodes a JSON object into the record, keeping key order.
// Numbers without a fraction or exponent decode as int, others as float64.
// Duplicate keys and null values are errors.
func (r *Record) UnmarshalJSON(data []byte) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	tok, err := d.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("document: expected a JSON object, not %v", tok)
	}
	r.list.Reset()
	if err := decodeObject(d, r); err != nil {
		return err
	}
	if _, err := d.Token(); err != io.EOF {
		return fmt.Errorf("document: unexpected data after top-level object")
	}
	return nil
}

// decodeObject decodes object members after the opening delimiter.
func decodeObject(d *json.Decoder, r *Record) error {
	for d.More() {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		v, err := decodeValue(d)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if err := r.Add(key, v); err != nil {
			return fmt.Errorf("document: duplicate key %q", key)
		}
	}
	_, err := d.Token()
	return err
}

func decodeValue(d *json.Decoder) (any, error) {
	tok, err := d.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			c := NewRecord()
			return c, decodeObject(d, c)
		case '[':
			s := []any{}
			for d.More() {
				e, err := decodeValue(d)
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", len(s), err)
				}
				s = append(s, e)
			}
			_, err := d.Token()
			return s, err
		}
		return nil, fmt.Errorf("document: unexpected delimiter %v", x)
	case json.Number:
		return parseNumber(string(x))
	case bool, string:
		return x, nil
	case nil:
		return nil, fmt.Errorf("document: null values are not supported")
	}
	return nil, fmt.Errorf("document: unexpected token %v", tok)
}

func parseNumber(s string) (any, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
	}
	return strconv.ParseFloat(s, 64)
}
