package dynamic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FromJSONBytes decodes a JSON document and performs the structural clone
// described in spec §4.1: objects become insertion-ordered Maps (in source
// order — decoding through json.Token rather than into map[string]any,
// whose Go map has no stable iteration order), arrays become shared
// Arrays, and numbers are disambiguated into Int vs Float by the same rule
// the grammar uses for number literals (presence of '.', 'e' or 'E').
func FromJSONBytes(data []byte) (Dynamic, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return Dynamic{}, fmt.Errorf("dynamic: decode json: %w", err)
	}
	return v, nil
}

// FromJSON converts an already-decoded JSON value (as produced by
// json.Unmarshal into `any`) into a Dynamic. Object key order is whatever
// Go's map iteration happens to produce for map[string]any inputs — callers
// that need source order should use FromJSONBytes instead.
func FromJSON(v any) Dynamic {
	switch x := v.(type) {
	case nil:
		return Null
	case bool:
		return Bool(x)
	case json.Number:
		return numberFromJSONNumber(x)
	case float64:
		return numberFromFloatLiteral(x)
	case string:
		return String(x)
	case []any:
		items := make([]Dynamic, len(x))
		for i, e := range x {
			items[i] = FromJSON(e)
		}
		return FromArray(NewArray(items...))
	case map[string]any:
		m := NewMap()
		for k, e := range x {
			m.Set(k, FromJSON(e))
		}
		return FromObject(m)
	default:
		return Null
	}
}

func decodeJSONValue(dec *json.Decoder) (Dynamic, error) {
	tok, err := dec.Token()
	if err != nil {
		return Dynamic{}, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (Dynamic, error) {
	switch t := tok.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return numberFromJSONNumber(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			var items []Dynamic
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return Dynamic{}, err
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Dynamic{}, err
			}
			return FromArray(NewArray(items...)), nil
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Dynamic{}, err
				}
				key, _ := keyTok.(string)
				v, err := decodeJSONValue(dec)
				if err != nil {
					return Dynamic{}, err
				}
				m.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Dynamic{}, err
			}
			return FromObject(m), nil
		}
	}
	return Dynamic{}, fmt.Errorf("dynamic: unexpected json token %v", tok)
}

func numberFromJSONNumber(n json.Number) Dynamic {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		if f, err := n.Float64(); err == nil {
			return Float(f)
		}
	}
	if i, err := n.Int64(); err == nil {
		return Int(i)
	}
	f, _ := n.Float64()
	return Float(f)
}

// numberFromFloatLiteral is used only by FromJSON's map[string]any/[]any
// path, where the stdlib has already collapsed every number to float64
// before we ever see it; there is no source text left to disambiguate
// Int vs Float from, so it is always treated as a Float.
func numberFromFloatLiteral(f float64) Dynamic {
	return Float(f)
}
