package dynamic

import (
	"bytes"
	"encoding/json"
)

// ToJSON renders v as a JSON document, preserving Object field order (spec
// §3's "Objects preserve insertion order") the way FromJSONBytes preserves
// it on the way in: a plain json.Marshal of a map[string]any would lose
// that order, so object fields are written out field-by-field instead.
func ToJSON(v Dynamic) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Dynamic) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
		return nil
	case KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case KindNumber:
		n, _ := v.AsNumber()
		if i, ok := n.Int(); ok {
			data, err := json.Marshal(i)
			if err != nil {
				return err
			}
			buf.Write(data)
			return nil
		}
		f, _ := n.Float()
		data, err := json.Marshal(f)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	case KindString:
		s, _ := v.AsString()
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	case KindArray:
		arr, _ := v.AsArray()
		buf.WriteByte('[')
		for i := 0; i < arr.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			item, _, _ := arr.Get(uint64(i))
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindObject:
		obj, _ := v.AsObject()
		buf.WriteByte('{')
		for i, name := range obj.Fields() {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(name)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, _ := obj.Get(name)
			if err := writeJSON(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		buf.WriteString("null")
		return nil
	}
}
