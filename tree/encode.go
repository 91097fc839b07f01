package tree

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Encode renders v as compact JSON, keeping object key order. Undefined
// renders as null.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeIndent renders v as indented JSON.
func EncodeIndent(v Value, prefix, indent string) ([]byte, error) {
	raw, err := Encode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Object) MarshalJSON() ([]byte, error) { return Encode(o) }
func (a Array) MarshalJSON() ([]byte, error)   { return Encode(a) }
func (Null) MarshalJSON() ([]byte, error)      { return []byte("null"), nil }

func writeValue(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case Bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		b, err := json.Marshal(float64(t))
		if err != nil {
			return err
		}
		buf.Write(b)
	case String:
		b, err := json.Marshal(string(t))
		if err != nil {
			return err
		}
		buf.Write(b)
	case Array:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Object:
		buf.WriteByte('{')
		var err error
		i := 0
		t.Range(func(k string, child Value) bool {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			var kb []byte
			if kb, err = json.Marshal(k); err != nil {
				return false
			}
			buf.Write(kb)
			buf.WriteByte(':')
			err = writeValue(buf, child)
			return err == nil
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	}
	return nil
}
