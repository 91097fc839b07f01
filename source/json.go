// Package source decodes JSON and YAML documents into order-preserving
// tree values and encodes them back.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/schemawalk/tree"
)

var (
	// ErrEmpty is returned when the input holds no document.
	ErrEmpty = errors.New("source: empty input")
	// ErrTrailingData is returned when a JSON value is followed by more input.
	ErrTrailingData = errors.New("source: trailing data after JSON value")
)

// JSON decodes a single JSON value, keeping object key order. Duplicate keys
// are rejected.
func JSON(data []byte) (tree.Value, error) { return JSONReader(bytes.NewReader(data)) }

// JSONReader is JSON for an io.Reader.
func JSONReader(r io.Reader) (tree.Value, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	d := &jsonDecoder{dec: dec}
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	v, err := d.value(tok, nil)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

type jsonDecoder struct {
	dec *j.Decoder
}

func (d *jsonDecoder) value(tok any, path []string) (tree.Value, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return d.object(path)
		case '[':
			return d.array(path)
		}
		return nil, fmt.Errorf("source: unexpected %q", rune(v))
	case string:
		return tree.String(v), nil
	case bool:
		return tree.Bool(v), nil
	case j.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("source: number %q: %w", string(v), err)
		}
		return tree.Number(f), nil
	case float64:
		return tree.Number(v), nil
	case nil:
		return tree.Null{}, nil
	}
	return nil, fmt.Errorf("source: unexpected token %T", tok)
}

func (d *jsonDecoder) object(path []string) (tree.Value, error) {
	o := tree.NewObject()
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if delim, ok := tok.(j.Delim); ok && delim == '}' {
			return o, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("source: expected object key, got %v", tok)
		}
		if o.Has(key) {
			return nil, &DuplicateKeyError{Key: key, Path: append(append([]string(nil), path...), key)}
		}
		vt, err := d.dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		v, err := d.value(vt, append(path, key))
		if err != nil {
			return nil, err
		}
		o.Set(key, v)
	}
}

func (d *jsonDecoder) array(path []string) (tree.Value, error) {
	arr := tree.Array{}
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if delim, ok := tok.(j.Delim); ok && delim == ']' {
			return arr, nil
		}
		v, err := d.value(tok, append(path, fmt.Sprint(len(arr))))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
