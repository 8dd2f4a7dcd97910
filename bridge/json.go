package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/arc-format/arc/ir"
)

// DecodeJSON parses JSON text into a node, keeping object field order.
func DecodeJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrUnsupported)
	}
	return FromJSON(v)
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '[':
		res := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		_, err := dec.Token()
		return res, err
	case '{':
		res := yaml.MapSlice{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: kt.(string), Value: v})
		}
		_, err := dec.Token()
		return res, err
	}
	return nil, fmt.Errorf("unexpected %v", d)
}

// MarshalJSON encodes y as compact JSON with object fields in order.
func MarshalJSON(y *ir.Node, opts ...ToOption) ([]byte, error) {
	v, err := ToJSON(y, opts...)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSONIndent is MarshalJSON with each element on its own line.
func MarshalJSONIndent(y *ir.Node, indent string, opts ...ToOption) ([]byte, error) {
	d, err := MarshalJSON(y, opts...)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, d, "", indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(w *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case yaml.MapSlice:
		w.WriteByte('{')
		for i, item := range x {
			if i > 0 {
				w.WriteByte(',')
			}
			k, err := json.Marshal(keyString(item.Key))
			if err != nil {
				return err
			}
			w.Write(k)
			w.WriteByte(':')
			if err := writeJSON(w, item.Value); err != nil {
				return err
			}
		}
		w.WriteByte('}')
		return nil
	case []any:
		w.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				w.WriteByte(',')
			}
			if err := writeJSON(w, e); err != nil {
				return err
			}
		}
		w.WriteByte(']')
		return nil
	case float64:
		if !isFinite(x) {
			return fmt.Errorf("%w: %v", ir.ErrNotFinite, x)
		}
		w.WriteString(ir.FormatFloat(x))
		return nil
	case uint64:
		w.WriteString(strconv.FormatUint(x, 10))
		return nil
	case int64:
		w.WriteString(strconv.FormatInt(x, 10))
		return nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Write(d)
	return nil
}
