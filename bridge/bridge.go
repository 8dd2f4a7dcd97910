package bridge

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/arc-format/arc/ir"
)

// FromJSON converts a generic JSON tree into a node.  Objects may be
// yaml.MapSlice, whose order is kept, or map[string]any, whose keys are
// sorted.  Numbers may be json.Number or any Go integer or float type.
func FromJSON(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return fromNumber(x)
	case float64:
		return ir.FromFloat(x)
	case float32:
		return ir.FromFloat(float64(x))
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromUint(uint64(x)), nil
	case uint8:
		return ir.FromUint(uint64(x)), nil
	case uint16:
		return ir.FromUint(uint64(x)), nil
	case uint32:
		return ir.FromUint(uint64(x)), nil
	case uint64:
		return ir.FromUint(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			y, err := FromJSON(e)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		res := ir.NewDict()
		for _, item := range x {
			y, err := FromJSON(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(keyString(item.Key), y)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			y, err := FromJSON(e)
			if err != nil {
				return nil, err
			}
			m[k] = y
		}
		return ir.FromMap(m), nil
	case map[string]*ir.Node:
		return ir.FromMap(x), nil
	case *ir.Node:
		return x.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

// fromNumber picks the integer kind the text fits, falling back to a float.
func fromNumber(n json.Number) (*ir.Node, error) {
	s := string(n)
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ir.FromUint(u), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %s: %w", ErrUnsupported, s, err)
	}
	return ir.FromFloat(f)
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	}
	return fmt.Sprint(k)
}

// ToJSON converts y to a generic JSON tree: nil, bool, string, uint64,
// int64, float64, []any and yaml.MapSlice for objects, which keeps field
// order.
func ToJSON(y *ir.Node, opts ...ToOption) (any, error) {
	o := &toOpts{}
	for _, f := range opts {
		f(o)
	}
	return o.toJSON(y, nil)
}

func (o *toOpts) toJSON(y *ir.Node, p ir.KeyPath) (any, error) {
	if y == nil {
		return nil, nil
	}
	switch y.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return y.Bool, nil
	case ir.StringType:
		return y.String, nil
	case ir.NumberType:
		return number(y), nil
	case ir.ListType:
		res := make([]any, 0, len(y.Values))
		for i, v := range y.Values {
			if o.dropped(v) {
				continue
			}
			jv, err := o.toJSON(v, p.Append(ir.Index(i)))
			if err != nil {
				return nil, err
			}
			res = append(res, jv)
		}
		return res, nil
	case ir.DictType:
		return o.object(y, p)
	case ir.FreeDictType:
		if o.freeDicts {
			return o.object(y, p)
		}
	}
	if !o.lossy {
		return nil, &Error{Path: p, Type: y.Type}
	}
	switch y.Type {
	case ir.CiteType:
		return "$" + y.Path.Quoted(), nil
	case ir.CharType:
		return string(y.Char), nil
	case ir.HandlerStringType:
		return y.String, nil
	case ir.HandlerNumberType:
		return number(y), nil
	case ir.RecordType, ir.KeyType:
		return o.toJSON(y.Payload(), p)
	}
	return nil, nil
}

func (o *toOpts) dropped(y *ir.Node) bool {
	return o.lossy && (y.Type == ir.CommentType || y.Type == ir.EmptyLineType)
}

func (o *toOpts) object(y *ir.Node, p ir.KeyPath) (yaml.MapSlice, error) {
	res := make(yaml.MapSlice, 0, len(y.Values))
	for i, v := range y.Values {
		if o.dropped(v) {
			continue
		}
		f := y.Fields[i]
		jv, err := o.toJSON(v, p.Append(ir.Key(f)))
		if err != nil {
			return nil, err
		}
		res = append(res, yaml.MapItem{Key: f, Value: jv})
	}
	return res, nil
}

func number(y *ir.Node) any {
	switch {
	case y.Uint64 != nil:
		return *y.Uint64
	case y.Int64 != nil:
		return *y.Int64
	case y.Float64 != nil:
		return *y.Float64
	}
	return uint64(0)
}

// isFinite reports whether f can be written as a JSON number.
func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
