package eval

import (
	"encoding/base64"
	"fmt"
	"math"
	"os"

	"github.com/signadot/arc-format/arc/ir"
)

func builtins() []Handler {
	res := []Handler{
		uintHandler("u8", math.MaxUint8),
		uintHandler("u16", math.MaxUint16),
		uintHandler("u32", math.MaxUint32),
		uintHandler("u64", math.MaxUint64),
		intHandler("i8", math.MinInt8, math.MaxInt8),
		intHandler("i16", math.MinInt16, math.MaxInt16),
		intHandler("i32", math.MinInt32, math.MaxInt32),
		intHandler("i64", math.MinInt64, math.MaxInt64),
		HandlerFunc("f64", toFloat),
		HandlerFunc("str", toString),
		HandlerFunc("b64", fromBase64),
		HandlerFunc("env", fromEnv),
		Expr(),
	}
	return res
}

// plain strips the tag from a handler number or string.
func plain(y *ir.Node) *ir.Node {
	res := y.Clone()
	res.Parent = nil
	res.Tag = ""
	switch y.Type {
	case ir.HandlerNumberType:
		res.Type = ir.NumberType
	case ir.HandlerStringType:
		res.Type = ir.StringType
	}
	return res
}

func wantNumber(y *ir.Node) error {
	if y.Type != ir.HandlerNumberType {
		return fmt.Errorf("want a number, got %s", y.Type)
	}
	return nil
}

func wantString(y *ir.Node) error {
	if y.Type != ir.HandlerStringType {
		return fmt.Errorf("want a string, got %s", y.Type)
	}
	return nil
}

func uintHandler(tag string, max uint64) Handler {
	return HandlerFunc(tag, func(y, _ *ir.Node) (*ir.Node, error) {
		if err := wantNumber(y); err != nil {
			return nil, err
		}
		if y.Uint64 == nil || *y.Uint64 > max {
			return nil, fmt.Errorf("%s out of range for %s", y.NumberText(), tag)
		}
		return plain(y), nil
	})
}

func intHandler(tag string, min, max int64) Handler {
	return HandlerFunc(tag, func(y, _ *ir.Node) (*ir.Node, error) {
		if err := wantNumber(y); err != nil {
			return nil, err
		}
		i, ok := y.Int()
		if !ok || i < min || i > max {
			return nil, fmt.Errorf("%s out of range for %s", y.NumberText(), tag)
		}
		return plain(y), nil
	})
}

func toFloat(y, _ *ir.Node) (*ir.Node, error) {
	if err := wantNumber(y); err != nil {
		return nil, err
	}
	return ir.FromFloat(y.Float())
}

func toString(y, _ *ir.Node) (*ir.Node, error) {
	switch y.Type {
	case ir.HandlerNumberType:
		return ir.FromString(y.NumberText()), nil
	case ir.HandlerStringType:
		return ir.FromString(y.String), nil
	}
	return nil, fmt.Errorf("want a number or string, got %s", y.Type)
}

func fromBase64(y, _ *ir.Node) (*ir.Node, error) {
	if err := wantString(y); err != nil {
		return nil, err
	}
	d, err := base64.StdEncoding.DecodeString(y.String)
	if err != nil {
		return nil, err
	}
	return ir.FromString(string(d)), nil
}

func fromEnv(y, _ *ir.Node) (*ir.Node, error) {
	if err := wantString(y); err != nil {
		return nil, err
	}
	v, ok := os.LookupEnv(y.String)
	if !ok {
		return nil, fmt.Errorf("%s is not set", y.String)
	}
	return ir.FromString(v), nil
}
