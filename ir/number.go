package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func FromUint(v uint64) *Node {
	return &Node{
		Type:   NumberType,
		Uint64: &v,
	}
}

// FromInt stores non-negative values as unsigned.
func FromInt(v int64) *Node {
	if v >= 0 {
		return FromUint(uint64(v))
	}
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

// FromFloat builds a float number.  NaN and infinities have no arc form
// and are rejected.
func FromFloat(f float64) (*Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNotFinite, f)
	}
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}, nil
}

// IsNumeric reports whether y carries a number payload.
func (y *Node) IsNumeric() bool {
	return y.Type == NumberType || y.Type == HandlerNumberType
}

func (y *Node) IsInt() bool {
	return y.IsNumeric() && (y.Uint64 != nil || y.Int64 != nil)
}

func (y *Node) IsFloat() bool {
	return y.IsNumeric() && y.Float64 != nil
}

// Float returns the number as a float64, possibly losing precision.
func (y *Node) Float() float64 {
	switch {
	case y.Uint64 != nil:
		return float64(*y.Uint64)
	case y.Int64 != nil:
		return float64(*y.Int64)
	case y.Float64 != nil:
		return *y.Float64
	}
	return 0
}

// Int returns the number as an int64 when it is an integer in range.
func (y *Node) Int() (int64, bool) {
	switch {
	case y.Uint64 != nil:
		if *y.Uint64 > math.MaxInt64 {
			return 0, false
		}
		return int64(*y.Uint64), true
	case y.Int64 != nil:
		return *y.Int64, true
	}
	return 0, false
}

// NumberText is the canonical decimal text of the number payload.  Floats
// always contain a '.' so they read back as floats.
func (y *Node) NumberText() string {
	switch {
	case y.Uint64 != nil:
		return strconv.FormatUint(*y.Uint64, 10)
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return FormatFloat(*y.Float64)
	}
	return "0"
}

func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
