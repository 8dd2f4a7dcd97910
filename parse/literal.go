package parse

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/signadot/arc-format/arc/grammar"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/token"
)

// number is a parsed numeric literal before tagging: an integer given as
// sign and magnitude, or a float.
type number struct {
	neg     bool
	mag     uint64
	isFloat bool
	f       float64
}

func (n number) node() (*ir.Node, error) {
	if n.isFloat {
		return ir.FromFloat(n.f)
	}
	if !n.neg || n.mag == 0 {
		return ir.FromUint(n.mag), nil
	}
	if n.mag > 1<<63 {
		return nil, fmt.Errorf("%w: -%d", ErrOverflow, n.mag)
	}
	return ir.FromInt(int64(-n.mag)), nil
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	f := float64(n.mag)
	if n.neg {
		f = -f
	}
	return f
}

func (b *builder) number(n *grammar.Node) (*ir.Node, error) {
	var (
		num number
		err error
		tag string
	)
	for _, c := range n.Children {
		switch c.Rule {
		case grammar.Exponent:
			num, err = b.exponent(c)
		case grammar.SignedNumber:
			num, err = b.signedNumber(c)
		case grammar.Symbol:
			tag = b.text(c)
		}
		if err != nil {
			return nil, err
		}
	}
	res, err := num.node()
	if err != nil {
		return nil, b.literalErr(n, err)
	}
	if tag != "" {
		res = ir.FromHandlerNumber(tag, res)
	}
	return res, nil
}

func (b *builder) signedNumber(n *grammar.Node) (number, error) {
	var num number
	for _, c := range n.Children {
		switch c.Rule {
		case grammar.Sign:
			num.neg = b.text(c) == "-"
		case grammar.Integer:
			mag, err := parseUint(b.text(c), 10)
			if err != nil {
				return num, b.literalErr(c, err)
			}
			num.mag = mag
		case grammar.Decimal, grammar.DecimalBad:
			txt := strings.ReplaceAll(b.text(c), "_", "")
			if strings.HasPrefix(txt, ".") {
				txt = "0" + txt
			}
			if strings.HasSuffix(txt, ".") {
				txt += "0"
			}
			f, err := strconv.ParseFloat(txt, 64)
			if err != nil {
				return num, b.literalErr(c, rangeErr(err))
			}
			num.isFloat = true
			num.f = f
		}
	}
	if num.isFloat && num.neg {
		num.f = -num.f
	}
	return num, nil
}

// exponent handles both scientific notation (1e3) and powers (2**8).
// Powers of integers by non-negative integers stay integers.
func (b *builder) exponent(n *grammar.Node) (number, error) {
	sn := n.Child(grammar.SignedNumber)
	base, err := b.signedNumber(sn)
	if err != nil {
		return base, err
	}
	rest := string(b.src[sn.End:n.End])
	power := strings.HasPrefix(rest, "**")
	if power {
		rest = rest[2:]
	} else {
		rest = rest[1:]
	}
	if !power {
		mant := strings.ReplaceAll(b.text(sn), "_", "")
		f, err := strconv.ParseFloat(mant+"e"+rest, 64)
		if err != nil {
			return base, b.literalErr(n, rangeErr(err))
		}
		return number{isFloat: true, f: f}, nil
	}
	expNeg := strings.HasPrefix(rest, "-")
	exp, err := parseUint(strings.TrimLeft(rest, "+-"), 10)
	if err != nil {
		if !base.isFloat && !expNeg {
			return base, b.literalErr(n, err)
		}
		exp = math.MaxUint64
	}
	if !base.isFloat && !expNeg {
		mag, ok := powUint(base.mag, exp)
		if !ok {
			return base, b.literalErr(n, fmt.Errorf("%w: %s", ErrOverflow, b.text(n)))
		}
		return number{neg: base.neg && exp%2 == 1, mag: mag}, nil
	}
	e := float64(exp)
	if expNeg {
		e = -e
	}
	f := math.Pow(base.float(), e)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return base, b.literalErr(n, fmt.Errorf("%w: %s", ErrOverflow, b.text(n)))
	}
	return number{isFloat: true, f: f}, nil
}

func powUint(base, exp uint64) (uint64, bool) {
	res := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			hi, lo := bits.Mul64(res, base)
			if hi != 0 {
				return 0, false
			}
			res = lo
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		hi, lo := bits.Mul64(base, base)
		if hi != 0 {
			return 0, false
		}
		base = lo
	}
	return res, true
}

func (b *builder) byteLit(n *grammar.Node) (*ir.Node, error) {
	var (
		res *ir.Node
		tag string
	)
	for _, c := range n.Children {
		base := 0
		switch c.Rule {
		case grammar.ByteBin:
			base = 2
		case grammar.ByteOct:
			base = 8
		case grammar.ByteHex:
			base = 16
		case grammar.Symbol:
			tag = b.text(c)
		}
		if base == 0 {
			continue
		}
		v, err := parseUint(b.text(c)[2:], base)
		if err != nil {
			return nil, b.literalErr(c, err)
		}
		res = ir.FromUint(v)
	}
	if tag != "" {
		res = ir.FromHandlerNumber(tag, res)
	}
	return res, nil
}

func parseUint(s string, base int) (uint64, error) {
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), base, 64)
	if err != nil {
		return 0, rangeErr(err)
	}
	return v, nil
}

func rangeErr(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return err
}

func (b *builder) special(n *grammar.Node) *ir.Node {
	switch b.text(n) {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	return ir.Null()
}

// stringBody returns the unescaped content of a StringNormal node.
func (b *builder) stringBody(n *grammar.Node) string {
	for _, c := range n.Children {
		if c.Rule == grammar.StringQuotation || c.Rule == grammar.StringApostrophe {
			return token.Unescape(b.text(c))
		}
	}
	return ""
}

func (b *builder) stringLit(n *grammar.Node) *ir.Node {
	var tag, body string
	for _, c := range n.Children {
		switch c.Rule {
		case grammar.Symbol:
			tag = b.text(c)
		case grammar.StringNormal:
			body = b.stringBody(c)
		case grammar.LineComment, grammar.MultiLineComment:
			b.comment(c)
		}
	}
	if tag != "" {
		return ir.FromHandlerString(tag, body)
	}
	return ir.FromString(body)
}

// keyPath converts a namespace into a path.  Integer keys become indexes;
// quoted and symbol keys are dict keys.
func (b *builder) keyPath(n *grammar.Node) (ir.KeyPath, error) {
	var res ir.KeyPath
	for _, c := range n.Children {
		switch c.Rule {
		case grammar.Key:
			k := c.Children[0]
			switch k.Rule {
			case grammar.StringNormal:
				res = append(res, ir.Key(b.stringBody(k)))
			case grammar.Symbol:
				res = append(res, ir.Key(b.text(k)))
			case grammar.Integer:
				v, err := parseUint(b.text(k), 10)
				if err != nil || v > math.MaxInt {
					return nil, b.literalErr(k, fmt.Errorf("%w: index %s", ErrOverflow, b.text(k)))
				}
				res = append(res, ir.Index(int(v)))
			}
		case grammar.LineComment, grammar.MultiLineComment:
			b.comment(c)
		}
	}
	return res, nil
}
