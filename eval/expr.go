package eval

import (
	"fmt"
	"os"

	"github.com/signadot/arc-format/arc/bridge"
	"github.com/signadot/arc-format/arc/debug"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/parse"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
)

const exprName name = "expr"

// Expr returns the handler for expr"..." strings, which evaluate their
// text as an expression.  The result is converted back to a value.
func Expr() Handler {
	return exprHandler{exprName}
}

type exprHandler struct {
	name
}

func (h exprHandler) Handle(y, doc *ir.Node) (*ir.Node, error) {
	if err := wantString(y); err != nil {
		return nil, err
	}
	prg, err := expr.Compile(y.String, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	return run(prg, map[string]any{})
}

// NewExprHandler returns a handler for tag evaluating code with the
// tagged payload bound to value and the tag to tag.
func NewExprHandler(tag, code string) (Handler, error) {
	if _, err := expr.Compile(code, exprOpts(nil)...); err != nil {
		return nil, fmt.Errorf("compiling %s handler: %w", tag, err)
	}
	return HandlerFunc(tag, func(y, doc *ir.Node) (*ir.Node, error) {
		if debug.Eval() {
			debug.Logf("%s handler on %s\n", tag, y)
		}
		prg, err := expr.Compile(code, exprOpts(doc)...)
		if err != nil {
			return nil, err
		}
		v, err := exprValue(plain(y))
		if err != nil {
			return nil, err
		}
		return run(prg, map[string]any{"value": v, "tag": tag})
	}), nil
}

// RegisterExpr registers a handler built by NewExprHandler.
func (r *Registry) RegisterExpr(tag, code string) error {
	h, err := NewExprHandler(tag, code)
	if err != nil {
		return err
	}
	return r.Register(h)
}

func run(prg *vm.Program, env map[string]any) (*ir.Node, error) {
	res, err := vm.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.LogAny(res)
	}
	if y, ok := res.(*ir.Node); ok {
		if y == nil {
			return ir.Null(), nil
		}
		return y.Clone(), nil
	}
	return bridge.FromJSON(res)
}

// exprValue converts y for use in expressions, with dicts as maps.
func exprValue(y *ir.Node) (any, error) {
	v, err := bridge.ToJSON(y, bridge.Lossy())
	if err != nil {
		return nil, err
	}
	return unorder(v), nil
}

func unorder(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(x))
		for _, item := range x {
			m[fmt.Sprint(item.Key)] = unorder(item.Value)
		}
		return m
	case []any:
		for i := range x {
			x[i] = unorder(x[i])
		}
	}
	return v
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			if doc == nil {
				return nil, fmt.Errorf("getpath: no document")
			}
			p, err := parse.ParseKeyPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			res, ok := doc.Root().GetPath(p)
			if !ok {
				return nil, fmt.Errorf("getpath: no value at %s", p.Quoted())
			}
			return exprValue(res)
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
