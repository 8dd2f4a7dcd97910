package bridge

import (
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/arc-format/arc/ir"
)

// Patch applies an RFC 6902 JSON patch to y and returns the result.
// Objects in the result have their fields sorted.
func Patch(y *ir.Node, patch []byte, opts ...ToOption) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := MarshalJSON(y, opts...)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(out)
}

// MergePatch applies an RFC 7386 merge patch to y.
func MergePatch(y *ir.Node, patch []byte, opts ...ToOption) (*ir.Node, error) {
	d, err := MarshalJSON(y, opts...)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(out)
}
