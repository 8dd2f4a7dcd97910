package grammar

// DefaultMaxDepth bounds the nesting of inline dicts, inline lists and
// block comments.
const DefaultMaxDepth = 256

type opts struct {
	maxDepth int
}

type Option func(*opts)

// MaxDepth sets the nesting limit.  Values below 1 select
// DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *opts) { o.maxDepth = n }
}

func newOpts(options []Option) *opts {
	o := &opts{maxDepth: DefaultMaxDepth}
	for _, f := range options {
		f(o)
	}
	if o.maxDepth < 1 {
		o.maxDepth = DefaultMaxDepth
	}
	return o
}
