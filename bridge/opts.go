package bridge

type toOpts struct {
	freeDicts bool
	lossy     bool
}

type ToOption func(*toOpts)

// FreeDicts maps free dicts to objects like dicts.  Without it they are
// unrepresentable like the other extended variants.
func FreeDicts() ToOption {
	return func(o *toOpts) { o.freeDicts = true }
}

// Lossy maps every variant to something: cites become "$path" strings,
// handler strings and numbers drop their tag, records and keys stand for
// their payload and comments are dropped.  Lossy implies FreeDicts.
func Lossy() ToOption {
	return func(o *toOpts) {
		o.lossy = true
		o.freeDicts = true
	}
}
