package eval

type evalOpts struct {
	strict     bool
	noCites    bool
	noHandlers bool
	registry   *Registry
}

type Option func(*evalOpts)

// Strict makes tags without a registered handler an error.
func Strict() Option {
	return func(o *evalOpts) { o.strict = true }
}

// NoCites leaves cites in place.
func NoCites() Option {
	return func(o *evalOpts) { o.noCites = true }
}

// NoHandlers leaves tagged strings and numbers in place.
func NoHandlers() Option {
	return func(o *evalOpts) { o.noHandlers = true }
}

// WithRegistry sets the handlers used.  The default is DefaultRegistry().
func WithRegistry(r *Registry) Option {
	return func(o *evalOpts) { o.registry = r }
}
