package codec

// Option adjusts codec construction. Options only toggle reporting; they
// never change the bijection.
type Option func(*options)

type options struct {
	verbose bool
}

// WithVerbose logs a one-line construction report (run limit, length,
// data width, capacity, rate) through the "hpcodec/codec" logging module.
// Encoding and decoding stay silent regardless.
func WithVerbose() Option {
	return func(o *options) { o.verbose = true }
}
