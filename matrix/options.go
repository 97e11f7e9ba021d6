// SPDX-License-Identifier: MIT

package matrix

// DefaultValidateNaNInf is the numeric policy of a matrix built without options:
// non-finite values are refused.
const DefaultValidateNaNInf = true

// Option mutates construction-time Options.
type Option func(*Options)

// Options is the resolved matrix configuration.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf rejects NaN and ±Inf on ingestion and Set. This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts NaN and ±Inf. Measures that need finite
// input still refuse such a matrix at run time (see ValidateFinite).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves opts over the documented defaults, left to right.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
