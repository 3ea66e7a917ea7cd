// SPDX-License-Identifier: MIT

package invcache

import (
	"github.com/apex/log"

	"github.com/katalvlaran/invcache/matrix"
)

const (
	panicNilLogger   = "invcache: WithLogger: logger must be non-nil"
	panicNilInverter = "invcache: WithInverter: inverter must be non-nil"
)

// Option configures a Holder at construction time.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	logger   log.Interface
	inverter matrix.Inverter
}

// WithLogger routes the holder's trace events (cache hit/miss, invalidation)
// and coercion warnings to logger. Default: the apex/log package logger.
func WithLogger(logger log.Interface) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// WithInverter replaces the inversion routine consulted on a cache miss.
// Default: matrix.Inverse.
func WithInverter(inv matrix.Inverter) Option {
	if inv == nil {
		panic(panicNilInverter)
	}

	return func(o *options) { o.inverter = inv }
}

func gatherOptions(user ...Option) options {
	o := options{
		logger:   log.Log,
		inverter: matrix.Inverse,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
