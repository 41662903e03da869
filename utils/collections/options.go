package collections

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultCapacity          = 101
	DefaultMaxLoadFactor     = 0.75
	DefaultMaxTombstoneRatio = 0.25
)

type Option func(*options)

type options struct {
	capacity          int
	maxLoadFactor     float64
	fixedCapacity     bool
	maxTombstoneRatio float64
	log               *log.Entry
}

func defaultOptions(table string) *options {
	return &options{
		capacity:          DefaultCapacity,
		maxLoadFactor:     DefaultMaxLoadFactor,
		maxTombstoneRatio: DefaultMaxTombstoneRatio,
		log:               log.WithFields(log.Fields{"table": table}),
	}
}

// WithCapacity sets the initial bucket count. A prime keeps the modulus
// distribution even, but any positive value is accepted.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaxLoadFactor sets the load factor above which an insert grows the table.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) {
		o.maxLoadFactor = f
	}
}

// WithFixedCapacity disables growth.
func WithFixedCapacity() Option {
	return func(o *options) {
		o.fixedCapacity = true
	}
}

// WithMaxTombstoneRatio sets the share of deleted slots at which a probing
// table is rebuilt in place. Zero or less disables compaction; NaN and values
// above 1 are rejected. Ignored by chaining tables.
func WithMaxTombstoneRatio(f float64) Option {
	return func(o *options) {
		o.maxTombstoneRatio = f
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		if logger != nil {
			o.log = logger
		}
	}
}

func buildOptions(table string, maxLoadFactorCap float64, opts []Option) (*options, error) {
	o := defaultOptions(table)
	for _, opt := range opts {
		opt(o)
	}
	if o.capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, o.capacity)
	}
	if !(o.maxLoadFactor > 0 && o.maxLoadFactor <= maxLoadFactorCap) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLoadFactor, o.maxLoadFactor)
	}
	if math.IsNaN(o.maxTombstoneRatio) || o.maxTombstoneRatio > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRatio, o.maxTombstoneRatio)
	}
	return o, nil
}
