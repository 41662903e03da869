package collections

import "errors"

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrCapacityExhausted = errors.New("capacity exhausted")
	ErrInvalidCapacity   = errors.New("invalid capacity")
	ErrInvalidLoadFactor = errors.New("invalid load factor")
	ErrInvalidRatio      = errors.New("invalid tombstone ratio")
	ErrNilHasher         = errors.New("nil hasher")
)
