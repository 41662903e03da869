package collections

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher reduces a key to an integer; tables take it modulo their bucket count.
type Hasher[K any] func(K) uint64

// IntegerHasher hashes integer keys to themselves, so that key k lands in
// bucket k mod n.
func IntegerHasher[K constraints.Integer]() Hasher[K] {
	return func(k K) uint64 {
		return uint64(k)
	}
}

func StringHasher[K ~string]() Hasher[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(string(k))
	}
}

func (h Hasher[K]) index(k K, buckets int) int {
	return int(h(k) % uint64(buckets))
}
