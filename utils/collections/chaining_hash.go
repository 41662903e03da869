package collections

import (
	"math"

	umath "github.com/tuannh982/hashtable/utils/math"

	log "github.com/sirupsen/logrus"
)

// ChainingHash resolves collisions by separate chaining: bucket i holds every
// entry whose key hashes to i. NewChainingHash returns it behind Hash; a type
// assertion reaches the ChainLength introspection helper.
type ChainingHash[K comparable, V any] struct {
	table         [][]Entry[K, V]
	size          int
	buckets       int
	maxLoadFactor float64
	fixedCapacity bool
	hasher        Hasher[K]
	log           *log.Entry
}

func NewChainingHash[K comparable, V any](hasher Hasher[K], opts ...Option) (Hash[K, V], error) {
	h, err := newChainingHash[K, V](hasher, opts...)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func newChainingHash[K comparable, V any](hasher Hasher[K], opts ...Option) (*ChainingHash[K, V], error) {
	if hasher == nil {
		return nil, ErrNilHasher
	}
	o, err := buildOptions("chaining", math.MaxFloat64, opts)
	if err != nil {
		return nil, err
	}
	return &ChainingHash[K, V]{
		table:         make([][]Entry[K, V], o.capacity),
		buckets:       o.capacity,
		maxLoadFactor: o.maxLoadFactor,
		fixedCapacity: o.fixedCapacity,
		hasher:        hasher,
		log:           o.log,
	}, nil
}

func (h *ChainingHash[K, V]) Size() int {
	return h.size
}

func (h *ChainingHash[K, V]) Lookup(k K) (v V, err error) {
	bucket := h.table[h.hasher.index(k, h.buckets)]
	if i := lookup(k, bucket); i >= 0 {
		return bucket[i].Value, nil
	}
	return v, ErrKeyNotFound
}

func (h *ChainingHash[K, V]) Contains(k K) bool {
	return lookup(k, h.table[h.hasher.index(k, h.buckets)]) >= 0
}

func (h *ChainingHash[K, V]) Insert(e Entry[K, V]) error {
	index := h.hasher.index(e.Key, h.buckets)
	if i := lookup(e.Key, h.table[index]); i >= 0 {
		h.table[index][i].Value = e.Value
		return nil
	}
	h.table[index] = append(h.table[index], e)
	h.size++
	for !h.fixedCapacity && h.LoadFactor() > h.maxLoadFactor {
		h.rehash()
	}
	return nil
}

func (h *ChainingHash[K, V]) Erase(k K) error {
	index := h.hasher.index(k, h.buckets)
	bucket := h.table[index]
	i := lookup(k, bucket)
	if i < 0 {
		return ErrKeyNotFound
	}
	last := len(bucket) - 1
	bucket[i] = bucket[last]
	bucket[last] = Entry[K, V]{}
	if last == 0 {
		h.table[index] = nil
	} else {
		h.table[index] = bucket[:last]
	}
	h.size--
	return nil
}

func (h *ChainingHash[K, V]) Clear() {
	h.table = make([][]Entry[K, V], h.buckets)
	h.size = 0
	h.log.WithField("buckets", h.buckets).Debug("table cleared")
}

func (h *ChainingHash[K, V]) BucketCount() int {
	return h.buckets
}

func (h *ChainingHash[K, V]) LoadFactor() float64 {
	return float64(h.size) / float64(h.buckets)
}

// ChainLength returns the number of entries stored in bucket i.
func (h *ChainingHash[K, V]) ChainLength(i int) int {
	return len(h.table[i])
}

func (h *ChainingHash[K, V]) rehash() {
	buckets := umath.NextPrime(h.buckets * 2)
	table := make([][]Entry[K, V], buckets)
	for _, bucket := range h.table {
		for _, e := range bucket {
			index := h.hasher.index(e.Key, buckets)
			table[index] = append(table[index], e)
		}
	}
	h.log.WithFields(log.Fields{
		"from": h.buckets,
		"to":   buckets,
		"size": h.size,
	}).Debug("rehash")
	h.table = table
	h.buckets = buckets
}

func lookup[K comparable, V any](k K, bucket []Entry[K, V]) int {
	for i, e := range bucket {
		if e.Key == k {
			return i
		}
	}
	return -1
}
