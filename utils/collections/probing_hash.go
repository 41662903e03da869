package collections

import (
	"math"

	umath "github.com/tuannh982/hashtable/utils/math"

	log "github.com/sirupsen/logrus"
)

// ProbingHash resolves collisions by linear probing over two parallel slot
// arrays. Erased slots become tombstones so that probe runs passing through
// them stay intact; tombstones are reused by later inserts and dropped when
// the table is rebuilt. NewProbingHash returns it behind Hash; a type
// assertion reaches the Tombstones, StateAt and IndexOf introspection helpers.
type ProbingHash[K comparable, V any] struct {
	entries           []Entry[K, V]
	states            []EntryState
	size              int
	tombstones        int
	buckets           int
	maxLoadFactor     float64
	fixedCapacity     bool
	maxTombstoneRatio float64
	hasher            Hasher[K]
	log               *log.Entry
}

func NewProbingHash[K comparable, V any](hasher Hasher[K], opts ...Option) (Hash[K, V], error) {
	h, err := newProbingHash[K, V](hasher, opts...)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func newProbingHash[K comparable, V any](hasher Hasher[K], opts ...Option) (*ProbingHash[K, V], error) {
	if hasher == nil {
		return nil, ErrNilHasher
	}
	o, err := buildOptions("probing", 1, opts)
	if err != nil {
		return nil, err
	}
	return &ProbingHash[K, V]{
		entries:           make([]Entry[K, V], o.capacity),
		states:            make([]EntryState, o.capacity),
		buckets:           o.capacity,
		maxLoadFactor:     o.maxLoadFactor,
		fixedCapacity:     o.fixedCapacity,
		maxTombstoneRatio: o.maxTombstoneRatio,
		hasher:            hasher,
		log:               o.log,
	}, nil
}

func (h *ProbingHash[K, V]) Size() int {
	return h.size
}

func (h *ProbingHash[K, V]) Lookup(k K) (v V, err error) {
	if i := h.findOccupiedMatch(k); i >= 0 {
		return h.entries[i].Value, nil
	}
	return v, ErrKeyNotFound
}

func (h *ProbingHash[K, V]) Contains(k K) bool {
	return h.findOccupiedMatch(k) >= 0
}

func (h *ProbingHash[K, V]) Insert(e Entry[K, V]) error {
	if i := h.findOccupiedMatch(e.Key); i >= 0 {
		h.entries[i] = e
		return nil
	}
	i := h.findInsertionSlot(e.Key)
	if i < 0 {
		if h.fixedCapacity {
			h.log.WithField("key", e.Key).Warn("no free slot")
			return ErrCapacityExhausted
		}
		h.grow()
		i = h.findInsertionSlot(e.Key)
	}
	if h.states[i] == Deleted {
		h.tombstones--
	}
	h.entries[i] = e
	h.states[i] = Valid
	h.size++
	for !h.fixedCapacity && h.LoadFactor() > h.maxLoadFactor {
		h.grow()
	}
	return nil
}

func (h *ProbingHash[K, V]) Erase(k K) error {
	i := h.findOccupiedMatch(k)
	if i < 0 {
		return ErrKeyNotFound
	}
	h.entries[i] = Entry[K, V]{}
	h.states[i] = Deleted
	h.size--
	h.tombstones++
	if h.maxTombstoneRatio > 0 && float64(h.tombstones) >= math.Ceil(h.maxTombstoneRatio*float64(h.buckets)) {
		h.log.WithFields(log.Fields{
			"buckets":    h.buckets,
			"tombstones": h.tombstones,
		}).Debug("compact")
		h.rehash(h.buckets)
	}
	return nil
}

func (h *ProbingHash[K, V]) Clear() {
	for i := range h.states {
		h.entries[i] = Entry[K, V]{}
		h.states[i] = Empty
	}
	h.size = 0
	h.tombstones = 0
	h.log.WithField("buckets", h.buckets).Debug("table cleared")
}

func (h *ProbingHash[K, V]) BucketCount() int {
	return h.buckets
}

func (h *ProbingHash[K, V]) LoadFactor() float64 {
	return float64(h.size) / float64(h.buckets)
}

// Tombstones returns the number of Deleted slots.
func (h *ProbingHash[K, V]) Tombstones() int {
	return h.tombstones
}

func (h *ProbingHash[K, V]) StateAt(i int) EntryState {
	return h.states[i]
}

// IndexOf returns the slot holding k, or -1.
func (h *ProbingHash[K, V]) IndexOf(k K) int {
	return h.findOccupiedMatch(k)
}

// findOccupiedMatch walks the probe run of k. A key is never stored past an
// Empty slot of its run, because erase leaves Deleted rather than Empty, so
// the walk ends at the first Empty slot or after a full cycle.
func (h *ProbingHash[K, V]) findOccupiedMatch(k K) int {
	start := h.hasher.index(k, h.buckets)
	for i := 0; i < h.buckets; i++ {
		index := (start + i) % h.buckets
		switch h.states[index] {
		case Empty:
			return -1
		case Valid:
			if h.entries[index].Key == k {
				return index
			}
		}
	}
	return -1
}

func (h *ProbingHash[K, V]) findInsertionSlot(k K) int {
	start := h.hasher.index(k, h.buckets)
	for i := 0; i < h.buckets; i++ {
		index := (start + i) % h.buckets
		if h.states[index] != Valid {
			return index
		}
	}
	return -1
}

func (h *ProbingHash[K, V]) grow() {
	buckets := umath.NextPrime(h.buckets * 2)
	h.log.WithFields(log.Fields{
		"from": h.buckets,
		"to":   buckets,
		"size": h.size,
	}).Debug("rehash")
	h.rehash(buckets)
}

// rehash re-probes every Valid entry into fresh arrays of the given size.
func (h *ProbingHash[K, V]) rehash(buckets int) {
	entries := make([]Entry[K, V], buckets)
	states := make([]EntryState, buckets)
	for i, state := range h.states {
		if state != Valid {
			continue
		}
		index := h.hasher.index(h.entries[i].Key, buckets)
		for states[index] == Valid {
			index = (index + 1) % buckets
		}
		entries[index] = h.entries[i]
		states[index] = Valid
	}
	h.entries = entries
	h.states = states
	h.buckets = buckets
	h.tombstones = 0
}
