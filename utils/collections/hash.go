package collections

import "fmt"

// Hash is an associative container keyed by K.
//
// Insert has upsert semantics: inserting an existing key replaces its value
// and leaves Size unchanged. Lookup and Erase report ErrKeyNotFound for
// absent keys. Implementations are not safe for concurrent use.
type Hash[K comparable, V any] interface {
	Size() int
	Lookup(k K) (V, error)
	Contains(k K) bool
	Insert(e Entry[K, V]) error
	Erase(k K) error
	Clear()
	BucketCount() int
	LoadFactor() float64
}

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func NewEntry[K comparable, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Value: v}
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v,%v)", e.Key, e.Value)
}

// EntryState tracks lazy deletion of a probing table slot.
type EntryState uint8

const (
	Empty EntryState = iota
	Valid
	Deleted
)

func (s EntryState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Valid:
		return "valid"
	case Deleted:
		return "deleted"
	default:
		return fmt.Sprintf("EntryState(%d)", uint8(s))
	}
}
