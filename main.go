package main

import (
	"errors"
	"fmt"

	"github.com/tuannh982/hashtable/utils/collections"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(log.DebugLevel)
	tables := make(map[string]collections.Hash[int, string])
	for _, kind := range []string{"chaining", "probing"} {
		h, err := newTable(kind)
		if err != nil {
			log.WithError(err).Fatal("could not create table")
		}
		tables[kind] = h
	}
	for _, kind := range []string{"chaining", "probing"} {
		run(log.WithField("table", kind), tables[kind])
	}
}

func newTable(kind string) (collections.Hash[int, string], error) {
	logger := log.WithFields(log.Fields{"table": kind})
	hasher := collections.IntegerHasher[int]()
	switch kind {
	case "chaining":
		return collections.NewChainingHash[int, string](hasher, collections.WithLogger(logger))
	case "probing":
		return collections.NewProbingHash[int, string](hasher, collections.WithLogger(logger))
	default:
		return nil, fmt.Errorf("unknown table kind %q", kind)
	}
}

func run(logger *log.Entry, h collections.Hash[int, string]) {
	_ = h.Insert(collections.NewEntry(5, "a"))
	_ = h.Insert(collections.NewEntry(106, "b"))
	v, _ := h.Lookup(106)
	logger.Info("lookup 106 = ", v)

	for i := 200; h.Size() < 76; i++ {
		_ = h.Insert(collections.NewEntry(i, fmt.Sprint(i)))
	}
	logger.WithFields(log.Fields{
		"size":        h.Size(),
		"buckets":     h.BucketCount(),
		"load_factor": h.LoadFactor(),
	}).Info("after 76 inserts")

	_ = h.Erase(5)
	if _, err := h.Lookup(5); errors.Is(err, collections.ErrKeyNotFound) {
		logger.Info("5 erased")
	}
	_ = h.Insert(collections.NewEntry(5, "c"))
	v, _ = h.Lookup(5)
	logger.Info("lookup 5 = ", v)

	buckets := h.BucketCount()
	h.Clear()
	logger.WithFields(log.Fields{
		"size":      h.Size(),
		"buckets":   h.BucketCount(),
		"unchanged": buckets == h.BucketCount(),
	}).Info("cleared")
}
