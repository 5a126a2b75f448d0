// Package store implements the in-memory dataset: a two-table
// incrementally-rehashing hash table keyed by MurmurHash2, and the typed
// value containers (string, list, sorted set) it holds. See spec §3, §4.1,
// §4.2.
package store

import "github.com/cch137/kvdb/internal/glob"

const (
	expandLoadFactor   = 0.7
	contractLoadFactor = 0.1
	contractFloorSize  = initialTableSize
)

// Store owns the dataset: table slots T0/T1 and the rehash cursor (spec §3).
// Exactly one of: steady state (t1 == nil, rehashCursor == -1) or
// rehashing (t1 != nil, rehashCursor in [0, t0.size)).
type Store struct {
	t0           *hashTable
	t1           *hashTable
	rehashCursor int64
	seed         uint32
}

// New constructs an empty, steady-state Store seeded for MurmurHash2.
func New(seed uint32) *Store {
	return &Store{
		t0:           newHashTable(initialTableSize),
		rehashCursor: -1,
		seed:         seed,
	}
}

func (s *Store) isRehashing() bool {
	return s.rehashCursor >= 0
}

// lookup finds key across both tables, T1 first when present (spec §4.1).
func (s *Store) lookup(key string) *entry {
	if s.t1 != nil {
		if e, _ := s.t1.find(key, s.seed); e != nil {
			return e
		}
	}

	e, _ := s.t0.find(key, s.seed)

	return e
}

// insert writes e into T1 if present, else T0 (spec §3).
func (s *Store) insert(e *entry) {
	if s.t1 != nil {
		s.t1.insert(e, s.seed)
		return
	}

	s.t0.insert(e, s.seed)
}

// delete removes key from whichever table holds it.
func (s *Store) delete(key string) bool {
	if s.t1 != nil {
		if _, ok := s.t1.remove(key, s.seed); ok {
			return true
		}
	}

	_, ok := s.t0.remove(key, s.seed)

	return ok
}

// Count returns the total number of live keys across both tables.
func (s *Store) Count() uint64 {
	n := s.t0.count
	if s.t1 != nil {
		n += s.t1.count
	}

	return n
}

// Get returns the entry for key and whether it was found.
func (s *Store) Get(key string) (*entry, bool) {
	e := s.lookup(key)
	return e, e != nil
}

// Replace installs e for key, removing and discarding whatever was there
// (if anything). Used by SET, snapshot Restore and ZINTERSTORE/ZUNIONSTORE
// to overwrite a possibly differently-typed value (spec §4.2).
func (s *Store) Replace(e *entry) {
	s.delete(e.key)
	s.insert(e)
}

// Delete removes every listed key and returns the count actually removed
// (spec §4.2 DEL).
func (s *Store) Delete(keys ...string) int {
	n := 0

	for _, k := range keys {
		if s.delete(k) {
			n++
		}
	}

	return n
}

// Rename moves the entry under old to new, overwriting any existing entry
// under new. Returns ErrNoSuchKey if old is absent (spec §4.2 RENAME).
func (s *Store) Rename(oldKey, newKey string) error {
	e := s.lookup(oldKey)
	if e == nil {
		return ErrNoSuchKey
	}

	s.delete(oldKey)
	s.delete(newKey) // drop whatever newKey held, if anything

	e.key = newKey
	e.next = nil
	s.insert(e)

	return nil
}

// Flush atomically replaces both tables with a fresh empty T0 (spec §4.4
// FLUSHALL).
func (s *Store) Flush() {
	s.t0 = newHashTable(initialTableSize)
	s.t1 = nil
	s.rehashCursor = -1
}

// Keys returns every live key across both tables matching the glob pattern
// (spec §4.4 KEYS, §4.3).
func (s *Store) Keys(pattern string) []string {
	var out []string

	collect := func(t *hashTable) {
		for _, bucket := range t.buckets {
			for e := bucket; e != nil; e = e.next {
				if glob.Match(e.key, pattern) {
					out = append(out, e.key)
				}
			}
		}
	}

	collect(s.t0)
	if s.t1 != nil {
		collect(s.t1)
	}

	return out
}

// MemoryBytes sums the estimated heap footprint of every live entry plus
// both tables' bucket arrays (spec §4.4 INFO_DATASET_MEMORY).
func (s *Store) MemoryBytes() int {
	const slotSize = 8 // one *entry pointer

	total := int(s.t0.size) * slotSize
	if s.t1 != nil {
		total += int(s.t1.size) * slotSize
	}

	add := func(t *hashTable) {
		for _, bucket := range t.buckets {
			for e := bucket; e != nil; e = e.next {
				total += e.approxBytes()
			}
		}
	}

	add(s.t0)
	if s.t1 != nil {
		add(s.t1)
	}

	return total
}

// Maintenance performs at most one rehash step, or — if not currently
// rehashing — checks the sizing policy and may start one (spec §4.1).
func (s *Store) Maintenance() {
	if s.isRehashing() {
		s.rehashStep()
		return
	}

	switch {
	case float64(s.t0.count) > expandLoadFactor*float64(s.t0.size):
		s.beginRehash(s.t0.size * 2)
	case s.t0.size > contractFloorSize && float64(s.t0.count) < contractLoadFactor*float64(s.t0.size):
		s.beginRehash(s.t0.size / 2)
	}
}

func (s *Store) beginRehash(newSize uint64) {
	if newSize < initialTableSize {
		newSize = initialTableSize
	}

	s.t1 = newHashTable(newSize)
	s.rehashCursor = int64(s.t0.size) - 1
}

// rehashStep drains the bucket at rehashCursor of T0 into T1 and decrements
// the cursor; when it goes negative, T0 is replaced by T1 (spec §4.1).
func (s *Store) rehashStep() {
	idx := uint64(s.rehashCursor)

	e := s.t0.buckets[idx]
	s.t0.buckets[idx] = nil

	for e != nil {
		next := e.next
		e.next = nil
		s.t0.count--
		s.t1.insert(e, s.seed)
		e = next
	}

	s.rehashCursor--

	if s.rehashCursor < 0 {
		s.t0 = s.t1
		s.t1 = nil
	}
}
