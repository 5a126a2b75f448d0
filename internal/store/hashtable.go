package store

// hashTable is a single open-chained table: a power-of-two slot count, a
// live-entry count, and one singly-linked chain per bucket. See spec §3/§4.1.
type hashTable struct {
	size    uint64
	count   uint64
	buckets []*entry
}

const initialTableSize = 16

func newHashTable(size uint64) *hashTable {
	if size < initialTableSize {
		size = initialTableSize
	}

	return &hashTable{
		size:    size,
		buckets: make([]*entry, size),
	}
}

func (t *hashTable) bucketIndex(key string, seed uint32) uint64 {
	return uint64(murmur2([]byte(key), seed)) & (t.size - 1)
}

// find returns the entry matching key and its predecessor in the chain
// (nil if it's the chain head), or (nil, nil) if absent.
func (t *hashTable) find(key string, seed uint32) (e, prev *entry) {
	idx := t.bucketIndex(key, seed)

	for cur := t.buckets[idx]; cur != nil; cur = cur.next {
		if cur.key == key {
			return cur, prev
		}

		prev = cur
	}

	return nil, nil
}

// insert prepends e to its bucket's chain. Callers must ensure the key is
// not already present in this table.
func (t *hashTable) insert(e *entry, seed uint32) {
	idx := t.bucketIndex(e.key, seed)
	e.next = t.buckets[idx]
	t.buckets[idx] = e
	t.count++
}

// removeAt unlinks e from bucket idx given its predecessor (nil if head).
func (t *hashTable) removeAt(idx uint64, e, prev *entry) {
	if prev == nil {
		t.buckets[idx] = e.next
	} else {
		prev.next = e.next
	}

	e.next = nil
	t.count--
}

func (t *hashTable) remove(key string, seed uint32) (*entry, bool) {
	idx := t.bucketIndex(key, seed)

	var prev *entry
	for cur := t.buckets[idx]; cur != nil; cur = cur.next {
		if cur.key == key {
			t.removeAt(idx, cur, prev)
			return cur, true
		}

		prev = cur
	}

	return nil, false
}

func (t *hashTable) loadFactor() float64 {
	if t.size == 0 {
		return 0
	}

	return float64(t.count) / float64(t.size)
}
