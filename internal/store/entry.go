package store

import "errors"

// ErrWrongType is returned when an operation targets a key whose stored
// value has a different type tag. Callers map this to the byte-exact
// "WRONGTYPE ..." reply text (spec §6).
var ErrWrongType = errors.New("wrongtype")

// ErrNoSuchKey is returned by operations that require an existing key.
var ErrNoSuchKey = errors.New("no such key")

// Tag identifies the kind of value an Entry holds.
type Tag int

const (
	TagString Tag = iota
	TagList
	TagSortedSet
)

func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagList:
		return "list"
	case TagSortedSet:
		return "zset"
	default:
		return "unknown"
	}
}

// entry is the hash-table node: a key, a typed payload, and a chain link.
// An entry appears in at most one bucket across both tables (spec §3).
type entry struct {
	key  string
	tag  Tag
	str  string
	list *List
	zset *SortedSet
	next *entry
}

func newStringEntry(key, value string) *entry {
	return &entry{key: key, tag: TagString, str: value}
}

func newListEntry(key string) *entry {
	return &entry{key: key, tag: TagList, list: NewList()}
}

func newSortedSetEntry(key string) *entry {
	return &entry{key: key, tag: TagSortedSet, zset: NewSortedSet()}
}

// approxBytes estimates the heap footprint owned by this entry, used by
// INFO_DATASET_MEMORY (spec §4.4). It is a size estimate, not an exact
// allocator accounting — Go gives no portable way to ask the runtime for
// the real figure, unlike the C source this spec was distilled from.
func (e *entry) approxBytes() int {
	const entryOverhead = 48 // key string header + tag + pointers, rough

	n := entryOverhead + len(e.key)

	switch e.tag {
	case TagString:
		n += len(e.str)
	case TagList:
		n += e.list.approxBytes()
	case TagSortedSet:
		n += e.zset.approxBytes()
	}

	return n
}
