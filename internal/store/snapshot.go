package store

// Snapshot is one key's exported payload, shaped for JSON snapshot
// persistence (spec §4.7). Exactly one of Str, List, ZSet is populated,
// selected by Tag.
type Snapshot struct {
	Key  string
	Tag  Tag
	Str  string
	List []string
	ZSet []Member
}

// Walk calls fn once per live key across both tables, in no particular
// order. Used by SAVE to traverse the dataset even mid-rehash (spec §4.7):
// both T0 and T1 are visited, so no key is ever missed or duplicated.
func (s *Store) Walk(fn func(Snapshot)) {
	visit := func(t *hashTable) {
		for _, bucket := range t.buckets {
			for e := bucket; e != nil; e = e.next {
				fn(snapshotOf(e))
			}
		}
	}

	visit(s.t0)
	if s.t1 != nil {
		visit(s.t1)
	}
}

func snapshotOf(e *entry) Snapshot {
	snap := Snapshot{Key: e.key, Tag: e.tag}

	switch e.tag {
	case TagString:
		snap.Str = e.str
	case TagList:
		if n := e.list.Len(); n > 0 {
			snap.List = e.list.Range(0, n-1)
		}
	case TagSortedSet:
		snap.ZSet = e.zset.All()
	}

	return snap
}

// Restore installs snap's payload under its key, overwriting whatever was
// there. Used by persistence load (spec §4.7) to rebuild entries read from
// the snapshot file. Load decodes the file's top-level object into a map,
// so keys are restored in map iteration order, not in their file order.
func (s *Store) Restore(snap Snapshot) {
	var e *entry

	switch snap.Tag {
	case TagString:
		e = newStringEntry(snap.Key, snap.Str)
	case TagList:
		e = newListEntry(snap.Key)
		for _, v := range snap.List {
			e.list.PushRight(v)
		}
	case TagSortedSet:
		e = newSortedSetEntry(snap.Key)
		for _, m := range snap.ZSet {
			e.zset.Add(m.Member, m.Score)
		}
	default:
		return
	}

	s.Replace(e)
}
