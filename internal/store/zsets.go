package store

// Aggregator combines scores across inputs for ZINTERSTORE/ZUNIONSTORE
// (spec §4.2).
type Aggregator int

const (
	AggregateSum Aggregator = iota
	AggregateMin
	AggregateMax
)

func (a Aggregator) combine(acc, next float64) float64 {
	switch a {
	case AggregateMin:
		if next < acc {
			return next
		}

		return acc
	case AggregateMax:
		if next > acc {
			return next
		}

		return acc
	default:
		return acc + next
	}
}

func (s *Store) zsetFor(key string) (*SortedSet, error) {
	e, ok := s.Get(key)
	if !ok {
		e = newSortedSetEntry(key)
		s.insert(e)

		return e.zset, nil
	}

	if e.tag != TagSortedSet {
		return nil, ErrWrongType
	}

	return e.zset, nil
}

// ZAdd inserts or updates member's score at key, creating the sorted set
// if key is absent (spec §4.2 ZADD).
func (s *Store) ZAdd(key, member string, score float64) error {
	z, err := s.zsetFor(key)
	if err != nil {
		return err
	}

	z.Add(member, score)

	return nil
}

// ZScore returns member's score at key (spec §4.2 ZSCORE).
func (s *Store) ZScore(key, member string) (score float64, found bool, err error) {
	e, ok := s.Get(key)
	if !ok {
		return 0, false, nil
	}

	if e.tag != TagSortedSet {
		return 0, false, ErrWrongType
	}

	score, found = e.zset.Score(member)

	return score, found, nil
}

// ZCard returns the cardinality of the sorted set at key, or 0 if absent
// (spec §4.2 ZCARD).
func (s *Store) ZCard(key string) (int, error) {
	e, ok := s.Get(key)
	if !ok {
		return 0, nil
	}

	if e.tag != TagSortedSet {
		return 0, ErrWrongType
	}

	return e.zset.Len(), nil
}

// ZCount counts members whose score lies in [min, max] (spec §4.2 ZCOUNT).
func (s *Store) ZCount(key string, min, max float64, minInclusive, maxInclusive bool) (int, error) {
	e, ok := s.Get(key)
	if !ok {
		return 0, nil
	}

	if e.tag != TagSortedSet {
		return 0, ErrWrongType
	}

	return len(e.zset.ScoreRange(min, max, minInclusive, maxInclusive)), nil
}

// ZRange returns members by rank range [start, stop] (spec §4.2 ZRANGE).
func (s *Store) ZRange(key string, start, stop int) ([]Member, error) {
	e, ok := s.Get(key)
	if !ok {
		return nil, nil
	}

	if e.tag != TagSortedSet {
		return nil, ErrWrongType
	}

	return e.zset.ByRank(start, stop), nil
}

// ZRangeByScore returns members whose score lies in [min, max], ordered by
// (score, member) (spec §4.2 ZRANGEBYSCORE).
func (s *Store) ZRangeByScore(key string, min, max float64, minInclusive, maxInclusive bool) ([]Member, error) {
	e, ok := s.Get(key)
	if !ok {
		return nil, nil
	}

	if e.tag != TagSortedSet {
		return nil, ErrWrongType
	}

	return e.zset.ScoreRange(min, max, minInclusive, maxInclusive), nil
}

// ZRank returns member's zero-based rank at key, or -1 if absent. When
// reverse is true, rank counts down from the highest score (spec §4.2
// ZRANK).
func (s *Store) ZRank(key, member string, reverse bool) (int, error) {
	e, ok := s.Get(key)
	if !ok {
		return -1, nil
	}

	if e.tag != TagSortedSet {
		return -1, ErrWrongType
	}

	rank := e.zset.Rank(member)
	if rank < 0 {
		return -1, nil
	}

	if reverse {
		rank = e.zset.Len() - 1 - rank
	}

	return rank, nil
}

// ZRem removes member from the sorted set at key; a no-op if absent (spec
// §4.2 ZREM).
func (s *Store) ZRem(key, member string) (bool, error) {
	e, ok := s.Get(key)
	if !ok {
		return false, nil
	}

	if e.tag != TagSortedSet {
		return false, ErrWrongType
	}

	return e.zset.Rem(member), nil
}

// ZRemRangeByScore removes every member whose score lies in [min, max] and
// returns the count removed (spec §4.2 ZREMRANGEBYSCORE).
func (s *Store) ZRemRangeByScore(key string, min, max float64, minInclusive, maxInclusive bool) (int, error) {
	e, ok := s.Get(key)
	if !ok {
		return 0, nil
	}

	if e.tag != TagSortedSet {
		return 0, ErrWrongType
	}

	victims := e.zset.ScoreRange(min, max, minInclusive, maxInclusive)
	for _, m := range victims {
		e.zset.Rem(m.Member)
	}

	return len(victims), nil
}

// ZStore folds the sorted sets at srcKeys into destKey using aggregator,
// scaling each input's scores by the matching weight (all 1 if weights is
// nil). inter selects intersection semantics (a member must appear in
// every input); otherwise union semantics are used (spec §4.2
// ZINTERSTORE/ZUNIONSTORE).
func (s *Store) ZStore(destKey string, srcKeys []string, weights []float64, agg Aggregator, inter bool) (int, error) {
	sets := make([]*SortedSet, len(srcKeys))

	for i, k := range srcKeys {
		e, ok := s.Get(k)
		if !ok {
			sets[i] = NewSortedSet()
			continue
		}

		if e.tag != TagSortedSet {
			return 0, ErrWrongType
		}

		sets[i] = e.zset
	}

	w := weights
	if w == nil {
		w = make([]float64, len(srcKeys))
		for i := range w {
			w[i] = 1
		}
	}

	scores := make(map[string]float64)
	counts := make(map[string]int)

	for i, z := range sets {
		for _, m := range z.All() {
			weighted := m.Score * w[i]

			if existing, ok := scores[m.Member]; ok {
				scores[m.Member] = agg.combine(existing, weighted)
			} else {
				scores[m.Member] = weighted
			}

			counts[m.Member]++
		}
	}

	dest := NewSortedSet()

	for member, score := range scores {
		if inter && counts[member] != len(sets) {
			continue
		}

		dest.Add(member, score)
	}

	s.Replace(&entry{key: destKey, tag: TagSortedSet, zset: dest})

	return dest.Len(), nil
}
