package store

// listFor returns the list entry at key, creating an empty one if key is
// absent. Returns ErrWrongType if key holds a non-list value (spec §4.2
// LPUSH/RPUSH).
func (s *Store) listFor(key string) (*List, error) {
	e, ok := s.Get(key)
	if !ok {
		e = newListEntry(key)
		s.insert(e)

		return e.list, nil
	}

	if e.tag != TagList {
		return nil, ErrWrongType
	}

	return e.list, nil
}

// PushLeft pushes each value onto the head of the list at key, in order
// (so the final head order is the reverse of the input order), creating
// the list if key is absent.
func (s *Store) PushLeft(key string, values ...string) error {
	l, err := s.listFor(key)
	if err != nil {
		return err
	}

	for _, v := range values {
		l.PushLeft(v)
	}

	return nil
}

// PushRight pushes each value onto the tail of the list at key, in order.
func (s *Store) PushRight(key string, values ...string) error {
	l, err := s.listFor(key)
	if err != nil {
		return err
	}

	for _, v := range values {
		l.PushRight(v)
	}

	return nil
}

// PopLeft removes and returns up to count values from the head of the list
// at key. found is false if key is absent.
func (s *Store) PopLeft(key string, count int) (values []string, found bool, err error) {
	e, ok := s.Get(key)
	if !ok {
		return nil, false, nil
	}

	if e.tag != TagList {
		return nil, false, ErrWrongType
	}

	return e.list.PopLeft(count), true, nil
}

// PopRight removes and returns up to count values from the tail of the
// list at key. found is false if key is absent.
func (s *Store) PopRight(key string, count int) (values []string, found bool, err error) {
	e, ok := s.Get(key)
	if !ok {
		return nil, false, nil
	}

	if e.tag != TagList {
		return nil, false, ErrWrongType
	}

	return e.list.PopRight(count), true, nil
}

// ListLen returns the length of the list at key, or 0 if absent (spec §4.2
// LLEN).
func (s *Store) ListLen(key string) (int, error) {
	e, ok := s.Get(key)
	if !ok {
		return 0, nil
	}

	if e.tag != TagList {
		return 0, ErrWrongType
	}

	return e.list.Len(), nil
}

// ListRange returns the elements at indices [start, stop] (stop inclusive,
// clamped) of the list at key, or an empty slice if key is absent (spec
// §4.2 LRANGE).
func (s *Store) ListRange(key string, start, stop int) ([]string, error) {
	e, ok := s.Get(key)
	if !ok {
		return []string{}, nil
	}

	if e.tag != TagList {
		return nil, ErrWrongType
	}

	return e.list.Range(start, stop), nil
}
