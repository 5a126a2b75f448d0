package store

// GetString returns the string stored at key. found is false if key is
// absent; err is ErrWrongType if key holds a non-string value (spec §4.2
// GET).
func (s *Store) GetString(key string) (value string, found bool, err error) {
	e, ok := s.Get(key)
	if !ok {
		return "", false, nil
	}

	if e.tag != TagString {
		return "", false, ErrWrongType
	}

	return e.str, true, nil
}

// SetString creates or overwrites key with value, freeing whatever
// differently-typed value was there (spec §4.2 SET).
func (s *Store) SetString(key, value string) {
	s.Replace(newStringEntry(key, value))
}
