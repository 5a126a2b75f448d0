package store

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Store_SetGetString(t *testing.T) {
	s := New(1)

	s.SetString("name", "alice")

	value, found, err := s.GetString("name")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "alice", value)

	_, found, err = s.GetString("missing")
	require.NoError(t, err)
	require.False(t, found)
}

func Test_Store_GetString_WrongType(t *testing.T) {
	s := New(1)
	require.NoError(t, s.PushRight("list", "a"))

	_, _, err := s.GetString("list")
	require.ErrorIs(t, err, ErrWrongType)
}

func Test_Store_Replace_OverwritesDifferentType(t *testing.T) {
	s := New(1)

	require.NoError(t, s.PushRight("k", "a", "b"))
	s.SetString("k", "now a string")

	value, found, err := s.GetString("k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "now a string", value)
	require.EqualValues(t, 1, s.Count())
}

func Test_Store_Delete(t *testing.T) {
	s := New(1)
	s.SetString("a", "1")
	s.SetString("b", "2")

	require.Equal(t, 1, s.Delete("a", "missing"))
	require.EqualValues(t, 1, s.Count())

	_, found, _ := s.GetString("a")
	require.False(t, found)
}

func Test_Store_Rename(t *testing.T) {
	s := New(1)
	s.SetString("old", "value")

	require.NoError(t, s.Rename("old", "new"))

	_, found, _ := s.GetString("old")
	require.False(t, found)

	value, found, _ := s.GetString("new")
	require.True(t, found)
	require.Equal(t, "value", value)
}

func Test_Store_Rename_OverwritesDestination(t *testing.T) {
	s := New(1)
	s.SetString("old", "value")
	s.SetString("new", "stale")

	require.NoError(t, s.Rename("old", "new"))

	value, _, _ := s.GetString("new")
	require.Equal(t, "value", value)
	require.EqualValues(t, 1, s.Count())
}

func Test_Store_Rename_MissingSource(t *testing.T) {
	s := New(1)
	require.ErrorIs(t, s.Rename("absent", "new"), ErrNoSuchKey)
}

func Test_Store_Flush(t *testing.T) {
	s := New(1)
	s.SetString("a", "1")
	s.SetString("b", "2")

	s.Flush()

	require.EqualValues(t, 0, s.Count())
	_, found, _ := s.GetString("a")
	require.False(t, found)
}

func Test_Store_Keys_MatchesGlob(t *testing.T) {
	s := New(1)
	s.SetString("user:1", "a")
	s.SetString("user:2", "b")
	s.SetString("order:1", "c")

	got := s.Keys("user:*")
	sort.Strings(got)

	require.Equal(t, []string{"user:1", "user:2"}, got)
}

func Test_Store_MemoryBytes_GrowsWithData(t *testing.T) {
	s := New(1)

	empty := s.MemoryBytes()

	s.SetString("k", "some reasonably long value to bump the estimate")

	require.Greater(t, s.MemoryBytes(), empty)
}

func Test_Store_Maintenance_RehashesOnGrowth(t *testing.T) {
	s := New(1)

	// initialTableSize is 16; expand triggers once count > 0.7*size (~11).
	for i := 0; i < 20; i++ {
		s.SetString(keyFor(i), "v")
		s.Maintenance()
	}

	// Drive the rehash to completion: at most t0.size steps are needed once
	// begun, plus one Maintenance per insert already advanced it some.
	for i := 0; i < 32; i++ {
		s.Maintenance()
	}

	require.False(t, s.isRehashing())
	require.EqualValues(t, 20, s.Count())

	for i := 0; i < 20; i++ {
		_, found, err := s.GetString(keyFor(i))
		require.NoError(t, err)
		require.True(t, found, "key %d should survive rehash", i)
	}
}

func Test_Store_Maintenance_RehashPreservesAllKeysMidRehash(t *testing.T) {
	s := New(1)

	for i := 0; i < 20; i++ {
		s.SetString(keyFor(i), "v")
	}

	s.Maintenance() // begins rehash (count=20 > 0.7*16)
	require.True(t, s.isRehashing())

	// Lookups must succeed even while only partially rehashed.
	for i := 0; i < 20; i++ {
		_, found, err := s.GetString(keyFor(i))
		require.NoError(t, err)
		require.True(t, found)
	}

	// New key written mid-rehash goes into T1 and must also be found.
	s.SetString("fresh", "x")

	_, found, _ := s.GetString("fresh")
	require.True(t, found)
}

func Test_Store_Maintenance_ContractsOnShrink(t *testing.T) {
	s := New(1)

	for i := 0; i < 40; i++ {
		s.SetString(keyFor(i), "v")
		s.Maintenance()
	}

	for i := 0; i < 64; i++ {
		s.Maintenance()
	}

	require.False(t, s.isRehashing())

	for i := 0; i < 39; i++ {
		s.Delete(keyFor(i))
		s.Maintenance()
	}

	for i := 0; i < 64; i++ {
		s.Maintenance()
	}

	require.False(t, s.isRehashing())

	_, found, _ := s.GetString(keyFor(39))
	require.True(t, found)
}

func keyFor(i int) string {
	return "key-" + strconv.Itoa(i)
}
