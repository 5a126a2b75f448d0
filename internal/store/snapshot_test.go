package store

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Store_WalkRestore_RoundTrips(t *testing.T) {
	s := New(1)
	s.SetString("str", "value")
	require.NoError(t, s.PushRight("list", "a", "b", "c"))
	require.NoError(t, s.ZAdd("zset", "m1", 1))
	require.NoError(t, s.ZAdd("zset", "m2", 2))

	var snaps []Snapshot
	s.Walk(func(snap Snapshot) {
		snaps = append(snaps, snap)
	})

	require.Len(t, snaps, 3)

	restored := New(1)
	for _, snap := range snaps {
		restored.Restore(snap)
	}

	require.EqualValues(t, 3, restored.Count())

	value, found, err := restored.GetString("str")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "value", value)

	items, err := restored.ListRange("list", 0, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, items)

	members, err := restored.ZRange("zset", 0, 1)
	require.NoError(t, err)

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Member
	}

	sort.Strings(names)
	require.Equal(t, []string{"m1", "m2"}, names)
}

func Test_Store_Walk_VisitsKeysMidRehash(t *testing.T) {
	s := New(1)

	for i := 0; i < 20; i++ {
		s.SetString(keyFor(i), "v")
	}

	s.Maintenance() // begins rehash

	count := 0
	s.Walk(func(Snapshot) { count++ })

	require.Equal(t, 20, count)
}
