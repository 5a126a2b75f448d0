package store

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_SortedSet_AddAndScore(t *testing.T) {
	z := NewSortedSet()

	z.Add("alice", 5)
	z.Add("bob", 3)
	z.Add("carol", 3)

	require.Equal(t, 3, z.Len())

	score, ok := z.Score("alice")
	require.True(t, ok)
	require.Equal(t, 5.0, score)

	_, ok = z.Score("dave")
	require.False(t, ok)
}

func Test_SortedSet_Add_SameScoreIsNoop(t *testing.T) {
	z := NewSortedSet()
	z.Add("alice", 5)
	z.Add("alice", 5)

	require.Equal(t, 1, z.Len())
	require.Equal(t, 0, z.Rank("alice"))
}

func Test_SortedSet_Add_UpdatesScoreAndReorders(t *testing.T) {
	z := NewSortedSet()
	z.Add("alice", 5)
	z.Add("bob", 10)

	require.Equal(t, 0, z.Rank("alice"))

	z.Add("alice", 20)

	require.Equal(t, 1, z.Rank("alice"))
	require.Equal(t, 0, z.Rank("bob"))
}

func Test_SortedSet_OrderedByScoreThenMember(t *testing.T) {
	z := NewSortedSet()
	z.Add("bob", 3)
	z.Add("carol", 3)
	z.Add("alice", 5)

	want := []Member{{Member: "bob", Score: 3}, {Member: "carol", Score: 3}, {Member: "alice", Score: 5}}

	if diff := cmp.Diff(want, z.All()); diff != "" {
		t.Fatalf("All() mismatch (-want +got):\n%s", diff)
	}
}

func Test_SortedSet_Rank(t *testing.T) {
	z := NewSortedSet()
	z.Add("bob", 3)
	z.Add("carol", 3)
	z.Add("alice", 5)

	require.Equal(t, 0, z.Rank("bob"))
	require.Equal(t, 1, z.Rank("carol"))
	require.Equal(t, 2, z.Rank("alice"))
	require.Equal(t, -1, z.Rank("missing"))
}

func Test_SortedSet_ByRank(t *testing.T) {
	z := NewSortedSet()
	for i, m := range []string{"a", "b", "c", "d", "e"} {
		z.Add(m, float64(i))
	}

	want := []Member{{Member: "b", Score: 1}, {Member: "c", Score: 2}, {Member: "d", Score: 3}}

	if diff := cmp.Diff(want, z.ByRank(1, 3)); diff != "" {
		t.Fatalf("ByRank mismatch (-want +got):\n%s", diff)
	}

	require.Nil(t, z.ByRank(10, 20))
}

func Test_SortedSet_ScoreRange_Inclusivity(t *testing.T) {
	z := NewSortedSet()
	z.Add("a", 1)
	z.Add("b", 2)
	z.Add("c", 3)

	tests := []struct {
		name                       string
		min, max                   float64
		minInclusive, maxInclusive bool
		want                       []string
	}{
		{"fully inclusive", 1, 3, true, true, []string{"a", "b", "c"}},
		{"exclusive min", 1, 3, false, true, []string{"b", "c"}},
		{"exclusive max", 1, 3, true, false, []string{"a", "b"}},
		{"both exclusive", 1, 3, false, false, []string{"b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := z.ScoreRange(tc.min, tc.max, tc.minInclusive, tc.maxInclusive)

			members := make([]string, len(got))
			for i, m := range got {
				members[i] = m.Member
			}

			require.Equal(t, tc.want, members)
		})
	}
}

func Test_SortedSet_Rem(t *testing.T) {
	z := NewSortedSet()
	z.Add("a", 1)
	z.Add("b", 2)

	require.True(t, z.Rem("a"))
	require.Equal(t, 1, z.Len())
	require.Equal(t, 0, z.Rank("b"))

	require.False(t, z.Rem("a"))
}

func Test_SortedSet_ManyMembers_PreservesRankInvariant(t *testing.T) {
	z := NewSortedSet()

	const n = 500
	for i := 0; i < n; i++ {
		z.Add("m"+strconv.Itoa(i), float64(n-i))
	}

	require.Equal(t, n, z.Len())

	all := z.All()
	for i := 1; i < len(all); i++ {
		require.True(t, all[i-1].Score <= all[i].Score, "scores must be non-decreasing")
	}

	for i, m := range all {
		require.Equal(t, i, z.Rank(m.Member))
	}
}
