package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_Store_ZAddZScoreZCard(t *testing.T) {
	s := New(1)

	require.NoError(t, s.ZAdd("z", "alice", 5))
	require.NoError(t, s.ZAdd("z", "bob", 3))

	score, found, err := s.ZScore("z", "alice")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 5.0, score)

	card, err := s.ZCard("z")
	require.NoError(t, err)
	require.Equal(t, 2, card)
}

func Test_Store_ZRangeAndZRank(t *testing.T) {
	s := New(1)
	require.NoError(t, s.ZAdd("z", "a", 1))
	require.NoError(t, s.ZAdd("z", "b", 2))
	require.NoError(t, s.ZAdd("z", "c", 3))

	members, err := s.ZRange("z", 0, 1)
	require.NoError(t, err)

	want := []Member{{Member: "a", Score: 1}, {Member: "b", Score: 2}}
	if diff := cmp.Diff(want, members); diff != "" {
		t.Fatalf("ZRange mismatch (-want +got):\n%s", diff)
	}

	rank, err := s.ZRank("z", "c", false)
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	rank, err = s.ZRank("z", "c", true)
	require.NoError(t, err)
	require.Equal(t, 0, rank)
}

func Test_Store_ZRemAndZRemRangeByScore(t *testing.T) {
	s := New(1)
	require.NoError(t, s.ZAdd("z", "a", 1))
	require.NoError(t, s.ZAdd("z", "b", 2))
	require.NoError(t, s.ZAdd("z", "c", 3))

	removed, err := s.ZRem("z", "b")
	require.NoError(t, err)
	require.True(t, removed)

	n, err := s.ZRemRangeByScore("z", 0, 3, true, true)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	card, _ := s.ZCard("z")
	require.Equal(t, 0, card)
}

func Test_Store_ZOps_WrongType(t *testing.T) {
	s := New(1)
	s.SetString("k", "v")

	require.ErrorIs(t, s.ZAdd("k", "m", 1), ErrWrongType)

	_, err := s.ZCard("k")
	require.ErrorIs(t, err, ErrWrongType)
}

func Test_Store_ZStore_UnionSum(t *testing.T) {
	s := New(1)
	require.NoError(t, s.ZAdd("a", "x", 1))
	require.NoError(t, s.ZAdd("a", "y", 2))
	require.NoError(t, s.ZAdd("b", "x", 10))

	n, err := s.ZStore("dest", []string{"a", "b"}, nil, AggregateSum, false)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	score, found, err := s.ZScore("dest", "x")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 11.0, score)

	score, found, err = s.ZScore("dest", "y")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2.0, score)
}

func Test_Store_ZStore_Intersection(t *testing.T) {
	s := New(1)
	require.NoError(t, s.ZAdd("a", "x", 1))
	require.NoError(t, s.ZAdd("a", "y", 2))
	require.NoError(t, s.ZAdd("b", "x", 10))

	n, err := s.ZStore("dest", []string{"a", "b"}, nil, AggregateMax, true)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, found, _ := s.ZScore("dest", "y")
	require.False(t, found)

	score, found, _ := s.ZScore("dest", "x")
	require.True(t, found)
	require.Equal(t, 10.0, score)
}

func Test_Store_ZStore_Weighted(t *testing.T) {
	s := New(1)
	require.NoError(t, s.ZAdd("a", "x", 2))
	require.NoError(t, s.ZAdd("b", "x", 3))

	_, err := s.ZStore("dest", []string{"a", "b"}, []float64{2, 10}, AggregateSum, false)
	require.NoError(t, err)

	score, _, _ := s.ZScore("dest", "x")
	require.Equal(t, 34.0, score) // 2*2 + 3*10
}
