package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Store_PushPopRange(t *testing.T) {
	s := New(1)

	require.NoError(t, s.PushRight("l", "a", "b"))
	require.NoError(t, s.PushLeft("l", "z", "y"))

	n, err := s.ListLen("l")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	items, err := s.ListRange("l", 0, n-1)
	require.NoError(t, err)
	require.Equal(t, []string{"y", "z", "a", "b"}, items)

	popped, found, err := s.PopLeft("l", 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"y"}, popped)

	popped, found, err = s.PopRight("l", 2)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"b", "a"}, popped)
}

func Test_Store_ListOps_WrongType(t *testing.T) {
	s := New(1)
	s.SetString("k", "v")

	_, err := s.ListLen("k")
	require.ErrorIs(t, err, ErrWrongType)

	err = s.PushRight("k", "x")
	require.ErrorIs(t, err, ErrWrongType)

	_, err = s.ListRange("k", 0, 1)
	require.ErrorIs(t, err, ErrWrongType)
}

func Test_Store_ListOps_AbsentKey(t *testing.T) {
	s := New(1)

	n, err := s.ListLen("absent")
	require.NoError(t, err)
	require.Equal(t, 0, n)

	items, err := s.ListRange("absent", 0, 10)
	require.NoError(t, err)
	require.Equal(t, []string{}, items)

	_, found, err := s.PopLeft("absent", 1)
	require.NoError(t, err)
	require.False(t, found)
}
