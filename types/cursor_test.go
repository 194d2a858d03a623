package types_test

import (
	"testing"

	"github.com/dball/irange/ex"
	"github.com/dball/irange/types"
	"github.com/stretchr/testify/require"
)

func TestCursorStates(t *testing.T) {
	cursor := types.Upto(2).Cursor()
	require.Equal(t, types.NotStarted, cursor.State())
	_, err := cursor.Current()
	require.ErrorIs(t, err, ex.ErrInvalidState)
	require.Contains(t, err.Error(), "not started")

	require.True(t, cursor.Next())
	require.Equal(t, types.Running, cursor.State())
	v, err := cursor.Current()
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	require.True(t, cursor.Next())
	v, err = cursor.Current()
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	require.False(t, cursor.Next())
	require.Equal(t, types.Finished, cursor.State())
	_, err = cursor.Current()
	require.ErrorIs(t, err, ex.ErrInvalidState)
	require.Contains(t, err.Error(), "already finished")

	require.False(t, cursor.Next())
	require.Equal(t, types.Finished, cursor.State())
}

func TestCursorEmptyRangeYieldsNothing(t *testing.T) {
	for _, r := range []types.Range{
		mustRange(t, 3, 3, 1),
		mustRange(t, 0, 10, -1),
		mustRange(t, -5, -9, 1),
	} {
		cursor := r.Cursor()
		require.False(t, cursor.Next(), "%v", r)
		require.Equal(t, types.Finished, cursor.State())
		_, err := cursor.Current()
		require.ErrorIs(t, err, ex.ErrInvalidState)
	}
}

func TestCursorReset(t *testing.T) {
	r := mustRange(t, 7, -8, -4)
	cursor := r.Cursor()
	var first, second []int64
	for cursor.Next() {
		v, _ := cursor.Current()
		first = append(first, v)
	}
	cursor.Reset()
	require.Equal(t, types.NotStarted, cursor.State())
	for cursor.Next() {
		v, _ := cursor.Current()
		second = append(second, v)
	}
	require.Equal(t, []int64{7, 3, -1, -5}, first)
	require.Equal(t, first, second)

	cursor.Reset()
	require.True(t, cursor.Next())
	cursor.Reset()
	require.True(t, cursor.Next())
	v, err := cursor.Current()
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestCursorsAreIndependent(t *testing.T) {
	r := types.Upto(5)
	a := r.Cursor()
	b := r.Iterate()
	require.True(t, a.Next())
	require.True(t, a.Next())
	require.True(t, b.Next())
	va, _ := a.Current()
	vb, _ := b.Current()
	require.Equal(t, int64(1), va)
	require.Equal(t, int64(0), vb)
}

func TestCursorStateString(t *testing.T) {
	require.Equal(t, "not started", types.NotStarted.String())
	require.Equal(t, "running", types.Running.String())
	require.Equal(t, "finished", types.Finished.String())
}

func TestRangeSatisfiesRanger(t *testing.T) {
	var ranger types.Ranger = mustRange(t, 1, 4, 1)
	require.True(t, ranger.Contains(3))
	require.Equal(t, int64(2), ranger.IndexOf(3))
	v, err := ranger.ElementAt(0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
	require.True(t, ranger.Iterate().Next())
}
