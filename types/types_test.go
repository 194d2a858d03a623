package types_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/dball/irange/types"
	"github.com/stretchr/testify/require"
)

func TestEquals(t *testing.T) {
	require.True(t, types.Equals(types.Integer(3), types.Integer(3)))
	require.False(t, types.Equals(types.Integer(3), types.Boolean(true)))
	require.True(t, types.Equals(types.Nil{}, types.Nil{}))
	require.True(t, types.Equals(types.String("a"), types.String("a")))
	require.True(t, types.Equals(
		types.NewList(types.Integer(1), types.Upto(3)),
		types.NewList(types.Integer(1), types.Upto(3)),
	))
	require.False(t, types.Equals(
		types.NewList(types.Integer(1)),
		types.NewList(types.Integer(1), types.Integer(2)),
	))
	require.False(t, types.Equals(types.Function{Name: "f"}, types.Function{Name: "f"}))
}

func TestHash(t *testing.T) {
	require.Equal(t, types.Hash(types.Integer(42)), types.Hash(types.Integer(42)))
	require.NotEqual(t, types.Hash(types.Symbol{Name: "a"}), types.Hash(types.String("a")))
	require.Equal(t,
		types.Hash(types.NewList(types.Integer(1), types.Integer(2))),
		types.Hash(types.NewList(types.Integer(1), types.Integer(2))),
	)
}

func TestEnv(t *testing.T) {
	outer := types.BuildEnv()
	outer.Set("r", types.Upto(3))
	inner := types.DeriveEnv(outer)
	inner.Set("n", types.Integer(1))

	v, err := inner.Get("r")
	require.NoError(t, err)
	require.Equal(t, types.Upto(3), v)

	_, err = outer.Get("n")
	var undefined types.Undefined
	require.True(t, errors.As(err, &undefined))
	require.Equal(t, "n", undefined.Name)

	inner.Set("r", types.Upto(5))
	v, err = outer.Get("r")
	require.NoError(t, err)
	require.Equal(t, types.Upto(3), v)

	names := outer.Names()
	sort.Strings(names)
	require.Equal(t, []string{"r"}, names)
}

func TestList(t *testing.T) {
	list := types.NewList(types.Integer(1), types.Integer(2))
	require.Equal(t, int64(2), list.Count())
	require.Equal(t, []types.Value{types.Integer(1), types.Integer(2)}, list.Items())
	require.Equal(t, int64(0), types.NewList().Count())
}
