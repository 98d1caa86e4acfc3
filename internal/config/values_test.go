package config_test

import (
	"testing"

	"github.com/specialistvlad/falbricator/internal/config"
	"github.com/specialistvlad/falbricator/internal/value"
	"github.com/stretchr/testify/require"
)

func TestValues_Defaults(t *testing.T) {
	t.Parallel()

	var v config.Values
	f, err := v.Float("min", 1.5)
	require.NoError(t, err)
	require.Equal(t, 1.5, f)

	i, err := v.Int("max", 7)
	require.NoError(t, err)
	require.Equal(t, 7, i)

	s, err := v.String("order", "asc")
	require.NoError(t, err)
	require.Equal(t, "asc", s)

	b, err := v.Bool("uppercase", true)
	require.NoError(t, err)
	require.True(t, b)
}

func TestValues_TypedAccess(t *testing.T) {
	t.Parallel()

	v := config.Of(
		"min", 15.0,
		"ratio", 0.5,
		"name", "x",
		"flag", false,
		"list", []any{1.0},
		"obj", value.ObjectOf("k", "v"),
		"nothing", value.Undefined,
	)

	lo, err := v.RequireInt("min")
	require.NoError(t, err)
	require.Equal(t, 15, lo)

	_, err = v.Int("ratio", 0)
	require.EqualError(t, err, "property 'ratio' must be an integer (got number)")

	_, err = v.Float("name", 0)
	require.EqualError(t, err, "property 'name' must be a number (got string)")

	_, err = v.RequireFloat("max")
	require.EqualError(t, err, "property 'max' is required")

	list, ok, err := v.Slice("list")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, list, 1)

	obj, ok, err := v.ObjectAt("obj")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"k"}, obj.Keys())

	require.False(t, v.Has("nothing"))
	_, err = v.RequireString("nothing")
	require.EqualError(t, err, "property 'nothing' is required")
}
