package randomizer_test

import (
	"testing"

	"github.com/specialistvlad/falbricator/internal/config"
	"github.com/specialistvlad/falbricator/internal/randomizer"
	"github.com/specialistvlad/falbricator/internal/value"
	"github.com/stretchr/testify/require"
)

func draw(t *testing.T, src randomizer.Source, rc randomizer.Context, n int) []float64 {
	t.Helper()
	out := make([]float64, n)
	for i := range out {
		f, err := src.Float64(rc)
		require.NoError(t, err)
		require.GreaterOrEqual(t, f, 0.0)
		require.LessOrEqual(t, f, 1.0)
		out[i] = f
	}
	return out
}

func TestBasic_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	a, err := randomizer.Basic(config.Of("seed", 42.0))
	require.NoError(t, err)
	b, err := randomizer.Basic(config.Of("seed", 42.0))
	require.NoError(t, err)

	require.Equal(t, draw(t, a, randomizer.Context{}, 20), draw(t, b, randomizer.Context{}, 20))

	unseeded, err := randomizer.Basic(config.Values{})
	require.NoError(t, err)
	draw(t, unseeded, randomizer.Context{}, 20)
}

func TestSeeded(t *testing.T) {
	t.Parallel()

	_, err := randomizer.Seeded(config.Values{})
	require.EqualError(t, err, "seed must be specified within the given configuration for seeded randomizer")

	_, err = randomizer.Seeded(config.Of("seed", "abc"))
	require.Error(t, err)

	src, err := randomizer.Seeded(config.Of("seed", 1.0))
	require.NoError(t, err)
	first, err := src.Float64(randomizer.Context{})
	require.NoError(t, err)
	// (1*9301 + 49297) % 233280 = 58598
	require.InDelta(t, 58598.0/233280.0, first, 1e-12)

	again, err := randomizer.Seeded(config.Of("seed", 1.0))
	require.NoError(t, err)
	require.Equal(t, draw(t, src, randomizer.Context{}, 10), draw(t, again, randomizer.Context{}, 11)[1:])
}

func TestConstant(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     config.Values
		wantErr string
	}{
		{name: "missing", cfg: config.Values{}, wantErr: "constant value must be specified within the given configuration for the constant randomizer"},
		{name: "too big", cfg: config.Of("value", 1.5), wantErr: "constant value must be within range [0, 1] for constant randomizer (1.5)"},
		{name: "negative", cfg: config.Of("value", -0.1), wantErr: "constant value must be within range [0, 1] for constant randomizer (-0.1)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := randomizer.Constant(tc.cfg)
			require.EqualError(t, err, tc.wantErr)
		})
	}

	src, err := randomizer.Constant(config.Of("value", 0.0))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, draw(t, src, randomizer.Context{}, 3))
}

func TestContextDependent(t *testing.T) {
	t.Parallel()

	_, err := randomizer.ContextDependent(config.Of("modulo", 0.0))
	require.EqualError(t, err, "can't generate a contextually dependent number - property 'modulo' is zero")

	rc := randomizer.Context{Index: 3, CurrentField: "name", ClientContext: value.ObjectOf("a", 1.0)}

	a, err := randomizer.ContextDependent(config.Values{})
	require.NoError(t, err)
	b, err := randomizer.ContextDependent(config.Values{})
	require.NoError(t, err)
	require.Equal(t, draw(t, a, rc, 5), draw(t, b, rc, 5))
}

func TestContextuallySeeded(t *testing.T) {
	t.Parallel()

	src, err := randomizer.ContextuallySeeded(config.Values{})
	require.NoError(t, err)

	_, err = src.Float64(randomizer.Context{})
	require.ErrorContains(t, err, "context.clientContext is missing")

	_, err = src.Float64(randomizer.Context{ClientContext: value.NewObject()})
	require.ErrorContains(t, err, "missing property 'seed'")

	rc := randomizer.Context{ClientContext: value.ObjectOf("seed", 1.0)}
	f, err := src.Float64(rc)
	require.NoError(t, err)
	require.InDelta(t, 58598.0/233280.0, f, 1e-12)
}

func TestHashString(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint32(0), randomizer.HashString(""))
	require.Equal(t, randomizer.HashString("abc"), randomizer.HashString("abc"))
	require.NotEqual(t, randomizer.HashString("abc"), randomizer.HashString("abd"))
}
