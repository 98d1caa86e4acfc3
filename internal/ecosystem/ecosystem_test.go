package ecosystem_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/specialistvlad/falbricator/internal/ctxlog"
	"github.com/specialistvlad/falbricator/internal/ecosystem"
	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/plugin"
	"github.com/specialistvlad/falbricator/internal/registry"
	"github.com/specialistvlad/falbricator/internal/schema"
	"github.com/specialistvlad/falbricator/internal/value"
	"github.com/specialistvlad/falbricator/modules/core"
	"github.com/stretchr/testify/require"
)

func answer(generator.Config) (generator.Func, error) {
	return func(*generator.Context) (any, error) { return 42.0, nil }, nil
}

func TestEcosystem_RegistryUniqueness(t *testing.T) {
	t.Parallel()

	e := ecosystem.Default()
	require.True(t, e.Has(ecosystem.ValueGenerators, "integer"))

	err := e.Register(plugin.Plugin{
		ValueGenerators: []registry.Entry[generator.Factory]{{Name: "integer", Item: answer}},
	})
	require.EqualError(t, err, "Can't register 'integer' into value-generator registry - already exists")
	require.True(t, errors.Is(err, registry.ErrDuplicate))

	e.Remove(ecosystem.ValueGenerators, "integer")
	require.False(t, e.Has(ecosystem.ValueGenerators, "integer"))
	e.Remove(ecosystem.ValueGenerators, "integer")

	require.NoError(t, e.Register(plugin.Plugin{
		ValueGenerators: []registry.Entry[generator.Factory]{{Name: "integer", Item: answer}},
	}))
	require.True(t, e.Has(ecosystem.ValueGenerators, "integer"))
}

func TestEcosystem_GetUnknown(t *testing.T) {
	t.Parallel()

	e := ecosystem.Default()
	_, err := e.Get(ecosystem.Charsets, "emoji")
	require.EqualError(t, err, "No item 'emoji' found in registry charset")
	require.ErrorIs(t, err, registry.ErrNotFound)

	letters, err := e.Get(ecosystem.Charsets, "numbers")
	require.NoError(t, err)
	require.Len(t, letters, 10)

	require.Panics(t, func() { e.Has(ecosystem.Kind(99), "x") })
}

func TestEcosystem_DefaultRandomizerIsFirstRegistered(t *testing.T) {
	t.Parallel()

	e := ecosystem.Default()
	name, _, err := e.DefaultRandomizer()
	require.NoError(t, err)
	require.Equal(t, "basic", name)
	require.Equal(t, "basic", e.Names(ecosystem.Randomizers)[0])

	e.Remove(ecosystem.Randomizers, "basic")
	name, _, err = e.DefaultRandomizer()
	require.NoError(t, err)
	require.Equal(t, "seeded", name)

	empty, err := ecosystem.New()
	require.NoError(t, err)
	_, _, err = empty.DefaultRandomizer()
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	extra := plugin.Plugin{
		Name:              "extra",
		ValueGenerators:   []registry.Entry[generator.Factory]{{Name: "answer", Item: answer}},
		Preconfigurations: []registry.Entry[any]{{Name: "age", Item: value.ObjectOf("type", "integer", "config", value.ObjectOf("min", 18.0, "max", 99.0))}},
	}
	e, err := ecosystem.NewBuilder().WithLogger(logger).Register(extra).Build()
	require.NoError(t, err)
	require.Contains(t, buf.String(), "plugin=extra")
	require.Contains(t, buf.String(), "registry=value-generator name=answer")
	require.Contains(t, buf.String(), "registry=preconfiguration name=age")
	require.True(t, e.Has(ecosystem.Preconfigurations, "age"))

	_, err = ecosystem.NewBuilder().Register(extra, extra).Build()
	require.ErrorIs(t, err, registry.ErrDuplicate)
}

func TestEcosystem_CompileIsASnapshot(t *testing.T) {
	t.Parallel()

	e := ecosystem.Default()
	in, err := schema.Parse([]byte(`{"randomizer": {"name": "seeded", "config": {"seed": 7}}, "fields": {"n": "integer?min=1&max=3"}}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	f, err := e.Compile(ctx, in)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Schema compiled.")

	e.Remove(ecosystem.ValueGenerators, "integer")
	e.Remove(ecosystem.Randomizers, "seeded")

	c, err := f.Generate(nil)
	require.NoError(t, err)
	n, ok := c.Original.Get("n")
	require.True(t, ok)
	require.GreaterOrEqual(t, n, 1)
	require.LessOrEqual(t, n, 3)

	_, err = e.Compile(context.Background(), in)
	require.EqualError(t, err, "randomizer: No item 'seeded' found in registry randomizer")
}

func TestEcosystem_Preconfiguration(t *testing.T) {
	t.Parallel()

	e, err := ecosystem.NewBuilder().Register(plugin.Plugin{
		ValueGenerators:   []registry.Entry[generator.Factory]{{Name: "answer", Item: answer}},
		Preconfigurations: []registry.Entry[any]{{Name: "theAnswer", Item: value.ObjectOf("type", "answer")}},
		Randomizers:       core.Plugin().Randomizers,
	}).Build()
	require.NoError(t, err)

	in, err := schema.Parse([]byte(`{"fields": {"a": "!conf-theAnswer"}}`))
	require.NoError(t, err)
	f, err := e.Compile(context.Background(), in)
	require.NoError(t, err)

	c, err := f.Generate(nil)
	require.NoError(t, err)
	require.Equal(t, `{"a":42}`, c.Original.String())
}
