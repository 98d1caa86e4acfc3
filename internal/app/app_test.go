package app_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/falbricator/internal/app"
	"github.com/specialistvlad/falbricator/internal/testutil"
	"github.com/stretchr/testify/require"
)

const schemaJSON = `{
	"profiles": {"first": "!const-Ann"},
	"fields": {
		"id": "uuid",
		"index": "!ref-index",
		"firstName": "!ref-profiles.first",
		"city": "!ref-clientContext.city"
	},
	"postprocess": {"api": ["snakeCase", "pick?field=first_name"]}
}`

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{SchemaPath: "s.json"})
	require.NoError(t, err)
	require.Equal(t, "original", cfg.Output)
	require.Equal(t, app.FormatJSON, cfg.Format)

	testCases := []struct {
		name    string
		cfg     app.Config
		wantErr string
	}{
		{name: "no schema", cfg: app.Config{}, wantErr: "SchemaPath is a required"},
		{name: "negative count", cfg: app.Config{SchemaPath: "s", Count: -1}, wantErr: "count can't be negative"},
		{name: "negative indent", cfg: app.Config{SchemaPath: "s", Indent: -2}, wantErr: "indent can't be negative"},
		{name: "format", cfg: app.Config{SchemaPath: "s", Format: "xml"}, wantErr: "unsupported format 'xml'"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := app.NewConfig(tc.cfg)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	res := testutil.RunApp(t, map[string]string{
		"schema.json":  schemaJSON,
		"context.yaml": "city: Brno\n",
	}, app.Config{SchemaPath: "schema.json", ContextPath: "context.yaml", Count: 3})
	require.NoError(t, res.Err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Output), &records))
	require.Len(t, records, 3)
	for i, r := range records {
		require.Equal(t, float64(i), r["index"])
		require.Equal(t, "Ann", r["firstName"])
		require.Equal(t, "Brno", r["city"])
	}
	require.Contains(t, res.LogOutput, "Schema compiled.")
}

func TestRun_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	seed := int64(99)
	files := map[string]string{"schema.json": schemaJSON}
	cfg := app.Config{SchemaPath: "schema.json", Count: 4, Seed: &seed, Format: app.FormatNDJSON}

	first := testutil.RunApp(t, files, cfg)
	second := testutil.RunApp(t, files, cfg)
	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	if diff := cmp.Diff(first.Output, second.Output); diff != "" {
		t.Fatalf("seeded runs differ (-first +second):\n%s", diff)
	}
	require.Len(t, strings.Split(strings.TrimSpace(first.Output), "\n"), 4)
}

func TestRun_OutputSelection(t *testing.T) {
	t.Parallel()

	files := map[string]string{"schema.yaml": `
fields:
  firstName: "!const-Ann"
postprocess:
  api: [snakeCase]
`}
	res := testutil.RunApp(t, files, app.Config{SchemaPath: "schema.yaml", Count: 1, Output: "postprocessed.api", Indent: 2})
	require.NoError(t, res.Err)
	require.Equal(t, "[\n  {\n    \"first_name\": \"Ann\"\n  }\n]\n", res.Output)

	res = testutil.RunApp(t, files, app.Config{SchemaPath: "schema.yaml", Count: 1, Output: "postprocessed.nope"})
	require.ErrorContains(t, res.Err, "output 'postprocessed.nope' not found")

	res = testutil.RunApp(t, files, app.Config{SchemaPath: "schema.yaml", Count: 1, Format: app.FormatDump})
	require.NoError(t, res.Err)
	require.Contains(t, res.Output, "Ann")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		files   map[string]string
		cfg     app.Config
		wantErr string
	}{
		{
			name:    "missing schema",
			cfg:     app.Config{SchemaPath: "nope.json"},
			wantErr: "failed to load schema",
		},
		{
			name:    "compile error",
			files:   map[string]string{"s.json": `{"fields": {"a": "nope"}}`},
			cfg:     app.Config{SchemaPath: "s.json"},
			wantErr: "failed to compile schema: fields.a: No item 'nope' found in registry value-generator",
		},
		{
			name:    "generation error",
			files:   map[string]string{"s.json": `{"fields": {"a": "!const-1"}, "postprocess": {"p": ["pick?field=b"]}}`},
			cfg:     app.Config{SchemaPath: "s.json", Count: 1},
			wantErr: "failed to generate records: record 0: postprocess.p",
		},
		{
			name:    "bad context",
			files:   map[string]string{"s.json": `{"fields": {}}`, "c.json": `[]`},
			cfg:     app.Config{SchemaPath: "s.json", ContextPath: "c.json"},
			wantErr: "failed to load client context",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := testutil.RunApp(t, tc.files, tc.cfg)
			require.ErrorContains(t, res.Err, tc.wantErr)
		})
	}
}
