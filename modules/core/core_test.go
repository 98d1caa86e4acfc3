package core_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/specialistvlad/falbricator/internal/config"
	"github.com/specialistvlad/falbricator/internal/ecosystem"
	"github.com/specialistvlad/falbricator/internal/falbricator"
	"github.com/specialistvlad/falbricator/internal/pipe"
	"github.com/specialistvlad/falbricator/internal/schema"
	"github.com/specialistvlad/falbricator/internal/value"
	"github.com/specialistvlad/falbricator/modules/core"
	"github.com/stretchr/testify/require"
)

const (
	lowest  = `{"name": "constant", "config": {"value": 0}}`
	highest = `{"name": "constant", "config": {"value": 0.9999999}}`
	seeded  = `{"name": "seeded", "config": {"seed": 3}}`
)

func build(t *testing.T, randomizer, fields string) (*falbricator.Falbricator, error) {
	t.Helper()
	in, err := schema.Parse([]byte(`{"randomizer": ` + randomizer + `, "fields": ` + fields + `}`))
	require.NoError(t, err)
	return ecosystem.Default().Compile(context.Background(), in)
}

// record compiles the fields and returns the generated record.
func record(t *testing.T, randomizer, fields string) *value.Object {
	t.Helper()
	f, err := build(t, randomizer, fields)
	require.NoError(t, err)
	c, err := f.Generate(nil)
	require.NoError(t, err)
	return c.Original
}

func field(t *testing.T, randomizer, def string) any {
	t.Helper()
	v, ok := record(t, randomizer, `{"v": `+def+`}`).Get("v")
	require.True(t, ok)
	return v
}

func TestPlugin_RegistersUniqueNames(t *testing.T) {
	t.Parallel()

	p := core.Plugin()
	require.Equal(t, "basic", p.Randomizers[0].Name)

	seen := map[string]bool{}
	for _, e := range p.ValueGenerators {
		require.False(t, seen[e.Name], "duplicate generator %s", e.Name)
		seen[e.Name] = true
	}
	for _, name := range []string{"pastCentury", "past30Seconds", "nextWeek", "next45Minutes"} {
		require.True(t, seen[name], name)
	}
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		randomizer string
		def        string
		want       any
	}{
		{name: "integer low", randomizer: lowest, def: `"integer?min=15&max=20"`, want: 15},
		{name: "integer high", randomizer: highest, def: `"integer?min=15&max=20"`, want: 20},
		{name: "units", randomizer: highest, def: `"units"`, want: 9},
		{name: "thousands", randomizer: lowest, def: `"thousands"`, want: 1000},
		{name: "float", randomizer: highest, def: `"float?min=1&max=2&decimalDigits=1"`, want: 2.0},
		{name: "boolean", randomizer: lowest, def: `"boolean?probability=0.3"`, want: true},
		{name: "false", randomizer: lowest, def: `"false"`, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, field(t, tc.randomizer, tc.def))
		})
	}
}

func TestNumbers_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, def := range []string{
		`"integer"`,
		`"integer?min=5&max=1"`,
		`"float?max=1&decimalDigits=100"`,
		`"boolean?probability=2"`,
	} {
		_, err := build(t, lowest, `{"v": `+def+`}`)
		require.Error(t, err, def)
	}
}

func TestStrings(t *testing.T) {
	t.Parallel()

	digits := field(t, seeded, `"stringOfLength?length=12&charset=numbers"`).(string)
	require.Regexp(t, `^[0-9]{12}$`, digits)

	inline := field(t, seeded, `{"type": "stringOfLength", "config": {"length": 4, "charset": ["x"]}}`)
	require.Equal(t, "xxxx", inline)

	require.Equal(t, "", field(t, lowest, `"stringOfRandomLength?maxLength=5&charset=letters"`))
	long := field(t, highest, `"stringOfRandomLength?maxLength=5&charset=letters"`).(string)
	require.Len(t, long, 5)

	_, err := build(t, seeded, `{"v": "stringOfLength?length=3&charset=emoji"}`)
	require.ErrorContains(t, err, "charset called 'emoji' not found")
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	got := field(t, lowest, `{"type": "template", "config": {"template": "$d$D$c$C$a$A$h$H"}}`)
	require.Equal(t, "01aA0000", got)

	got = field(t, lowest, `{"type": "template", "config": {
		"template": "ID-N/ID",
		"variables": {"ID": "!ref-index", "N": "integer?min=3&max=9"}
	}}`)
	require.Equal(t, "0-3/0", got)

	code := field(t, seeded, `{"type": "template", "config": {"template": "$H$H$H$H-$d$d"}}`).(string)
	require.Regexp(t, `^[0-9A-F]{4}-[0-9]{2}$`, code)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	v4 := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	first := field(t, seeded, `"uuid"`).(string)
	require.Regexp(t, v4, first)
	require.Equal(t, first, field(t, seeded, `"uuid"`))

	upper := field(t, seeded, `"uuid?uppercase=true"`).(string)
	require.Equal(t, strings.ToUpper(first), upper)

	v5 := field(t, seeded, `"uuid?version=5"`).(string)
	require.Equal(t, byte('5'), v5[14])

	_, err := build(t, seeded, `{"v": "uuid?version=6"}`)
	require.ErrorContains(t, err, "only allowed are [3, 4, 5]")
}

func TestTimestamps(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		randomizer string
		def        string
		want       any
	}{
		{
			name:       "datetime from",
			randomizer: lowest,
			def:        `{"type": "datetime", "config": {"from": "2020-02-29T10:00:00Z", "to": "2021-01-01"}}`,
			want:       "2020-02-29T10:00:00.000Z",
		},
		{
			name:       "datetime as isoDate",
			randomizer: highest,
			def:        `{"type": "datetime", "config": {"from": "2020-01-01", "to": "2020-01-01", "as": "isoDate"}}`,
			want:       "2020-01-01",
		},
		{
			name:       "datetime as timestamp",
			randomizer: lowest,
			def:        `{"type": "datetime", "config": {"from": 1000, "to": 2000, "as": "timestamp"}}`,
			want:       int64(1000),
		},
		{
			name:       "pastDay edge",
			randomizer: lowest,
			def:        `{"type": "pastDay", "config": {"reference": "2024-01-02T00:00:00Z"}}`,
			want:       "2024-01-01T00:00:00.000Z",
		},
		{
			name:       "nextMonth anchor",
			randomizer: lowest,
			def:        `{"type": "nextMonth", "config": {"reference": "2024-01-31T12:00:00Z", "as": "isoTime"}}`,
			want:       "12:00:00.000Z",
		},
		{
			name:       "margin before",
			randomizer: lowest,
			def: `{"type": "datetimeWithMargin", "config": {
				"direction": "BEFORE", "upToUnit": "YEAR", "marginUnit": "DAY", "marginSize": 2,
				"reference": "2024-03-10T00:00:00Z"
			}}`,
			want: "2023-03-10T00:00:00.000Z",
		},
		{
			name:       "margin after",
			randomizer: lowest,
			def: `{"type": "datetimeWithMargin", "config": {
				"direction": "AFTER", "upToUnit": "week", "upToSize": 2, "marginUnit": "HOUR",
				"reference": "2024-03-10T00:00:00Z"
			}}`,
			want: "2024-03-10T01:00:00.000Z",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, field(t, tc.randomizer, tc.def))
		})
	}
}

func TestTimestamps_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, def := range []string{
		`{"type": "datetime", "config": {"from": "2021-01-01"}}`,
		`{"type": "datetime", "config": {"from": "2021-01-01", "to": "2020-01-01"}}`,
		`{"type": "datetime", "config": {"from": "2021-01-01", "to": "2022-01-01", "as": "epoch"}}`,
		`{"type": "datetimeWithMargin", "config": {"direction": "AROUND", "upToUnit": "DAY"}}`,
		`{"type": "datetimeWithMargin", "config": {"direction": "AFTER", "upToUnit": "DAY", "marginUnit": "WEEK"}}`,
		`{"type": "pastYear", "config": {"reference": "yesterday"}}`,
	} {
		_, err := build(t, lowest, `{"v": `+def+`}`)
		require.Error(t, err, def)
	}
}

func TestCollections(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a", field(t, lowest, `{"type": "pick", "config": {"options": ["a", "b"]}}`))
	require.Equal(t, "b", field(t, highest, `{"type": "pick", "config": {"options": ["a", "b"]}}`))

	require.Equal(t, []any{}, field(t, lowest, `{"type": "sample", "config": {"array": [1, 2, 3]}}`))
	require.Equal(t, []any{1.0, 2.0, 3.0}, field(t, highest, `{"type": "sample", "config": {"array": [1, 2, 3]}}`))

	sample := field(t, seeded, `{"type": "sample", "config": {"array": ["a", "b", "c", "d", "e"], "min": 2, "max": 4}}`).([]any)
	require.GreaterOrEqual(t, len(sample), 2)
	require.LessOrEqual(t, len(sample), 4)
	require.IsIncreasing(t, toStrings(sample))

	arr := field(t, highest, `{"type": "array", "config": {"definition": "!ref-index", "minItems": 1, "maxItems": 3}}`)
	require.Equal(t, []any{0.0, 0.0, 0.0}, arr)

	for _, def := range []string{
		`{"type": "pick", "config": {"options": []}}`,
		`{"type": "sample", "config": {"array": [1], "min": 2}}`,
		`{"type": "array", "config": {"definition": "units"}}`,
		`{"type": "array", "config": {"definition": "nope", "maxItems": 2}}`,
	} {
		_, err := build(t, lowest, `{"v": `+def+`}`)
		require.Error(t, err, def)
	}
}

func toStrings(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.(string)
	}
	return out
}

func TestExpressions(t *testing.T) {
	t.Parallel()

	rec := record(t, lowest, `{
		"kind": {"type": "pick", "config": {"options": ["person", "company"]}},
		"name": {"type": "stringSwitch", "config": {
			"value": "!ref-currentFalsum.kind",
			"handlers": {"person": "!const-Ann", "company": "!const-ACME"}
		}},
		"fallback": {"type": "stringSwitch", "config": {
			"value": "!const-other",
			"handlers": {"person": "!const-Ann"},
			"default": "!const-none"
		}},
		"missing": {"type": "stringSwitch", "config": {"value": "!const-x", "handlers": {"y": "true"}}},
		"either": {"type": "xor", "config": {"options": ["!const-left", "!const-right"]}}
	}`)
	require.Equal(t, `{"kind":"person","name":"Ann","fallback":"none","either":"left"}`, rec.String())
	require.True(t, rec.Has("missing"))
}

func TestNestedObject(t *testing.T) {
	t.Parallel()

	rec := record(t, lowest, `{
		"user": {"type": "object", "config": {"schema": {
			"profiles": {"first": "!const-ann"},
			"fields": {"name": "!ref-profiles.first", "age": "integer?min=18&max=30"},
			"postprocess": {"upper": ["rename?old=name&new=login"]}
		}}},
		"login": {"type": "object", "config": {
			"path": "postprocessed.upper.login",
			"schema": {"fields": {"name": "!const-bob"}, "postprocess": {"upper": ["rename?old=name&new=login"]}}
		}}
	}`)
	require.Equal(t, `{"user":{"name":"ann","age":18},"login":"bob"}`, rec.String())

	_, err := build(t, lowest, `{"v": {"type": "object", "config": {"schema": {"fields": {"x": "nope"}}}}}`)
	require.ErrorContains(t, err, "fields.x: No item 'nope' found in registry value-generator")
}

func TestBasics(t *testing.T) {
	t.Parallel()

	rec := record(t, lowest, `{
		"u": "undefined",
		"n": "null",
		"c": {"type": "constant", "config": {"value": [1, {"a": null}]}},
		"r": {"type": "reference", "config": {"path": "currentFalsum/c/1", "separator": "/"}}
	}`)
	require.Equal(t, `{"n":null,"c":[1,{"a":null}],"r":{"a":null}}`, rec.String())

	f, err := build(t, lowest, `{"r": {"type": "reference", "config": {"path": "clientContext.user.name", "onEmptyThrow": true}}}`)
	require.NoError(t, err)
	_, err = f.Generate(value.ObjectOf("other", 1.0))
	require.ErrorContains(t, err, "fields.r")
}

func TestCharsets(t *testing.T) {
	t.Parallel()

	eco := ecosystem.Default()
	for _, name := range []string{"lowercases", "uppercases", "numbers", "specials", "letters", "alphanumerics", "characters"} {
		require.True(t, eco.Has(ecosystem.Charsets, name), name)
	}
	letters, err := eco.Charset("letters")
	require.NoError(t, err)
	require.Len(t, letters, 52)
	all, err := eco.Charset("characters")
	require.NoError(t, err)
	require.Len(t, all, 71)
}

func TestOrderKeys(t *testing.T) {
	t.Parallel()

	in := value.ObjectOf("x", 3.0, "a", 1.0, "f", 2.0)

	asc, err := core.OrderKeys(config.New(nil))
	require.NoError(t, err)
	out, err := asc(in)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "f", "x"}, out.(*value.Object).Keys())
	require.Equal(t, []string{"x", "a", "f"}, in.Keys())

	desc, err := core.OrderKeys(config.New(value.ObjectOf("order", "desc")))
	require.NoError(t, err)
	out, err = desc(in)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "f", "a"}, out.(*value.Object).Keys())

	mixed := value.ObjectOf("b", 1.0, "10", 1.0, "B", value.ObjectOf("z", 1.0, "y", 2.0), "2", 1.0)
	out, err = asc(mixed)
	require.NoError(t, err)
	require.Equal(t, []string{"2", "10", "b", "B"}, out.(*value.Object).Keys())
	nested, _ := out.(*value.Object).Get("B")
	require.Equal(t, []string{"y", "z"}, nested.(*value.Object).Keys())

	_, err = asc([]any{1.0})
	require.EqualError(t, err, "can't order object keys - plain object (not array) is expected")

	_, err = core.OrderKeys(config.New(value.ObjectOf("order", "random")))
	require.Error(t, err)
}

func TestFieldPipes(t *testing.T) {
	t.Parallel()

	in := value.ObjectOf("firstName", "Ann", "homeAddress", value.ObjectOf("zipCode", "602 00"), "age", 30.0)

	testCases := []struct {
		name    string
		pipe    string
		want    string
		wantErr string
	}{
		{name: "pick many", pipe: `pick?field=age&field=firstName`, want: `{"firstName":"Ann","age":30}`},
		{name: "pick missing", pipe: `pick?field=nope`, wantErr: "can't pick a field - field 'nope' is not present in the object"},
		{name: "drop", pipe: `drop?field=homeAddress&field=nope`, want: `{"firstName":"Ann","age":30}`},
		{name: "rename keeps position", pipe: `rename?old=firstName&new=name`, want: `{"name":"Ann","homeAddress":{"zipCode":"602 00"},"age":30}`},
		{name: "rename missing", pipe: `rename?old=x&new=y`, wantErr: "can't rename a field within an object - property 'x' not present"},
		{name: "snake case", pipe: `snakeCase`, want: `{"first_name":"Ann","home_address":{"zip_code":"602 00"},"age":30}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := compilePipe(t, tc.pipe)(in.Clone())
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, out.(*value.Object).String())
		})
	}
}

// compilePipe resolves a `name?query` step through the default ecosystem.
func compilePipe(t *testing.T, step string) pipe.Func {
	t.Helper()
	name, query, _ := strings.Cut(step, "?")
	cfg, err := schema.ParseQuery(query)
	require.NoError(t, err)
	factory, err := ecosystem.Default().Pipe(name)
	require.NoError(t, err)
	fn, err := factory(config.New(cfg))
	require.NoError(t, err)
	return fn
}

func TestStringify(t *testing.T) {
	t.Parallel()

	plain, err := core.Stringify(config.New(nil))
	require.NoError(t, err)
	out, err := plain(value.ObjectOf("a", 1.0, "b", []any{true}))
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":[true]}`, out)

	out, err = plain(2.5)
	require.NoError(t, err)
	require.Equal(t, "2.5", out)

	indented, err := core.Stringify(config.New(value.ObjectOf("indent", 2.0)))
	require.NoError(t, err)
	out, err = indented(value.ObjectOf("a", 1.0))
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": 1\n}", out)

	out, err = plain(value.ObjectOf("q", "a&b<c>", "nested", value.ObjectOf("r", []any{"<x>"})))
	require.NoError(t, err)
	require.Equal(t, `{"q":"a&b<c>","nested":{"r":["<x>"]}}`, out)

	_, err = core.Stringify(config.New(value.ObjectOf("indent", -1.0)))
	require.Error(t, err)
}
