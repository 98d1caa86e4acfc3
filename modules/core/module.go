// Package core is the built-in plugin: randomizers, value generators,
// charsets and pipes available in every default ecosystem.
package core

import (
	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/pipe"
	"github.com/specialistvlad/falbricator/internal/plugin"
	"github.com/specialistvlad/falbricator/internal/randomizer"
	"github.com/specialistvlad/falbricator/internal/registry"
)

// Name identifies the core plugin in logs.
const Name = "core"

// Plugin returns the core capability bundle. The first randomizer, `basic`,
// is the default one.
func Plugin() plugin.Plugin {
	return plugin.Plugin{
		Name: Name,
		Randomizers: []registry.Entry[randomizer.Factory]{
			{Name: "basic", Item: randomizer.Basic},
			{Name: "seeded", Item: randomizer.Seeded},
			{Name: "constant", Item: randomizer.Constant},
			{Name: "contextDependent", Item: randomizer.ContextDependent},
			{Name: "contextuallySeeded", Item: randomizer.ContextuallySeeded},
		},
		ValueGenerators: valueGenerators(),
		Charsets:        charsets(),
		Pipes: []registry.Entry[pipe.Factory]{
			{Name: "pick", Item: PickFields},
			{Name: "drop", Item: DropFields},
			{Name: "rename", Item: RenameField},
			{Name: "orderKeys", Item: OrderKeys},
			{Name: "snakeCase", Item: SnakeCase},
			{Name: "stringify", Item: Stringify},
		},
	}
}

type generatorEntry = registry.Entry[generator.Factory]

func valueGenerators() []generatorEntry {
	entries := []generatorEntry{
		{Name: "undefined", Item: Undefined},
		{Name: "null", Item: Null},
		{Name: "constant", Item: Constant},
		{Name: "reference", Item: Reference},

		{Name: "boolean", Item: Boolean},
		{Name: "true", Item: fixedBool(true)},
		{Name: "false", Item: fixedBool(false)},

		{Name: "integer", Item: Integer},
		{Name: "float", Item: Float},
		{Name: "units", Item: integerRange(0, 9)},
		{Name: "tens", Item: integerRange(10, 99)},
		{Name: "hundreds", Item: integerRange(100, 999)},
		{Name: "thousands", Item: integerRange(1000, 9999)},

		{Name: "stringOfLength", Item: StringOfLength},
		{Name: "stringOfRandomLength", Item: StringOfRandomLength},
		{Name: "template", Item: Template},
		{Name: "uuid", Item: UUID},

		{Name: "datetime", Item: Datetime},
		{Name: "datetimeWithMargin", Item: DatetimeWithMargin},
	}
	entries = append(entries, relativeGenerators()...)
	return append(entries,
		generatorEntry{Name: "pick", Item: Pick},
		generatorEntry{Name: "sample", Item: Sample},
		generatorEntry{Name: "array", Item: Array},
		generatorEntry{Name: "object", Item: Object},
		generatorEntry{Name: "stringSwitch", Item: StringSwitch},
		generatorEntry{Name: "xor", Item: Xor},
	)
}
