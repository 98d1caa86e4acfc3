package core

import (
	"strings"

	"github.com/specialistvlad/falbricator/internal/registry"
)

const (
	lowercases = "abcdefghijklmnopqrstuvwxyz"
	uppercases = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits     = "0123456789"
	specials   = `?!.+-*%#_`
)

func charsets() []registry.Entry[[]string] {
	return []registry.Entry[[]string]{
		{Name: "lowercases", Item: chars(lowercases)},
		{Name: "uppercases", Item: chars(uppercases)},
		{Name: "numbers", Item: chars(digits)},
		{Name: "specials", Item: chars(specials)},
		{Name: "letters", Item: chars(lowercases + uppercases)},
		{Name: "alphanumerics", Item: chars(lowercases + uppercases + digits)},
		{Name: "characters", Item: chars(lowercases + uppercases + digits + specials)},
	}
}

// chars splits s into single-character strings.
func chars(s string) []string {
	return strings.Split(s, "")
}
