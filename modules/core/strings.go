package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/value"
)

// StringOfLength draws `length` characters from `charset`.
func StringOfLength(cfg generator.Config) (generator.Func, error) {
	if !cfg.Has("length") {
		return nil, errors.New("can't generate a random string - length must be an integer")
	}
	length, err := cfg.Int("length", 0)
	if err != nil {
		return nil, fmt.Errorf("can't generate a random string - %w", err)
	}
	if length < 1 {
		return nil, errors.New("can't generate a random string - length must be a positive non-zero integer")
	}
	charset, err := resolveCharset(cfg)
	if err != nil {
		return nil, err
	}
	return func(ctx *generator.Context) (any, error) {
		return generator.RandomString(ctx, length, charset)
	}, nil
}

// StringOfRandomLength draws a length from [`minLength`, `maxLength`] and
// then that many characters from `charset`.
func StringOfRandomLength(cfg generator.Config) (generator.Func, error) {
	minLength, err := cfg.Int("minLength", 0)
	if err != nil {
		return nil, fmt.Errorf("can't generate a random string - %w", err)
	}
	maxLength, err := cfg.RequireInt("maxLength")
	if err != nil {
		return nil, fmt.Errorf("can't generate a random string - %w", err)
	}
	switch {
	case minLength < 0:
		return nil, errors.New("can't generate a random string - minLength must not be negative")
	case maxLength < 0:
		return nil, errors.New("can't generate a random string - maxLength must not be negative")
	case minLength > maxLength:
		return nil, errors.New("can't generate a random string - minLength must be less or equal to maxLength")
	}
	charset, err := resolveCharset(cfg)
	if err != nil {
		return nil, err
	}
	return func(ctx *generator.Context) (any, error) {
		length, err := generator.RandomInt(ctx, minLength, maxLength)
		if err != nil {
			return nil, err
		}
		return generator.RandomString(ctx, length, charset)
	}, nil
}

// resolveCharset accepts a registered charset name or an inline array of
// single-character strings.
func resolveCharset(cfg generator.Config) ([]string, error) {
	raw, ok := cfg.Get("charset")
	if !ok {
		return nil, errors.New("can't generate a random string - charset is empty or is not defined")
	}
	if name, ok := raw.(string); ok {
		if cfg.Ecosystem == nil || !cfg.Ecosystem.HasCharset(name) {
			return nil, fmt.Errorf("can't generate a random string - charset called '%s' not found", name)
		}
		return cfg.Ecosystem.Charset(name)
	}
	items, _, err := cfg.Slice("charset")
	if err != nil || len(items) == 0 {
		return nil, errors.New("can't generate a random string - charset must be an array of single-character strings")
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok || utf8.RuneCountInString(s) != 1 {
			return nil, errors.New("can't generate a random string - charset must be an array of single-character strings")
		}
		out[i] = s
	}
	return out, nil
}

// templatePlaceholders are replaced in this order, each occurrence with a
// freshly drawn character.
var templatePlaceholders = []struct {
	token   string
	charset []string
}{
	{"$d", chars(digits)},
	{"$D", chars("123456789")},
	{"$c", chars(lowercases)},
	{"$C", chars(uppercases)},
	{"$a", chars(digits + lowercases)},
	{"$A", chars(digits + uppercases)},
	{"$h", chars("0123456789abcdef")},
	{"$H", chars("0123456789ABCDEF")},
}

// Template fills `template` by replacing the `$d`-style placeholders with
// random characters and each key of `variables` with the value of its
// field definition. Variables are evaluated once per occurrence.
func Template(cfg generator.Config) (generator.Func, error) {
	tmpl, err := cfg.String("template", "")
	if err != nil {
		return nil, err
	}
	if tmpl == "" {
		return nil, errors.New("can't generate a string from a template - got empty 'template' property")
	}

	type variable struct {
		key string
		gen generator.Func
	}
	var variables []variable
	defs, _, err := cfg.ObjectAt("variables")
	if err != nil {
		return nil, err
	}
	if defs.Len() > 0 && cfg.Ecosystem == nil {
		return nil, errors.New("can't generate a string from a template - variables require an ecosystem")
	}
	for _, key := range defs.Keys() {
		def, _ := defs.Get(key)
		g, err := cfg.Ecosystem.CompileField(def)
		if err != nil {
			return nil, fmt.Errorf("template variable '%s': %w", key, err)
		}
		variables = append(variables, variable{key: key, gen: g})
	}

	return func(ctx *generator.Context) (any, error) {
		out := tmpl
		var err error
		for _, p := range templatePlaceholders {
			out, err = replaceEach(out, p.token, func() (string, error) {
				return generator.PickItem(ctx, p.charset)
			})
			if err != nil {
				return nil, err
			}
		}
		for _, v := range variables {
			out, err = replaceEach(out, v.key, func() (string, error) {
				produced, err := v.gen(ctx)
				if err != nil {
					return "", fmt.Errorf("template variable '%s': %w", v.key, err)
				}
				return formatValue(produced), nil
			})
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	}, nil
}

// replaceEach replaces every occurrence of token in s, left to right, with a
// new result of fn. Replacements are not rescanned.
func replaceEach(s, token string, fn func() (string, error)) (string, error) {
	if token == "" || !strings.Contains(s, token) {
		return s, nil
	}
	var b strings.Builder
	for {
		i := strings.Index(s, token)
		if i < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
		sub, err := fn()
		if err != nil {
			return "", err
		}
		b.WriteString(s[:i])
		b.WriteString(sub)
		s = s[i+len(token):]
	}
}

// formatValue renders v the way it should appear inside a string: text as
// is, numbers in their shortest form, everything else as JSON.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	case time.Time:
		return formatTime(t)
	}
	if value.IsUndefined(v) {
		return "undefined"
	}
	if f, ok := value.AsFloat(v); ok {
		return formatNumber(f)
	}
	return jsonString(v)
}
