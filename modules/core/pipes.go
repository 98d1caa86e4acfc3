package core

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/specialistvlad/falbricator/internal/config"
	"github.com/specialistvlad/falbricator/internal/pipe"
	"github.com/specialistvlad/falbricator/internal/value"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// fieldList reads `field` as a single name or an array of names.
func fieldList(cfg config.Values) ([]string, error) {
	raw, ok := cfg.Get("field")
	if !ok {
		return nil, errors.New("not specified field or fields")
	}
	switch t := raw.(type) {
	case string:
		if t == "" {
			return nil, errors.New("not specified field or fields")
		}
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field names must be strings (got %s)", value.TypeName(item))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unrecognized type '%s'", value.TypeName(raw))
	}
}

func asObject(in any, op string) (*value.Object, error) {
	obj, ok := in.(*value.Object)
	if !ok || obj == nil {
		return nil, fmt.Errorf("can't %s - given input must be an object (and not an array)", op)
	}
	return obj, nil
}

// PickFields keeps only the `field` names, which must all be present.
func PickFields(cfg config.Values) (pipe.Func, error) {
	fields, err := fieldList(cfg)
	if err != nil {
		return nil, fmt.Errorf("can't pick a field - %w", err)
	}
	return func(in any) (any, error) {
		obj, err := asObject(in, "pick a field")
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			if !obj.Has(f) {
				return nil, fmt.Errorf("can't pick a field - field '%s' is not present in the object", f)
			}
		}
		out := value.NewObject()
		obj.Range(func(k string, v any) bool {
			if slices.Contains(fields, k) {
				out.Set(k, value.DeepCopy(v))
			}
			return true
		})
		return out, nil
	}, nil
}

// DropFields removes the `field` names. Absent names are ignored.
func DropFields(cfg config.Values) (pipe.Func, error) {
	fields, err := fieldList(cfg)
	if err != nil {
		return nil, fmt.Errorf("can't drop a field - %w", err)
	}
	return func(in any) (any, error) {
		obj, err := asObject(in, "drop field")
		if err != nil {
			return nil, err
		}
		out := obj.Clone()
		for _, f := range fields {
			out.Delete(f)
		}
		return out, nil
	}, nil
}

// RenameField renames `old` to `new`, keeping the field's position.
func RenameField(cfg config.Values) (pipe.Func, error) {
	oldName, err := cfg.String("old", "")
	if err != nil {
		return nil, err
	}
	newName, err := cfg.String("new", "")
	if err != nil {
		return nil, err
	}
	if oldName == "" || newName == "" {
		return nil, errors.New("can't rename a field - both 'old' and 'new' fields are required")
	}
	return func(in any) (any, error) {
		obj, err := asObject(in, "rename a field within an object")
		if err != nil {
			return nil, err
		}
		if !obj.Has(oldName) {
			return nil, fmt.Errorf("can't rename a field within an object - property '%s' not present", oldName)
		}
		out := value.NewObject()
		obj.Range(func(k string, v any) bool {
			switch k {
			case oldName:
				out.Set(newName, value.DeepCopy(v))
			case newName:
				// replaced by the renamed field
			default:
				out.Set(k, value.DeepCopy(v))
			}
			return true
		})
		return out, nil
	}, nil
}

// OrderKeys sorts object keys recursively, `order` asc (default) or desc.
// Numeric keys come first and compare as numbers; other keys are collated.
func OrderKeys(cfg config.Values) (pipe.Func, error) {
	order, err := cfg.String("order", "asc")
	if err != nil {
		return nil, err
	}
	if order != "asc" && order != "desc" {
		return nil, fmt.Errorf("can't order object keys - unexpected ordering: '%s', allowed options: asc,desc", order)
	}
	desc := order == "desc"

	return func(in any) (any, error) {
		obj, ok := in.(*value.Object)
		if !ok || obj == nil {
			return nil, errors.New("can't order object keys - plain object (not array) is expected")
		}
		// A Collator keeps internal buffers, so each call gets its own.
		c := collate.New(language.English)
		return orderObject(obj, c, desc), nil
	}, nil
}

func orderObject(obj *value.Object, c *collate.Collator, desc bool) *value.Object {
	keys := obj.Keys()
	slices.SortStableFunc(keys, func(a, b string) int {
		r := compareKeys(a, b, c)
		if desc {
			return -r
		}
		return r
	})
	out := value.NewObject()
	for _, k := range keys {
		v, _ := obj.Get(k)
		out.Set(k, orderValue(v, c, desc))
	}
	return out
}

func orderValue(v any, c *collate.Collator, desc bool) any {
	switch t := v.(type) {
	case *value.Object:
		if t == nil {
			return t
		}
		return orderObject(t, c, desc)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = orderValue(item, c, desc)
		}
		return out
	default:
		return value.DeepCopy(v)
	}
}

// compareKeys orders numbers before strings.
func compareKeys(a, b string, c *collate.Collator) int {
	fa, aNum := numericKey(a)
	fb, bNum := numericKey(b)
	switch {
	case aNum && bNum:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return c.CompareString(a, b)
}

func numericKey(k string) (float64, bool) {
	f, err := strconv.ParseFloat(k, 64)
	if err != nil || strings.TrimSpace(k) != k || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// SnakeCase rewrites camelCase keys to snake_case, recursively.
func SnakeCase(config.Values) (pipe.Func, error) {
	return func(in any) (any, error) {
		return snakeValue(in), nil
	}, nil
}

func snakeValue(v any) any {
	switch t := v.(type) {
	case *value.Object:
		if t == nil {
			return t
		}
		out := value.NewObject()
		t.Range(func(k string, item any) bool {
			out.Set(camelToSnake(k), snakeValue(item))
			return true
		})
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = snakeValue(item)
		}
		return out
	default:
		return value.DeepCopy(v)
	}
}

func camelToSnake(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Stringify serializes its input as JSON with an optional `indent`. Strings
// pass through; numbers and times render as text.
func Stringify(cfg config.Values) (pipe.Func, error) {
	indent, err := cfg.Int("indent", 0)
	if err != nil {
		return nil, fmt.Errorf("can't compile stringification pipe - %w", err)
	}
	if indent < 0 {
		return nil, errors.New("can't compile stringification pipe - indent can't be negative")
	}
	prefix := strings.Repeat(" ", indent)

	return func(in any) (any, error) {
		switch t := in.(type) {
		case string:
			return t, nil
		case time.Time:
			return formatTime(t), nil
		}
		if f, ok := value.AsFloat(in); ok {
			return formatNumber(f), nil
		}
		var (
			b   []byte
			err error
		)
		if indent == 0 {
			b, err = value.Marshal(in)
		} else {
			b, err = value.MarshalIndent(in, prefix)
		}
		if err != nil {
			return nil, fmt.Errorf("can't stringify: %w", err)
		}
		return string(b), nil
	}, nil
}
