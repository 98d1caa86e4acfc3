package schema

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/specialistvlad/falbricator/internal/value"
)

// ParseQuery turns `key=value&key=value` into a configuration object.
//
// Values are percent-decoded and parsed as JSON. Otherwise the raw text is
// read as a number, and failing that the decoded text is kept. A repeated key collects its values into an array.
// A key without `=` is present with an undefined value. Only the first `=`
// separates key from value.
func ParseQuery(query string) (*value.Object, error) {
	out := value.NewObject()
	for _, param := range strings.Split(query, "&") {
		key, raw, hasValue := strings.Cut(param, "=")
		if key == "" {
			continue
		}

		var parsed any = value.Undefined
		if hasValue {
			v, err := parseQueryValue(raw)
			if err != nil {
				return nil, fmt.Errorf("key '%s': %w", key, err)
			}
			parsed = v
		}

		existing, ok := out.Get(key)
		switch {
		case !ok:
			out.Set(key, parsed)
		case isList(existing):
			out.Set(key, append(existing.([]any), parsed))
		default:
			out.Set(key, []any{existing, parsed})
		}
	}
	return out, nil
}

// isList reports whether v is an array collected from repeated keys. An
// array parsed from JSON is treated the same way.
func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}

func parseQueryValue(raw string) (any, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return nil, err
	}
	if v, err := value.ParseJSON([]byte(decoded)); err == nil {
		return v, nil
	}
	// Numbers are read from the text as written, before percent-decoding.
	if f, ok := numericText(raw); ok {
		return f, nil
	}
	return decoded, nil
}

// numericText reads s as a finite number. Blank text is zero, and
// unsigned 0x, 0o and 0b prefixes select the base.
func numericText(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			return float64(n), err == nil
		}
	}
	if strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
