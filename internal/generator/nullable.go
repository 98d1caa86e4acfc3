package generator

import (
	"fmt"

	"github.com/specialistvlad/falbricator/internal/value"
)

// Nullable wraps g so that with probability p it returns replacement instead
// of delegating. One number is drawn from the source on every call; p <= 0
// never substitutes and p >= 1 always does. Pass value.Undefined to omit the
// field from the record.
func Nullable(g Func, p float64, replacement any) Func {
	return func(ctx *Context) (any, error) {
		r, err := ctx.Random()
		if err != nil {
			return nil, fmt.Errorf("nullability: %w", err)
		}
		switch {
		case p <= 0:
		case p >= 1 || r < p:
			return value.DeepCopy(replacement), nil
		}
		return g(ctx)
	}
}

// ParseNullability reads a `{probability, value?}` block. The probability is
// mandatory and must lie in [0, 1]; an explicit null value is kept as null.
func ParseNullability(block *value.Object) (p float64, replacement any, err error) {
	raw, ok := block.Get("probability")
	if !ok || value.IsNullish(raw) {
		return 0, nil, fmt.Errorf("nullability is specified but is missing 'probability'")
	}
	p, ok = value.AsFloat(raw)
	if !ok {
		return 0, nil, fmt.Errorf("nullability probability must be a number (got %s)", value.TypeName(raw))
	}
	if p < 0 || p > 1 {
		return 0, nil, fmt.Errorf("nullability probability must be within range [0, 1] (%v)", p)
	}
	replacement = value.Undefined
	if v, ok := block.Get("value"); ok && !value.IsUndefined(v) {
		replacement = v
	}
	return p, replacement, nil
}
