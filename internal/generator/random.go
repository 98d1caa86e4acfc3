package generator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// RandomInt returns an integer in [lo, hi].
func RandomInt(ctx *Context, lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("lower bound of the interval can't be greater than the upper bound: %d > %d", lo, hi)
	}
	r, err := ctx.Random()
	if err != nil {
		return 0, err
	}
	n := int(math.Floor(r*float64(hi-lo+1))) + lo
	// A source may return exactly 1.
	return min(n, hi), nil
}

// RandomFloat returns a number in [lo, hi] rounded to decimals places.
func RandomFloat(ctx *Context, lo, hi float64, decimals int) (float64, error) {
	switch {
	case lo > hi:
		return 0, fmt.Errorf("lower bound of the interval can't be greater than the upper bound: %v > %v", lo, hi)
	case decimals < 0:
		return 0, errors.New("number of decimal digits has to be non-negative")
	case decimals >= 100:
		return 0, errors.New("number of decimal digits has to be lower than 100")
	}
	r, err := ctx.Random()
	if err != nil {
		return 0, err
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round((r*(hi-lo)+lo)*scale) / scale, nil
}

// PickItem returns one element of items. A single-element slice is returned
// without drawing from the source.
func PickItem[T any](ctx *Context, items []T) (T, error) {
	var zero T
	switch len(items) {
	case 0:
		return zero, errors.New("can't pick an item - given array is empty")
	case 1:
		return items[0], nil
	}
	i, err := RandomInt(ctx, 0, len(items)-1)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// RandomString builds a string of length items picked from charset.
func RandomString(ctx *Context, length int, charset []string) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("the length of a string can't be negative (%d)", length)
	}
	if len(charset) == 0 {
		return "", errors.New("the charset must consist of at least one item")
	}
	var b strings.Builder
	for range length {
		s, err := PickItem(ctx, charset)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
