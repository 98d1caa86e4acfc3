package randomizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/specialistvlad/falbricator/internal/config"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Factory creates a fresh Source from its configuration. It is called once
// per generated record.
type Factory func(cfg config.Values) (Source, error)

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49_297
	lcgModulo     = 233_280
)

// Basic returns a PCG-backed source. Without a `seed` it is seeded from the
// runtime's entropy and is not reproducible; with an integer `seed` every
// instance replays the same stream.
func Basic(cfg config.Values) (Source, error) {
	var rng *rand.Rand
	if cfg.Has("seed") {
		seed, err := cfg.Int("seed", 0)
		if err != nil {
			return nil, fmt.Errorf("basic randomizer: %w", err)
		}
		rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return SourceFunc(func(Context) (float64, error) {
		return rng.Float64(), nil
	}), nil
}

// Seeded returns a linear congruential source driven by the required
// integer `seed`.
func Seeded(cfg config.Values) (Source, error) {
	if !cfg.Has("seed") {
		return nil, errors.New("seed must be specified within the given configuration for seeded randomizer")
	}
	seed, err := cfg.Int("seed", 0)
	if err != nil {
		return nil, fmt.Errorf("seeded randomizer: %w", err)
	}
	state := int64(seed)
	return SourceFunc(func(Context) (float64, error) {
		state = mod(state*lcgMultiplier+lcgIncrement, lcgModulo)
		return float64(state) / lcgModulo, nil
	}), nil
}

// Constant always returns the configured `value`, which must lie in [0, 1].
func Constant(cfg config.Values) (Source, error) {
	if !cfg.Has("value") {
		return nil, errors.New("constant value must be specified within the given configuration for the constant randomizer")
	}
	v, err := cfg.Float("value", 0)
	if err != nil {
		return nil, fmt.Errorf("constant randomizer: %w", err)
	}
	if v < 0 || v > 1 {
		return nil, fmt.Errorf("constant value must be within range [0, 1] for constant randomizer (%v)", v)
	}
	return SourceFunc(func(Context) (float64, error) {
		return v, nil
	}), nil
}

// ContextDependent mixes a hash of the serialized randomizer context into a
// linear congruential sequence. The optional `modulo` must be a non-zero
// integer.
func ContextDependent(cfg config.Values) (Source, error) {
	modulo, err := cfg.Int("modulo", lcgModulo)
	if err != nil {
		return nil, fmt.Errorf("can't generate a contextually dependent number - %w", err)
	}
	if modulo == 0 {
		return nil, errors.New("can't generate a contextually dependent number - property 'modulo' is zero")
	}
	m := int64(modulo)
	if m < 0 {
		m = -m
	}

	var current int64
	return SourceFunc(func(rc Context) (float64, error) {
		encoded, err := json.Marshal(rc)
		if err != nil {
			return 0, fmt.Errorf("can't generate a contextually dependent number - %w", err)
		}
		current = int64(HashString(string(encoded))) + mod(current*lcgMultiplier+lcgIncrement, m)
		return float64(mod(current, m)) / float64(m), nil
	}), nil
}

// ContextuallySeeded derives every number from `clientContext.seed`. It takes
// no configuration.
func ContextuallySeeded(config.Values) (Source, error) {
	return SourceFunc(func(rc Context) (float64, error) {
		if rc.ClientContext == nil {
			return 0, errors.New("can't generate a contextually seeded random number - context or context.clientContext is missing")
		}
		raw, ok := rc.ClientContext.Get("seed")
		if !ok || value.IsNullish(raw) {
			return 0, errors.New("can't generate a contextually seeded random number - missing property 'seed'")
		}
		seed, ok := value.AsInt(raw)
		if !ok {
			return 0, errors.New("can't generate a contextually seeded random number - property 'seed' must be an integer")
		}
		return float64(mod(int64(seed)*lcgMultiplier+lcgIncrement, lcgModulo)) / lcgModulo, nil
	}), nil
}

// HashString folds s into a non-negative 32-bit rolling hash.
func HashString(s string) uint32 {
	var hash int32
	for _, r := range s {
		hash = (hash << 5) - hash + int32(r)
	}
	if hash < 0 {
		return uint32(-int64(hash))
	}
	return uint32(hash)
}

func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
