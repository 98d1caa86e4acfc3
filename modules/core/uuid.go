package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/falbricator/internal/generator"
)

// sourceReader feeds bytes drawn from the record's random source to the
// uuid package.
type sourceReader struct {
	ctx *generator.Context
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		f, err := r.ctx.Random()
		if err != nil {
			return i, err
		}
		p[i] = byte(min(math.Floor(f*256), 255))
	}
	return len(p), nil
}

// UUID produces RFC 4122 identifiers from the record's random source.
// `version` is 4 (random, default), 3 (MD5) or 5 (SHA-1); name-based
// versions hash random bytes in the OID namespace. `uppercase` switches the
// hex digits to upper case.
func UUID(cfg generator.Config) (generator.Func, error) {
	upper, err := cfg.Bool("uppercase", false)
	if err != nil {
		return nil, err
	}
	version, err := uuidVersion(cfg)
	if err != nil {
		return nil, err
	}

	return func(ctx *generator.Context) (any, error) {
		src := sourceReader{ctx: ctx}
		var id uuid.UUID
		switch version {
		case 4:
			var err error
			if id, err = uuid.NewRandomFromReader(src); err != nil {
				return nil, fmt.Errorf("can't generate a uuid: %w", err)
			}
		default:
			name := make([]byte, 16)
			if _, err := src.Read(name); err != nil {
				return nil, fmt.Errorf("can't generate a uuid: %w", err)
			}
			if version == 3 {
				id = uuid.NewMD5(uuid.NameSpaceOID, name)
			} else {
				id = uuid.NewSHA1(uuid.NameSpaceOID, name)
			}
		}
		if upper {
			return strings.ToUpper(id.String()), nil
		}
		return id.String(), nil
	}, nil
}

func uuidVersion(cfg generator.Config) (int, error) {
	raw, ok := cfg.Get("version")
	if !ok {
		return 4, nil
	}
	var v string
	switch t := raw.(type) {
	case string:
		v = t
	default:
		v = formatValue(t)
	}
	switch v {
	case "3":
		return 3, nil
	case "4":
		return 4, nil
	case "5":
		return 5, nil
	}
	return 0, fmt.Errorf("can't generate a uuid - unrecognized version (%s) - only allowed are [3, 4, 5]", v)
}
