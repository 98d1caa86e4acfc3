// Package loader reads schema and client context documents from disk,
// choosing the decoder by file extension.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/falbricator/internal/ctxlog"
	"github.com/specialistvlad/falbricator/internal/hcl"
	"github.com/specialistvlad/falbricator/internal/schema"
	"github.com/specialistvlad/falbricator/internal/value"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Load reads the schema document at path. Supported extensions are .json,
// .yaml, .yml and .hcl.
func Load(ctx context.Context, path string) (*schema.Input, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading schema.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	var in *schema.Input
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		in, err = schema.Parse(data)
	case ".yaml", ".yml":
		in = &schema.Input{}
		if err = yaml.Unmarshal(data, in); err != nil {
			err = fmt.Errorf("failed to parse schema: %w", err)
		}
	case ".hcl":
		in, err = hcl.Parse(ctx, data, path)
	default:
		return nil, fmt.Errorf("%w '%s': %s", ErrUnsupportedFormat, ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("Schema loaded.", "path", path, "profiles", in.Profiles.Len(), "fields", in.Fields.Len())
	return in, nil
}

// LoadContext reads a client context object from a .json, .yaml or .yml
// file.
func LoadContext(ctx context.Context, path string) (*value.Object, error) {
	ctxlog.FromContext(ctx).Debug("Loading client context.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client context: %w", err)
	}

	var v any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		v, err = value.ParseJSON(data)
	case ".yaml", ".yml":
		var node yaml.Node
		if err = yaml.Unmarshal(data, &node); err == nil {
			v, err = value.DecodeYAML(&node)
		}
	default:
		return nil, fmt.Errorf("%w '%s': %s", ErrUnsupportedFormat, ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse client context: %w", path, err)
	}

	obj, ok := v.(*value.Object)
	if !ok || obj == nil {
		return nil, fmt.Errorf("%s: client context must be an object (got %s)", path, value.TypeName(v))
	}
	return obj, nil
}
