package hcl

import (
	"context"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/falbricator/internal/ctxlog"
	"github.com/specialistvlad/falbricator/internal/schema"
	"github.com/specialistvlad/falbricator/internal/value"
)

// sections are the attributes a schema document may set.
var sections = []string{"randomizer", "profiles", "fields", "postprocess"}

// Parse decodes an HCL schema document. filename is used in diagnostics.
func Parse(ctx context.Context, data []byte, filename string) (*schema.Input, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL schema.", "file", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		if !slices.Contains(sections, attr.Name) {
			return nil, fmt.Errorf("HCL file %s: unsupported attribute '%s' at %s", filename, attr.Name, attr.Range)
		}
		ordered = append(ordered, attr)
	}
	slices.SortFunc(ordered, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	doc := value.NewObject()
	for _, attr := range ordered {
		v, diags := exprToValue(attr.Expr, nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("HCL file %s: attribute '%s': %w", filename, attr.Name, diags)
		}
		doc.Set(attr.Name, v)
	}

	in, err := schema.FromValue(doc)
	if err != nil {
		return nil, fmt.Errorf("HCL file %s: %w", filename, err)
	}
	logger.Debug("HCL schema parsed.", "file", filename, "fields", in.Fields.Len())
	return in, nil
}
