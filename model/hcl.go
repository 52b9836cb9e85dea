package model

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeHCL evaluates the top-level attributes of an HCL document. Blocks
// are not allowed, and expressions may not reference variables or
// functions.
func decodeHCL(data []byte, name string) (map[string]any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, ErrDecode.Wrap(diags).With(
			slog.String("source", name),
			slog.String("format", FormatHCL.String()))
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, ErrDecode.Wrap(diags).With(
			slog.String("source", name),
			slog.String("format", FormatHCL.String()))
	}

	out := make(map[string]any, len(attrs))

	for key, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, ErrDecode.Wrap(diags).With(
				slog.String("source", name),
				slog.String("key", key))
		}

		native, err := ctyToNative(val)
		if err != nil {
			return nil, ErrDecode.Wrap(fmt.Errorf("in attribute %q: %w", key, err)).
				With(slog.String("source", name), slog.String("key", key))
		}

		out[key] = native
	}

	return out, nil
}

// ctyToNative converts v to the native shapes produced by the YAML decoder.
// Numbers become *big.Float so no precision is lost before formatting.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		return v.AsBigFloat(), nil

	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, err
		}

		return b, nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		list := make([]any, 0)

		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()

			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}

			list = append(list, native)
		}

		return list, nil

	case ty.IsObjectType() || ty.IsMapType():
		obj := make(map[string]any)

		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()

			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}

			obj[key.AsString()] = native
		}

		return obj, nil

	default:
		return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}
