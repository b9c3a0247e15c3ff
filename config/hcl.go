package config

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/pkg"
)

// HCL is a [kong.ConfigurationLoader] for HCL native syntax. Attributes set
// flags; a block contributes its type as a key prefix:
//
//	value = 2.5
//	log {
//	  level  = "debug"
//	  pretty = false
//	}
//
// Expressions are evaluated without variables or functions.
func HCL(r io.Reader) (kong.Resolver, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrConfig.Wrap(err).With(slog.String("format", "hcl"))
	}

	file, diags := hclparse.NewParser().ParseHCL(src, "config.hcl")
	if diags.HasErrors() {
		return nil, hclError(diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, pkg.ErrConfig.Wrapf("unexpected body %T", file.Body)
	}

	values := Values{}
	if err := walk(values, "", body); err != nil {
		return nil, err
	}

	log.Trace("configuration loaded",
		slog.String("format", "hcl"),
		slog.Any("keys", values.Keys()),
	)

	return values, nil
}

func walk(out Values, prefix string, body *hclsyntax.Body) error {
	for name, attr := range body.Attributes {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return hclError(diags)
		}

		doc, err := goValue(v)
		if err != nil {
			return pkg.ErrConfig.Wrap(err).With(
				slog.String("format", "hcl"),
				slog.String("attribute", prefix+name),
			)
		}

		flatten(out, prefix, map[string]any{name: doc})
	}

	for _, block := range body.Blocks {
		if err := walk(out, key(prefix+block.Type)+"-", block.Body); err != nil {
			return err
		}
	}

	return nil
}

// goValue converts v to the types encoding/json produces, with numbers
// outside of lists kept as text.
func goValue(v cty.Value) (any, error) {
	switch {
	case v.IsNull() || !v.IsKnown():
		return nil, nil
	case v.Type() == cty.String:
		return v.AsString(), nil
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('f', -1), nil
	case v.Type() == cty.Bool:
		return v.True(), nil
	}

	raw, err := ctyjson.SimpleJSONValue{Value: v}.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func hclError(diags hcl.Diagnostics) error {
	return pkg.ErrConfig.Wrap(diags).With(
		slog.String("format", "hcl"),
		slog.Int("diagnostics", len(diags)),
	)
}
