// Package config reads flag values for a kong parser from configuration
// documents.
//
// [YAML] and [HCL] are [kong.ConfigurationLoader] functions:
//
//	kong.Configuration(config.YAML, "~/.config/wekong/config.yaml")
//	kong.Configuration(config.HCL, "~/.config/wekong/config.hcl")
//
// Top-level keys name flags. Hyphens and underscores are interchangeable,
// and nested maps (or HCL blocks) join their keys with a hyphen, so all of
// these set --log-level:
//
//	log-level: debug
//	log_level: debug
//	log: {level: debug}
//
// Numbers are passed to kong as text and lists as lists. Values given on
// the command line override the document.
package config

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wekong/log"
)

// Values is a [kong.Resolver] over a flattened document.
type Values map[string]any

// Validate implements [kong.Resolver].
func (Values) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver]. It returns nil for flags the document
// does not mention.
func (v Values) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := v.Lookup(flag.Name); ok {
		return value, nil
	}

	return nil, nil
}

// Lookup returns the value for the flag named name.
func (v Values) Lookup(name string) (any, bool) {
	value, ok := v[key(name)]

	return value, ok
}

// Keys returns the normalized keys in sorted order.
func (v Values) Keys() []string { return slices.Sorted(maps.Keys(v)) }

// Lenient wraps load so that an unreadable document is logged and ignored
// instead of failing parser construction.
func Lenient(load kong.ConfigurationLoader) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		res, err := load(r)
		if err != nil {
			log.Warn("configuration ignored", slog.Any("error", err))

			return Values{}, nil
		}

		return res, nil
	}
}

func key(name string) string { return strings.ReplaceAll(name, "_", "-") }

// flatten copies doc into out, joining nested keys with a hyphen.
func flatten(out Values, prefix string, doc map[string]any) {
	for k, value := range doc {
		name := key(prefix + k)

		switch value := value.(type) {
		case nil:
		case map[string]any:
			flatten(out, name+"-", value)
		default:
			out[name] = scalar(value)
		}
	}
}

// scalar converts numbers to text, which kong's mappers parse for any
// numeric flag type.
func scalar(value any) any {
	switch value := value.(type) {
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return value
	}
}
