package config

import (
	"errors"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/pkg"
)

// YAML is a [kong.ConfigurationLoader] for YAML documents. An empty
// document sets nothing.
func YAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, pkg.ErrConfig.Wrap(err).With(slog.String("format", "yaml"))
	}

	values := Values{}
	flatten(values, "", doc)

	log.Trace("configuration loaded",
		slog.String("format", "yaml"),
		slog.Any("keys", values.Keys()),
	)

	return values, nil
}
