//go:build pprof && !js

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/pkg"
	"github.com/ardnew/wekong/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling."        placeholder:"${enum}"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory." type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(pkg.CacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (pprof)"}
}

// start begins profiling when a mode was given. The returned function
// stops it.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	log.DebugContext(ctx, "pprof requested",
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)

	return profile.New(
		profile.WithMode(f.Mode),
		profile.WithDir(f.Dir),
		profile.WithQuiet(true),
	).Start().Stop
}
