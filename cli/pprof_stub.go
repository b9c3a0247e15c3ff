//go:build !pprof || js

package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wekong/profile"
)

// pprofConfig has no flags when profiling is not compiled in.
type pprofConfig struct{}

func (pprofConfig) vars() kong.Vars { return kong.Vars{} }

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (build with -tags " + profile.Tag + ")"}
}

func (pprofConfig) start(context.Context) (stop func()) {
	return profile.Session{}.Start().Stop
}
