//go:build pprof && !js

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Enabled reports whether profiling is compiled in.
const Enabled = true

var modes = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Modes returns the supported profiling modes in sorted order.
var Modes = sync.OnceValue(func() []string {
	return slices.Sorted(maps.Keys(modes))
})

func start(s Session) Stopper {
	mode, ok := modes[s.mode]
	if !ok {
		return nil
	}

	opts := []func(*profile.Profile){mode, profile.NoShutdownHook}

	if s.dir != "" {
		opts = append(opts, profile.ProfilePath(s.dir))
	}

	if s.quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...)
}
