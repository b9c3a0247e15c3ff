//go:build !pprof || js

package profile

// Enabled reports whether profiling is compiled in.
const Enabled = false

// Modes returns nothing; profiling is not compiled in.
func Modes() []string { return nil }

func start(Session) Stopper { return nil }
