// Package profile starts and stops runtime profiling with
// [github.com/pkg/profile].
//
// Profiling is compiled in only for native builds with the pprof tag:
//
//	go build -tags pprof .
//	./wekong --pprof-mode=cpu --pprof-dir=/tmp/wekong tokens
//
// Without the tag, [Modes] is empty and every [Session] is a no-op, so
// callers never need build constraints of their own. Analyze the output
// with go tool pprof.
package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`
