//go:build !js

package sink

import "os"

// Strategy names the output strategy linked into this build.
const Strategy = "stream"

// Default returns the output sink of the build target:
// [Stream] over standard output and standard error.
func Default() Sink { return Stream(os.Stdout, os.Stderr) }
