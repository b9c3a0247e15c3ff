//go:build !js

package source

import "os"

// Process returns a Source yielding the process argument list, [os.Args].
func Process() Source {
	return func() ([]string, error) {
		return Args(os.Args)()
	}
}

// Default returns the argument source of the build target: [Process].
func Default() Source { return Process() }
