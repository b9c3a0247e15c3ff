//go:build !js

package we

import (
	"os"

	"github.com/ardnew/wekong/sink"
	"github.com/ardnew/wekong/source"
)

// Current is the target of this build.
const Current = Native

func current() environment {
	return environment{
		target: Native,
		source: source.Default(),
		sink:   sink.Default(),
		exit:   os.Exit,
	}
}
