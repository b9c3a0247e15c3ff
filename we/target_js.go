//go:build js && wasm

package we

import (
	"github.com/ardnew/wekong/sink"
	"github.com/ardnew/wekong/source"
)

// Current is the target of this build.
const Current = Web

func current() environment {
	return environment{
		target: Web,
		source: source.Default(),
		sink:   sink.Default(),
	}
}
