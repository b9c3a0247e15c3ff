// Package cli is the command line interface of the wekong demo program.
//
// The same grammar runs natively and in a browser. Natively:
//
//	wekong --value=4 calc 'value * 2'
//	wekong tokens 'https://example.org/demo?--value&4&calc&value*2'
//	wekong explore
//
// Built with GOOS=js GOARCH=wasm and loaded in a page, the page URL is the
// command line:
//
//	https://example.org/wekong/?--value&4&calc&value*2
//
// # Configuration
//
// Native builds read flag values from config.json, config.yaml, and
// config.hcl in the user configuration directory (for example
// ~/.config/wekong). Keys are flag names; see package config.
//
// # Logging Options
//
//   - --log-level: trace, debug, info, warn, error
//   - --log-format: text, json
//   - --log-time-layout: a time layout name such as RFC3339, or none
//   - --[no-]log-caller, --[no-]log-pretty
//
// # Profiling Options
//
// Available only in native builds made with the pprof tag:
//
//	go build -tags pprof .
//	wekong --pprof-mode=cpu --pprof-dir=/tmp/wekong calc 1+1
package cli
