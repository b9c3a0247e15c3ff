package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
)

// Prefix returns the base name used for configuration and cache
// directories.
//
// It is the base name of the executable, without extension, after these
// substitutions:
//   - "__debug_bin1234" (dlv default output) becomes [Name]
//   - leading dots are removed
//
// A js/wasm build has no executable path and always uses [Name].
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		if runtime.GOOS == "js" {
			return Name
		}

		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))
		id = regexp.MustCompile(`^__debug_bin\d*$`).ReplaceAllString(id, Name)
		id = strings.TrimLeft(id, ".")

		if id == "" {
			return Name
		}

		return id
	},
)

// ConfigDir returns the per-user configuration directory for [Prefix].
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserConfigDir, ".config"), Prefix())
	},
)

// CacheDir returns the per-user cache directory for [Prefix].
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserCacheDir, ".cache"), Prefix())
	},
)

// ConfigPath joins elem onto [ConfigDir].
func ConfigPath(elem ...string) string {
	return filepath.Join(append([]string{ConfigDir()}, elem...)...)
}

// userDir returns the result of lookup, falling back to a hidden directory
// in the user's home, then the working directory.
func userDir(lookup func() (string, error), hidden string) string {
	if dir, err := lookup(); err == nil {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, hidden)
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}
