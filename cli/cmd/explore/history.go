package explore

import (
	"bufio"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// maxHistory bounds the number of entries kept on disk.
const maxHistory = 500

// History is an ordered list of previously entered URLs, oldest first,
// persisted one per line.
type History struct {
	mu      sync.RWMutex
	path    string
	entries []string
}

// NewHistory returns a History stored at path. An empty path keeps the
// history in memory only.
func NewHistory(path string) *History { return &History{path: path} }

// Load replaces the entries with the contents of the history file.
// A missing file is an empty history.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil

	if h.path == "" {
		return nil
	}

	file, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			h.entries = append(h.entries, line)
		}
	}

	return scanner.Err()
}

// Add appends entry unless it is blank or repeats the latest entry.
func (h *History) Add(entry string) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}

	h.entries = append(h.entries, entry)
	if n := len(h.entries); n > maxHistory {
		h.entries = slices.Clone(h.entries[n-maxHistory:])
	}
}

// Save writes the entries to the history file, creating its directory.
func (h *History) Save() error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o700); err != nil {
		return err
	}

	var b strings.Builder

	for _, e := range h.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}

	return os.WriteFile(h.path, []byte(b.String()), 0o600)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// At returns entry i, or "" when i is out of range.
func (h *History) At(i int) string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return ""
	}

	return h.entries[i]
}
