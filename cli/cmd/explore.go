package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wekong/cli/cmd/explore"
	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/pkg"
)

// Explore tokenizes URLs interactively in the terminal.
type Explore struct {
	URL     string `arg:"" help:"Initial URL."                      optional:""`
	History string `       help:"History file (empty to disable)." default:"${exploreHistory}" type:"path"`
}

// HistoryIdentifier is the kong variable holding the default history file.
const HistoryIdentifier = "exploreHistory"

// DefaultHistory returns the default history file path.
func DefaultHistory() string {
	return filepath.Join(pkg.CacheDir(), "explore.history")
}

// Run executes the explore command.
func (e *Explore) Run(ctx context.Context, ktx *kong.Context) error {
	words := Vocabulary(ktx.Model)

	log.DebugContext(ctx, "explore",
		slog.String("url", e.URL),
		slog.String("history", e.History),
		slog.Int("vocabulary", len(words)),
	)

	return explore.Run(ctx, explore.Config{
		URL:     e.URL,
		Words:   words,
		History: e.History,
	})
}

// Vocabulary returns the flag and command names of app in sorted order,
// flags with their "--" prefix.
func Vocabulary(app *kong.Application) []string {
	var words []string

	for _, group := range app.AllFlags(true) {
		for _, flag := range group {
			words = append(words, "--"+flag.Name)

			switch flag.Tag.Negatable {
			case "":
			case "_":
				words = append(words, "--no-"+flag.Name)
			default:
				words = append(words, "--"+flag.Tag.Negatable)
			}
		}
	}

	for _, node := range app.Leaves(true) {
		if node.Type == kong.CommandNode {
			words = append(words, node.Name)
		}
	}

	slices.Sort(words)

	return slices.Compact(words)
}
