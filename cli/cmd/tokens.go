package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/sink"
	"github.com/ardnew/wekong/source"
)

// Tokens prints the arguments a URL encodes, one per line with its index.
type Tokens struct {
	URL string `arg:"" help:"URL to tokenize. Defaults to this program's own arguments." optional:""`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context, src source.Source, out sink.Sink) error {
	if t.URL != "" {
		src = source.URL(t.URL)
	}

	args, err := src()
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "tokens",
		slog.Bool("explicit", t.URL != ""),
		slog.Int("count", len(args)),
	)

	var b strings.Builder

	for i, arg := range args {
		fmt.Fprintf(&b, "%d\t%q\n", i, arg)
	}

	out.Emit(b.String(), sink.Info)

	return nil
}
