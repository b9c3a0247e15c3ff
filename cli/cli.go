package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wekong/cli/cmd"
	"github.com/ardnew/wekong/config"
	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/pkg"
	"github.com/ardnew/wekong/sink"
	"github.com/ardnew/wekong/source"
	"github.com/ardnew/wekong/we"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// CLI is the grammar of the wekong demo program.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Globals cmd.Globals `embed:""`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Tokens  cmd.Tokens  `cmd:"" help:"Print the arguments encoded in a URL."`
	Calc    cmd.Calc    `cmd:"" help:"Evaluate an expression."`
	Explore cmd.Explore `cmd:"" help:"Tokenize URLs interactively."`
}

// matcher is the signature of [we.Matches].
type matcher func(grammar any, options ...kong.Option) *kong.Context

// Run parses the arguments of the current target and runs the selected
// command.
//
// Help, version, and argument errors are shown by [we.Matches]. A native
// program has exited by then; a web program returns nil.
func Run(ctx context.Context) error {
	base := ""
	if we.Current == we.Native {
		base = pkg.ConfigPath(baseConfig)
	}

	return run(ctx, we.Matches, source.Default(), sink.Default(), base)
}

// run is Run with its environment injected. Configuration files named
// base plus a format extension are loaded unless base is empty.
func run(
	ctx context.Context,
	match matcher,
	src source.Source,
	out sink.Sink,
	base string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logging flags take effect before the parse, wherever they appear.
	if args, err := src(); err == nil {
		cli.Log.scan(args)
	}

	ktx := match(&cli, cli.options(ctx, src, out, base)...)
	if ktx.Error != nil {
		log.DebugContext(ctx, "nothing to run", slog.Any("error", ktx.Error))

		return nil
	}

	cli.Log.start(ctx)

	// No-op unless built with the pprof tag and a mode was given.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(&cli.Globals)
}

func (c *CLI) options(
	ctx context.Context,
	src source.Source,
	out sink.Sink,
	base string,
) []kong.Option {
	opts := []kong.Option{
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.ExplicitGroups([]kong.Group{c.Log.group(), c.Pprof.group()}),
		kong.BindSingletonProvider(func() context.Context { return ctx }),
		kong.Bind(src),
		kong.BindTo(out, (*sink.Sink)(nil)),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			Summary:             true,
			Tree:                true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":             pkg.Version(),
			cmd.HistoryIdentifier: cmd.DefaultHistory(),
		}.
			CloneWith(c.Log.vars()).
			CloneWith(c.Pprof.vars()),
	}

	if base != "" {
		opts = append(opts,
			kong.Configuration(config.Lenient(kong.JSON), base+".json"),
			kong.Configuration(config.Lenient(config.YAML), base+".yaml", base+".yml"),
			kong.Configuration(config.Lenient(config.HCL), base+".hcl"),
		)
	}

	return opts
}
