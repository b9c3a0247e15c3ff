package profile

import (
	"log/slog"

	"github.com/ardnew/wekong/log"
)

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Session describes one profiling run. The zero value profiles nothing.
type Session struct {
	mode  string
	dir   string
	quiet bool
}

// Option modifies a Session.
type Option func(Session) Session

// New returns a Session with opts applied in order.
func New(opts ...Option) Session {
	var s Session

	for _, opt := range opts {
		if opt != nil {
			s = opt(s)
		}
	}

	return s
}

// WithMode selects one of [Modes]. An empty or unknown mode disables
// profiling.
func WithMode(mode string) Option {
	return func(s Session) Session {
		s.mode = mode

		return s
	}
}

// WithDir sets the directory profile files are written to.
func WithDir(dir string) Option {
	return func(s Session) Session {
		s.dir = dir

		return s
	}
}

// WithQuiet suppresses the profiler's own messages on standard error.
func WithQuiet(quiet bool) Option {
	return func(s Session) Session {
		s.quiet = quiet

		return s
	}
}

// Mode returns the selected mode.
func (s Session) Mode() string { return s.mode }

// Dir returns the output directory.
func (s Session) Dir() string { return s.dir }

// Start begins profiling. Stop on the result is always safe to call, even
// when nothing was started.
func (s Session) Start() Stopper {
	if s.mode == "" {
		return noop{}
	}

	p := start(s)
	if p == nil {
		log.Warn("profiling unavailable",
			slog.String("mode", s.mode),
			slog.Bool("enabled", Enabled),
		)

		return noop{}
	}

	log.Debug("profiling started",
		slog.String("mode", s.mode),
		slog.String("dir", s.dir),
	)

	return stopper{Stopper: p, session: s}
}

type stopper struct {
	Stopper

	session Session
}

func (s stopper) Stop() {
	s.Stopper.Stop()

	log.Debug("profiling stopped",
		slog.String("mode", s.session.mode),
		slog.String("dir", s.session.dir),
	)
}

type noop struct{}

func (noop) Stop() {}
