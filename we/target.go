package we

// Target identifies the kind of environment a build runs in.
type Target int

const (
	// Native is a process with an argument list, standard streams, and an
	// exit status.
	Native Target = iota
	// Web is a browser page. Arguments come from its URL and there is
	// nothing to exit.
	Web
)

func (t Target) String() string {
	switch t {
	case Native:
		return "native"
	case Web:
		return "web"
	default:
		return "unknown"
	}
}
