package we

import "github.com/alecthomas/kong"

// Parse builds a T from the arguments of the current target.
// T must be a struct type describing a kong grammar.
//
// When the arguments ask for help or do not fit the grammar, the rendered
// text is shown. A native program then exits. A web program continues, and
// Parse returns the zero value of T.
func Parse[T any](options ...kong.Option) T {
	return parseWith[T](current(), options)
}

// TryParse is like [Parse] but shows nothing and never exits. Help, version,
// and errors are returned as a [*Failure].
func TryParse[T any](options ...kong.Option) (T, error) {
	return tryParseWith[T](current(), options)
}

// Matches parses the arguments of the current target against grammar, which
// must be a pointer to a struct, and returns the resulting kong context.
//
// Output and exit behave as in [Parse]. A web program gets a placeholder
// context whose Error field is set; see the package documentation.
func Matches(grammar any, options ...kong.Option) *kong.Context {
	return current().matches(grammar, options)
}

// TryMatches is like [Matches] but shows nothing and never exits.
func TryMatches(grammar any, options ...kong.Option) (*kong.Context, error) {
	return current().tryMatches(grammar, options)
}

// PrintHelp shows the summary help for grammar as informational text.
func PrintHelp(grammar any, options ...kong.Option) error {
	return current().printHelp(grammar, true, options)
}

// PrintLongHelp shows the full help for grammar, including every flag and
// command, as informational text.
func PrintLongHelp(grammar any, options ...kong.Option) error {
	return current().printHelp(grammar, false, options)
}

func parseWith[T any](e environment, options []kong.Option) T {
	var grammar T

	if out := e.parse(&grammar, options); out.fail != nil {
		e.deliver(out.fail)

		var zero T

		return zero
	}

	return grammar
}

func tryParseWith[T any](e environment, options []kong.Option) (T, error) {
	var grammar T

	if out := e.parse(&grammar, options); out.fail != nil {
		var zero T

		return zero, out.fail
	}

	return grammar, nil
}

func (e environment) matches(grammar any, options []kong.Option) *kong.Context {
	out := e.parse(grammar, options)
	if out.fail != nil {
		e.deliver(out.fail)

		return &kong.Context{Kong: out.parser, Error: out.fail}
	}

	return out.ctx
}

func (e environment) tryMatches(
	grammar any,
	options []kong.Option,
) (*kong.Context, error) {
	out := e.parse(grammar, options)
	if out.fail != nil {
		return nil, out.fail
	}

	return out.ctx, nil
}
