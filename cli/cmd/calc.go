package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/sink"
)

// Calc evaluates an expression and prints the result.
//
// The words of the expression are joined with spaces, so in a URL each
// '&'-separated segment may hold part of it:
//
//	?--value&4&calc&value*2&+&1
type Calc struct {
	Expr []string `arg:"" help:"Expression to evaluate." name:"expr"`
}

// Run executes the calc command.
func (c *Calc) Run(ctx context.Context, g *Globals, out sink.Sink) error {
	src := strings.Join(c.Expr, " ")

	// An unset value is nil, which fails only the expressions that use it.
	env := map[string]any{}
	if g != nil && g.Value != nil {
		env["value"] = *g.Value
	}

	program, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return ErrExpression.Wrap(err).With(slog.String("expr", src))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return ErrEvaluate.Wrap(err).With(slog.String("expr", src))
	}

	log.DebugContext(ctx, "calc",
		slog.String("expr", src),
		slog.Any("result", result),
	)

	out.Emit(fmt.Sprint(result), sink.Info)

	return nil
}
