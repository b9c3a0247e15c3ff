package cmd

import "github.com/ardnew/wekong/pkg"

// Sentinel errors returned by command handlers.
var (
	// ErrExpression reports calc input that does not compile as an
	// expression.
	ErrExpression = pkg.NewError("invalid expression")

	// ErrEvaluate reports a compiled expression that failed at run time,
	// such as arithmetic on an unset --value.
	ErrEvaluate = pkg.NewError("evaluation failed")
)
