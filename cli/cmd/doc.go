// Package cmd implements the commands of the wekong demo program.
//
// Commands write their results through a [sink.Sink], so the same command
// prints to standard output natively and to the console in a browser.
package cmd
