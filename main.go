package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/wekong/cli"
	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/we"
)

func main() {
	err := cli.Run(context.Background())
	if err != nil {
		log.Error("run failed", slog.Any("error", err))

		if we.Current == we.Native {
			os.Exit(1)
		}
	}
}
