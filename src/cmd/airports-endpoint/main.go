package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/marthasimmons/airports-endpoint/src/internal/commands"
	"github.com/marthasimmons/airports-endpoint/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := commands.NewRootCommand(commands.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}
