package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/roach88/fixtura/internal/cli"
)

// main is the entrypoint for the fixtura command.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	// A failing run has already printed its report and summary.
	if err != nil && !errors.Is(err, cli.ErrTestsFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
