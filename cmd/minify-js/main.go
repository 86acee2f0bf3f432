// Package main is the entry point for the script minifier.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/squeeze/cmd/internal/commands"
	"go.trai.ch/squeeze/internal/app"
	"go.trai.ch/squeeze/internal/core/domain"
	_ "go.trai.ch/squeeze/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if components.Reporter != nil {
		components.Reporter.SetOutput(stdout, stderr)
	}

	cli := commands.New(components.App, domain.KindScript)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBatchFailed) || errors.Is(err, context.Canceled) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
