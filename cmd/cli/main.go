package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/pwchain/internal/app"
	"github.com/specialistvlad/pwchain/internal/cli"
)

// main is the entrypoint for the pwchain application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Passwords go to outW, everything else to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// A panicking strategy is a programmer error; report it instead of
	// crashing with a stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	pwApp, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := pwApp.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if appConfig.ListStrategies {
		return printListing(ctx, outW, pwApp)
	}
	return pwApp.Run(ctx)
}

// printListing writes the registered strategies and the known word lists.
func printListing(ctx context.Context, w io.Writer, a *app.App) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tARGUMENTS\tDESCRIPTION")
	for _, s := range a.Strategies() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, strings.Join(s.Arguments, " "), s.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lists, err := a.WordLists(ctx)
	if err != nil {
		return fmt.Errorf("failed to list word lists: %w", err)
	}
	_, err = fmt.Fprintf(w, "\nWORD LISTS: %s\n", strings.Join(lists, ", "))
	return err
}
