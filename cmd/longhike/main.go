package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/longhike"
	"github.com/katalvlaran/longhike/dfs"
	"github.com/katalvlaran/longhike/internal/cli"
	"github.com/katalvlaran/longhike/internal/config"
	"github.com/katalvlaran/longhike/internal/ctxlog"
)

// main is the entrypoint for the longhike tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
// Results go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	base, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	opts, shouldExit, err := cli.Parse(args, outW, base)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := ctxlog.New(logW, opts.LogLevel, opts.LogFormat)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	for _, policy := range opts.Policies {
		n, err := solve(ctx, opts.MapPath, policy, opts.Config)
		if err != nil {
			return err
		}
		fmt.Fprintf(outW, "%s: %d\n", label(policy), n)
	}
	return nil
}

// solve runs one search under the configured deadline.
func solve(ctx context.Context, path string, policy dfs.Policy, cfg config.Config) (int, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	res, err := longhike.Solve(ctx, path, policy)
	if err != nil {
		return 0, err
	}
	return res.Length, nil
}

// label names a policy in the tool's output.
func label(p dfs.Policy) string {
	if p == dfs.SlopesIgnored {
		return "without slopes"
	}
	return "with slopes"
}
