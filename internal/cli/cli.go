// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's run options.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/longhike/dfs"
	"github.com/katalvlaran/longhike/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the validated result of parsing the command line.
type Options struct {
	MapPath  string
	Policies []dfs.Policy
	config.Config
}

// Parse processes command-line arguments on top of the environment
// configuration base. It returns populated Options, a boolean indicating if
// the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, base config.Config) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("longhike", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
longhike - find the longest hike across a trail map.

Usage:
  longhike [options] MAP_FILE

Arguments:
  MAP_FILE
    Text map: '#' forest, '.' path, '^' 'v' '<' '>' slopes, one row per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	policyFlag := flagSet.String("policy", "both", "Which hike to compute. Options: 'slopes', 'noslopes', 'both'.")
	timeoutFlag := flagSet.Duration("timeout", base.Timeout, "Abort each search after this long. 0 disables the limit.")
	logFormatFlag := flagSet.String("log-format", base.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", base.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No map path provided, printing usage.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing MAP_FILE argument"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one MAP_FILE argument"}
	}

	policies, err := parsePolicies(*policyFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Config{
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
		Timeout:   *timeoutFlag,
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{MapPath: flagSet.Arg(0), Policies: policies, Config: cfg}
	slog.Debug("CLI parser finished successfully.", "options", opts)
	return opts, false, nil
}

// parsePolicies maps the -policy flag to the searches to run, in output order.
func parsePolicies(s string) ([]dfs.Policy, error) {
	switch strings.ToLower(s) {
	case "slopes":
		return []dfs.Policy{dfs.SlopesEnabled}, nil
	case "noslopes":
		return []dfs.Policy{dfs.SlopesIgnored}, nil
	case "both", "":
		return []dfs.Policy{dfs.SlopesEnabled, dfs.SlopesIgnored}, nil
	}
	return nil, fmt.Errorf("invalid policy %q: must be 'slopes', 'noslopes', or 'both'", s)
}
