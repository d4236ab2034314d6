package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
	ErrNoInput        = errors.New("no input specified")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

func main() {
	env := DefaultEnv()
	ctx, stop := notifyContext(context.Background(), func(sig os.Signal) {
		fmt.Fprintf(env.Stderr, "received %s, stopping\n", sig)
	})
	code := runMain(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// runMain dispatches the command line and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	var err error

	switch {
	case isCommand(cmd, "split"):
		err = runSplitCmd(ctx, rest, env)
	case isCommand(cmd, "config"):
		err = runConfigCmd(rest, env)
	case isCommand(cmd, "version", "--version"):
		fmt.Fprintf(env.Stdout, "teisplit %s\n", Version)
	case isCommand(cmd, "help", "-h", "--help"):
		runHelp(rest, env)
	case looksLikeXML(cmd):
		// Bare input file: teisplit file.xml [flags]
		err = runSplitCmd(ctx, args[1:], env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// isCommand reports whether arg matches one of names.
func isCommand(arg string, names ...string) bool {
	for _, n := range names {
		if arg == n {
			return true
		}
	}
	return false
}

// looksLikeXML reports whether arg names an XML file.
func looksLikeXML(arg string) bool {
	return strings.HasSuffix(strings.ToLower(arg), ".xml")
}
