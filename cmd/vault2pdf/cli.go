package main

import (
	"context"
	"fmt"
)

// run dispatches to a subcommand or the default convert flow and
// returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(env.Stdout, "vault2pdf %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[1:], env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(args[1:], env)
	}

	if err := runConvert(ctx, args, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
