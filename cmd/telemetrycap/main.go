package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"telemetrycap/internal/cli"
	"telemetrycap/internal/global"
	"telemetrycap/internal/lifecycle"
	"telemetrycap/internal/logctx"
)

func main() {
	global.CmdOpts = cli.DefineOptions()

	args := os.Args
	commandFlags := flag.NewFlagSet(args[0], flag.ExitOnError)
	cli.SetGlobalArguments(commandFlags)

	commandFlags.Usage = func() {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
	}
	if len(args) < 2 {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}

	commandFlags.Parse(args[1:])

	// Retrieve command and args
	command := args[1]
	args = args[2:]

	// Setting global logging
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logctx.NewLogger("global", global.Verbosity, ctx.Done()) // New logger tied to global
	ctx = logctx.WithLogger(ctx, logger)                               // Add logger to global ctx
	logctx.StartWatcher(logger, os.Stdout)                             // Send received output to stdout

	// Interrupts stop the running capture session cleanly
	go lifecycle.SignalHandler(ctx, cancel)

	// Process commands
	switch command {
	case "capture":
		cli.CaptureMode(ctx, command, args)
	case "version":
		if len(args) > 0 && (args[0] == "--verbosity" || args[0] == "-v") {
			fmt.Printf("TelemetryCap %s\n", global.ProgVersion)
			fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		} else {
			fmt.Println(global.ProgVersion)
		}
	default:
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}

	// Finish up any stdout writes for global logger
	cancel()
	logger.Wake()
	logger.Wait()
}
