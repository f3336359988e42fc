// Command serieslog records work sessions and their series counts to a CSV
// file.
//
// Usage:
//
//	serieslog [flags]              run the interactive logger
//	serieslog status [flags]       show whether a session is open
//	serieslog list [--limit N]     print recorded sessions
//	serieslog export PATH          write a JSON snapshot of the log
//
// Flags:
//
//	-f, --file string    CSV log file (default from config, else log.csv)
//	-c, --config string  config file (default .serieslog.yaml)
//	    --log string     write debug logs to this file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "serieslog: %v\n", err)
		os.Exit(1)
	}
}
