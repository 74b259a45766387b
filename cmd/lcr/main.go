// Command lcr prints random, syntactically valid lambda calculus terms.
//
//	lcr [flags] [expression_count] [min_tokens] [consecutive_count]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	lcrcmd "github.com/vic/lcr/internal/cmd/lcr"
)

func main() {
	cfg, err := lcrcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lcrcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		exitf("Error: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
