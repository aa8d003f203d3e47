// antifragile classifies payoff functions as fragile, robust or antifragile.
//
// Usage:
//
//	antifragile classify --expr "x*x" --at 10 --delta 1 [--tolerance 1e-9] [-o text|json|yaml]
//	antifragile classify --model usl --param lambda=1000,alpha=0.05,beta=0.01 --at 8
//	antifragile survey -f systems.yaml [--workers 4] [-o text|json|yaml]
//	antifragile triad [name|0|1|2]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
