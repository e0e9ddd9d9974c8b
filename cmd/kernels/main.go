// SPDX-License-Identifier: MIT

// Command kernels runs the reference programs from the command line.
//
//	kernels list
//	kernels run                        # every program
//	kernels run gcd_algorithm new2     # selected programs, in order
//	kernels run --config inputs.yaml   # override literal inputs
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
