package util

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// InterruptContext returns a context canceled on the first SIGINT/SIGTERM.
// A second signal exits at once after removing any partial output file.
func InterruptContext(parent context.Context, outputPath string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
		case <-ctx.Done():
			signal.Stop(sig)
			return
		}

		fmt.Fprintln(os.Stderr, "\nInterrupt received. Stopping...")
		cancel()

		<-sig
		RemovePartial(outputPath)
		fmt.Fprintln(os.Stderr, "\nExiting due to interrupt.")
		os.Exit(1)
	}()

	return ctx, func() {
		signal.Stop(sig)
		cancel()
	}
}

// RemovePartial deletes the temporary file left by WriteOutput for path.
func RemovePartial(path string) {
	if path == "" {
		return
	}

	if err := os.Remove(partialPath(path)); err == nil {
		fmt.Fprintf(os.Stderr, "Removed %s\n", partialPath(path))
	}
}
