package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext returns a context that is canceled on the first stop signal.
// onSignal, when non-nil, is called with the signal before cancellation.
// Call stop() to release resources.
func notifyContext(parent context.Context, onSignal func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, stopSignals...)

	go func() {
		select {
		case sig := <-ch:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(ch)
		cancel()
	}
}
