// Command habits runs the habit-tracking API and its maintenance tasks.
//
// Usage:
//
//	habits serve
//	habits migrate up|down|status
//	habits cleanup-tokens
//	habits grant-quota --email=user@example.com --habits=5 --categories=2
//
// Configuration is read from the environment (and an optional .env file).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // X-Timezone lookups on images without zoneinfo
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
