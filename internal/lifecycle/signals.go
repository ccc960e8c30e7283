// Process lifecycle handling for the capture daemon
package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"telemetrycap/internal/global"
	"telemetrycap/internal/logctx"
)

// Handles all incoming signals from external sources.
// Initiates capture shutdown via the supplied cancel.
func SignalHandler(ctx context.Context, cancel context.CancelFunc) {
	// Channel for handling interrupt signals
	sigChan := make(chan os.Signal, 10)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	for {
		// Blocking
		select {
		case <-ctx.Done():
			return
		case sig := <-sigChan:
			logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Received signal: %v", sig)
			cancel()
			return
		}
	}
}
