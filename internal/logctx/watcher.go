package logctx

import (
	"fmt"
	"io"
)

// Starts a go routine that reads events and writes formatted output to io.Writer.
// Stops when logger.Done is closed.
func StartWatcher(logger *Logger, output io.Writer) {
	logger.wg.Add(1)

	go func() {
		defer logger.wg.Done()

		for {
			logger.mutex.Lock()

			// If done and queue is empty, exit
			if len(logger.queue) == 0 {
				select {
				case <-logger.Done:
					logger.mutex.Unlock()
					return
				default:
				}
			}

			// Wait for events
			for len(logger.queue) == 0 {
				select {
				case <-logger.Done:
					logger.mutex.Unlock()
					return
				default:
					logger.cond.Wait()
				}
			}

			// Pop one event from the front of the queue
			event := logger.queue[0]
			logger.queue = logger.queue[1:]
			logger.mutex.Unlock()

			fmt.Fprintf(output, "%s\n", event.Format())
		}
	}()
}
