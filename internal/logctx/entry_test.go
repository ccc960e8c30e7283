package logctx

import (
	"context"
	"testing"

	"telemetrycap/internal/global"
)

func TestLogEvent(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	logger := NewLogger(global.NSTest, 2, done)
	ctx := WithLogger(context.Background(), logger)

	tests := []struct {
		name          string
		logLevel      int
		eventLevel    int
		severity      string
		message       string
		vars          []any
		expectEvents  int
		expectMessage string
	}{
		{
			name:          "event level <= print level is logged",
			logLevel:      2,
			eventLevel:    1,
			severity:      global.InfoLog,
			message:       "hello world",
			expectEvents:  1,
			expectMessage: "hello world",
		},
		{
			name:         "event level > print level is dropped",
			logLevel:     1,
			eventLevel:   3,
			severity:     global.InfoLog,
			message:      "should not appear",
			expectEvents: 0,
		},
		{
			name:          "error severity bypasses level filtering",
			logLevel:      0,
			eventLevel:    5,
			severity:      global.ErrorLog,
			message:       "write failed",
			expectEvents:  1,
			expectMessage: "write failed",
		},
		{
			name:          "formatted message with vars",
			logLevel:      3,
			eventLevel:    2,
			severity:      global.InfoLog,
			message:       "frames=%d",
			vars:          []any{42},
			expectEvents:  1,
			expectMessage: "frames=42",
		},
		{
			name:          "no formatting when no format verbs",
			logLevel:      3,
			eventLevel:    2,
			severity:      global.InfoLog,
			message:       "log this message",
			vars:          []any{123},
			expectEvents:  1,
			expectMessage: "log this message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset queue
			logger.mutex.Lock()
			logger.queue = logger.queue[:0]
			logger.PrintLevel = tt.logLevel
			logger.mutex.Unlock()

			LogEvent(ctx, tt.eventLevel, tt.severity, tt.message, tt.vars...)

			logger.mutex.Lock()
			defer logger.mutex.Unlock()

			if len(logger.queue) != tt.expectEvents {
				t.Fatalf("expected %d events, got %d", tt.expectEvents, len(logger.queue))
			}
			if tt.expectEvents > 0 && logger.queue[0].Message != tt.expectMessage {
				t.Fatalf("expected message %q, got %q", tt.expectMessage, logger.queue[0].Message)
			}
		})
	}
}

func TestLogEventWithoutLogger(t *testing.T) {
	// Contexts without a logger must not panic
	LogEvent(context.Background(), global.VerbosityStandard, global.InfoLog, "dropped")
}

func TestGetLoggerMissing(t *testing.T) {
	logger := GetLogger(context.Background())
	if logger != nil {
		t.Fatalf("expected nil logger, got %v", logger)
	}
}
