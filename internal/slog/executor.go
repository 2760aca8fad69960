package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/brogergvhs/erosscans/internal/providers"
)

// Ensure LoggingExecutor implements providers.Executor.
var _ providers.Executor = (*LoggingExecutor)(nil)

// LoggingExecutor wraps an Executor with debug logging of every request.
type LoggingExecutor struct {
	next   providers.Executor
	logger *slog.Logger
}

// NewLoggingExecutor creates a new LoggingExecutor.
func NewLoggingExecutor(next providers.Executor, logger *slog.Logger) *LoggingExecutor {
	return &LoggingExecutor{next: next, logger: logger}
}

func (e *LoggingExecutor) Execute(ctx context.Context, req providers.Request) (resp *providers.Response, err error) {
	defer func(begin time.Time) {
		status, size := 0, 0
		if resp != nil {
			status, size = resp.Status, len(resp.Body)
		}
		e.logger.Debug("request",
			"method", req.Method,
			"url", req.URL,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Execute(ctx, req)
}
