package monitoring

import (
	"log/slog"
	"os"
	"time"
)

// Logger provides structured JSON logging with domain helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new JSON logger.
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{Logger: slog.New(handler)}
}

// RequestLogger logs HTTP request details.
func (l *Logger) RequestLogger(method, path, ip string, statusCode int, duration time.Duration) {
	l.Info("HTTP Request",
		"method", method,
		"path", path,
		"ip", ip,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
	)
}

// SubmissionLogger logs a scored quiz submission.
func (l *Logger) SubmissionLogger(recordID, badge string, matchPercentage int, compatibleA, compatibleB bool) {
	l.Info("Submission Scored",
		"record_id", recordID,
		"badge", badge,
		"match_percentage", matchPercentage,
		"compatible_engineering", compatibleA,
		"compatible_business", compatibleB,
	)
}

// APIErrorLogger logs API errors with request context.
func (l *Logger) APIErrorLogger(err error, method, path, ip string, statusCode int) {
	l.Error("API Error",
		"error", err.Error(),
		"method", method,
		"path", path,
		"ip", ip,
		"status_code", statusCode,
	)
}
