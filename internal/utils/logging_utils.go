package utils

import (
	"context"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// GenerateTraceId returns a fresh trace id for one request.
func GenerateTraceId() string {
	return uuid.New().String()
}

// ExtractServiceName returns the service tag attached to every log entry.
func ExtractServiceName() string {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "starwars-blog"
	}
	return service
}

// LogEntry dispatches a message to the entry at the given level.
func LogEntry(entry *log.Entry, level, message string) {
	switch level {
	case "debug":
		entry.Debug(message)
	case "info":
		entry.Info(message)
	case "warn":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	case "fatal":
		entry.Fatal(message)
	default:
		entry.Info(message)
	}
}

// LogMessage logs a message outside any request scope.
func LogMessage(level, message string) {
	entry := log.WithFields(log.Fields{
		"service": ExtractServiceName(),
	})
	LogEntry(entry, level, message)
}

// LogMessageWithFields logs a message with the request's trace id attached.
func LogMessageWithFields(ctx context.Context, level, message string) {
	traceId, _ := ctx.Value(TraceIdKey.String()).(string)
	entry := log.WithFields(log.Fields{
		"traceId": traceId,
		"service": ExtractServiceName(),
	})
	LogEntry(entry, level, message)
}

// LogMessageWithFieldsAndError logs a message and the underlying error with
// the request's trace id attached.
func LogMessageWithFieldsAndError(ctx context.Context, level, message string, err error) {
	LogMessageWithFields(ctx, level, message+": "+err.Error())
}
