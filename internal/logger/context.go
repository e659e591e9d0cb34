package logger

import (
	"context"
	"log/slog"

	"jobmarket_backend/pkg/contextkeys"
)

// WithRequestID stores the request id on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, requestID)
}

// WithUserID stores the authenticated user id on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

type contextKey string

const userIDKey contextKey = "user_id"

// GetRequestID extracts the request id, if present.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(contextkeys.RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetUserID extracts the user id, if present.
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}

// FromContext returns a logger pre-populated with request_id / user_id
// fields found on the context.
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()

	var fields []any
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if userID := GetUserID(ctx); userID != "" {
		fields = append(fields, "user_id", userID)
	}

	if len(fields) > 0 {
		l = l.With(fields...)
	}
	return l
}

func CtxDebug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError logs an error message with the error attached as a field.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	fields := append([]any{"error", err.Error()}, args...)
	FromContext(ctx).Error(msg, fields...)
}
