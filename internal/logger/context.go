package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	requestIDKey  ctxKey = "request_id"
	businessIDKey ctxKey = "business_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithBusinessID tags every log line of the request with the tenant it acts on.
func WithBusinessID(ctx context.Context, businessID string) context.Context {
	return context.WithValue(ctx, businessIDKey, businessID)
}

func BusinessIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(businessIDKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns logger with request_id and business_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	if businessID := BusinessIDFrom(ctx); businessID != "" {
		l = l.With(zap.String("business_id", businessID))
	}
	return l
}
