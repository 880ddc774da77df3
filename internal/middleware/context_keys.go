package middleware

import (
	"context"
	"log/slog"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

type ctxKey int

const (
	loggerCtxKey ctxKey = iota
	ownerCtxKey
)

// WithLogger stores the request-scoped logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx returns the request-scoped logger, falling back to the
// process default when none was attached.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithOwner stores the authenticated party in the context.
func WithOwner(ctx context.Context, owner domain.OwnerRef) context.Context {
	return context.WithValue(ctx, ownerCtxKey, owner)
}

// GetOwnerFromCtx returns the authenticated party. The second return is
// false on unauthenticated requests.
func GetOwnerFromCtx(ctx context.Context) (domain.OwnerRef, bool) {
	owner, ok := ctx.Value(ownerCtxKey).(domain.OwnerRef)
	return owner, ok
}
