package utils

import (
	"context"
)

type contextKey string

const ContextUserIDKey contextKey = "userID"
const ContextVisitorIDKey contextKey = "visitorID"

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID := ctx.Value(ContextUserIDKey)
	userIDStr, ok := userID.(string)
	return userIDStr, ok
}

func GetVisitorIDFromContext(ctx context.Context) (string, bool) {
	visitorID := ctx.Value(ContextVisitorIDKey)
	visitorIDStr, ok := visitorID.(string)
	return visitorIDStr, ok
}
