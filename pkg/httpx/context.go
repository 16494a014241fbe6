package httpx

import "context"

type ctxKey string

const (
	CtxKeyAdminID   ctxKey = "admin_id"
	CtxKeySessionID ctxKey = "session_id"
)

// WithAdminID returns a copy of ctx carrying the authenticated admin.
func WithAdminID(ctx context.Context, adminID int64) context.Context {
	return context.WithValue(ctx, CtxKeyAdminID, adminID)
}

// AdminIDFromContext returns the authenticated admin id, if any.
func AdminIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(CtxKeyAdminID).(int64)
	return v, ok && v > 0
}

// SessionIDFromContext returns the raw session token the request carried.
func SessionIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeySessionID).(string)
	return v
}
