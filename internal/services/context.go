package services

import "context"

type ctxKey string

var handleKey ctxKey = "user_handle"

// WithCallerContext records the authenticated caller's handle on the
// request context.
func WithCallerContext(ctx context.Context, handle string) context.Context {
	return context.WithValue(ctx, handleKey, handle)
}

func HandleFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(handleKey)
	if value == nil {
		return "", false
	}
	handle, ok := value.(string)
	return handle, ok
}
