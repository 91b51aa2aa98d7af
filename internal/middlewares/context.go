package middlewares

import "context"

// contextKey is an unexported type for keys in context
type contextKey int

const (
	requestIDKey contextKey = iota
	emailKey
)

// SetEmailToContext stores the authenticated email in the context
func SetEmailToContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmailFromContext retrieves the authenticated email from the context.
// Returns an empty string if no identity is present.
func GetEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// setRequestIDToContext stores the request id in the context
func setRequestIDToContext(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, reqID)
}

// GetRequestIDFromContext retrieves the request id from the context.
func GetRequestIDFromContext(ctx context.Context) string {
	reqID, _ := ctx.Value(requestIDKey).(string)
	return reqID
}
