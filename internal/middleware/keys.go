package middleware

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Constants for middleware keys and values
const (
	// --- Logger Keys ---
	RequestLoggerKey ContextKey = "requestLogger"
	RequestIDHeader             = "X-Request-ID" // Header name
	RequestIDKey     ContextKey = "requestID"

	// --- Session Keys ---
	SessionKey ContextKey = "sessionClaims"
)
