package contextkeys

// ContextKey is a private key type to avoid collisions on request contexts.
type ContextKey string

const (
	// RequestIDKey is the key under which the per-request correlation id is stored.
	RequestIDKey = ContextKey("request_id")
	// PrincipalKey is the key under which the authenticated user is stored.
	PrincipalKey = ContextKey("principal")
)
