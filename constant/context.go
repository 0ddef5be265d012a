package constant

type contextKey string

// SessionKey carries the signed-in session through a context.Context.
const SessionKey contextKey = "session"
