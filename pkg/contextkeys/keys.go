package contextkeys

type contextKey string

// SessionKey holds the service.SessionContext the auth middleware derives
// from the access token.
const SessionKey contextKey = "Session"
