package domain

// SessionState is the client's view of the authentication lifecycle.
type SessionState string

const (
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)
