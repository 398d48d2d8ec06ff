package session

// Store keeps the bearer token for the current teacher session. Exactly
// one token lives at a time; its presence is the whole authentication
// signal, nothing about expiry is tracked on the client.
type Store interface {
	// Token returns the stored credential and whether one exists.
	Token() (string, bool)
	// Save replaces the stored credential. Only the login flow and the
	// gateway are expected to call this.
	Save(token string) error
	// Clear erases the credential from durable storage.
	Clear() error
	Close() error
}

// Authenticated reports whether a credential is currently stored.
func Authenticated(s Store) bool {
	_, ok := s.Token()
	return ok
}
