package gateway

import "errors"

// ErrSessionExpired marks the terminal 401 path: the credential is
// already gone and navigation to the login screen has been triggered.
// Callers must abandon the current workflow without rendering anything.
var ErrSessionExpired = errors.New("session expired")

// APIError is a domain failure: the backend answered with a non-2xx
// status and (usually) a human-readable detail message. It is shown to
// the user verbatim and never retried automatically.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}
