package session

// Guard runs the pre-flight session checks for screen entry points.
// Screens that need a session call RequireSession; the login screen
// calls RequireAnonymous. Both are synchronous, one-shot checks.
type Guard struct {
	store Store
}

func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// RequireSession reports whether an authenticated screen may open.
// When it returns false the caller must route to the login screen and
// do no further work.
func (g *Guard) RequireSession() bool {
	return Authenticated(g.store)
}

// RequireAnonymous reports whether the login screen may open. When it
// returns false the caller must route to the workspace instead.
func (g *Guard) RequireAnonymous() bool {
	return !Authenticated(g.store)
}
