package domain

// Principal is the minimal identity payload held client-side for the
// logged-in user. It mirrors what POST /users/login returns and is never
// trusted on its own: authentication is always re-derived from token
// presence.
type Principal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session pairs the opaque bearer token with the principal it was issued
// for. A session with a token but no principal is degraded yet usable.
type Session struct {
	Token     string
	Principal *Principal
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
