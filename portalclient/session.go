package portalclient

// Session holds the bearer token for one admin login. It is created by
// AdminLogin, passed along explicitly, and destroyed by Logout; no package
// level state is involved. An empty session issues anonymous requests.
type Session struct {
	token string
	user  AdminUser
}

// Token returns the bearer token, empty for an anonymous session.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

// User returns the operator the session was issued to.
func (s *Session) User() AdminUser {
	if s == nil {
		return AdminUser{}
	}
	return s.user
}

// Authenticated reports whether the session carries a token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
