package model

// Session is the client's current authentication state.
//
// The zero value is the unauthenticated default. A session is
// authenticated only when the token and the user are both present and
// the user carries a known role; the session role is always the user's
// role, so the two cannot disagree.
type Session struct {
	Token string `json:"-"`
	User  *User  `json:"user,omitempty"`
}

// NewSession builds an authenticated session. It returns the empty
// session if token or username is empty or role is not a known variant.
func NewSession(token, username string, role Role, name string) Session {
	if token == "" || username == "" || !role.Valid() {
		return Session{}
	}
	return Session{
		Token: token,
		User:  &User{Username: username, Name: name, Role: role},
	}
}

// IsAuthenticated reports whether token, role, and user are all present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil && s.User.Username != "" && s.User.Role.Valid()
}

// Role returns the session role, or RoleNone when unauthenticated.
func (s Session) Role() Role {
	if !s.IsAuthenticated() {
		return RoleNone
	}
	return s.User.Role
}

// IsAdmin reports whether the session has admin role.
func (s Session) IsAdmin() bool {
	return s.Role() == RoleAdmin
}

// Clone returns a copy that shares no pointers with s.
func (s Session) Clone() Session {
	if s.User == nil {
		return Session{Token: s.Token}
	}
	u := *s.User
	return Session{Token: s.Token, User: &u}
}

// Equal reports whether two sessions hold the same token and identity.
func (s Session) Equal(o Session) bool {
	if s.Token != o.Token {
		return false
	}
	if s.User == nil || o.User == nil {
		return s.User == nil && o.User == nil
	}
	return *s.User == *o.User
}
