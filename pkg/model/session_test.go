package model

import "testing"

func TestNewSession(t *testing.T) {
	sess := NewSession("tok123", "alice", RoleCustomer, "Alice A")
	if !sess.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if sess.Role() != RoleCustomer {
		t.Errorf("Role() = %v, want customer", sess.Role())
	}
	if sess.User.Username != "alice" || sess.User.Name != "Alice A" || sess.User.Role != RoleCustomer {
		t.Errorf("unexpected user: %+v", sess.User)
	}
}

func TestNewSession_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		username string
		role     Role
	}{
		{"no token", "", "alice", RoleAdmin},
		{"no username", "tok", "", RoleAdmin},
		{"no role", "tok", "alice", RoleNone},
		{"unknown role", "tok", "alice", Role(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSession(tt.token, tt.username, tt.role, "name")
			if sess.IsAuthenticated() {
				t.Error("expected unauthenticated session")
			}
			if !sess.Equal(Session{}) {
				t.Errorf("expected empty session, got %+v", sess)
			}
		})
	}
}

func TestSession_ZeroValue(t *testing.T) {
	var sess Session
	if sess.IsAuthenticated() {
		t.Error("zero session must be unauthenticated")
	}
	if sess.Role() != RoleNone {
		t.Errorf("Role() = %v, want RoleNone", sess.Role())
	}
	if sess.IsAdmin() {
		t.Error("zero session must not be admin")
	}
}

func TestSession_CloneIsIndependent(t *testing.T) {
	orig := NewSession("tok", "alice", RoleAdmin, "Alice")
	cp := orig.Clone()
	cp.User.Name = "Mallory"
	if orig.User.Name != "Alice" {
		t.Errorf("clone shares user with original: %q", orig.User.Name)
	}
	if !orig.Equal(NewSession("tok", "alice", RoleAdmin, "Alice")) {
		t.Error("Equal should compare by value")
	}
}

func TestUser_DisplayName(t *testing.T) {
	u := &User{Username: "alice"}
	if got := u.DisplayName(); got != "alice" {
		t.Errorf("DisplayName() = %q, want alice", got)
	}
	u.Name = "Alice A"
	if got := u.DisplayName(); got != "Alice A" {
		t.Errorf("DisplayName() = %q, want Alice A", got)
	}
}
