package model

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"admin", RoleAdmin},
		{"customer", RoleCustomer},
		{"", RoleNone},
		{"ADMIN", RoleNone},
		{"Admin", RoleNone},
		{" customer", RoleNone},
		{"user", RoleNone},
		{"superuser", RoleNone},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.input); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRole_StringAndHome(t *testing.T) {
	tests := []struct {
		role  Role
		name  string
		home  string
		valid bool
	}{
		{RoleAdmin, "admin", "/admin", true},
		{RoleCustomer, "customer", "/customer", true},
		{RoleNone, "", "", false},
		{Role(42), "", "", false},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.name {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.name)
		}
		if got := tt.role.Home(); got != tt.home {
			t.Errorf("Role(%d).Home() = %q, want %q", tt.role, got, tt.home)
		}
		if got := tt.role.Valid(); got != tt.valid {
			t.Errorf("Role(%d).Valid() = %v, want %v", tt.role, got, tt.valid)
		}
	}
}

func TestRole_JSON(t *testing.T) {
	u := User{Username: "alice", Name: "Alice A", Role: RoleCustomer}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"username":"alice","name":"Alice A","role":"customer"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var got User
	if err := json.Unmarshal([]byte(`{"username":"bob","role":"root"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Role != RoleNone {
		t.Errorf("unknown role decoded to %v, want RoleNone", got.Role)
	}
}
