package token

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestIssueAndParse(t *testing.T) {
	raw, err := Issue(secret, "alice", "customer", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	info, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Username != "alice" || info.Role != "customer" {
		t.Errorf("unexpected claims: %+v", info)
	}
	if info.IsExpired() {
		t.Error("fresh token should not be expired")
	}
	if r := info.Remaining(); r <= 0 || r > time.Hour {
		t.Errorf("Remaining = %v", r)
	}
}

func TestParse_Expired(t *testing.T) {
	raw, err := Issue(secret, "bob", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	// Parsing skips claim validation, so expired tokens still parse.
	info, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !info.IsExpired() {
		t.Error("expected expired token")
	}
	if info.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", info.Remaining())
	}
}

func TestParse_Opaque(t *testing.T) {
	info, err := Parse("tok123")
	if err == nil {
		t.Fatal("expected error for non-JWT token")
	}
	if info.Raw != "tok123" {
		t.Errorf("Raw = %q", info.Raw)
	}
	if info.IsExpired() {
		t.Error("unknown expiry must not count as expired")
	}
	if _, err := Parse("  "); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestVerify(t *testing.T) {
	raw, _ := Issue(secret, "alice", "customer", time.Hour)
	claims, err := Verify(secret, raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q", claims.Username)
	}
	if _, err := Verify([]byte("other"), raw); err == nil {
		t.Error("expected signature error")
	}
	expired, _ := Issue(secret, "alice", "customer", -time.Hour)
	if _, err := Verify(secret, expired); err == nil {
		t.Error("expected expiry error")
	}
}
