package util

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	const secret = "0123456789abcdef0123456789abcdef"

	token, err := SignSessionID("sess-abc", secret, time.Hour)
	if err != nil {
		t.Fatalf("SignSessionID: %v", err)
	}

	claims, err := ParseSessionToken(token, secret)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if claims.SessionID != "sess-abc" {
		t.Errorf("session id = %q, want %q", claims.SessionID, "sess-abc")
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := SignSessionID("sess-abc", "secret-one-secret-one-secret-one", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionID: %v", err)
	}

	if _, err := ParseSessionToken(token, "secret-two-secret-two-secret-two"); err == nil {
		t.Error("token verified with the wrong secret")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := SignSessionID("sess-abc", "0123456789abcdef0123456789abcdef", -time.Minute)
	if err != nil {
		t.Fatalf("SignSessionID: %v", err)
	}

	if _, err := ParseSessionToken(token, "0123456789abcdef0123456789abcdef"); err == nil {
		t.Error("expired token verified")
	}
}

func TestSessionTokenTampered(t *testing.T) {
	token, err := SignSessionID("sess-abc", "0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionID: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseSessionToken(tampered, "0123456789abcdef0123456789abcdef"); err == nil {
		t.Error("tampered token verified")
	}
}
