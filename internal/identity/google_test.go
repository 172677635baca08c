package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wisely_backend/internal/config"
	"wisely_backend/internal/util"
)

func lookupServer(t *testing.T, responseBody string, wantKey string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/accounts:lookup" {
			t.Errorf("path = %q, want /v1/accounts:lookup", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != wantKey {
			t.Errorf("api key = %q, want %q", got, wantKey)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responseBody))
	}))
}

func TestLookupSubject(t *testing.T) {
	t.Run("live account", func(t *testing.T) {
		srv := lookupServer(t, `{"users":[{"localId":"sub-1","disabled":false}]}`, "k")
		defer srv.Close()

		p := NewGoogleProvider(config.IdentityConfig{BaseURL: srv.URL, APIKey: "k"})
		if err := p.LookupSubject(context.Background(), "sub-1"); err != nil {
			t.Errorf("LookupSubject: %v", err)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		srv := lookupServer(t, `{"users":[{"localId":"sub-1","disabled":true}]}`, "k")
		defer srv.Close()

		p := NewGoogleProvider(config.IdentityConfig{BaseURL: srv.URL, APIKey: "k"})
		if err := p.LookupSubject(context.Background(), "sub-1"); !errors.Is(err, util.ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		srv := lookupServer(t, `{"users":[]}`, "k")
		defer srv.Close()

		p := NewGoogleProvider(config.IdentityConfig{BaseURL: srv.URL, APIKey: "k"})
		if err := p.LookupSubject(context.Background(), "sub-1"); !errors.Is(err, util.ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("provider error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		p := NewGoogleProvider(config.IdentityConfig{BaseURL: srv.URL, APIKey: "bad"})
		if err := p.LookupSubject(context.Background(), "sub-1"); err == nil {
			t.Error("expected error on non-200 response")
		}
	})
}

func TestVerifyIDTokenRejectsGarbage(t *testing.T) {
	p := NewGoogleProvider(config.IdentityConfig{ClientID: "client"})
	if _, err := p.VerifyIDToken(context.Background(), "not-a-jwt"); !errors.Is(err, util.ErrInvalidIDToken) {
		t.Errorf("err = %v, want ErrInvalidIDToken", err)
	}
}
