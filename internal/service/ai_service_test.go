package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wisely_backend/internal/config"
)

func TestCleanJSONContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"fenced json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONContent(tt.in); got != tt.want {
				t.Errorf("cleanJSONContent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompleteJSON(t *testing.T) {
	t.Run("sends json mode and returns the content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("path = %q, want /chat/completions", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("authorization = %q", got)
			}

			var req map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req["model"] != "test-model" {
				t.Errorf("model = %v, want test-model", req["model"])
			}
			rf, _ := req["response_format"].(map[string]interface{})
			if rf == nil || rf["type"] != "json_object" {
				t.Errorf("response_format = %v, want json_object", req["response_format"])
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"` + "```json\\n{\\\"ok\\\":true}\\n```" + `"}}]}`))
		}))
		defer srv.Close()

		svc := NewAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model"})
		got, err := svc.CompleteJSON(context.Background(), "system", "user")
		if err != nil {
			t.Fatalf("CompleteJSON: %v", err)
		}
		if got != `{"ok":true}` {
			t.Errorf("content = %q, want stripped json", got)
		}
	})

	t.Run("surfaces upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		svc := NewAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "k", Model: "m"})
		if _, err := svc.CompleteJSON(context.Background(), "s", "u"); err == nil {
			t.Error("expected error on 429")
		} else if !strings.Contains(err.Error(), "429") {
			t.Errorf("err = %v, want status in message", err)
		}
	})

	t.Run("rejects empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		svc := NewAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "k", Model: "m"})
		if _, err := svc.CompleteJSON(context.Background(), "s", "u"); err == nil {
			t.Error("expected error on empty choices")
		}
	})
}
