// ABOUTME: Tests for the BuildBuddy API client core
// ABOUTME: Uses httptest to mock backend responses

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPing_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams/test" {
			t.Errorf("expected path /teams/test, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PingResponse{Status: "ok", Message: "backend reachable"})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Ping(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
}

func TestPing_ConnectionError(t *testing.T) {
	c := New("http://localhost:99999")
	_, err := c.Ping(context.Background())
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}

func TestDo_BearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(PingResponse{Status: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("token-123")
	if _, err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer token-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}

func TestDo_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(PingResponse{Status: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClearToken(t *testing.T) {
	c := New("http://example.com")
	c.SetToken("abc")
	c.ClearToken()
	if c.Token() != "" {
		t.Errorf("expected empty token after clear, got %q", c.Token())
	}
}

func TestErrorResponse_DetailPreferred(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"detail": "team is full",
			"error":  "other",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "team is full" {
		t.Errorf("expected detail message, got %q", err.Error())
	}
}

func TestErrorResponse_ErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "already a member"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "already a member" {
		t.Errorf("expected error message, got %q", err.Error())
	}
}

func TestErrorResponse_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "backend returned status 502" {
		t.Errorf("expected fallback message, got %q", err.Error())
	}
}

func TestErrorResponse_UnauthorizedUnwraps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected error to unwrap to ErrUnauthorized, got %v", err)
	}
}

func TestErrorResponse_ForbiddenDoesNotUnwrap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "not your team"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Ping(context.Background())
	if errors.Is(err, ErrUnauthorized) {
		t.Error("403 should not unwrap to ErrUnauthorized")
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(PingResponse{Status: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Ping(ctx)
	if err == nil {
		t.Error("expected error for canceled context, got nil")
	}
}

func TestDo_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(PingResponse{Status: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Ping(ctx)
	if err == nil {
		t.Error("expected error for timed-out context, got nil")
	}
}

func TestDo_InvalidResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Ping(context.Background())
	if err == nil {
		t.Error("expected decode error, got nil")
	}
}
