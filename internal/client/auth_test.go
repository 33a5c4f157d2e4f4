// ABOUTME: Tests for authentication and profile endpoints
// ABOUTME: Verifies request payloads, paths and query parameters

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_SendsCredentials(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/users/login" {
			t.Errorf("expected path /users/login, got %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(TokenPair{Access: "acc", Refresh: "ref"})
	}))
	defer server.Close()

	c := New(server.URL)
	tokens, err := c.Login(context.Background(), "dev@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotBody["email"] != "dev@example.com" {
		t.Errorf("expected email in payload, got %q", gotBody["email"])
	}
	if gotBody["password"] != "hunter22" {
		t.Errorf("expected password in payload, got %q", gotBody["password"])
	}
	if tokens.Access != "acc" || tokens.Refresh != "ref" {
		t.Errorf("unexpected token pair: %+v", tokens)
	}
}

func TestLogin_DoesNotInstallToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TokenPair{Access: "acc"})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Token() != "" {
		t.Errorf("login must not install the token itself, got %q", c.Token())
	}
}

func TestRegister_SendsAllFields(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/register" {
			t.Errorf("expected path /users/register, got %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisteredUser{ID: 7, Email: "dev@example.com", Username: "dev"})
	}))
	defer server.Close()

	c := New(server.URL)
	user, err := c.Register(context.Background(), "dev@example.com", "dev", "longenough", "Dev Eloper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotBody["username"] != "dev" || gotBody["full_name"] != "Dev Eloper" {
		t.Errorf("unexpected payload: %v", gotBody)
	}
	if user.ID != 7 {
		t.Errorf("expected id 7, got %d", user.ID)
	}
}

func TestCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me" {
			t.Errorf("expected path /users/me, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(User{ID: 3, Username: "dev", FullName: "Dev Eloper"})
	}))
	defer server.Close()

	c := New(server.URL)
	user, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.DisplayName() != "Dev Eloper" {
		t.Errorf("expected full name as display name, got %q", user.DisplayName())
	}
}

func TestUpdateProfile_SendsOnlyGivenFields(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(User{ID: 1, Username: "ada", Bio: "builder"})
	}))
	defer server.Close()

	c := New(server.URL)
	user, err := c.UpdateProfile(context.Background(), map[string]interface{}{
		"bio":    "builder",
		"skills": []string{"go", "react"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/users/me" {
		t.Errorf("got %s %s, want PUT /users/me", gotMethod, gotPath)
	}
	if gotBody["bio"] != "builder" {
		t.Errorf("unexpected body %v", gotBody)
	}
	if _, ok := gotBody["full_name"]; ok {
		t.Error("unchanged fields must not be sent")
	}
	if user.Bio != "builder" {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestSearchUsers_QueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/search" {
			t.Errorf("expected path /users/search, got %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]User{{ID: 1, Username: "ada"}})
	}))
	defer server.Close()

	c := New(server.URL)
	users, err := c.SearchUsers(context.Background(), "ada", "go,react", "available")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	parsed, _ := http.NewRequest(http.MethodGet, "/?"+gotQuery, nil)
	q := parsed.URL.Query()
	if q.Get("q") != "ada" {
		t.Errorf("expected q=ada, got %q", q.Get("q"))
	}
	if q.Get("skills") != "go,react" {
		t.Errorf("expected skills filter, got %q", q.Get("skills"))
	}
	if q.Get("availability") != "available" {
		t.Errorf("expected availability filter, got %q", q.Get("availability"))
	}
}

func TestSearchUsers_OmitsEmptyParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]User{})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.SearchUsers(context.Background(), "", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("expected no query string, got %q", gotQuery)
	}
}

func TestGetUser_Path(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/42" {
			t.Errorf("expected path /users/42, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(User{ID: 42, Username: "grace"})
	}))
	defer server.Close()

	c := New(server.URL)
	user, err := c.GetUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "grace" {
		t.Errorf("expected grace, got %q", user.Username)
	}
}

func TestDisplayName_FallsBackToUsername(t *testing.T) {
	u := &User{Username: "ada"}
	if u.DisplayName() != "ada" {
		t.Errorf("expected username fallback, got %q", u.DisplayName())
	}
}
