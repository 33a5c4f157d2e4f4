// ABOUTME: Tests for the session manager state machine
// ABOUTME: Covers startup validation, login, register, and logout flows

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
)

// fakeBackend serves login, register, and current-user endpoints
func fakeBackend(t *testing.T, validToken string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/login":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["password"] == "wrong" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
				return
			}
			json.NewEncoder(w).Encode(client.TokenPair{Access: validToken, Refresh: "refresh"})
		case "/users/register":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(client.RegisteredUser{ID: 1, Email: "a@b.c", Username: "dev"})
		case "/users/me":
			if r.Header.Get("Authorization") != "Bearer "+validToken {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
				return
			}
			json.NewEncoder(w).Encode(client.User{ID: 1, Username: "dev", FullName: "Dev Eloper"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestManager(t *testing.T, serverURL string) (*Manager, *CredentialStore) {
	t.Helper()
	store := NewStore(t.TempDir())
	c := client.New(serverURL)
	return NewManager(c, store), store
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateInitializing:    "initializing",
		StateUnauthenticated: "unauthenticated",
		StateAuthenticated:   "authenticated",
		State(99):            "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestInit_NoStoredCredentials(t *testing.T) {
	server := fakeBackend(t, "tok")
	defer server.Close()

	mgr, _ := newTestManager(t, server.URL)
	if mgr.State() != StateInitializing {
		t.Fatalf("expected Initializing before Init, got %s", mgr.State())
	}

	mgr.Init(context.Background())
	if mgr.State() != StateUnauthenticated {
		t.Errorf("expected Unauthenticated, got %s", mgr.State())
	}
}

func TestInit_ValidStoredCredentials(t *testing.T) {
	server := fakeBackend(t, "stored-token")
	defer server.Close()

	mgr, store := newTestManager(t, server.URL)
	store.Save(&Credentials{Access: "stored-token", Refresh: "r"})

	mgr.Init(context.Background())
	if mgr.State() != StateAuthenticated {
		t.Fatalf("expected Authenticated, got %s", mgr.State())
	}
	if mgr.User() == nil || mgr.User().Username != "dev" {
		t.Errorf("expected restored user, got %+v", mgr.User())
	}
}

func TestInit_ExpiredCredentialsDiscarded(t *testing.T) {
	server := fakeBackend(t, "current-token")
	defer server.Close()

	mgr, store := newTestManager(t, server.URL)
	store.Save(&Credentials{Access: "stale-token"})

	mgr.Init(context.Background())
	if mgr.State() != StateUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %s", mgr.State())
	}

	// The stale credential must be gone so the next start skips the round-trip
	creds, _ := store.Load()
	if creds != nil {
		t.Error("expected stored credential to be discarded")
	}
}

func TestInit_BackendUnreachableDiscardsCredentials(t *testing.T) {
	mgr, store := newTestManager(t, "http://localhost:99999")
	store.Save(&Credentials{Access: "tok"})

	mgr.Init(context.Background())
	if mgr.State() != StateUnauthenticated {
		t.Errorf("expected Unauthenticated when backend is unreachable, got %s", mgr.State())
	}
}

func TestLogin_Success(t *testing.T) {
	server := fakeBackend(t, "fresh-token")
	defer server.Close()

	mgr, store := newTestManager(t, server.URL)
	var transitions []State
	mgr.OnChange(func(s State) { transitions = append(transitions, s) })

	user, err := mgr.Login(context.Background(), "a@b.c", "correct-pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.DisplayName() != "Dev Eloper" {
		t.Errorf("unexpected user: %+v", user)
	}
	if mgr.State() != StateAuthenticated {
		t.Errorf("expected Authenticated, got %s", mgr.State())
	}

	creds, _ := store.Load()
	if creds == nil || creds.Access != "fresh-token" {
		t.Errorf("expected persisted credentials, got %+v", creds)
	}
	if len(transitions) != 1 || transitions[0] != StateAuthenticated {
		t.Errorf("expected one Authenticated transition, got %v", transitions)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	server := fakeBackend(t, "tok")
	defer server.Close()

	mgr, store := newTestManager(t, server.URL)
	_, err := mgr.Login(context.Background(), "a@b.c", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if mgr.Authenticated() {
		t.Error("session must stay unauthenticated after failed login")
	}
	if creds, _ := store.Load(); creds != nil {
		t.Error("nothing should be persisted after failed login")
	}
}

func TestLogin_EmptyInputsRejectedLocally(t *testing.T) {
	// No server: validation must fail before any request goes out
	mgr, _ := newTestManager(t, "http://localhost:99999")

	if _, err := mgr.Login(context.Background(), "", "pw"); err == nil {
		t.Error("expected error for empty email")
	}
	if _, err := mgr.Login(context.Background(), "a@b.c", ""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestRegister_Validations(t *testing.T) {
	mgr, _ := newTestManager(t, "http://localhost:99999")
	ctx := context.Background()

	cases := []struct {
		name                              string
		email, username, password, myName string
	}{
		{"empty email", "", "dev", "longenough", "Dev"},
		{"empty username", "a@b.c", "", "longenough", "Dev"},
		{"empty full name", "a@b.c", "dev", "longenough", ""},
		{"short password", "a@b.c", "dev", "short", "Dev"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := mgr.Register(ctx, tc.email, tc.username, tc.password, tc.myName); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestRegister_CreatesAccountThenLogsIn(t *testing.T) {
	server := fakeBackend(t, "fresh-token")
	defer server.Close()

	mgr, _ := newTestManager(t, server.URL)
	user, err := mgr.Register(context.Background(), "a@b.c", "dev", "longenough", "Dev Eloper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || mgr.State() != StateAuthenticated {
		t.Errorf("expected authenticated session after register, got %s", mgr.State())
	}
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	server := fakeBackend(t, "tok")
	defer server.Close()

	mgr, store := newTestManager(t, server.URL)
	if _, err := mgr.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	mgr.Logout()
	if mgr.State() != StateUnauthenticated {
		t.Errorf("expected Unauthenticated, got %s", mgr.State())
	}
	if mgr.User() != nil {
		t.Error("expected user to be cleared")
	}
	if creds, _ := store.Load(); creds != nil {
		t.Error("expected stored credentials to be removed")
	}

	// Logging out twice is fine
	mgr.Logout()
}

func TestCredentialStore_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	if creds, err := store.Load(); err != nil || creds != nil {
		t.Fatalf("expected (nil, nil) for missing file, got (%v, %v)", creds, err)
	}

	if err := store.Save(&Credentials{Access: "a", Refresh: "r"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	creds, err := store.Load()
	if err != nil || creds == nil || creds.Access != "a" {
		t.Fatalf("round trip failed: (%+v, %v)", creds, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if creds, _ := store.Load(); creds != nil {
		t.Error("expected no credentials after clear")
	}
	// Clearing again is not an error
	if err := store.Clear(); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestCredentialStore_CorruptFileTreatedAsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	os.WriteFile(filepath.Join(dir, "credentials.json"), []byte("{corrupt"), 0600)

	creds, err := store.Load()
	if err != nil || creds != nil {
		t.Errorf("expected (nil, nil) for corrupt file, got (%v, %v)", creds, err)
	}
}

func TestCredentialStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	store.Save(&Credentials{Access: "secret"})

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %o", info.Mode().Perm())
	}
}

func TestPrefs_ViewedRequestsFlag(t *testing.T) {
	store := NewStore(t.TempDir())

	if store.HasViewedRequests() {
		t.Error("expected false before any write")
	}
	if err := store.SetViewedRequests(true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !store.HasViewedRequests() {
		t.Error("expected true after write")
	}
}

func TestManager_ViewedRequestsDelegation(t *testing.T) {
	mgr, _ := newTestManager(t, "http://localhost:99999")

	if mgr.HasViewedRequests() {
		t.Error("expected false before any write")
	}
	if err := mgr.SetViewedRequests(true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mgr.HasViewedRequests() {
		t.Error("expected true after write")
	}
}
