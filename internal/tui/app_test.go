// ABOUTME: Tests for the root app frame rendering

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/session"
	"github.com/UtkarshAditya/BuildBuddy/internal/syncer"
)

func testApp(t *testing.T) *App {
	t.Helper()
	c := client.New("http://localhost:99999")
	mgr := session.NewManager(c, session.NewStore(t.TempDir()))
	return New(c, mgr, syncer.New(c, time.Minute))
}

func TestRenderHeader_ShowsAppName(t *testing.T) {
	a := testApp(t)
	a.width = 80

	header := a.renderHeader()
	if !strings.Contains(header, "BuildBuddy") {
		t.Errorf("header missing app name:\n%s", header)
	}
}

func TestRenderFooter_LoginShortcuts(t *testing.T) {
	a := testApp(t)
	a.width = 80

	footer := a.renderFooter()
	if !strings.Contains(footer, "Switch mode") {
		t.Errorf("expected login shortcuts in footer:\n%s", footer)
	}
}

func TestInboxBadge_IncludesRequestAlert(t *testing.T) {
	a := testApp(t)

	if got := a.inboxBadge(); got != 0 {
		t.Errorf("inboxBadge() = %d, want 0 with nothing pending", got)
	}
	a.requestsAlert = true
	if got := a.inboxBadge(); got != 1 {
		t.Errorf("inboxBadge() = %d, want 1 for an unseen request response", got)
	}
}

func TestAnyResponded(t *testing.T) {
	pending := []client.JoinRequest{{ID: 1, Status: client.RequestStatusPending}}
	if anyResponded(pending) {
		t.Error("pending-only requests are not a response")
	}

	mixed := append(pending, client.JoinRequest{ID: 2, Status: client.RequestStatusAccepted})
	if !anyResponded(mixed) {
		t.Error("an accepted request counts as a response")
	}
	if anyResponded(nil) {
		t.Error("no requests, no response")
	}
}

func TestFormatTimeSince(t *testing.T) {
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{2 * time.Second, "just now"},
		{30 * time.Second, "30s ago"},
		{time.Minute + time.Second, "1m ago"},
		{10 * time.Minute, "10m ago"},
		{time.Hour + time.Minute, "1h ago"},
		{5 * time.Hour, "5h ago"},
	}
	for _, tc := range cases {
		if got := formatTimeSince(time.Now().Add(-tc.ago)); got != tc.want {
			t.Errorf("formatTimeSince(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}
