// ABOUTME: Tests for messaging endpoints
// ABOUTME: Direct sends, conversation replies, and unread counts

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessage_Payload(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/messages/send" {
			t.Errorf("expected POST /messages/send, got %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Message{ID: 100, Content: "hey"})
	}))
	defer server.Close()

	c := New(server.URL)
	msg, err := c.SendMessage(context.Background(), 12, "hey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID != 100 {
		t.Errorf("expected server message id 100, got %d", msg.ID)
	}
	if gotBody["recipient_id"].(float64) != 12 {
		t.Errorf("expected recipient_id 12, got %v", gotBody["recipient_id"])
	}
	if gotBody["content"] != "hey" {
		t.Errorf("expected content in payload, got %v", gotBody["content"])
	}
}

func TestReplyToConversation_Path(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(Message{ID: 101})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.ReplyToConversation(context.Background(), 33, "on it"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/messages/conversations/33/send" {
		t.Errorf("expected reply path, got %s", gotPath)
	}
}

func TestTeamConversation_Path(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages/team/6/conversation" {
			t.Errorf("expected team conversation path, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(ConversationDetail{
			Conversation: Conversation{ID: 40, IsGroupChat: true, TeamID: 6},
			Messages:     []Message{{ID: 1, Content: "standup at 9"}},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	detail, err := c.TeamConversation(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.ID != 40 || !detail.IsGroupChat {
		t.Errorf("unexpected conversation: %+v", detail.Conversation)
	}
	if len(detail.Messages) != 1 {
		t.Errorf("expected transcript, got %d messages", len(detail.Messages))
	}
}

func TestUnreadCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages/unread-count" {
			t.Errorf("expected unread-count path, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(UnreadCountResponse{UnreadCount: 7})
	}))
	defer server.Close()

	c := New(server.URL)
	count, err := c.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Errorf("expected 7, got %d", count)
	}
}

func TestMarkConversationRead_Path(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := New(server.URL)
	if err := c.MarkConversationRead(context.Background(), 21); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/messages/conversations/21/read" {
		t.Errorf("expected POST read path, got %s %s", gotMethod, gotPath)
	}
}
