// ABOUTME: Messaging endpoints: conversations, sends, unread counts
// ABOUTME: Direct sends create conversations server-side on first message

package client

import (
	"context"
	"net/http"
	"strconv"
)

// Conversations lists the current user's conversations with previews
func (c *Client) Conversations(ctx context.Context) ([]Conversation, error) {
	var out []Conversation
	if err := c.do(ctx, http.MethodGet, "/messages/conversations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Conversation fetches a conversation with its full transcript
func (c *Client) Conversation(ctx context.Context, id int) (*ConversationDetail, error) {
	var out ConversationDetail
	if err := c.do(ctx, http.MethodGet, "/messages/conversations/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamConversation resolves (creating server-side if needed) the single
// group conversation for a team
func (c *Client) TeamConversation(ctx context.Context, teamID int) (*ConversationDetail, error) {
	var out ConversationDetail
	path := "/messages/team/" + strconv.Itoa(teamID) + "/conversation"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMessage sends a direct message to a user, creating the conversation
// on first contact
func (c *Client) SendMessage(ctx context.Context, recipientID int, content string) (*Message, error) {
	body := map[string]interface{}{"recipient_id": recipientID, "content": content}
	var out Message
	if err := c.do(ctx, http.MethodPost, "/messages/send", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplyToConversation appends a message to an existing conversation
func (c *Client) ReplyToConversation(ctx context.Context, conversationID int, content string) (*Message, error) {
	body := map[string]string{"content": content}
	var out Message
	path := "/messages/conversations/" + strconv.Itoa(conversationID) + "/send"
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnreadCountResponse wraps the unread message total
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// UnreadCount returns the number of unread messages across conversations
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out UnreadCountResponse
	if err := c.do(ctx, http.MethodGet, "/messages/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// MarkConversationRead marks every message in a conversation as read
func (c *Client) MarkConversationRead(ctx context.Context, conversationID int) error {
	path := "/messages/conversations/" + strconv.Itoa(conversationID) + "/read"
	return c.do(ctx, http.MethodPost, path, nil, nil)
}
