// ABOUTME: Message threads: conversation resolution and optimistic sends
// ABOUTME: Direct threads may have no conversation until the first send

package syncer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
)

// ErrNoTarget is returned when a send has neither a direct recipient nor
// an active conversation to go to
var ErrNoTarget = errors.New("no conversation selected")

// Thread is an open transcript: either a direct exchange with one teammate
// or a team group chat. A direct thread can exist before any conversation
// does server-side; the conversation id stays zero until the first send.
type Thread struct {
	ConversationID int
	GroupChat      bool
	MemberID       int // direct recipient, zero for group chats
	TeamID         int
	Title          string

	mu       sync.Mutex
	messages []client.Message
}

// Messages returns a copy of the transcript
func (t *Thread) Messages() []client.Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]client.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Thread) append(msg client.Message) {
	t.mu.Lock()
	t.messages = append(t.messages, msg)
	t.mu.Unlock()
}

func (t *Thread) replace(tempID int, msg client.Message) {
	t.mu.Lock()
	for i := range t.messages {
		if t.messages[i].ID == tempID {
			t.messages[i] = msg
			break
		}
	}
	t.mu.Unlock()
}

func (t *Thread) remove(tempID int) {
	t.mu.Lock()
	kept := t.messages[:0]
	for _, m := range t.messages {
		if m.ID != tempID {
			kept = append(kept, m)
		}
	}
	t.messages = kept
	t.mu.Unlock()
}

// ResolveDirect finds the cached non-group conversation whose participants
// include both users. Returns nil when no conversation exists yet.
func (s *Syncer) ResolveDirect(meID, memberID int) *client.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.conversations {
		conv := &s.conversations[i]
		if conv.IsGroupChat {
			continue
		}
		if containsParticipant(conv.Participants, meID) && containsParticipant(conv.Participants, memberID) {
			c := *conv
			return &c
		}
	}
	return nil
}

func containsParticipant(participants []int, id int) bool {
	for _, p := range participants {
		if p == id {
			return true
		}
	}
	return false
}

// OpenDirect opens a thread with a single teammate. If a conversation
// already exists its transcript is loaded; otherwise the thread starts
// empty and no conversation is created until the first message is sent.
func (s *Syncer) OpenDirect(ctx context.Context, me *client.User, memberID int, memberName string) (*Thread, error) {
	thread := &Thread{MemberID: memberID, Title: memberName}

	conv := s.ResolveDirect(me.ID, memberID)
	if conv == nil {
		return thread, nil
	}

	detail, err := s.client.Conversation(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	thread.ConversationID = detail.ID
	thread.messages = detail.Messages
	return thread, nil
}

// OpenTeam opens a team's group chat, which always resolves to exactly one
// conversation per team (created server-side on first access)
func (s *Syncer) OpenTeam(ctx context.Context, teamID int, teamName string) (*Thread, error) {
	detail, err := s.client.TeamConversation(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &Thread{
		ConversationID: detail.ID,
		GroupChat:      true,
		TeamID:         teamID,
		Title:          teamName,
		messages:       detail.Messages,
	}, nil
}

// Send performs an optimistic message send: the message appears in the
// transcript immediately with a temporary id, then is replaced by the
// server-confirmed message or removed on failure. Callers restore the
// typed text into the input when an error is returned.
func (s *Syncer) Send(ctx context.Context, thread *Thread, sender *client.User, content string) (*client.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("message is empty")
	}
	if thread == nil {
		return nil, ErrNoTarget
	}
	if thread.GroupChat && thread.ConversationID == 0 {
		return nil, ErrNoTarget
	}
	if !thread.GroupChat && thread.MemberID == 0 {
		return nil, ErrNoTarget
	}

	temp := client.Message{
		ID:         tempMessageID(),
		SenderID:   sender.ID,
		SenderName: sender.DisplayName(),
		Content:    content,
		IsRead:     false,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	return Optimistic(
		func() { thread.append(temp) },
		func() (*client.Message, error) {
			if thread.GroupChat {
				return s.client.ReplyToConversation(ctx, thread.ConversationID, content)
			}
			return s.client.SendMessage(ctx, thread.MemberID, content)
		},
		func(msg *client.Message) { thread.replace(temp.ID, *msg) },
		func() { thread.remove(temp.ID) },
	)
}

// tempMessageID yields ids far above any real database id so an optimistic
// message can never be confused with a server-confirmed one
func tempMessageID() int {
	return int(time.Now().UnixMilli())
}
