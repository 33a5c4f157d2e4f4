// ABOUTME: Tests for conversation title resolution

package messages

import (
	"testing"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
)

func TestDirectTitle_NamesOtherParticipant(t *testing.T) {
	conv := &client.Conversation{
		ID:               12,
		Participants:     []int{1, 2},
		ParticipantNames: []string{"Me Myself", "Ada Lovelace"},
	}

	if got := DirectTitle(conv, 1); got != "Ada Lovelace" {
		t.Errorf("DirectTitle() = %q, want the other participant", got)
	}
	if got := DirectTitle(conv, 2); got != "Me Myself" {
		t.Errorf("DirectTitle() = %q, want the other participant", got)
	}
}

func TestDirectTitle_Fallbacks(t *testing.T) {
	// Only one participant recorded: fall back to the first name
	conv := &client.Conversation{
		ID:               5,
		Participants:     []int{1},
		ParticipantNames: []string{"Me Myself"},
	}
	if got := DirectTitle(conv, 1); got != "Me Myself" {
		t.Errorf("DirectTitle() = %q", got)
	}

	// No names at all: fall back to the conversation id
	empty := &client.Conversation{ID: 5}
	if got := DirectTitle(empty, 1); got != "conversation 5" {
		t.Errorf("DirectTitle() = %q", got)
	}
}
