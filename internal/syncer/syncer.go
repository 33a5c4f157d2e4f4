// ABOUTME: Inbox/messaging synchronizer: polls badge counts while authenticated
// ABOUTME: Owns cached invites and conversations; last server response wins

package syncer

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/debuglog"
)

// DefaultInterval matches the web client's 30 second badge poll
const DefaultInterval = 30 * time.Second

// Counts is a snapshot of the navigation badge numbers
type Counts struct {
	Invites        int
	UnreadMessages int
}

// Syncer keeps unread-invite and unread-message counts fresh and provides
// the mutation flows for invites and messages. All cached state is a
// possibly-stale copy of server state; the server is always authoritative.
type Syncer struct {
	client   *client.Client
	interval time.Duration

	mu            sync.Mutex
	invites       []client.Invite
	unread        int
	conversations []client.Conversation
	cancel        context.CancelFunc
	onUpdate      func()
}

// New creates a synchronizer polling at the given interval
func New(c *client.Client, interval time.Duration) *Syncer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Syncer{client: c, interval: interval}
}

// SetOnUpdate registers a callback fired after every badge change.
// The callback runs on the polling goroutine.
func (s *Syncer) SetOnUpdate(fn func()) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// Start begins polling: an immediate fetch, then one per interval.
// Calling Start while running is a no-op.
func (s *Syncer) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx)
}

// Stop cancels the polling goroutine. Guaranteed to prevent any further
// poll requests from being issued; safe to call when not running.
func (s *Syncer) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Running reports whether the polling goroutine is active
func (s *Syncer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Syncer) run(ctx context.Context) {
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

// pollOnce fetches invites and the unread count in parallel. Poll failures
// are logged and swallowed; stale counts persist until the next success.
func (s *Syncer) pollOnce(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.RefreshInvites(ctx); err != nil {
			debuglog.Error("poll invites", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.RefreshUnread(ctx); err != nil {
			debuglog.Error("poll unread count", err)
		}
		return nil
	})
	g.Wait()
}

// RefreshInvites fetches pending invites out of band, e.g. when the user
// navigates away from the inbox
func (s *Syncer) RefreshInvites(ctx context.Context) error {
	invites, err := s.client.MyInvites(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.invites = invites
	s.mu.Unlock()
	s.notify()
	return nil
}

// RefreshUnread fetches the unread message count out of band
func (s *Syncer) RefreshUnread(ctx context.Context) error {
	count, err := s.client.UnreadCount(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.unread = count
	s.mu.Unlock()
	s.notify()
	return nil
}

// RefreshConversations fetches the conversation list with previews
func (s *Syncer) RefreshConversations(ctx context.Context) error {
	convos, err := s.client.Conversations(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.conversations = convos
	s.mu.Unlock()
	return nil
}

func (s *Syncer) notify() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Counts returns the current badge numbers
func (s *Syncer) Counts() Counts {
	return Counts{Invites: s.InviteBadge(), UnreadMessages: s.UnreadBadge()}
}

// InviteBadge counts cached invites that are still "invited" and unviewed.
// Accepted or rejected invites never count, viewed or not.
func (s *Syncer) InviteBadge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, inv := range s.invites {
		if inv.Status == client.InviteStatusInvited && !inv.Viewed {
			count++
		}
	}
	return count
}

// UnreadBadge returns the last fetched unread message count
func (s *Syncer) UnreadBadge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

// PendingInvites returns a copy of the cached pending invite list
func (s *Syncer) PendingInvites() []client.Invite {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]client.Invite, len(s.invites))
	copy(out, s.invites)
	return out
}

// Conversations returns a copy of the cached conversation list
func (s *Syncer) Conversations() []client.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]client.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// MarkInvitesViewed tells the backend the inbox was opened and flips the
// viewed flag on the cached invites. Idempotent: a second call changes
// nothing. Invite status is untouched.
func (s *Syncer) MarkInvitesViewed(ctx context.Context) error {
	if err := s.client.MarkInvitesViewed(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.invites {
		s.invites[i].Viewed = true
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// AcceptInvite accepts an invite. The cached pending list is only updated
// after the server confirms; on error it is left unchanged.
func (s *Syncer) AcceptInvite(ctx context.Context, inviteID int) error {
	if err := s.client.AcceptInvite(ctx, inviteID); err != nil {
		return err
	}
	s.removeInvite(inviteID)
	return nil
}

// RejectInvite declines an invite, with the same confirm-then-remove
// semantics as AcceptInvite
func (s *Syncer) RejectInvite(ctx context.Context, inviteID int) error {
	if err := s.client.RejectInvite(ctx, inviteID); err != nil {
		return err
	}
	s.removeInvite(inviteID)
	return nil
}

func (s *Syncer) removeInvite(inviteID int) {
	s.mu.Lock()
	kept := s.invites[:0]
	for _, inv := range s.invites {
		if inv.ID != inviteID {
			kept = append(kept, inv)
		}
	}
	s.invites = kept
	s.mu.Unlock()
	s.notify()
}
