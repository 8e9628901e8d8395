package assist

import (
	"context"
	"sync"
	"time"

	"github.com/Vovarama1992/assistbot/internal/logging"
)

const FollowUpPrompt = "Did I resolve your issue? (Yes/No)"

// FollowUps tracks at most one pending follow-up timer per user, plus the
// time each user was last seen.
type FollowUps struct {
	delay    time.Duration
	notifier Notifier

	// swapped in tests
	afterFunc func(d time.Duration, f func()) *time.Timer

	mu       sync.Mutex
	timers   map[string]*pending
	lastSeen map[string]time.Time
}

type pending struct {
	timer *time.Timer
}

func NewFollowUps(delay time.Duration, notifier Notifier) *FollowUps {
	return &FollowUps{
		delay:     delay,
		notifier:  notifier,
		afterFunc: time.AfterFunc,
		timers:    make(map[string]*pending),
		lastSeen:  make(map[string]time.Time),
	}
}

func (f *FollowUps) Touch(userID string, at time.Time) {
	f.mu.Lock()
	f.lastSeen[userID] = at
	f.mu.Unlock()
}

func (f *FollowUps) LastActivity(userID string) (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.lastSeen[userID]
	return t, ok
}

// Schedule arms a follow-up for userID. While one is already pending the
// call is a no-op; the existing timer is not refreshed.
func (f *FollowUps) Schedule(userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, armed := f.timers[userID]; armed {
		return false
	}

	p := &pending{}
	p.timer = f.afterFunc(f.delay, func() { f.fire(userID, p) })
	f.timers[userID] = p
	return true
}

func (f *FollowUps) Pending(userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, armed := f.timers[userID]
	return armed
}

// Cancel drops a pending follow-up without notifying.
func (f *FollowUps) Cancel(userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, armed := f.timers[userID]
	if !armed {
		return false
	}
	p.timer.Stop()
	delete(f.timers, userID)
	return true
}

// Stop cancels every pending follow-up.
func (f *FollowUps) Stop() {
	f.mu.Lock()
	ids := make([]string, 0, len(f.timers))
	for id := range f.timers {
		ids = append(ids, id)
	}
	f.mu.Unlock()

	for _, id := range ids {
		f.Cancel(id)
	}
}

// fire runs on the timer goroutine. A timer that was cancelled, or
// replaced by a later arm, finds p no longer registered and does nothing.
func (f *FollowUps) fire(userID string, p *pending) {
	f.mu.Lock()
	armed := f.timers[userID] == p
	if armed {
		delete(f.timers, userID)
	}
	f.mu.Unlock()

	if !armed {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := f.notifier.Notify(ctx, userID, FollowUpPrompt); err != nil {
		logger := logging.Component("followup")
		logger.Error().Err(err).Str("user_id", userID).Msg("follow-up delivery failed")
	}
}
