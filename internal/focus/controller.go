// Package focus manages focus sessions: timed intervals during which listed
// domains are blocked. The controller owns the single "current session"
// slot, enforces the one-active-session invariant, and drives expiry through
// an injected clock.
package focus

import (
	"errors"
	"sync"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// Session duration bounds, in minutes.
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 240
)

var (
	// ErrInvalidDuration reports a session length outside [1, 240] minutes.
	ErrInvalidDuration = errors.New("focus: session duration must be between 1 and 240 minutes")

	// ErrAlreadyActive reports a start attempt while a session is active.
	// The caller must stop the current session first.
	ErrAlreadyActive = errors.New("focus: a session is already active")

	// ErrDuplicateDomain reports an attempt to block an already-blocked
	// domain.
	ErrDuplicateDomain = errors.New("focus: domain is already blocked")

	// ErrInvalidDomain reports a blocklist entry that is empty after
	// normalization.
	ErrInvalidDomain = errors.New("focus: domain is not valid")
)

// activeSession is the controller's record of the session in flight.
type activeSession struct {
	session tracker.FocusSession
	expiry  time.Time
	timer   Timer
}

// Controller is the focus-session state machine. All state transitions are
// funneled through its methods under a single mutex, so a racing expiry
// trigger and manual stop resolve to exactly one Active-to-Idle transition.
type Controller struct {
	clock     Clock
	blocklist *Blocklist

	// onEnd, when set, receives every terminated session. It is invoked
	// outside the lock.
	onEnd func(tracker.FocusSession)

	mu     sync.Mutex
	active *activeSession
	nextID int64
}

// NewController creates a Controller using the given clock and blocklist.
// onEnd may be nil.
func NewController(clock Clock, blocklist *Blocklist, onEnd func(tracker.FocusSession)) *Controller {
	if blocklist == nil {
		blocklist = NewBlocklist()
	}
	return &Controller{
		clock:     clock,
		blocklist: blocklist,
		onEnd:     onEnd,
	}
}

// Blocklist returns the controller's blocklist for add/remove management.
func (c *Controller) Blocklist() *Blocklist {
	return c.blocklist
}

// Start begins a new focus session of the given length and schedules its
// expiry trigger. It fails with ErrInvalidDuration for out-of-range lengths
// and ErrAlreadyActive when a session is in flight.
func (c *Controller) Start(durationMinutes int) (tracker.FocusSession, error) {
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return tracker.FocusSession{}, ErrInvalidDuration
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return tracker.FocusSession{}, ErrAlreadyActive
	}

	c.nextID++
	now := c.clock.Now()
	duration := time.Duration(durationMinutes) * time.Minute

	session := tracker.FocusSession{
		ID:              c.nextID,
		StartTime:       now,
		DurationMinutes: durationMinutes,
	}

	id := session.ID
	c.active = &activeSession{
		session: session,
		expiry:  now.Add(duration),
		timer:   c.clock.AfterFunc(duration, func() { c.expire(id) }),
	}

	return session, nil
}

// expire is the timer-driven exit: it terminates the session as completed,
// with the scheduled expiry time as its end. A trigger for a session that
// has already ended (manual stop won the race, or a newer session started)
// is a no-op.
func (c *Controller) expire(id int64) {
	c.mu.Lock()
	if c.active == nil || c.active.session.ID != id {
		c.mu.Unlock()
		return
	}

	session := c.active.session
	end := c.active.expiry
	session.EndTime = &end
	session.Completed = true
	c.active = nil
	c.mu.Unlock()

	if c.onEnd != nil {
		c.onEnd(session)
	}
}

// Stop terminates the active session before its expiry, cancelling the
// pending trigger. The session ends now and is marked interrupted
// (Completed=false). When no session is active, Stop reports false so
// callers can poll safely.
func (c *Controller) Stop() (tracker.FocusSession, bool) {
	c.mu.Lock()
	if c.active == nil {
		c.mu.Unlock()
		return tracker.FocusSession{}, false
	}

	c.active.timer.Stop()
	session := c.active.session
	now := c.clock.Now()
	session.EndTime = &now
	session.Completed = false
	c.active = nil
	c.mu.Unlock()

	if c.onEnd != nil {
		c.onEnd(session)
	}
	return session, true
}

// Active returns a copy of the in-flight session, if any.
func (c *Controller) Active() (tracker.FocusSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return tracker.FocusSession{}, false
	}
	return c.active.session, true
}

// Remaining returns the time left until expiry, or zero when idle.
func (c *Controller) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return 0
	}
	remaining := c.active.expiry.Sub(c.clock.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsBlocked reports whether the domain is blocked right now: a session must
// be active and the normalized domain must match a blocklist entry.
func (c *Controller) IsBlocked(domain string) bool {
	c.mu.Lock()
	active := c.active != nil
	c.mu.Unlock()

	return active && c.blocklist.Matches(domain)
}
