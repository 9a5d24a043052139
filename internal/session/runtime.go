package session

import (
	"errors"
	"time"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/stats"
)

// XP accounting: every answered exercise earns the base amount, and a
// hot streak adds a bonus on top.
const (
	baseXP          = 10
	streakBonusXP   = 5
	streakBonusFrom = 5
)

var (
	// ErrNoActiveSession is returned when an answer or completion
	// arrives with no session running.
	ErrNoActiveSession = errors.New("session: no active session")

	// ErrSessionDone is returned when an answer arrives after the
	// cursor has passed the last exercise.
	ErrSessionDone = errors.New("session: all exercises answered")
)

// Runtime holds the single active session for a user and advances it
// as answer events arrive. Starting a new session silently abandons an
// unfinished one; that loss is deliberate.
type Runtime struct {
	progress *progress.Store
	stats    *stats.Aggregator
	active   *Session
}

// NewRuntime creates a runtime recording answers into the given
// progress store. The aggregator may be nil; when set, stats are
// recomputed on every completion.
func NewRuntime(store *progress.Store, agg *stats.Aggregator) *Runtime {
	return &Runtime{progress: store, stats: agg}
}

// Start makes the given session active, discarding any previous one.
func (r *Runtime) Start(s *Session) {
	r.active = s
}

// Active returns the running session, or nil when idle.
func (r *Runtime) Active() *Session {
	return r.active
}

// SubmitAnswer applies one answer event to the active session: it
// appends the answer, updates score, streak and XP, advances the
// cursor, and records the outcome in the progress store. Whether the
// session is finished is the caller's check, via Done on the session.
func (r *Runtime) SubmitAnswer(ans Answer, now time.Time) error {
	s := r.active
	if s == nil {
		return ErrNoActiveSession
	}
	if s.Done() {
		return ErrSessionDone
	}

	s.Answers = append(s.Answers, ans)
	if ans.Correct {
		s.CorrectCount++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}

	s.XPEarned += baseXP
	if s.Streak >= streakBonusFrom {
		s.XPEarned += streakBonusXP
	}

	s.Cursor++
	r.progress.RecordAnswer(ans.ItemID, ans.Correct, string(ans.Kind), ans.TimeSpentMs, now)
	return nil
}

// Complete finalizes the active session into a summary, clears it, and
// recomputes stats. The runtime is idle again afterwards.
func (r *Runtime) Complete(now time.Time) (*Summary, error) {
	s := r.active
	if s == nil {
		return nil, ErrNoActiveSession
	}
	r.active = nil

	if r.stats != nil {
		r.stats.Recompute(now)
	}
	return buildSummary(s, now), nil
}
