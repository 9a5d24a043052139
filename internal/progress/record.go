package progress

import (
	"time"

	"github.com/abhisek/lexiz/internal/spacedrep"
)

// historyLimit bounds the per-record attempt history. History is
// diagnostic only and never feeds scheduling decisions.
const historyLimit = 100

// Attempt is one answer event in a record's history.
type Attempt struct {
	Kind        string    `json:"kind"`
	Timestamp   time.Time `json:"timestamp"`
	Correct     bool      `json:"correct"`
	TimeSpentMs int       `json:"time_spent_ms"`
}

// Record tracks a learner's retention of a single catalog item.
// Records are created lazily on first exposure; the absence of a
// record means the item has never been attempted.
type Record struct {
	ItemID         string
	Strength       int
	Tier           spacedrep.Tier
	TimesCorrect   int
	TimesIncorrect int
	TotalExposures int
	FirstSeen      time.Time
	LastSeen       time.Time
	NextReviewAt   time.Time
	History        []Attempt
}

// Due reports whether the item's scheduled review time has passed.
func (r *Record) Due(now time.Time) bool {
	return !now.Before(r.NextReviewAt)
}

// clone returns a deep copy so callers cannot mutate stored state.
func (r *Record) clone() Record {
	out := *r
	out.History = make([]Attempt, len(r.History))
	copy(out.History, r.History)
	return out
}
