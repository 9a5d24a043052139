// Package progress owns per-user retention state. The Store is an
// explicit per-user value passed to collaborators, never ambient
// package state, so independent users (and tests) cannot interfere.
package progress

import (
	"sort"
	"sync"
	"time"

	"github.com/abhisek/lexiz/internal/catalog"
	"github.com/abhisek/lexiz/internal/spacedrep"
)

// Store holds one mutable Record per item for a single user.
// All mutation goes through RecordAnswer. A mutex serializes access:
// answer events arrive from a single UI thread, but persistence may
// snapshot concurrently.
type Store struct {
	mu      sync.Mutex
	userID  string
	records map[string]*Record
}

// NewStore creates an empty progress store for the given user.
func NewStore(userID string) *Store {
	return &Store{
		userID:  userID,
		records: make(map[string]*Record),
	}
}

// UserID returns the user this store belongs to.
func (s *Store) UserID() string {
	return s.userID
}

// RecordAnswer applies one answer event to the item's record, creating
// the record on first exposure. It is the only way progress state
// changes. Returns a copy of the updated record.
func (s *Store) RecordAnswer(itemID string, correct bool, kind string, timeSpentMs int, now time.Time) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[itemID]
	if !ok {
		rec = &Record{
			ItemID:    itemID,
			FirstSeen: now,
		}
		s.records[itemID] = rec
	}

	strength, nextReview := spacedrep.NextReview(rec.Strength, correct, now)
	rec.Strength = strength
	rec.Tier = spacedrep.TierOf(strength)
	rec.NextReviewAt = nextReview
	rec.LastSeen = now

	if correct {
		rec.TimesCorrect++
	} else {
		rec.TimesIncorrect++
	}
	rec.TotalExposures = rec.TimesCorrect + rec.TimesIncorrect

	rec.History = append(rec.History, Attempt{
		Kind:        kind,
		Timestamp:   now,
		Correct:     correct,
		TimeSpentMs: timeSpentMs,
	})
	if len(rec.History) > historyLimit {
		rec.History = rec.History[len(rec.History)-historyLimit:]
	}

	return rec.clone()
}

// Get returns a copy of the record for an item, if one exists.
func (s *Store) Get(itemID string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[itemID]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// Seen reports whether the item has ever been attempted.
func (s *Store) Seen(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[itemID]
	return ok
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// WeakItems returns up to limit catalog items whose strength is below
// the weak threshold, weakest first, staleness breaking ties. Records
// for items no longer in the catalog are ignored.
func (s *Store) WeakItems(cat *catalog.Catalog, limit int) []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var weak []*Record
	for _, rec := range s.records {
		if rec.Strength >= spacedrep.WeakThreshold {
			continue
		}
		if _, ok := cat.Get(rec.ItemID); !ok {
			continue
		}
		weak = append(weak, rec)
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Strength != weak[j].Strength {
			return weak[i].Strength < weak[j].Strength
		}
		if !weak[i].LastSeen.Equal(weak[j].LastSeen) {
			return weak[i].LastSeen.Before(weak[j].LastSeen)
		}
		return weak[i].ItemID < weak[j].ItemID
	})

	if limit > 0 && len(weak) > limit {
		weak = weak[:limit]
	}

	items := make([]catalog.Item, 0, len(weak))
	for _, rec := range weak {
		it, _ := cat.Get(rec.ItemID)
		items = append(items, it)
	}
	return items
}

// DueItems returns all catalog items whose next review time has
// passed, most overdue first. Records for retired items are ignored.
func (s *Store) DueItems(cat *catalog.Catalog, now time.Time) []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*Record
	for _, rec := range s.records {
		if !rec.Due(now) {
			continue
		}
		if _, ok := cat.Get(rec.ItemID); !ok {
			continue
		}
		due = append(due, rec)
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextReviewAt.Equal(due[j].NextReviewAt) {
			return due[i].NextReviewAt.Before(due[j].NextReviewAt)
		}
		return due[i].ItemID < due[j].ItemID
	})

	items := make([]catalog.Item, 0, len(due))
	for _, rec := range due {
		it, _ := cat.Get(rec.ItemID)
		items = append(items, it)
	}
	return items
}

// Snapshot exports copies of all records, ordered by item ID, for
// persistence or stats scans.
func (s *Store) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Restore replaces the store's contents with the given records,
// typically loaded from persistence. Later duplicates win.
func (s *Store) Restore(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*Record, len(records))
	for _, rec := range records {
		r := rec.clone()
		s.records[rec.ItemID] = &r
	}
}
