// Package stats derives coarse progress counters from the progress
// store. Counters are recomputed by full scan after a session
// completes, never maintained incrementally per answer.
package stats

import (
	"time"

	"github.com/abhisek/lexiz/internal/catalog"
	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/spacedrep"
)

// Stats holds the derived counters for one user.
type Stats struct {
	TotalItems        int
	ItemsLearned      int
	ItemsMastered     int
	ItemsDueForReview int
}

// Aggregator recomputes Stats from a catalog and progress store pair.
type Aggregator struct {
	catalog  *catalog.Catalog
	store    *progress.Store
	current  Stats
	computed bool
}

// NewAggregator creates an aggregator over the given catalog and store.
func NewAggregator(cat *catalog.Catalog, store *progress.Store) *Aggregator {
	return &Aggregator{catalog: cat, store: store}
}

// Recompute scans every record and rebuilds the counters. Records for
// items no longer in the catalog are skipped.
func (a *Aggregator) Recompute(now time.Time) Stats {
	st := Stats{TotalItems: a.catalog.Len()}

	for _, rec := range a.store.Snapshot() {
		if _, ok := a.catalog.Get(rec.ItemID); !ok {
			continue
		}
		if rec.Strength > 0 {
			st.ItemsLearned++
		}
		if rec.Strength == spacedrep.StrengthMax {
			st.ItemsMastered++
		}
		if rec.Due(now) {
			st.ItemsDueForReview++
		}
	}

	a.current = st
	a.computed = true
	return st
}

// Current returns the counters from the last Recompute. The boolean is
// false if Recompute has never run.
func (a *Aggregator) Current() (Stats, bool) {
	return a.current, a.computed
}
