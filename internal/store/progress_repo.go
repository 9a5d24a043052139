package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/spacedrep"
)

// progressRow mirrors one progress_records row. Timestamps are stored
// as RFC 3339 strings, history as a JSON array.
type progressRow struct {
	UserID         string `db:"user_id"`
	ItemID         string `db:"item_id"`
	Strength       int    `db:"strength"`
	TimesCorrect   int    `db:"times_correct"`
	TimesIncorrect int    `db:"times_incorrect"`
	FirstSeen      string `db:"first_seen"`
	LastSeen       string `db:"last_seen"`
	NextReviewAt   string `db:"next_review_at"`
	History        string `db:"history"`
}

// ProgressRepo loads and saves a user's progress records.
type ProgressRepo struct {
	db  *sqlx.DB
	log *zap.Logger
}

// Load returns all progress records for a user. A row that cannot be
// decoded — unparsable timestamp, out-of-range strength — is logged
// and skipped; one corrupt record never aborts the whole load.
func (r *ProgressRepo) Load(ctx context.Context, userID string) ([]progress.Record, error) {
	var rows []progressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT user_id, item_id, strength, times_correct, times_incorrect,
		        first_seen, last_seen, next_review_at, history
		 FROM progress_records WHERE user_id = ? ORDER BY item_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress for %s: %w", userID, err)
	}

	records := make([]progress.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := rowToRecord(row)
		if err != nil {
			r.log.Warn("skipping corrupt progress record",
				zap.String("user_id", userID),
				zap.String("item_id", row.ItemID),
				zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save upserts all records for a user in one transaction. A failure
// leaves the previous durable state intact; callers keep the in-memory
// state authoritative and retry on the next save opportunity.
func (r *ProgressRepo) Save(ctx context.Context, userID string, records []progress.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	const upsert = `
		INSERT INTO progress_records (
			user_id, item_id, strength, times_correct, times_incorrect,
			first_seen, last_seen, next_review_at, history
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, item_id) DO UPDATE SET
			strength = excluded.strength,
			times_correct = excluded.times_correct,
			times_incorrect = excluded.times_incorrect,
			first_seen = excluded.first_seen,
			last_seen = excluded.last_seen,
			next_review_at = excluded.next_review_at,
			history = excluded.history`

	for _, rec := range records {
		history, err := json.Marshal(rec.History)
		if err != nil {
			return fmt.Errorf("marshal history for %s: %w", rec.ItemID, err)
		}
		_, err = tx.ExecContext(ctx, upsert,
			userID, rec.ItemID, rec.Strength, rec.TimesCorrect, rec.TimesIncorrect,
			rec.FirstSeen.UTC().Format(time.RFC3339),
			rec.LastSeen.UTC().Format(time.RFC3339),
			rec.NextReviewAt.UTC().Format(time.RFC3339),
			string(history))
		if err != nil {
			return fmt.Errorf("save record %s: %w", rec.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func rowToRecord(row progressRow) (progress.Record, error) {
	if row.Strength < 0 || row.Strength > spacedrep.StrengthMax {
		return progress.Record{}, fmt.Errorf("strength %d out of range", row.Strength)
	}

	firstSeen, err := time.Parse(time.RFC3339, row.FirstSeen)
	if err != nil {
		return progress.Record{}, fmt.Errorf("parse first_seen: %w", err)
	}
	lastSeen, err := time.Parse(time.RFC3339, row.LastSeen)
	if err != nil {
		return progress.Record{}, fmt.Errorf("parse last_seen: %w", err)
	}
	nextReview, err := time.Parse(time.RFC3339, row.NextReviewAt)
	if err != nil {
		return progress.Record{}, fmt.Errorf("parse next_review_at: %w", err)
	}

	var history []progress.Attempt
	if row.History != "" {
		if err := json.Unmarshal([]byte(row.History), &history); err != nil {
			return progress.Record{}, fmt.Errorf("parse history: %w", err)
		}
	}

	return progress.Record{
		ItemID:         row.ItemID,
		Strength:       row.Strength,
		Tier:           spacedrep.TierOf(row.Strength),
		TimesCorrect:   row.TimesCorrect,
		TimesIncorrect: row.TimesIncorrect,
		TotalExposures: row.TimesCorrect + row.TimesIncorrect,
		FirstSeen:      firstSeen,
		LastSeen:       lastSeen,
		NextReviewAt:   nextReview,
		History:        history,
	}, nil
}
