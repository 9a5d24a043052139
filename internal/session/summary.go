package session

import "time"

// Summary is the immutable snapshot handed back when a session
// completes. The session itself is discarded at that point.
type Summary struct {
	SessionID      string
	Kind           Kind
	Duration       time.Duration
	TotalExercises int
	Answered       int
	CorrectCount   int
	Accuracy       float64
	XPEarned       int
	BestStreak     int
}

func buildSummary(s *Session, now time.Time) *Summary {
	var accuracy float64
	if len(s.Answers) > 0 {
		accuracy = float64(s.CorrectCount) / float64(len(s.Answers))
	}
	return &Summary{
		SessionID:      s.ID,
		Kind:           s.Kind,
		Duration:       now.Sub(s.StartedAt),
		TotalExercises: len(s.Exercises),
		Answered:       len(s.Answers),
		CorrectCount:   s.CorrectCount,
		Accuracy:       accuracy,
		XPEarned:       s.XPEarned,
		BestStreak:     s.BestStreak,
	}
}
