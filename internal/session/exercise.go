package session

import (
	"time"
)

// Kind classifies why a session was built.
type Kind string

const (
	KindNewItems Kind = "new_items"
	KindPractice Kind = "practice"
	KindReview   Kind = "review"
)

// ExerciseKind identifies how an item is drilled. The rendering layer
// decides presentation; the kinds only drive expansion and scoring.
type ExerciseKind string

const (
	KindIntroduction     ExerciseKind = "introduction"
	KindTranslationMatch ExerciseKind = "translation_match"
	KindFillBlank        ExerciseKind = "fill_blank"
)

// Exercise is one interactive prompt derived from a catalog item. The
// UI renders Prompt/LocalizedPrompt/Options and reduces the learner's
// input to a boolean before submitting an Answer.
type Exercise struct {
	ID              string
	Kind            ExerciseKind
	ItemID          string
	Prompt          string
	LocalizedPrompt string
	CorrectAnswer   string
	Options         []string // translation_match only; shuffled
}

// Answer is one inbound answer event from the rendering layer.
type Answer struct {
	ItemID      string
	Correct     bool
	Kind        ExerciseKind
	TimeSpentMs int
}

// Session is a bounded, ordered sequence of exercises presented in one
// sitting. It is created by the Builder, mutated only by the Runtime,
// and discarded after completion.
type Session struct {
	ID           string
	Kind         Kind
	StartedAt    time.Time
	ItemIDs      []string
	Exercises    []Exercise
	Cursor       int
	Answers      []Answer
	CorrectCount int
	XPEarned     int
	Streak       int
	BestStreak   int
}

// Empty reports whether the session has no exercises. An empty session
// is a valid result of building — it means nothing was eligible.
func (s *Session) Empty() bool {
	return len(s.Exercises) == 0
}

// Done reports whether the cursor has moved past the last exercise.
func (s *Session) Done() bool {
	return s.Cursor >= len(s.Exercises)
}

// Current returns the exercise at the cursor, or nil when done.
func (s *Session) Current() *Exercise {
	if s.Done() {
		return nil
	}
	return &s.Exercises[s.Cursor]
}
