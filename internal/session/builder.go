// Package session builds graded practice sessions from the catalog and
// progress state, and runs the single active session per user.
package session

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/catalog"
	"github.com/abhisek/lexiz/internal/progress"
)

// PracticeItemLimit caps how many weak items a practice session drills.
const PracticeItemLimit = 15

// maxDistractors is the number of wrong options in a translation match.
const maxDistractors = 3

// blank replaces the target word in fill-in-the-blank prompts.
const blank = "____"

// Builder selects item subsets and expands them into exercises.
// The rand source is injectable so tests can pin option order;
// a nil source falls back to a time-seeded one.
type Builder struct {
	catalog  *catalog.Catalog
	progress *progress.Store
	rng      *rand.Rand
}

// NewBuilder creates a session builder over the given catalog and
// progress store.
func NewBuilder(cat *catalog.Catalog, store *progress.Store, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{catalog: cat, progress: store, rng: rng}
}

// NewItemsSession selects up to count items from the category that have
// never been attempted, in catalog order so repeated calls are
// reproducible before any progress is made. Each item expands to an
// introduction, a translation match, and a fill-in-the-blank when the
// item has examples. An empty session is a valid result.
func (b *Builder) NewItemsSession(category string, count int, now time.Time) *Session {
	var picked []catalog.Item
	for _, it := range b.catalog.Category(category) {
		if b.progress.Seen(it.ID) {
			continue
		}
		picked = append(picked, it)
		if len(picked) == count {
			break
		}
	}

	s := newSession(KindNewItems, now)
	for _, it := range picked {
		s.ItemIDs = append(s.ItemIDs, it.ID)
		s.Exercises = append(s.Exercises, b.introduction(it))
		s.Exercises = append(s.Exercises, b.expandSeen(it)...)
	}
	return s
}

// PracticeSession drills the weakest previously-seen items. No
// introduction exercises: these items are not new to the learner.
func (b *Builder) PracticeSession(now time.Time) *Session {
	return b.fromItems(KindPractice, b.progress.WeakItems(b.catalog, PracticeItemLimit), now)
}

// ReviewSession drills every item whose review is due, most overdue
// first. The full due set is computed; display capping is the UI's
// concern.
func (b *Builder) ReviewSession(now time.Time) *Session {
	return b.fromItems(KindReview, b.progress.DueItems(b.catalog, now), now)
}

func (b *Builder) fromItems(kind Kind, items []catalog.Item, now time.Time) *Session {
	s := newSession(kind, now)
	for _, it := range items {
		s.ItemIDs = append(s.ItemIDs, it.ID)
		s.Exercises = append(s.Exercises, b.expandSeen(it)...)
	}
	return s
}

func newSession(kind Kind, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		StartedAt: now,
	}
}

// expandSeen emits the exercises for an item the learner has seen:
// a translation match, then a fill-in-the-blank if examples exist.
func (b *Builder) expandSeen(it catalog.Item) []Exercise {
	out := []Exercise{b.translationMatch(it)}
	if it.HasExamples() {
		out = append(out, b.fillBlank(it))
	}
	return out
}

func (b *Builder) introduction(it catalog.Item) Exercise {
	return Exercise{
		ID:              it.ID + "-introduction",
		Kind:            KindIntroduction,
		ItemID:          it.ID,
		Prompt:          it.Word,
		LocalizedPrompt: it.TranslationLocalized,
		CorrectAnswer:   it.Translation,
	}
}

func (b *Builder) translationMatch(it catalog.Item) Exercise {
	return Exercise{
		ID:              it.ID + "-translation_match",
		Kind:            KindTranslationMatch,
		ItemID:          it.ID,
		Prompt:          it.Word,
		LocalizedPrompt: it.TranslationLocalized,
		CorrectAnswer:   it.Translation,
		Options:         b.buildOptions(it),
	}
}

func (b *Builder) fillBlank(it catalog.Item) Exercise {
	ex := it.Examples[0]
	return Exercise{
		ID:              it.ID + "-fill_blank",
		Kind:            KindFillBlank,
		ItemID:          it.ID,
		Prompt:          blankWord(ex.SourceText, it.Word),
		LocalizedPrompt: ex.LocalizedText,
		CorrectAnswer:   it.Word,
	}
}

// blankWord replaces the first occurrence of word in sentence with the
// blank marker, ignoring case since sentence-initial words are
// capitalized. The sentence is returned unchanged if the word does not
// occur; the UI still shows the correct answer after submission.
func blankWord(sentence, word string) string {
	idx := strings.Index(strings.ToLower(sentence), strings.ToLower(word))
	if idx < 0 {
		return sentence
	}
	return sentence[:idx] + blank + sentence[idx+len(word):]
}

// buildOptions assembles the multiple-choice set: the correct
// translation plus up to three distractors, padded from same-category
// translations when the item carries too few. The set is deterministic
// for a given catalog and item; only the order is randomized.
func (b *Builder) buildOptions(it catalog.Item) []string {
	options := []string{it.Translation}
	used := map[string]bool{it.Translation: true}

	add := func(candidate string) bool {
		if len(options) > maxDistractors {
			return false
		}
		if candidate == "" || used[candidate] {
			return true
		}
		used[candidate] = true
		options = append(options, candidate)
		return true
	}

	for _, d := range it.Distractors {
		if len(options) > maxDistractors {
			break
		}
		add(d)
	}

	// Pad from other items in the same category, in catalog order so
	// the option set stays deterministic.
	if len(options) <= maxDistractors {
		for _, other := range b.catalog.Category(it.Category) {
			if other.ID == it.ID {
				continue
			}
			if !add(other.Translation) {
				break
			}
		}
	}

	b.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
