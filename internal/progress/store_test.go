package progress

import (
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/catalog"
	"github.com/abhisek/lexiz/internal/spacedrep"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Item{
		{ID: "a", Word: "uno", Translation: "one", Category: "numbers"},
		{ID: "b", Word: "dos", Translation: "two", Category: "numbers"},
		{ID: "c", Word: "tres", Translation: "three", Category: "numbers"},
	})
}

func TestRecordAnswer_FirstCorrectAnswer(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore("u1")

	rec := store.RecordAnswer("a", true, "translation_match", 1500, now)

	if rec.Strength != 1 {
		t.Errorf("Strength = %d, want 1", rec.Strength)
	}
	if rec.Tier != spacedrep.TierLearning {
		t.Errorf("Tier = %q, want %q", rec.Tier, spacedrep.TierLearning)
	}
	if !rec.FirstSeen.Equal(now) || !rec.LastSeen.Equal(now) {
		t.Errorf("FirstSeen/LastSeen = %v/%v, want both %v", rec.FirstSeen, rec.LastSeen, now)
	}
	wantNext := now.Add(4 * time.Hour)
	if !rec.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", rec.NextReviewAt, wantNext)
	}
	if rec.TimesCorrect != 1 || rec.TimesIncorrect != 0 || rec.TotalExposures != 1 {
		t.Errorf("counters = %d/%d/%d, want 1/0/1", rec.TimesCorrect, rec.TimesIncorrect, rec.TotalExposures)
	}
}

func TestRecordAnswer_FirstIncorrectAnswerStaysAtZero(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore("u1")

	rec := store.RecordAnswer("a", false, "translation_match", 900, now)

	if rec.Strength != 0 {
		t.Errorf("Strength = %d, want 0", rec.Strength)
	}
	if rec.Tier != spacedrep.TierNew {
		t.Errorf("Tier = %q, want %q", rec.Tier, spacedrep.TierNew)
	}
	if !rec.NextReviewAt.Equal(now) {
		t.Errorf("NextReviewAt = %v, want immediate (%v)", rec.NextReviewAt, now)
	}
}

func TestRecordAnswer_IncorrectLowersStrength(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore("u1")

	// Raise to strength 3.
	for i := 0; i < 3; i++ {
		store.RecordAnswer("a", true, "translation_match", 1000, now)
	}
	rec := store.RecordAnswer("a", false, "translation_match", 1000, now)

	if rec.Strength != 2 {
		t.Errorf("Strength = %d, want 2", rec.Strength)
	}
	wantNext := now.Add(8 * time.Hour)
	if !rec.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", rec.NextReviewAt, wantNext)
	}
}

func TestRecordAnswer_ExposuresNeverDoubleCount(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore("u1")

	answers := []bool{true, false, false, true, true, false, true}
	for _, correct := range answers {
		rec := store.RecordAnswer("a", correct, "fill_blank", 1000, now)
		if rec.TotalExposures != rec.TimesCorrect+rec.TimesIncorrect {
			t.Fatalf("TotalExposures = %d, want %d", rec.TotalExposures, rec.TimesCorrect+rec.TimesIncorrect)
		}
	}
}

func TestRecordAnswer_FirstSeenSetOnce(t *testing.T) {
	store := NewStore("u1")
	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	store.RecordAnswer("a", true, "translation_match", 1000, first)
	rec := store.RecordAnswer("a", true, "translation_match", 1000, later)

	if !rec.FirstSeen.Equal(first) {
		t.Errorf("FirstSeen = %v, want %v", rec.FirstSeen, first)
	}
	if !rec.LastSeen.Equal(later) {
		t.Errorf("LastSeen = %v, want %v", rec.LastSeen, later)
	}
}

func TestWeakItems_SortsWeakestThenStalest(t *testing.T) {
	cat := testCatalog()
	store := NewStore("u1")
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// a: strength 2, seen late. b: strength 1, seen early. c: strength 2, seen early.
	store.RecordAnswer("a", true, "translation_match", 1000, base)
	store.RecordAnswer("a", true, "translation_match", 1000, base.Add(2*time.Hour))
	store.RecordAnswer("b", true, "translation_match", 1000, base)
	store.RecordAnswer("c", true, "translation_match", 1000, base)
	store.RecordAnswer("c", true, "translation_match", 1000, base.Add(time.Hour))

	items := store.WeakItems(cat, 10)
	got := make([]string, len(items))
	for i, it := range items {
		got[i] = it.ID
	}
	want := []string{"b", "c", "a"}
	if len(got) != len(want) {
		t.Fatalf("WeakItems = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WeakItems = %v, want %v", got, want)
		}
	}
}

func TestWeakItems_ExcludesStrongAndRetiredItems(t *testing.T) {
	cat := testCatalog()
	store := NewStore("u1")
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// Push a to the weak threshold; it should drop out of the weak set.
	for i := 0; i < spacedrep.WeakThreshold; i++ {
		store.RecordAnswer("a", true, "translation_match", 1000, now)
	}
	// A record for an item not in the catalog is skipped, not an error.
	store.RecordAnswer("retired", true, "translation_match", 1000, now)

	items := store.WeakItems(cat, 10)
	for _, it := range items {
		if it.ID == "a" {
			t.Error("item a reached weak threshold but was still returned")
		}
		if it.ID == "retired" {
			t.Error("retired item leaked into weak set")
		}
	}
}

func TestWeakItems_TruncatesToLimit(t *testing.T) {
	cat := testCatalog()
	store := NewStore("u1")
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	store.RecordAnswer("a", false, "translation_match", 1000, now)
	store.RecordAnswer("b", false, "translation_match", 1000, now)
	store.RecordAnswer("c", false, "translation_match", 1000, now)

	if got := len(store.WeakItems(cat, 2)); got != 2 {
		t.Errorf("len(WeakItems) = %d, want 2", got)
	}
}

func TestDueItems_MostOverdueFirstAndStable(t *testing.T) {
	cat := testCatalog()
	store := NewStore("u1")
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// a reviews at base+4h, b at base+1h+4h: a is more overdue.
	store.RecordAnswer("a", true, "translation_match", 1000, base)
	store.RecordAnswer("b", true, "translation_match", 1000, base.Add(time.Hour))

	now := base.Add(24 * time.Hour)
	first := store.DueItems(cat, now)
	second := store.DueItems(cat, now)

	if len(first) != 2 || first[0].ID != "a" || first[1].ID != "b" {
		t.Fatalf("DueItems = %v, want [a b]", first)
	}
	// Repeated calls without intervening answers return the same order.
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("DueItems not idempotent: %v vs %v", first, second)
		}
	}
}

func TestDueItems_ExcludesNotYetDue(t *testing.T) {
	cat := testCatalog()
	store := NewStore("u1")
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	store.RecordAnswer("a", true, "translation_match", 1000, now) // due at now+4h

	if got := store.DueItems(cat, now.Add(time.Hour)); len(got) != 0 {
		t.Errorf("DueItems = %v, want empty", got)
	}
	if got := store.DueItems(cat, now.Add(5*time.Hour)); len(got) != 1 {
		t.Errorf("DueItems = %v, want one item", got)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore("u1")
	store.RecordAnswer("a", true, "translation_match", 1000, now)
	store.RecordAnswer("b", false, "fill_blank", 2000, now)

	snap := store.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot len = %d, want 2", len(snap))
	}

	restored := NewStore("u1")
	restored.Restore(snap)

	rec, ok := restored.Get("a")
	if !ok {
		t.Fatal("record a missing after restore")
	}
	if rec.Strength != 1 || rec.TotalExposures != 1 {
		t.Errorf("restored record = %+v", rec)
	}
}

func TestGet_ReturnsCopies(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore("u1")
	store.RecordAnswer("a", true, "translation_match", 1000, now)

	rec, _ := store.Get("a")
	rec.Strength = 99
	rec.History[0].Correct = false

	again, _ := store.Get("a")
	if again.Strength != 1 {
		t.Errorf("Strength mutated through copy: %d", again.Strength)
	}
	if !again.History[0].Correct {
		t.Error("History mutated through copy")
	}
}
