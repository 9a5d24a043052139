package spacedrep

import (
	"fmt"
	"time"
)

// StrengthMax is the highest strength value an item can reach.
// An item at StrengthMax is considered mastered.
const StrengthMax = 5

// WeakThreshold is the strength below which an item is eligible
// for practice sessions.
const WeakThreshold = 3

// IntervalTable maps a strength value to the delay before the next
// review. It has exactly StrengthMax+1 entries and is non-decreasing:
// a stronger item is never scheduled earlier than a weaker one.
var IntervalTable = [StrengthMax + 1]time.Duration{
	0,                  // 0: review immediately
	4 * time.Hour,      // 1
	8 * time.Hour,      // 2
	24 * time.Hour,     // 3
	3 * 24 * time.Hour, // 4
	7 * 24 * time.Hour, // 5
}

// NextReview computes the strength and next review time after an answer.
// A correct answer raises strength by one (capped at StrengthMax), an
// incorrect answer lowers it by one (floored at zero). The next review
// time is now plus the interval for the updated strength.
//
// Panics if strength is outside [0, StrengthMax]; an out-of-range
// strength indicates a caller bug, not a runtime condition.
func NextReview(strength int, correct bool, now time.Time) (int, time.Time) {
	mustValidStrength(strength)

	next := strength
	if correct {
		next++
		if next > StrengthMax {
			next = StrengthMax
		}
	} else {
		next--
		if next < 0 {
			next = 0
		}
	}

	return next, now.Add(IntervalTable[next])
}

func mustValidStrength(strength int) {
	if strength < 0 || strength > StrengthMax {
		panic(fmt.Sprintf("spacedrep: strength %d out of range [0, %d]", strength, StrengthMax))
	}
}
