package strength

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute  = 60
	secondsPerHour    = 60 * secondsPerMinute
	secondsPerDay     = 24 * secondsPerHour
	secondsPerYear    = 365 * secondsPerDay
	secondsPerCentury = 100 * secondsPerYear
)

// crackTime estimates how long an exhaustive search of 2^entropyBits guesses
// takes at the configured attacker rate, returning the raw seconds and a
// human-readable duration.
func (e *Evaluator) crackTime(entropyBits float64) (float64, string) {
	if entropyBits <= 0 {
		return 0, "instant"
	}
	seconds := math.Exp2(entropyBits) / e.guessesPerSecond()
	return seconds, formatDuration(seconds)
}

// formatDuration renders seconds using the largest unit with magnitude >= 1.
// Larger inputs always produce an equal-or-later bucket.
func formatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.1f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.1f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.1f days", seconds/secondsPerDay)
	case seconds < secondsPerCentury:
		return fmt.Sprintf("%.1f years", seconds/secondsPerYear)
	}
	centuries := seconds / secondsPerCentury
	if math.IsInf(centuries, 1) || centuries >= 1e9 {
		return "more than a billion centuries"
	}
	return fmt.Sprintf("%.1f centuries", centuries)
}
