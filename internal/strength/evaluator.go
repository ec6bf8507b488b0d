package strength

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSpecialChars is the special-character alphabet used for both
	// class detection and the entropy pool size.
	DefaultSpecialChars = "!@#$%^&*()-_=+[]{};:,.<>?/"

	// DefaultGuessesPerSecond is the assumed offline attacker rate
	// (roughly a single modern GPU).
	DefaultGuessesPerSecond = 1e9

	// MaxScore is the highest achievable score.
	MaxScore = 6

	minLength      = 8
	extendedLength = 12
)

// Tier is a coarse strength bucket derived from the score.
type Tier string

const (
	TierWeak     Tier = "Weak"
	TierModerate Tier = "Moderate"
	TierStrong   Tier = "Strong"
)

// ClassProfile records which character classes a candidate contains.
type ClassProfile struct {
	Length     int
	HasLower   bool
	HasUpper   bool
	HasDigit   bool
	HasSpecial bool
}

// CriterionScore is one row of the score breakdown.
type CriterionScore struct {
	Criterion string `json:"criterion"`
	Points    int    `json:"points"`
}

// Assessment is the result of evaluating a single candidate password.
// It never carries the candidate itself.
type Assessment struct {
	Length           int              `json:"length"`
	Score            int              `json:"score"`
	Strength         Tier             `json:"strength"`
	EntropyBits      float64          `json:"entropy"`
	CrackTime        string           `json:"crackTime"`
	CrackTimeSeconds float64          `json:"crackTimeSeconds"`
	Breakdown        []CriterionScore `json:"breakdown"`
	Issues           []string         `json:"issues"`
	Recommendations  []string         `json:"recommendations"`
	IsCommon         bool             `json:"isCommon"`
}

// Evaluator assesses password strength. It holds no mutable state and is
// safe for concurrent use.
type Evaluator struct {
	// SpecialChars is the alphabet treated as the special class.
	SpecialChars string
	// GuessesPerSecond is the assumed attacker rate for crack-time estimates.
	GuessesPerSecond float64
	// Common is the known-weak password set. May be nil to skip the check.
	Common *CommonPasswordSet
}

// NewEvaluator returns an Evaluator with the default special alphabet and
// attacker rate, checking candidates against the given set.
func NewEvaluator(common *CommonPasswordSet) *Evaluator {
	return &Evaluator{
		SpecialChars:     DefaultSpecialChars,
		GuessesPerSecond: DefaultGuessesPerSecond,
		Common:           common,
	}
}

// Profile derives the character-class profile of a candidate.
func (e *Evaluator) Profile(candidate string) ClassProfile {
	p := ClassProfile{Length: utf8.RuneCountInString(candidate)}
	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			p.HasLower = true
		case r >= 'A' && r <= 'Z':
			p.HasUpper = true
		case r >= '0' && r <= '9':
			p.HasDigit = true
		case strings.ContainsRune(e.specialChars(), r):
			p.HasSpecial = true
		}
	}
	return p
}

// Evaluate assesses a candidate. It accepts any input, including the empty
// string, and never fails.
func (e *Evaluator) Evaluate(candidate string) Assessment {
	profile := e.Profile(candidate)

	var breakdown []CriterionScore
	var issues, recommendations []string

	addCriterion := func(name string, met bool, issue, recommendation string) {
		points := 0
		if met {
			points = 1
		} else {
			issues = append(issues, issue)
			recommendations = append(recommendations, recommendation)
		}
		breakdown = append(breakdown, CriterionScore{Criterion: name, Points: points})
	}

	addCriterion("minimum length", profile.Length >= minLength,
		"password is too short (minimum 8 characters)",
		"use at least 8 characters")
	addCriterion("extended length", profile.Length >= extendedLength,
		"password is shorter than 12 characters",
		"use 12 or more characters for a stronger password")
	addCriterion("uppercase letters", profile.HasUpper,
		"no uppercase letters",
		"add uppercase letters (A-Z)")
	addCriterion("lowercase letters", profile.HasLower,
		"no lowercase letters",
		"add lowercase letters (a-z)")
	addCriterion("digits", profile.HasDigit,
		"no numbers",
		"add numbers (0-9)")
	addCriterion("special characters", profile.HasSpecial,
		"no special characters",
		"add special characters ("+e.specialChars()+")")

	score := 0
	for _, c := range breakdown {
		score += c.Points
	}

	entropy := e.entropy(profile)
	seconds, crackTime := e.crackTime(entropy)
	tier := tierForScore(score)

	isCommon := e.Common.Contains(candidate)
	if isCommon {
		tier = TierWeak
		issues = append(issues, "password is in the list of most common passwords")
		recommendations = append(recommendations, "choose a unique password that is not commonly used")
	}

	return Assessment{
		Length:           profile.Length,
		Score:            score,
		Strength:         tier,
		EntropyBits:      entropy,
		CrackTime:        crackTime,
		CrackTimeSeconds: seconds,
		Breakdown:        breakdown,
		Issues:           issues,
		Recommendations:  recommendations,
		IsCommon:         isCommon,
	}
}

// entropy estimates the brute-force search space in bits: length * log2(pool),
// where pool sums the alphabets of the classes actually present.
func (e *Evaluator) entropy(profile ClassProfile) float64 {
	if profile.Length == 0 {
		return 0
	}
	pool := 0
	if profile.HasLower {
		pool += 26
	}
	if profile.HasUpper {
		pool += 26
	}
	if profile.HasDigit {
		pool += 10
	}
	if profile.HasSpecial {
		pool += utf8.RuneCountInString(e.specialChars())
	}
	if pool == 0 {
		return 0
	}
	return float64(profile.Length) * math.Log2(float64(pool))
}

func (e *Evaluator) specialChars() string {
	if e.SpecialChars == "" {
		return DefaultSpecialChars
	}
	return e.SpecialChars
}

func (e *Evaluator) guessesPerSecond() float64 {
	if e.GuessesPerSecond <= 0 {
		return DefaultGuessesPerSecond
	}
	return e.GuessesPerSecond
}

func tierForScore(score int) Tier {
	switch {
	case score <= 2:
		return TierWeak
	case score <= 4:
		return TierModerate
	default:
		return TierStrong
	}
}
