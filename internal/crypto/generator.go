package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()-_=+[]{};:,.<>?/"

	// similarChars are visually confusable glyphs removed when
	// Policy.ExcludeSimilar is set.
	similarChars = "O0I1li|"

	MinLength = 8
	MaxLength = 50
)

// ErrInvalidPolicy is the base error for every generation policy violation.
// All policy errors wrap it, so callers branch with errors.Is.
var ErrInvalidPolicy = errors.New("invalid generation policy")

// Policy constrains password generation.
type Policy struct {
	Length         int
	ExcludeSimilar bool
	// Special overrides the special-character alphabet. Empty means the
	// package default.
	Special string
}

// DefaultPolicy returns sensible defaults: 16 characters, similar glyphs kept.
func DefaultPolicy() Policy {
	return Policy{Length: 16}
}

// Validate checks the policy against the supported length range.
func (p Policy) Validate() error {
	if p.Length < MinLength || p.Length > MaxLength {
		return fmt.Errorf("%w: length must be between %d and %d, got %d",
			ErrInvalidPolicy, MinLength, MaxLength, p.Length)
	}
	return nil
}

// Generate creates a random password satisfying the policy. The result always
// contains at least one lowercase letter, one uppercase letter, one digit and
// one special character. All randomness comes from crypto/rand.
func Generate(policy Policy) (string, error) {
	if err := policy.Validate(); err != nil {
		return "", err
	}

	special := policy.Special
	if special == "" {
		special = specialChars
	}

	classes := []string{lowercaseChars, uppercaseChars, digitChars, special}
	if policy.ExcludeSimilar {
		for i, class := range classes {
			classes[i] = stripSimilar(class)
		}
	}
	for _, class := range classes {
		if class == "" {
			return "", fmt.Errorf("%w: exclusion emptied a required character class", ErrInvalidPolicy)
		}
	}
	pool := strings.Join(classes, "")

	result := make([]byte, policy.Length)

	// One guaranteed character per class, so even the minimum length meets
	// every class requirement.
	for i, class := range classes {
		ch, err := randChar(class)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(classes); i < policy.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Shuffle so the guaranteed characters are not at fixed positions.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

func stripSimilar(class string) string {
	var b strings.Builder
	for _, r := range class {
		if !strings.ContainsRune(similarChars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
