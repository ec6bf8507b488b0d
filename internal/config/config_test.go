package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passguard/passguard-go/internal/strength"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, strength.DefaultGuessesPerSecond, cfg.GuessesPerSecond)
	assert.Equal(t, strength.DefaultSpecialChars, cfg.SpecialChars)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STRENGTH_GUESSES_PER_SECOND", "1e12")
	t.Setenv("STRENGTH_SPECIAL_CHARS", "!@#")
	t.Setenv("RATE_LIMIT_BURST", "25")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 1e12, cfg.GuessesPerSecond)
	assert.Equal(t, "!@#", cfg.SpecialChars)
	assert.Equal(t, 25, cfg.RateLimitBurst)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("STRENGTH_GUESSES_PER_SECOND", "not-a-number")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := Load()

	assert.Equal(t, strength.DefaultGuessesPerSecond, cfg.GuessesPerSecond)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadRejectsNonPositiveRate(t *testing.T) {
	t.Setenv("STRENGTH_GUESSES_PER_SECOND", "-5")

	cfg := Load()

	assert.Equal(t, strength.DefaultGuessesPerSecond, cfg.GuessesPerSecond)
}
