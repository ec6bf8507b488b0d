package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/passguard/passguard-go/internal/strength"
)

type Config struct {
	Port string
	Env  string

	// GuessesPerSecond is the assumed attacker rate for crack-time estimates.
	GuessesPerSecond float64
	// SpecialChars is the special-character alphabet used for detection,
	// entropy and generation.
	SpecialChars string

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		GuessesPerSecond: getEnvFloat("STRENGTH_GUESSES_PER_SECOND", strength.DefaultGuessesPerSecond),
		SpecialChars:     getEnv("STRENGTH_SPECIAL_CHARS", strength.DefaultSpecialChars),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.GuessesPerSecond <= 0 {
		slog.Warn("STRENGTH_GUESSES_PER_SECOND must be positive, using default",
			"default", strength.DefaultGuessesPerSecond)
		cfg.GuessesPerSecond = strength.DefaultGuessesPerSecond
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid float in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}
