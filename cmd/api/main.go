package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passguard/passguard-go/internal/config"
	"github.com/passguard/passguard-go/internal/handler"
	"github.com/passguard/passguard-go/internal/middleware"
	"github.com/passguard/passguard-go/internal/service"
	"github.com/passguard/passguard-go/internal/strength"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	common := strength.DefaultCommonPasswords()
	evaluator := strength.NewEvaluator(common)
	evaluator.SpecialChars = cfg.SpecialChars
	evaluator.GuessesPerSecond = cfg.GuessesPerSecond

	svc := service.NewStrengthService(evaluator)
	h := handler.NewStrengthHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/evaluate", h.HandleEvaluate)
		r.Post("/api/v1/generate", h.HandleGenerate)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.Port,
			"env", cfg.Env,
			"common_passwords", common.Len(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
