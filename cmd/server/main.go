package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/mooddecode/config"
	"github.com/spacesedan/mooddecode/internal/analyzer"
	"github.com/spacesedan/mooddecode/internal/api"
	"github.com/spacesedan/mooddecode/internal/cache"
	"github.com/spacesedan/mooddecode/internal/logging"
	"github.com/spacesedan/mooddecode/internal/sentiment"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := analyzer.DefaultConfig()
	a := analyzer.New(sentiment.NewVADERScorer(), cfg)

	resultCache, err := cache.NewFromEnv()
	if err != nil {
		slog.Error("[Main] Failed to connect result cache",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer resultCache.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           api.NewServer(a, resultCache, slog.Default()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("[Main] MoodDecode API listening",
			slog.String("addr", srv.Addr),
			slog.String("env", env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Warn("[Main] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Main] Forced shutdown",
			slog.String("error", err.Error()))
	}
}
