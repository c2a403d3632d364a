package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smarteros/conductor/internal/api"
	"github.com/smarteros/conductor/internal/infrastructure/config"
	"github.com/smarteros/conductor/internal/infrastructure/db/supabase"
	"github.com/smarteros/conductor/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := supabase.NewClient(supabase.Config{
		URL:            cfg.Supabase.URL,
		ServiceRoleKey: cfg.Supabase.ServiceRoleKey,
	})

	e := api.NewRouter(cfg, store, log)

	go func() {
		log.Info().
			Str("project", cfg.ProjectName).
			Str("version", cfg.Version).
			Str("port", cfg.Port).
			Msg("starting conductor")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
