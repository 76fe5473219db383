package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/janseva/assistant/internal/assistant"
	"github.com/janseva/assistant/internal/config"
	"github.com/janseva/assistant/internal/httpapi"
	"github.com/janseva/assistant/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("janseva exited")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("JANSEVA_CONFIG"))
	if err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			log.Error().Msg("GROQ_API_KEY is not set; refusing to start")
		}
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := wire(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	svc, err := assistant.NewService(deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.NewRouter(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Server.Addr).
			Str("provider", cfg.AI.Provider).
			Str("transcriber", cfg.Speech.Transcriber).
			Str("conversations", cfg.Store.Conversations).
			Str("audio", cfg.Store.Audio).
			Bool("events", cfg.Events.Enabled).
			Msg("JanSeva Assistant API starting up")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("JanSeva Assistant API shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return errors.Join(srv.Shutdown(shutdownCtx), svc.Shutdown(shutdownCtx))
}
