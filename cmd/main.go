package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/Vovarama1992/assistbot/internal/ai"
	"github.com/Vovarama1992/assistbot/internal/assist"
	"github.com/Vovarama1992/assistbot/internal/config"
	"github.com/Vovarama1992/assistbot/internal/database"
	"github.com/Vovarama1992/assistbot/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	logging.Init(cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- DB ---
	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db error")
	}
	defer db.Close()
	log.Info().Str("driver", db.Driver).Msg("faq store ready")

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.AccessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- Assist module wiring ---
	var notifier assist.Notifier = assist.LogNotifier{}
	if cfg.FollowUpWebhookURL != "" {
		notifier = assist.MultiNotifier{notifier, assist.NewWebhookNotifier(cfg.FollowUpWebhookURL)}
	}

	followUps := assist.NewFollowUps(cfg.FollowUpDelay, notifier)
	defer followUps.Stop()

	registry := assist.NewRegistry()
	faqRepo := assist.NewFAQRepo(db)
	aiClient := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	assistService := assist.NewService(faqRepo, registry, followUps, aiClient)
	assistHandler := assist.NewHandler(assistService, registry)

	assist.RegisterRoutes(r, assistHandler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("AssistBot is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
