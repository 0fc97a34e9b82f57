package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	setupLogger(getEnv("LOG_LEVEL", "info"), getEnv("LOG_FORMAT", "json"))

	config, err := loadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := setupDatabase(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup graph database")
	}

	m := metrics.New()
	clock := clockwork.NewRealClock()

	hub := events.NewHub(events.DefaultHubConfig())
	go hub.Run(ctx)

	publisher, closePublisher := setupPublisher(ctx, config.Events, hub)
	emitter := events.NewEmitter(publisher, clock, m, events.WithQueueSize(config.Events.QueueSize))

	server := setupServer(config, serverDeps{
		services: setupServices(provider, emitter),
		db:       provider,
		events:   hub,
		metrics:  m.Handler(),
		recorder: m,
		clock:    clock,
	})

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := emitter.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to drain change events")
	}
	closePublisher()
	if err := provider.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close graph database driver")
	}
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// setupPublisher fans events out to the WebSocket hub and, when NATS is
// configured, to JetStream. A NATS failure leaves the hub-only publisher.
func setupPublisher(ctx context.Context, config EventsConfig, hub *events.Hub) (events.Publisher, func()) {
	if config.NatsURL == "" {
		return hub, func() {}
	}

	jsConfig := events.DefaultJetStreamConfig()
	jsConfig.URL = config.NatsURL
	if config.Stream != "" {
		jsConfig.StreamName = config.Stream
	}
	if config.SubjectPrefix != "" {
		jsConfig.SubjectPrefix = config.SubjectPrefix
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	js, err := events.NewJetStreamPublisher(connectCtx, jsConfig)
	if err != nil {
		log.Error().Err(err).Str("url", config.NatsURL).Msg("JetStream unavailable, change events go to WebSocket clients only")
		return hub, func() {}
	}

	return events.Multi{js, hub}, func() {
		if err := js.Close(); err != nil {
			log.Error().Err(err).Msg("failed to drain NATS connection")
		}
	}
}
