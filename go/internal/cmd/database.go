package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
)

func setupDatabase(ctx context.Context) (*graphdb.Provider, error) {
	dbConfig := graphdb.NewConfigFromEnv()
	provider := graphdb.NewProvider(dbConfig)
	if _, err := provider.Init(); err != nil {
		return nil, fmt.Errorf("failed to create graph database driver: %w", err)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := provider.Verify(verifyCtx); err != nil {
		// requests retry the connection lazily
		log.Warn().Err(err).Str("uri", dbConfig.URI).Msg("graph database not reachable at startup")
		return provider, nil
	}

	log.Info().Str("uri", dbConfig.URI).Str("database", dbConfig.Database).Msg("connected to graph database")
	return provider, nil
}
