package main

import (
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/leagues"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/matches"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/player"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/seasons"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/teams"
)

type Services struct {
	Teams   *teams.Service
	Players *player.Service
	Matches *matches.Service
	Leagues *leagues.Service
	Seasons *seasons.Service
}

func setupServices(db graphdb.SessionProvider, emitter *events.Emitter) *Services {
	// Wire up dependency injection chain
	// Session provider → Repository layer → App layer → Service layer

	// Teams
	teamsRepo := teams.NewRepository(db)
	teamsApp := teams.NewApp(teamsRepo, emitter)
	teamsService := teams.NewService(teamsApp)

	// Players
	playerRepo := player.NewRepository(db)
	playerApp := player.NewApp(playerRepo, emitter)
	playerService := player.NewService(playerApp)

	// Matches
	matchesRepo := matches.NewRepository(db)
	matchesApp := matches.NewApp(matchesRepo, emitter)
	matchesService := matches.NewService(matchesApp)

	// Leagues
	leagueRepo := leagues.NewRepository(db)
	leagueApp := leagues.NewApp(leagueRepo, emitter)
	leagueService := leagues.NewService(leagueApp)

	// Seasons
	seasonRepo := seasons.NewRepository(db)
	seasonApp := seasons.NewApp(seasonRepo, emitter)
	seasonService := seasons.NewService(seasonApp)

	return &Services{
		Teams:   teamsService,
		Players: playerService,
		Matches: matchesService,
		Leagues: leagueService,
		Seasons: seasonService,
	}
}
