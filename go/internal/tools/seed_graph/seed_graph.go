package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/leagues"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/matches"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/player"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/seasons"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/teams"
)

const defaultSnapshot = "go/internal/assets/seed.json"

// Snapshot mirrors the seed JSON layout. Seasons are nested under their league.
type Snapshot struct {
	Teams   []teams.CreateTeamRequest    `json:"timovi"`
	Players []player.CreatePlayerRequest `json:"igraci"`
	Leagues []SeedLeague                 `json:"lige"`
	Matches []matches.CreateMatchRequest `json:"utakmice"`
}

type SeedLeague struct {
	leagues.CreateLeagueRequest
	Seasons []seasons.CreateSeasonRequest `json:"sezone"`
}

// Summary counts one entity kind.
type Summary struct {
	Total    int
	Inserted int
	Skipped  int
	Errors   int
}

func (s Summary) String() string {
	return fmt.Sprintf("total=%d inserted=%d skipped=%d errors=%d", s.Total, s.Inserted, s.Skipped, s.Errors)
}

type seeder struct {
	teams   *teams.App
	players *player.App
	leagues *leagues.App
	seasons *seasons.App
	matches *matches.App
}

func newSeeder(db graphdb.SessionProvider) *seeder {
	return &seeder{
		teams:   teams.NewApp(teams.NewRepository(db), nil),
		players: player.NewApp(player.NewRepository(db), nil),
		leagues: leagues.NewApp(leagues.NewRepository(db), nil),
		seasons: seasons.NewApp(seasons.NewRepository(db), nil),
		matches: matches.NewApp(matches.NewRepository(db), nil),
	}
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return &snap, nil
}

// seedTeams skips names that already exist.
func (s *seeder) seedTeams(ctx context.Context, reqs []teams.CreateTeamRequest) Summary {
	sum := Summary{Total: len(reqs)}
	for _, req := range reqs {
		_, err := s.teams.GetTeam(ctx, req.Name.Text())
		switch {
		case err == nil:
			sum.Skipped++
			continue
		case !errors.Is(err, models.ErrNotFound):
			fmt.Fprintf(os.Stderr, "error looking up team %s: %v\n", req.Name.Text(), err)
			sum.Errors++
			continue
		}

		if _, err := s.teams.CreateTeam(ctx, req); err != nil {
			fmt.Fprintf(os.Stderr, "error inserting team %s: %v\n", req.Name.Text(), err)
			sum.Errors++
			continue
		}
		sum.Inserted++
	}
	return sum
}

func (s *seeder) seedPlayers(ctx context.Context, reqs []player.CreatePlayerRequest) Summary {
	sum := Summary{Total: len(reqs)}
	for _, req := range reqs {
		if _, err := s.players.CreatePlayer(ctx, req); err != nil {
			fmt.Fprintf(os.Stderr, "error inserting player %s %s: %v\n", req.FirstName.Text(), req.LastName.Text(), err)
			sum.Errors++
			continue
		}
		sum.Inserted++
	}
	return sum
}

// seedLeagues creates each league and then its seasons linked to it.
func (s *seeder) seedLeagues(ctx context.Context, reqs []SeedLeague) (Summary, Summary) {
	leagueSum := Summary{Total: len(reqs)}
	var seasonSum Summary

	for _, req := range reqs {
		seasonSum.Total += len(req.Seasons)

		league, err := s.leagues.CreateLeague(ctx, req.CreateLeagueRequest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting league %s: %v\n", req.Name.Text(), err)
			leagueSum.Errors++
			seasonSum.Skipped += len(req.Seasons)
			continue
		}
		leagueSum.Inserted++

		for _, season := range req.Seasons {
			season.LeagueID = neoutil.Value(league.ID)
			if _, err := s.seasons.CreateSeason(ctx, season); err != nil {
				fmt.Fprintf(os.Stderr, "error inserting season %s: %v\n", season.Name.Text(), err)
				seasonSum.Errors++
				continue
			}
			seasonSum.Inserted++
		}
	}
	return leagueSum, seasonSum
}

func (s *seeder) seedMatches(ctx context.Context, reqs []matches.CreateMatchRequest) Summary {
	sum := Summary{Total: len(reqs)}
	for _, req := range reqs {
		if _, err := s.matches.CreateMatch(ctx, req); err != nil {
			fmt.Fprintf(os.Stderr, "error inserting match %s vs %s: %v\n", req.HomeTeam.Text(), req.AwayTeam.Text(), err)
			sum.Errors++
			continue
		}
		sum.Inserted++
	}
	return sum
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	path := defaultSnapshot
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load the JSON snapshot
	snap, err := loadSnapshot(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// 2) Connect using the shared graph config
	provider := graphdb.NewProvider(graphdb.NewConfigFromEnv())
	if err := provider.Verify(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close(ctx)

	// 3) Seed in dependency order: matches need their teams
	s := newSeeder(provider)
	fmt.Printf("Teams seed: %s\n", s.seedTeams(ctx, snap.Teams))
	fmt.Printf("Players seed: %s\n", s.seedPlayers(ctx, snap.Players))
	leagueSum, seasonSum := s.seedLeagues(ctx, snap.Leagues)
	fmt.Printf("Leagues seed: %s\n", leagueSum)
	fmt.Printf("Seasons seed: %s\n", seasonSum)
	fmt.Printf("Matches seed: %s\n", s.seedMatches(ctx, snap.Matches))
}
