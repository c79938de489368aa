package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/Adfay-Inc/Puntus/repositories"
	"github.com/Adfay-Inc/Puntus/scoring"
	"golang.org/x/sync/errgroup"
)

// Leaderboard is the ranked standings of one scrim at a point in time.
type Leaderboard struct {
	ScrimID     int                  `json:"scrim_id"`
	ScrimStatus models.ScrimStatus   `json:"scrim_status"`
	Maps        []string             `json:"maps"`
	Standings   []scoring.RankedTeam `json:"standings"`
}

// ResultsSummary is the full post-scrim report: standings plus the derived
// highlights shown on the results screen.
type ResultsSummary struct {
	Leaderboard
	Top3       []scoring.RankedTeam `json:"top3"`
	MapWinners []scoring.MapWinner  `json:"map_winners"`
	MVP        *scoring.PlayerMVP   `json:"mvp,omitempty"`
}

type StandingsService interface {
	GetLeaderboard(ctx context.Context, scrimID int) (*Leaderboard, error)
	GetResultsSummary(ctx context.Context, scrimID int) (*ResultsSummary, error)
}

type standingsService struct {
	scrimRepo     repositories.ScrimRepository
	scrimTeamRepo repositories.ScrimTeamRepository
	matchRepo     repositories.MatchRepository
	resultRepo    repositories.ResultRepository
	engine        *scoring.Engine
	logger        *slog.Logger
}

func NewStandingsService(
	scrimRepo repositories.ScrimRepository,
	scrimTeamRepo repositories.ScrimTeamRepository,
	matchRepo repositories.MatchRepository,
	resultRepo repositories.ResultRepository,
	logger *slog.Logger,
) StandingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &standingsService{
		scrimRepo:     scrimRepo,
		scrimTeamRepo: scrimTeamRepo,
		matchRepo:     matchRepo,
		resultRepo:    resultRepo,
		engine:        scoring.NewEngine(logger),
		logger:        logger,
	}
}

func (s *standingsService) GetLeaderboard(ctx context.Context, scrimID int) (*Leaderboard, error) {
	agg, err := s.aggregate(ctx, scrimID)
	if err != nil {
		return nil, err
	}
	return agg.leaderboard(), nil
}

func (s *standingsService) GetResultsSummary(ctx context.Context, scrimID int) (*ResultsSummary, error) {
	agg, err := s.aggregate(ctx, scrimID)
	if err != nil {
		return nil, err
	}

	scrim := agg.scrim
	summary := &ResultsSummary{
		Leaderboard: *agg.leaderboard(),
		Top3:        scoring.TopN(agg.ranked, 3),
		MapWinners:  scoring.MapWinners(scrim.Maps, agg.results, agg.teams, scrim.PointSystem),
	}
	if scrim.Settings.IsDetailed {
		summary.MVP = scoring.GlobalMVP(agg.teams, agg.results, scrim.PointSystem, agg.ranked)
	}
	return summary, nil
}

type aggregation struct {
	scrim   *models.Scrim
	teams   []models.Team
	results []scoring.Result
	ranked  []scoring.RankedTeam
}

func (a *aggregation) leaderboard() *Leaderboard {
	return &Leaderboard{
		ScrimID:     a.scrim.ID,
		ScrimStatus: a.scrim.Status,
		Maps:        a.scrim.Maps,
		Standings:   a.ranked,
	}
}

// aggregate loads everything the engine needs and runs the pipeline. Result
// rows for all matches are fetched concurrently; the flattened set keeps no
// particular order, which the fold tolerates.
func (s *standingsService) aggregate(ctx context.Context, scrimID int) (*aggregation, error) {
	scrim, err := s.scrimRepo.GetByID(ctx, scrimID)
	if err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return nil, ErrScrimNotFound
		}
		return nil, err
	}

	teams, err := s.scrimTeamRepo.ListTeamsByScrim(ctx, scrimID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for scrim %d: %w", scrimID, err)
	}

	matches, err := s.matchRepo.ListByScrim(ctx, scrimID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for scrim %d: %w", scrimID, err)
	}

	results, err := s.collectResults(ctx, matches)
	if err != nil {
		return nil, err
	}

	stats, err := s.engine.AccumulateTeamStats(teams, scrim.Maps, results, scrim.PointSystem)
	if err != nil {
		return nil, err
	}

	return &aggregation{
		scrim:   scrim,
		teams:   teams,
		results: results,
		ranked:  scoring.Rank(stats),
	}, nil
}

func (s *standingsService) collectResults(ctx context.Context, matches []models.Match) ([]scoring.Result, error) {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(4)

	var mu sync.Mutex
	flattened := make([]scoring.Result, 0, len(matches)*models.ScrimMaxTeams)

	for _, match := range matches {
		match := match
		group.Go(func() error {
			rows, err := s.resultRepo.ListByMatch(ctx, match.ID)
			if err != nil {
				return fmt.Errorf("failed to list results for match %d: %w", match.ID, err)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, row := range rows {
				flattened = append(flattened, scoring.Result{
					TeamID:      row.TeamID,
					MapName:     match.MapName,
					MapIndex:    match.MapSlot(),
					Placement:   row.Placement,
					Kills:       row.Kills,
					PlayerKills: row.PlayerKills,
				})
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return flattened, nil
}
