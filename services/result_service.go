package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/Adfay-Inc/Puntus/repositories"
	"github.com/Adfay-Inc/Puntus/scoring"
)

// StandingsNotifier is told whenever recorded results change so live
// leaderboard consumers can be refreshed. Implementations must not block.
type StandingsNotifier interface {
	StandingsChanged(scrimID int)
}

type ResultInput struct {
	TeamID    int `json:"team_id"`
	Placement int `json:"placement"`
	Kills     int `json:"kills"`
	// PlayerKills accepts the index-keyed object form, a plain array, or
	// either double-encoded as a string.
	PlayerKills json.RawMessage `json:"player_kills,omitempty"`
}

type ResultService interface {
	ReportResult(ctx context.Context, matchID int, input ResultInput, currentUserID int) (*models.MatchResult, error)
	ReportBulk(ctx context.Context, matchID int, inputs []ResultInput, currentUserID int) ([]models.MatchResult, error)
	GetResultByID(ctx context.Context, id int) (*models.MatchResult, error)
	ListByMatch(ctx context.Context, matchID int) ([]models.MatchResult, error)
	UpdateResult(ctx context.Context, id int, input ResultInput, currentUserID int) (*models.MatchResult, error)
	DeleteResult(ctx context.Context, id int, currentUserID int) error
}

type resultService struct {
	resultRepo    repositories.ResultRepository
	matchRepo     repositories.MatchRepository
	scrimRepo     repositories.ScrimRepository
	scrimTeamRepo repositories.ScrimTeamRepository
	notifier      StandingsNotifier
	logger        *slog.Logger
}

func NewResultService(
	resultRepo repositories.ResultRepository,
	matchRepo repositories.MatchRepository,
	scrimRepo repositories.ScrimRepository,
	scrimTeamRepo repositories.ScrimTeamRepository,
	notifier StandingsNotifier,
	logger *slog.Logger,
) ResultService {
	if logger == nil {
		logger = slog.Default()
	}
	return &resultService{
		resultRepo:    resultRepo,
		matchRepo:     matchRepo,
		scrimRepo:     scrimRepo,
		scrimTeamRepo: scrimTeamRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *resultService) ReportResult(ctx context.Context, matchID int, input ResultInput, currentUserID int) (*models.MatchResult, error) {
	env, err := s.loadReportingContext(ctx, matchID, currentUserID)
	if err != nil {
		return nil, err
	}

	result, err := s.buildResult(env, matchID, input)
	if err != nil {
		return nil, err
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, mapResultRepoError(err)
	}

	s.notifyStandings(env.scrim.ID)
	return result, nil
}

// ReportBulk records results for every team of a match in one call; the
// first invalid entry aborts the remainder.
func (s *resultService) ReportBulk(ctx context.Context, matchID int, inputs []ResultInput, currentUserID int) ([]models.MatchResult, error) {
	env, err := s.loadReportingContext(ctx, matchID, currentUserID)
	if err != nil {
		return nil, err
	}

	results := make([]models.MatchResult, 0, len(inputs))
	for _, input := range inputs {
		result, err := s.buildResult(env, matchID, input)
		if err != nil {
			return nil, err
		}
		if err := s.resultRepo.Create(ctx, result); err != nil {
			return nil, mapResultRepoError(err)
		}
		results = append(results, *result)
	}

	s.notifyStandings(env.scrim.ID)
	return results, nil
}

func (s *resultService) GetResultByID(ctx context.Context, id int) (*models.MatchResult, error) {
	result, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrResultNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *resultService) ListByMatch(ctx context.Context, matchID int) ([]models.MatchResult, error) {
	if _, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return s.resultRepo.ListByMatch(ctx, matchID)
}

func (s *resultService) UpdateResult(ctx context.Context, id int, input ResultInput, currentUserID int) (*models.MatchResult, error) {
	existing, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrResultNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	env, err := s.loadReportingContext(ctx, existing.MatchID, currentUserID)
	if err != nil {
		return nil, err
	}

	input.TeamID = existing.TeamID
	result, err := s.buildResult(env, existing.MatchID, input)
	if err != nil {
		return nil, err
	}
	result.ID = id

	if err := s.resultRepo.Update(ctx, result); err != nil {
		return nil, mapResultRepoError(err)
	}

	s.notifyStandings(env.scrim.ID)
	return result, nil
}

func (s *resultService) DeleteResult(ctx context.Context, id int, currentUserID int) error {
	existing, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrResultNotFound) {
			return ErrResultNotFound
		}
		return err
	}

	env, err := s.loadReportingContext(ctx, existing.MatchID, currentUserID)
	if err != nil {
		return err
	}

	if err := s.resultRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrResultNotFound) {
			return ErrResultNotFound
		}
		return err
	}

	s.notifyStandings(env.scrim.ID)
	return nil
}

type reportingContext struct {
	match *models.Match
	scrim *models.Scrim
	teams map[int]models.Team
}

func (s *resultService) loadReportingContext(ctx context.Context, matchID, currentUserID int) (*reportingContext, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", matchID, err)
	}

	scrim, err := s.scrimRepo.GetByID(ctx, match.ScrimID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scrim %d: %w", match.ScrimID, err)
	}
	if scrim.CreatorID != currentUserID {
		return nil, ErrCreatorActionForbidden
	}
	if scrim.Status != models.ScrimStatusActive {
		return nil, ErrResultsLockedByStatus
	}

	registered, err := s.scrimTeamRepo.ListTeamsByScrim(ctx, scrim.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for scrim %d: %w", scrim.ID, err)
	}
	teams := make(map[int]models.Team, len(registered))
	for _, team := range registered {
		teams[team.ID] = team
	}

	return &reportingContext{match: match, scrim: scrim, teams: teams}, nil
}

func (s *resultService) buildResult(env *reportingContext, matchID int, input ResultInput) (*models.MatchResult, error) {
	team, ok := env.teams[input.TeamID]
	if !ok {
		return nil, fmt.Errorf("%w: team %d is not in scrim %d", ErrTeamNotFound, input.TeamID, env.scrim.ID)
	}
	if !models.ValidPlacement(input.Placement) {
		return nil, fmt.Errorf("%w: %d", ErrPlacementInvalid, input.Placement)
	}
	if input.Kills < 0 {
		return nil, ErrKillsInvalid
	}

	var playerKills []int
	if len(input.PlayerKills) > 0 {
		if !env.scrim.Settings.IsDetailed {
			return nil, ErrDetailedStatsDisabled
		}
		var err error
		playerKills, err = models.NormalizePlayerKills(input.PlayerKills, len(team.Players))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		if sum := models.SumPlayerKills(playerKills); sum > input.Kills {
			// Tolerated: stats screens show per-player numbers as reported.
			s.logger.Warn("player kill sum exceeds team kills",
				slog.Int("match_id", matchID),
				slog.Int("team_id", input.TeamID),
				slog.Int("player_kill_sum", sum),
				slog.Int("team_kills", input.Kills),
			)
		}
	}

	placement := input.Placement
	breakdown, err := scoring.ResolvePoints(&placement, input.Kills, env.scrim.PointSystem)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	return &models.MatchResult{
		MatchID:         matchID,
		TeamID:          input.TeamID,
		Placement:       input.Placement,
		Kills:           input.Kills,
		PlacementPoints: breakdown.PlacementPoints,
		KillPoints:      breakdown.KillPoints,
		TotalPoints:     breakdown.TotalPoints,
		PlayerKills:     playerKills,
	}, nil
}

func (s *resultService) notifyStandings(scrimID int) {
	if s.notifier != nil {
		s.notifier.StandingsChanged(scrimID)
	}
}

func mapResultRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrResultPlacementConflict):
		return ErrResultPlacementTaken
	case errors.Is(err, repositories.ErrResultTeamConflict):
		return ErrResultAlreadyReported
	case errors.Is(err, repositories.ErrResultNotFound):
		return ErrResultNotFound
	}
	return err
}
