package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/Adfay-Inc/Puntus/repositories"
)

type ScrimInput struct {
	Name        string                `json:"name"`
	MinTeams    int                   `json:"min_teams"`
	MaxTeams    int                   `json:"max_teams"`
	Maps        []string              `json:"maps"`
	PointSystem *models.PointSystem   `json:"point_system,omitempty"`
	Settings    *models.ScrimSettings `json:"settings,omitempty"`
}

type JoinScrimInput struct {
	TeamID   int     `json:"team_id"`
	Password *string `json:"password,omitempty"`
}

type ScrimService interface {
	CreateScrim(ctx context.Context, input ScrimInput, creatorID int) (*models.Scrim, error)
	GetScrimByID(ctx context.Context, id int) (*models.Scrim, error)
	ListScrims(ctx context.Context, limit, offset int) ([]models.Scrim, error)
	UpdateScrim(ctx context.Context, id int, input ScrimInput, currentUserID int) (*models.Scrim, error)
	UpdateStatus(ctx context.Context, id int, status models.ScrimStatus, currentUserID int) (*models.Scrim, error)
	DeleteScrim(ctx context.Context, id int, currentUserID int) error
	ListScrimTeams(ctx context.Context, scrimID int) ([]models.Team, error)
	JoinScrim(ctx context.Context, scrimID int, input JoinScrimInput, currentUserID int) error
	LeaveScrim(ctx context.Context, scrimID, teamID int, currentUserID int) error
}

type scrimService struct {
	db            *sql.DB
	scrimRepo     repositories.ScrimRepository
	scrimTeamRepo repositories.ScrimTeamRepository
	teamRepo      repositories.TeamRepository
	matchRepo     repositories.MatchRepository
	resultRepo    repositories.ResultRepository
	logger        *slog.Logger
}

func NewScrimService(
	db *sql.DB,
	scrimRepo repositories.ScrimRepository,
	scrimTeamRepo repositories.ScrimTeamRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	resultRepo repositories.ResultRepository,
	logger *slog.Logger,
) ScrimService {
	if logger == nil {
		logger = slog.Default()
	}
	return &scrimService{
		db:            db,
		scrimRepo:     scrimRepo,
		scrimTeamRepo: scrimTeamRepo,
		teamRepo:      teamRepo,
		matchRepo:     matchRepo,
		resultRepo:    resultRepo,
		logger:        logger,
	}
}

func validateScrimInput(input *ScrimInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrScrimNameRequired
	}
	if len(input.Maps) == 0 {
		return ErrScrimMapsRequired
	}
	if input.MinTeams < models.ScrimMinTeams || input.MaxTeams > models.ScrimMaxTeams || input.MinTeams > input.MaxTeams {
		return ErrScrimTeamLimits
	}
	return nil
}

func (s *scrimService) CreateScrim(ctx context.Context, input ScrimInput, creatorID int) (*models.Scrim, error) {
	if input.MinTeams == 0 {
		input.MinTeams = models.ScrimMinTeams
	}
	if input.MaxTeams == 0 {
		input.MaxTeams = models.ScrimMaxTeams
	}
	if err := validateScrimInput(&input); err != nil {
		return nil, err
	}

	scrim := &models.Scrim{
		Name:        input.Name,
		CreatorID:   creatorID,
		MinTeams:    input.MinTeams,
		MaxTeams:    input.MaxTeams,
		Maps:        input.Maps,
		PointSystem: models.DefaultPointSystem(),
		Settings:    models.DefaultScrimSettings(),
		Status:      models.ScrimStatusPending,
	}
	if input.PointSystem != nil {
		scrim.PointSystem = *input.PointSystem
	}
	if input.Settings != nil {
		scrim.Settings = *input.Settings
	}

	if err := s.scrimRepo.Create(ctx, scrim); err != nil {
		return nil, fmt.Errorf("failed to create scrim: %w", err)
	}
	return scrim, nil
}

func (s *scrimService) GetScrimByID(ctx context.Context, id int) (*models.Scrim, error) {
	scrim, err := s.scrimRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return nil, ErrScrimNotFound
		}
		return nil, err
	}

	scrim.Teams, err = s.scrimTeamRepo.ListTeamsByScrim(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for scrim %d: %w", id, err)
	}
	return scrim, nil
}

func (s *scrimService) ListScrims(ctx context.Context, limit, offset int) ([]models.Scrim, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.scrimRepo.GetAll(ctx, limit, offset)
}

func (s *scrimService) UpdateScrim(ctx context.Context, id int, input ScrimInput, currentUserID int) (*models.Scrim, error) {
	scrim, err := s.getOwnedScrim(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	// The rotation and scoring config are frozen once play starts.
	if scrim.Status != models.ScrimStatusPending {
		return nil, ErrRosterLockedByStatus
	}
	if err := validateScrimInput(&input); err != nil {
		return nil, err
	}

	scrim.Name = input.Name
	scrim.MinTeams = input.MinTeams
	scrim.MaxTeams = input.MaxTeams
	scrim.Maps = input.Maps
	if input.PointSystem != nil {
		scrim.PointSystem = *input.PointSystem
	}
	if input.Settings != nil {
		scrim.Settings = *input.Settings
	}

	if err := s.scrimRepo.Update(ctx, scrim); err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return nil, ErrScrimNotFound
		}
		return nil, fmt.Errorf("failed to update scrim %d: %w", id, err)
	}
	return scrim, nil
}

func validScrimTransition(current, next models.ScrimStatus) bool {
	if current == next {
		return true
	}
	allowed := map[models.ScrimStatus][]models.ScrimStatus{
		models.ScrimStatusPending:   {models.ScrimStatusActive, models.ScrimStatusCancelled},
		models.ScrimStatusActive:    {models.ScrimStatusCompleted, models.ScrimStatusCancelled},
		models.ScrimStatusCompleted: {},
		models.ScrimStatusCancelled: {},
	}
	for _, status := range allowed[current] {
		if next == status {
			return true
		}
	}
	return false
}

func (s *scrimService) UpdateStatus(ctx context.Context, id int, status models.ScrimStatus, currentUserID int) (*models.Scrim, error) {
	scrim, err := s.getOwnedScrim(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}

	if !validScrimTransition(scrim.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrScrimStatusTransition, scrim.Status, status)
	}

	if status == models.ScrimStatusActive {
		count, err := s.scrimTeamRepo.CountByScrim(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to count teams for scrim %d: %w", id, err)
		}
		if count < scrim.MinTeams {
			return nil, fmt.Errorf("%w: %d of %d", ErrScrimNotEnoughTeams, count, scrim.MinTeams)
		}
	}

	if err := s.scrimRepo.UpdateStatus(ctx, s.db, id, status); err != nil {
		return nil, fmt.Errorf("failed to update scrim %d status: %w", id, err)
	}

	s.logger.Info("scrim status changed",
		slog.Int("scrim_id", id),
		slog.String("from", string(scrim.Status)),
		slog.String("to", string(status)),
	)
	scrim.Status = status
	return scrim, nil
}

// DeleteScrim removes the scrim together with its results, matches,
// registrations and the registered teams themselves; a team exists only
// within its scrim.
func (s *scrimService) DeleteScrim(ctx context.Context, id int, currentUserID int) error {
	if _, err := s.getOwnedScrim(ctx, id, currentUserID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.resultRepo.DeleteByScrim(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete results for scrim %d: %w", id, err)
	}
	if err := s.matchRepo.DeleteByScrim(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete matches for scrim %d: %w", id, err)
	}

	teamIDs, err := s.scrimTeamRepo.DeleteByScrim(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("failed to delete registrations for scrim %d: %w", id, err)
	}
	if err := s.teamRepo.DeleteBatch(ctx, tx, teamIDs); err != nil {
		return fmt.Errorf("failed to delete teams for scrim %d: %w", id, err)
	}

	if err := s.scrimRepo.Delete(ctx, tx, id); err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return ErrScrimNotFound
		}
		return fmt.Errorf("failed to delete scrim %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scrim deletion: %w", err)
	}

	s.logger.Info("scrim deleted",
		slog.Int("scrim_id", id),
		slog.Int("teams_removed", len(teamIDs)),
	)
	return nil
}

func (s *scrimService) ListScrimTeams(ctx context.Context, scrimID int) ([]models.Team, error) {
	if _, err := s.scrimRepo.GetByID(ctx, scrimID); err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return nil, ErrScrimNotFound
		}
		return nil, err
	}
	return s.scrimTeamRepo.ListTeamsByScrim(ctx, scrimID)
}

func (s *scrimService) JoinScrim(ctx context.Context, scrimID int, input JoinScrimInput, currentUserID int) error {
	scrim, err := s.scrimRepo.GetByID(ctx, scrimID)
	if err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return ErrScrimNotFound
		}
		return err
	}
	if scrim.Status != models.ScrimStatusPending {
		return ErrScrimNotJoinable
	}

	if scrim.Settings.IsPrivate {
		if scrim.Settings.Password == nil || input.Password == nil || *scrim.Settings.Password != *input.Password {
			return ErrScrimPasswordInvalid
		}
	}

	team, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if team.CreatorID != currentUserID {
		return ErrForbiddenOperation
	}

	count, err := s.scrimTeamRepo.CountByScrim(ctx, scrimID)
	if err != nil {
		return fmt.Errorf("failed to count teams for scrim %d: %w", scrimID, err)
	}
	if count >= scrim.MaxTeams {
		return ErrScrimFull
	}

	entry := &models.ScrimTeam{
		ScrimID: scrimID,
		TeamID:  input.TeamID,
		Status:  models.ScrimTeamRegistered,
	}
	if err := s.scrimTeamRepo.Register(ctx, entry); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamAlreadyRegistered):
			return ErrTeamAlreadyInScrim
		case errors.Is(err, repositories.ErrScrimRegistrationDupes):
			return ErrRegistrationConflict
		}
		return fmt.Errorf("failed to register team %d in scrim %d: %w", input.TeamID, scrimID, err)
	}
	return nil
}

func (s *scrimService) LeaveScrim(ctx context.Context, scrimID, teamID int, currentUserID int) error {
	scrim, err := s.scrimRepo.GetByID(ctx, scrimID)
	if err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return ErrScrimNotFound
		}
		return err
	}
	if scrim.Status != models.ScrimStatusPending {
		return ErrRosterLockedByStatus
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if team.CreatorID != currentUserID && scrim.CreatorID != currentUserID {
		return ErrForbiddenOperation
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.scrimTeamRepo.Unregister(ctx, tx, scrimID, teamID); err != nil {
		if errors.Is(err, repositories.ErrScrimTeamNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to unregister team %d from scrim %d: %w", teamID, scrimID, err)
	}

	// A team exists only within its scrim; leaving destroys the team too.
	if err := s.teamRepo.DeleteBatch(ctx, tx, []int{teamID}); err != nil {
		return fmt.Errorf("failed to delete team %d: %w", teamID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit team removal: %w", err)
	}

	s.logger.Info("team removed from scrim",
		slog.Int("scrim_id", scrimID),
		slog.Int("team_id", teamID),
	)
	return nil
}

func (s *scrimService) getOwnedScrim(ctx context.Context, id, currentUserID int) (*models.Scrim, error) {
	scrim, err := s.scrimRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return nil, ErrScrimNotFound
		}
		return nil, fmt.Errorf("failed to get scrim %d: %w", id, err)
	}
	if scrim.CreatorID != currentUserID {
		return nil, ErrCreatorActionForbidden
	}
	return scrim, nil
}
