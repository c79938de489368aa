package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/Adfay-Inc/Puntus/repositories"
)

type MatchInput struct {
	GameNumber int     `json:"game_number"`
	RoomID     *string `json:"room_id,omitempty"`
	RoomPass   *string `json:"room_password,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type MatchService interface {
	CreateMatch(ctx context.Context, scrimID int, input MatchInput, currentUserID int) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListByScrim(ctx context.Context, scrimID int) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id int, input MatchInput, currentUserID int) (*models.Match, error)
	StartMatch(ctx context.Context, id int, currentUserID int) (*models.Match, error)
	EndMatch(ctx context.Context, id int, currentUserID int) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int, currentUserID int) error
}

type matchService struct {
	db         *sql.DB
	matchRepo  repositories.MatchRepository
	scrimRepo  repositories.ScrimRepository
	resultRepo repositories.ResultRepository
}

func NewMatchService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	scrimRepo repositories.ScrimRepository,
	resultRepo repositories.ResultRepository,
) MatchService {
	return &matchService{db: db, matchRepo: matchRepo, scrimRepo: scrimRepo, resultRepo: resultRepo}
}

func (s *matchService) CreateMatch(ctx context.Context, scrimID int, input MatchInput, currentUserID int) (*models.Match, error) {
	scrim, err := s.ownedScrim(ctx, scrimID, currentUserID)
	if err != nil {
		return nil, err
	}
	if scrim.Status == models.ScrimStatusCompleted || scrim.Status == models.ScrimStatusCancelled {
		return nil, ErrMatchesLockedByStatus
	}
	if input.GameNumber < 1 || input.GameNumber > len(scrim.Maps) {
		return nil, fmt.Errorf("%w: game %d of %d maps", ErrGameNumberInvalid, input.GameNumber, len(scrim.Maps))
	}

	match := &models.Match{
		ScrimID: scrimID,
		// The map rotation owns the map name; game N plays rotation slot N-1.
		MapName:    scrim.Maps[input.GameNumber-1],
		GameNumber: input.GameNumber,
		Status:     models.MatchStatusPending,
		RoomID:     input.RoomID,
		RoomPass:   input.RoomPass,
		Notes:      input.Notes,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchGameNumberConflict) {
			return nil, ErrGameNumberConflict
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (s *matchService) ListByScrim(ctx context.Context, scrimID int) ([]models.Match, error) {
	if _, err := s.scrimRepo.GetByID(ctx, scrimID); err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return nil, ErrScrimNotFound
		}
		return nil, err
	}
	return s.matchRepo.ListByScrim(ctx, scrimID)
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input MatchInput, currentUserID int) (*models.Match, error) {
	match, err := s.ownedMatch(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}

	match.RoomID = input.RoomID
	match.RoomPass = input.RoomPass
	match.Notes = input.Notes
	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) StartMatch(ctx context.Context, id int, currentUserID int) (*models.Match, error) {
	match, err := s.ownedMatch(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	if match.Status != models.MatchStatusPending {
		return nil, ErrMatchNotStartable
	}

	now := time.Now()
	if err := s.matchRepo.UpdateStatus(ctx, id, models.MatchStatusInProgress, now); err != nil {
		return nil, fmt.Errorf("failed to start match %d: %w", id, err)
	}
	match.Status = models.MatchStatusInProgress
	match.StartTime = &now
	return match, nil
}

func (s *matchService) EndMatch(ctx context.Context, id int, currentUserID int) (*models.Match, error) {
	match, err := s.ownedMatch(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	if match.Status != models.MatchStatusInProgress {
		return nil, ErrMatchNotEndable
	}

	now := time.Now()
	if err := s.matchRepo.UpdateStatus(ctx, id, models.MatchStatusCompleted, now); err != nil {
		return nil, fmt.Errorf("failed to end match %d: %w", id, err)
	}
	match.Status = models.MatchStatusCompleted
	match.EndTime = &now
	return match, nil
}

// DeleteMatch removes the match and every result reported for it.
func (s *matchService) DeleteMatch(ctx context.Context, id int, currentUserID int) error {
	if _, err := s.ownedMatch(ctx, id, currentUserID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.resultRepo.DeleteByMatch(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete results for match %d: %w", id, err)
	}
	if err := s.matchRepo.Delete(ctx, tx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match deletion: %w", err)
	}
	return nil
}

func (s *matchService) ownedScrim(ctx context.Context, scrimID, currentUserID int) (*models.Scrim, error) {
	scrim, err := s.scrimRepo.GetByID(ctx, scrimID)
	if err != nil {
		if errors.Is(err, repositories.ErrScrimNotFound) {
			return nil, ErrScrimNotFound
		}
		return nil, fmt.Errorf("failed to get scrim %d: %w", scrimID, err)
	}
	if scrim.CreatorID != currentUserID {
		return nil, ErrCreatorActionForbidden
	}
	return scrim, nil
}

func (s *matchService) ownedMatch(ctx context.Context, id, currentUserID int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	if _, err := s.ownedScrim(ctx, match.ScrimID, currentUserID); err != nil {
		return nil, err
	}
	return match, nil
}
