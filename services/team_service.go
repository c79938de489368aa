package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/Adfay-Inc/Puntus/repositories"
	"github.com/Adfay-Inc/Puntus/storage"
)

type TeamInput struct {
	Name    string   `json:"name"`
	Tag     string   `json:"tag"`
	Players []string `json:"players"`
}

type TeamService interface {
	CreateTeam(ctx context.Context, input TeamInput, creatorID int) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	UpdateTeam(ctx context.Context, id int, input TeamInput, currentUserID int) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int, currentUserID int) error
	UploadLogo(ctx context.Context, teamID int, currentUserID int, contentType string, file io.Reader) (*models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
	uploader storage.FileUploader
}

func NewTeamService(teamRepo repositories.TeamRepository, uploader storage.FileUploader) TeamService {
	return &teamService{teamRepo: teamRepo, uploader: uploader}
}

func validateTeamInput(input *TeamInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Tag = strings.ToUpper(strings.TrimSpace(input.Tag))

	if input.Name == "" {
		return ErrTeamNameRequired
	}
	if input.Tag == "" || len(input.Tag) > models.TeamTagMaxLen {
		return ErrTeamTagInvalid
	}
	if len(input.Players) < models.TeamMinPlayers || len(input.Players) > models.TeamMaxPlayers {
		return ErrRosterSizeInvalid
	}
	for i, player := range input.Players {
		input.Players[i] = strings.TrimSpace(player)
	}
	for i := 0; i < models.TeamMinPlayers; i++ {
		if input.Players[i] == "" {
			return fmt.Errorf("%w: slot %d is empty", ErrPlayerNameRequired, i+1)
		}
	}
	return nil
}

func (s *teamService) CreateTeam(ctx context.Context, input TeamInput, creatorID int) (*models.Team, error) {
	if err := validateTeamInput(&input); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:      input.Name,
		Tag:       input.Tag,
		CreatorID: creatorID,
		Players:   input.Players,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamTagConflict) {
			return nil, ErrTeamTagConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput, currentUserID int) (*models.Team, error) {
	team, err := s.getOwnedTeam(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	if err := validateTeamInput(&input); err != nil {
		return nil, err
	}

	team.Name = input.Name
	team.Tag = input.Tag
	team.Players = input.Players
	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamTagConflict) {
			return nil, ErrTeamTagConflict
		}
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int, currentUserID int) error {
	team, err := s.getOwnedTeam(ctx, id, currentUserID)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}

	if team.LogoKey != nil && s.uploader != nil {
		// Storage cleanup is best effort; the row is already gone.
		_ = s.uploader.Delete(ctx, *team.LogoKey)
	}
	return nil
}

func (s *teamService) UploadLogo(ctx context.Context, teamID int, currentUserID int, contentType string, file io.Reader) (*models.Team, error) {
	team, err := s.getOwnedTeam(ctx, teamID, currentUserID)
	if err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, fmt.Errorf("%w: logo storage is not configured", ErrValidationFailed)
	}

	ext := extensionForContentType(contentType)
	if ext == "" {
		return nil, fmt.Errorf("%w: unsupported logo content type %q", ErrValidationFailed, contentType)
	}

	key := fmt.Sprintf("logos/teams/%d%s", teamID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo for team %d: %w", teamID, err)
	}

	if team.LogoKey != nil && *team.LogoKey != result.Key {
		_ = s.uploader.Delete(ctx, *team.LogoKey)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to persist logo key for team %d: %w", teamID, err)
	}

	team.LogoKey = &result.Key
	team.LogoURL = &result.Location
	return team, nil
}

func (s *teamService) getOwnedTeam(ctx context.Context, id, currentUserID int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	if team.CreatorID != currentUserID {
		return nil, ErrForbiddenOperation
	}
	return team, nil
}

func (s *teamService) populateLogoURL(team *models.Team) {
	if team.LogoKey == nil || s.uploader == nil {
		return
	}
	url := s.uploader.GetPublicURL(*team.LogoKey)
	if url != "" {
		team.LogoURL = &url
	}
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
