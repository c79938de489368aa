package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/lib/pq"
)

var (
	ErrScrimTeamNotFound      = errors.New("team is not registered in this scrim")
	ErrTeamAlreadyRegistered  = errors.New("team is already registered in a scrim")
	ErrScrimRegistrationDupes = errors.New("team is already registered in this scrim")
)

type ScrimTeamRepository interface {
	Register(ctx context.Context, entry *models.ScrimTeam) error
	Unregister(ctx context.Context, exec SQLExecutor, scrimID, teamID int) error
	UpdateStatus(ctx context.Context, scrimID, teamID int, status models.ScrimTeamStatus) error
	ListByScrim(ctx context.Context, scrimID int) ([]models.ScrimTeam, error)
	ListTeamsByScrim(ctx context.Context, scrimID int) ([]models.Team, error)
	CountByScrim(ctx context.Context, scrimID int) (int, error)
	DeleteByScrim(ctx context.Context, exec SQLExecutor, scrimID int) ([]int, error)
}

type postgresScrimTeamRepository struct {
	db *sql.DB
}

func NewPostgresScrimTeamRepository(db *sql.DB) ScrimTeamRepository {
	return &postgresScrimTeamRepository{db: db}
}

func (r *postgresScrimTeamRepository) Register(ctx context.Context, entry *models.ScrimTeam) error {
	query := `
		INSERT INTO scrim_teams (scrim_id, team_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, registered_at`
	err := r.db.QueryRowContext(ctx, query,
		entry.ScrimID,
		entry.TeamID,
		entry.Status,
	).Scan(&entry.ID, &entry.RegisteredAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case "scrim_teams_team_id_key":
				return ErrTeamAlreadyRegistered
			case "scrim_teams_scrim_id_team_id_key":
				return ErrScrimRegistrationDupes
			}
		}
		return err
	}
	return nil
}

func (r *postgresScrimTeamRepository) Unregister(ctx context.Context, exec SQLExecutor, scrimID, teamID int) error {
	query := `DELETE FROM scrim_teams WHERE scrim_id = $1 AND team_id = $2`
	result, err := exec.ExecContext(ctx, query, scrimID, teamID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScrimTeamNotFound)
}

func (r *postgresScrimTeamRepository) UpdateStatus(ctx context.Context, scrimID, teamID int, status models.ScrimTeamStatus) error {
	query := `UPDATE scrim_teams SET status = $1 WHERE scrim_id = $2 AND team_id = $3`
	result, err := r.db.ExecContext(ctx, query, status, scrimID, teamID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScrimTeamNotFound)
}

func (r *postgresScrimTeamRepository) ListByScrim(ctx context.Context, scrimID int) ([]models.ScrimTeam, error) {
	query := `
		SELECT id, scrim_id, team_id, status, registered_at
		FROM scrim_teams
		WHERE scrim_id = $1
		ORDER BY registered_at`
	rows, err := r.db.QueryContext(ctx, query, scrimID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ScrimTeam, 0)
	for rows.Next() {
		var entry models.ScrimTeam
		err := rows.Scan(&entry.ID, &entry.ScrimID, &entry.TeamID, &entry.Status, &entry.RegisteredAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *postgresScrimTeamRepository) ListTeamsByScrim(ctx context.Context, scrimID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.name, t.tag, t.creator_id, t.players, t.logo_key, t.created_at
		FROM teams t
		JOIN scrim_teams st ON st.team_id = t.id
		WHERE st.scrim_id = $1
		ORDER BY st.registered_at`
	rows, err := r.db.QueryContext(ctx, query, scrimID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		var playersRaw []byte
		err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Tag,
			&team.CreatorID,
			&playersRaw,
			&team.LogoKey,
			&team.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		team.Players, err = models.DecodePlayers(playersRaw)
		if err != nil {
			return nil, err
		}
		scrim := scrimID
		team.ScrimID = &scrim
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *postgresScrimTeamRepository) CountByScrim(ctx context.Context, scrimID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM scrim_teams WHERE scrim_id = $1`
	err := r.db.QueryRowContext(ctx, query, scrimID).Scan(&count)
	return count, err
}

// DeleteByScrim removes every registration for the scrim and returns the
// affected team IDs so the caller can cascade the team rows in the same
// transaction.
func (r *postgresScrimTeamRepository) DeleteByScrim(ctx context.Context, exec SQLExecutor, scrimID int) ([]int, error) {
	query := `DELETE FROM scrim_teams WHERE scrim_id = $1 RETURNING team_id`
	rows, err := exec.QueryContext(ctx, query, scrimID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teamIDs := make([]int, 0)
	for rows.Next() {
		var teamID int
		if err := rows.Scan(&teamID); err != nil {
			return nil, err
		}
		teamIDs = append(teamIDs, teamID)
	}
	return teamIDs, rows.Err()
}
