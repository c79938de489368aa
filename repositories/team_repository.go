package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/lib/pq"
)

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrTeamTagConflict = errors.New("team tag already in use")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	Delete(ctx context.Context, id int) error
	DeleteBatch(ctx context.Context, exec SQLExecutor, ids []int) error
}

// SQLExecutor lets repository methods run inside a caller-managed
// transaction; both *sql.DB and *sql.Tx satisfy it.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	playersJSON, err := json.Marshal(team.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	query := `
		INSERT INTO teams (name, tag, creator_id, players, logo_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		team.Name,
		team.Tag,
		team.CreatorID,
		playersJSON,
		team.LogoKey,
	).Scan(&team.ID, &team.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && pqErr.Constraint == "teams_tag_key" {
			return ErrTeamTagConflict
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `
		SELECT id, name, tag, creator_id, players, logo_key, created_at
		FROM teams
		WHERE id = $1`

	team := &models.Team{}
	var playersRaw []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Tag,
		&team.CreatorID,
		&playersRaw,
		&team.LogoKey,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	team.Players, err = models.DecodePlayers(playersRaw)
	if err != nil {
		return nil, fmt.Errorf("team %d: %w", id, err)
	}
	return team, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	playersJSON, err := json.Marshal(team.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	query := `
		UPDATE teams
		SET name = $1, tag = $2, players = $3
		WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, team.Name, team.Tag, playersJSON, team.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && pqErr.Constraint == "teams_tag_key" {
			return ErrTeamTagConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE teams SET logo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM teams WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) DeleteBatch(ctx context.Context, exec SQLExecutor, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	query := `DELETE FROM teams WHERE id = ANY($1)`
	_, err := exec.ExecContext(ctx, query, pq.Array(ids))
	return err
}
