package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/lib/pq"
)

var (
	ErrResultNotFound          = errors.New("match result not found")
	ErrResultPlacementConflict = errors.New("placement already taken in this match")
	ErrResultTeamConflict      = errors.New("team already has a result in this match")
)

type ResultRepository interface {
	Create(ctx context.Context, result *models.MatchResult) error
	GetByID(ctx context.Context, id int) (*models.MatchResult, error)
	ListByMatch(ctx context.Context, matchID int) ([]models.MatchResult, error)
	Update(ctx context.Context, result *models.MatchResult) error
	Delete(ctx context.Context, id int) error
	DeleteByMatch(ctx context.Context, exec SQLExecutor, matchID int) error
	DeleteByScrim(ctx context.Context, exec SQLExecutor, scrimID int) error
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

func (r *postgresResultRepository) Create(ctx context.Context, result *models.MatchResult) error {
	playerStats, err := models.EncodePlayerKills(result.PlayerKills)
	if err != nil {
		return fmt.Errorf("failed to marshal player stats: %w", err)
	}

	query := `
		INSERT INTO match_results (match_id, team_id, placement, kills, placement_points, kill_points, total_points, player_stats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		result.MatchID,
		result.TeamID,
		result.Placement,
		result.Kills,
		result.PlacementPoints,
		result.KillPoints,
		result.TotalPoints,
		nullableBytes(playerStats),
	).Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		return mapResultConstraint(err)
	}
	return nil
}

func (r *postgresResultRepository) GetByID(ctx context.Context, id int) (*models.MatchResult, error) {
	query := `
		SELECT id, match_id, team_id, placement, kills, placement_points, kill_points, total_points, player_stats, created_at
		FROM match_results
		WHERE id = $1`

	result, err := scanResult(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return result, nil
}

func (r *postgresResultRepository) ListByMatch(ctx context.Context, matchID int) ([]models.MatchResult, error) {
	query := `
		SELECT id, match_id, team_id, placement, kills, placement_points, kill_points, total_points, player_stats, created_at
		FROM match_results
		WHERE match_id = $1
		ORDER BY placement`
	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.MatchResult, 0)
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

func (r *postgresResultRepository) Update(ctx context.Context, result *models.MatchResult) error {
	playerStats, err := models.EncodePlayerKills(result.PlayerKills)
	if err != nil {
		return fmt.Errorf("failed to marshal player stats: %w", err)
	}

	query := `
		UPDATE match_results
		SET placement = $1, kills = $2, placement_points = $3, kill_points = $4, total_points = $5, player_stats = $6
		WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		result.Placement,
		result.Kills,
		result.PlacementPoints,
		result.KillPoints,
		result.TotalPoints,
		nullableBytes(playerStats),
		result.ID,
	)
	if err != nil {
		return mapResultConstraint(err)
	}
	return checkAffectedRows(res, ErrResultNotFound)
}

func (r *postgresResultRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM match_results WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrResultNotFound)
}

func (r *postgresResultRepository) DeleteByMatch(ctx context.Context, exec SQLExecutor, matchID int) error {
	query := `DELETE FROM match_results WHERE match_id = $1`
	_, err := exec.ExecContext(ctx, query, matchID)
	return err
}

func (r *postgresResultRepository) DeleteByScrim(ctx context.Context, exec SQLExecutor, scrimID int) error {
	query := `
		DELETE FROM match_results
		WHERE match_id IN (SELECT id FROM matches WHERE scrim_id = $1)`
	_, err := exec.ExecContext(ctx, query, scrimID)
	return err
}

func scanResult(row rowScanner) (*models.MatchResult, error) {
	result := &models.MatchResult{}
	var playerStatsRaw []byte
	err := row.Scan(
		&result.ID,
		&result.MatchID,
		&result.TeamID,
		&result.Placement,
		&result.Kills,
		&result.PlacementPoints,
		&result.KillPoints,
		&result.TotalPoints,
		&playerStatsRaw,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	// Slot count is not known at this layer; keep every stored entry.
	result.PlayerKills, err = models.NormalizePlayerKills(playerStatsRaw, models.TeamMaxPlayers)
	if err != nil {
		return nil, fmt.Errorf("result %d: %w", result.ID, err)
	}
	return result, nil
}

func mapResultConstraint(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "match_results_match_id_placement_key":
			return ErrResultPlacementConflict
		case "match_results_match_id_team_id_key":
			return ErrResultTeamConflict
		}
	}
	return err
}
