package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound           = errors.New("match not found")
	ErrMatchGameNumberConflict = errors.New("game number already used in this scrim")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByScrim(ctx context.Context, scrimID int) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	UpdateStatus(ctx context.Context, id int, status models.MatchStatus, at time.Time) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	DeleteByScrim(ctx context.Context, exec SQLExecutor, scrimID int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (scrim_id, map_name, game_number, status, room_id, room_password, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		match.ScrimID,
		match.MapName,
		match.GameNumber,
		match.Status,
		match.RoomID,
		match.RoomPass,
		match.Notes,
	).Scan(&match.ID, &match.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && pqErr.Constraint == "matches_scrim_id_game_number_key" {
			return ErrMatchGameNumberConflict
		}
		return err
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, scrim_id, map_name, game_number, status, start_time, end_time, room_id, room_password, notes, created_at
		FROM matches
		WHERE id = $1`

	match, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) ListByScrim(ctx context.Context, scrimID int) ([]models.Match, error) {
	query := `
		SELECT id, scrim_id, map_name, game_number, status, start_time, end_time, room_id, room_password, notes, created_at
		FROM matches
		WHERE scrim_id = $1
		ORDER BY game_number`
	rows, err := r.db.QueryContext(ctx, query, scrimID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches
		SET map_name = $1, room_id = $2, room_password = $3, notes = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		match.MapName,
		match.RoomID,
		match.RoomPass,
		match.Notes,
		match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

// UpdateStatus also stamps start_time or end_time depending on the target
// status; pending clears neither.
func (r *postgresMatchRepository) UpdateStatus(ctx context.Context, id int, status models.MatchStatus, at time.Time) error {
	var query string
	switch status {
	case models.MatchStatusInProgress:
		query = `UPDATE matches SET status = $1, start_time = $3 WHERE id = $2`
	case models.MatchStatusCompleted:
		query = `UPDATE matches SET status = $1, end_time = $3 WHERE id = $2`
	default:
		query = `UPDATE matches SET status = $1 WHERE id = $2`
		result, err := r.db.ExecContext(ctx, query, status, id)
		if err != nil {
			return err
		}
		return checkAffectedRows(result, ErrMatchNotFound)
	}

	result, err := r.db.ExecContext(ctx, query, status, id, at)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	query := `DELETE FROM matches WHERE id = $1`
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteByScrim(ctx context.Context, exec SQLExecutor, scrimID int) error {
	query := `DELETE FROM matches WHERE scrim_id = $1`
	_, err := exec.ExecContext(ctx, query, scrimID)
	return err
}

func scanMatch(row rowScanner) (*models.Match, error) {
	match := &models.Match{}
	err := row.Scan(
		&match.ID,
		&match.ScrimID,
		&match.MapName,
		&match.GameNumber,
		&match.Status,
		&match.StartTime,
		&match.EndTime,
		&match.RoomID,
		&match.RoomPass,
		&match.Notes,
		&match.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return match, nil
}
