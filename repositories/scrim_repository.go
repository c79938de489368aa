package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Adfay-Inc/Puntus/models"
)

var ErrScrimNotFound = errors.New("scrim not found")

type ScrimRepository interface {
	Create(ctx context.Context, scrim *models.Scrim) error
	GetByID(ctx context.Context, id int) (*models.Scrim, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Scrim, error)
	Update(ctx context.Context, scrim *models.Scrim) error
	UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.ScrimStatus) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
}

type postgresScrimRepository struct {
	db *sql.DB
}

func NewPostgresScrimRepository(db *sql.DB) ScrimRepository {
	return &postgresScrimRepository{db: db}
}

func (r *postgresScrimRepository) Create(ctx context.Context, scrim *models.Scrim) error {
	mapsJSON, pointSystemJSON, settingsJSON, err := marshalScrimColumns(scrim)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO scrims (name, creator_id, min_teams, max_teams, maps, point_system, settings, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		scrim.Name,
		scrim.CreatorID,
		scrim.MinTeams,
		scrim.MaxTeams,
		mapsJSON,
		pointSystemJSON,
		settingsJSON,
		scrim.Status,
	).Scan(&scrim.ID, &scrim.CreatedAt)
}

func (r *postgresScrimRepository) GetByID(ctx context.Context, id int) (*models.Scrim, error) {
	query := `
		SELECT id, name, creator_id, min_teams, max_teams, maps, point_system, settings, status, created_at
		FROM scrims
		WHERE id = $1`

	scrim, err := scanScrim(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScrimNotFound
		}
		return nil, err
	}
	return scrim, nil
}

func (r *postgresScrimRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Scrim, error) {
	query := `
		SELECT id, name, creator_id, min_teams, max_teams, maps, point_system, settings, status, created_at
		FROM scrims
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scrims := make([]models.Scrim, 0)
	for rows.Next() {
		scrim, err := scanScrim(rows)
		if err != nil {
			return nil, err
		}
		scrims = append(scrims, *scrim)
	}
	return scrims, rows.Err()
}

func (r *postgresScrimRepository) Update(ctx context.Context, scrim *models.Scrim) error {
	mapsJSON, pointSystemJSON, settingsJSON, err := marshalScrimColumns(scrim)
	if err != nil {
		return err
	}

	query := `
		UPDATE scrims
		SET name = $1, min_teams = $2, max_teams = $3, maps = $4, point_system = $5, settings = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		scrim.Name,
		scrim.MinTeams,
		scrim.MaxTeams,
		mapsJSON,
		pointSystemJSON,
		settingsJSON,
		scrim.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScrimNotFound)
}

func (r *postgresScrimRepository) UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.ScrimStatus) error {
	query := `UPDATE scrims SET status = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScrimNotFound)
}

func (r *postgresScrimRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	query := `DELETE FROM scrims WHERE id = $1`
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScrimNotFound)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScrim(row rowScanner) (*models.Scrim, error) {
	scrim := &models.Scrim{}
	var mapsRaw, pointSystemRaw, settingsRaw []byte
	err := row.Scan(
		&scrim.ID,
		&scrim.Name,
		&scrim.CreatorID,
		&scrim.MinTeams,
		&scrim.MaxTeams,
		&mapsRaw,
		&pointSystemRaw,
		&settingsRaw,
		&scrim.Status,
		&scrim.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(mapsRaw) > 0 {
		if err := json.Unmarshal(mapsRaw, &scrim.Maps); err != nil {
			return nil, fmt.Errorf("scrim %d: invalid maps JSON: %w", scrim.ID, err)
		}
	} else {
		scrim.Maps = []string{}
	}

	scrim.PointSystem, err = models.ParsePointSystem(pointSystemRaw)
	if err != nil {
		return nil, fmt.Errorf("scrim %d: %w", scrim.ID, err)
	}

	scrim.Settings, err = models.ParseScrimSettings(settingsRaw)
	if err != nil {
		return nil, fmt.Errorf("scrim %d: %w", scrim.ID, err)
	}
	return scrim, nil
}

func marshalScrimColumns(scrim *models.Scrim) ([]byte, []byte, []byte, error) {
	mapsJSON, err := json.Marshal(scrim.Maps)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal maps: %w", err)
	}
	pointSystemJSON, err := json.Marshal(scrim.PointSystem)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal point system: %w", err)
	}
	settingsJSON, err := json.Marshal(scrim.Settings)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return mapsJSON, pointSystemJSON, settingsJSON, nil
}
