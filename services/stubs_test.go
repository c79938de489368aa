package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/Adfay-Inc/Puntus/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// A driver whose transactions commit without a database, so service methods
// that open a *sql.Tx can run against the stub repositories (which never
// touch the executor they are handed).

type nopDriver struct{}

func (nopDriver) Open(string) (driver.Conn, error) { return nopConn{}, nil }

type nopConn struct{}

func (nopConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (nopConn) Close() error                        { return nil }
func (nopConn) Begin() (driver.Tx, error)           { return nopTx{}, nil }

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

var registerNopDriver sync.Once

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	registerNopDriver.Do(func() { sql.Register("nop", nopDriver{}) })
	db, err := sql.Open("nop", "")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Function-field fakes for the repository interfaces. Unset lookups report
// not-found; unset mutations succeed silently.

type stubScrimRepo struct {
	create       func(ctx context.Context, scrim *models.Scrim) error
	getByID      func(ctx context.Context, id int) (*models.Scrim, error)
	getAll       func(ctx context.Context, limit, offset int) ([]models.Scrim, error)
	update       func(ctx context.Context, scrim *models.Scrim) error
	updateStatus func(ctx context.Context, id int, status models.ScrimStatus) error
}

func (s *stubScrimRepo) Create(ctx context.Context, scrim *models.Scrim) error {
	if s.create != nil {
		return s.create(ctx, scrim)
	}
	return nil
}

func (s *stubScrimRepo) GetByID(ctx context.Context, id int) (*models.Scrim, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, repositories.ErrScrimNotFound
}

func (s *stubScrimRepo) GetAll(ctx context.Context, limit, offset int) ([]models.Scrim, error) {
	if s.getAll != nil {
		return s.getAll(ctx, limit, offset)
	}
	return nil, nil
}

func (s *stubScrimRepo) Update(ctx context.Context, scrim *models.Scrim) error {
	if s.update != nil {
		return s.update(ctx, scrim)
	}
	return nil
}

func (s *stubScrimRepo) UpdateStatus(ctx context.Context, _ repositories.SQLExecutor, id int, status models.ScrimStatus) error {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, id, status)
	}
	return nil
}

func (s *stubScrimRepo) Delete(ctx context.Context, _ repositories.SQLExecutor, id int) error {
	return nil
}

type stubScrimTeamRepo struct {
	register         func(ctx context.Context, entry *models.ScrimTeam) error
	unregister       func(ctx context.Context, scrimID, teamID int) error
	listTeamsByScrim func(ctx context.Context, scrimID int) ([]models.Team, error)
	countByScrim     func(ctx context.Context, scrimID int) (int, error)
	deleteByScrim    func(ctx context.Context, scrimID int) ([]int, error)
}

func (s *stubScrimTeamRepo) Register(ctx context.Context, entry *models.ScrimTeam) error {
	if s.register != nil {
		return s.register(ctx, entry)
	}
	return nil
}

func (s *stubScrimTeamRepo) Unregister(ctx context.Context, _ repositories.SQLExecutor, scrimID, teamID int) error {
	if s.unregister != nil {
		return s.unregister(ctx, scrimID, teamID)
	}
	return nil
}

func (s *stubScrimTeamRepo) UpdateStatus(ctx context.Context, scrimID, teamID int, status models.ScrimTeamStatus) error {
	return nil
}

func (s *stubScrimTeamRepo) ListByScrim(ctx context.Context, scrimID int) ([]models.ScrimTeam, error) {
	return nil, nil
}

func (s *stubScrimTeamRepo) ListTeamsByScrim(ctx context.Context, scrimID int) ([]models.Team, error) {
	if s.listTeamsByScrim != nil {
		return s.listTeamsByScrim(ctx, scrimID)
	}
	return nil, nil
}

func (s *stubScrimTeamRepo) CountByScrim(ctx context.Context, scrimID int) (int, error) {
	if s.countByScrim != nil {
		return s.countByScrim(ctx, scrimID)
	}
	return 0, nil
}

func (s *stubScrimTeamRepo) DeleteByScrim(ctx context.Context, _ repositories.SQLExecutor, scrimID int) ([]int, error) {
	if s.deleteByScrim != nil {
		return s.deleteByScrim(ctx, scrimID)
	}
	return nil, nil
}

type stubTeamRepo struct {
	getByID     func(ctx context.Context, id int) (*models.Team, error)
	create      func(ctx context.Context, team *models.Team) error
	update      func(ctx context.Context, team *models.Team) error
	deleteBatch func(ctx context.Context, ids []int) error
}

func (s *stubTeamRepo) Create(ctx context.Context, team *models.Team) error {
	if s.create != nil {
		return s.create(ctx, team)
	}
	return nil
}

func (s *stubTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, repositories.ErrTeamNotFound
}

func (s *stubTeamRepo) Update(ctx context.Context, team *models.Team) error {
	if s.update != nil {
		return s.update(ctx, team)
	}
	return nil
}

func (s *stubTeamRepo) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	return nil
}

func (s *stubTeamRepo) Delete(ctx context.Context, id int) error {
	return nil
}

func (s *stubTeamRepo) DeleteBatch(ctx context.Context, _ repositories.SQLExecutor, ids []int) error {
	if s.deleteBatch != nil {
		return s.deleteBatch(ctx, ids)
	}
	return nil
}

type stubMatchRepo struct {
	create        func(ctx context.Context, match *models.Match) error
	getByID       func(ctx context.Context, id int) (*models.Match, error)
	listByScrim   func(ctx context.Context, scrimID int) ([]models.Match, error)
	delete        func(ctx context.Context, id int) error
	deleteByScrim func(ctx context.Context, scrimID int) error
}

func (s *stubMatchRepo) Create(ctx context.Context, match *models.Match) error {
	if s.create != nil {
		return s.create(ctx, match)
	}
	return nil
}

func (s *stubMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, repositories.ErrMatchNotFound
}

func (s *stubMatchRepo) ListByScrim(ctx context.Context, scrimID int) ([]models.Match, error) {
	if s.listByScrim != nil {
		return s.listByScrim(ctx, scrimID)
	}
	return nil, nil
}

func (s *stubMatchRepo) Update(ctx context.Context, match *models.Match) error {
	return nil
}

func (s *stubMatchRepo) UpdateStatus(ctx context.Context, id int, status models.MatchStatus, at time.Time) error {
	return nil
}

func (s *stubMatchRepo) Delete(ctx context.Context, _ repositories.SQLExecutor, id int) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return nil
}

func (s *stubMatchRepo) DeleteByScrim(ctx context.Context, _ repositories.SQLExecutor, scrimID int) error {
	if s.deleteByScrim != nil {
		return s.deleteByScrim(ctx, scrimID)
	}
	return nil
}

type stubResultRepo struct {
	create        func(ctx context.Context, result *models.MatchResult) error
	getByID       func(ctx context.Context, id int) (*models.MatchResult, error)
	listByMatch   func(ctx context.Context, matchID int) ([]models.MatchResult, error)
	update        func(ctx context.Context, result *models.MatchResult) error
	deleteByMatch func(ctx context.Context, matchID int) error
	deleteByScrim func(ctx context.Context, scrimID int) error
}

func (s *stubResultRepo) Create(ctx context.Context, result *models.MatchResult) error {
	if s.create != nil {
		return s.create(ctx, result)
	}
	return nil
}

func (s *stubResultRepo) GetByID(ctx context.Context, id int) (*models.MatchResult, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, repositories.ErrResultNotFound
}

func (s *stubResultRepo) ListByMatch(ctx context.Context, matchID int) ([]models.MatchResult, error) {
	if s.listByMatch != nil {
		return s.listByMatch(ctx, matchID)
	}
	return nil, nil
}

func (s *stubResultRepo) Update(ctx context.Context, result *models.MatchResult) error {
	if s.update != nil {
		return s.update(ctx, result)
	}
	return nil
}

func (s *stubResultRepo) Delete(ctx context.Context, id int) error {
	return nil
}

func (s *stubResultRepo) DeleteByMatch(ctx context.Context, _ repositories.SQLExecutor, matchID int) error {
	if s.deleteByMatch != nil {
		return s.deleteByMatch(ctx, matchID)
	}
	return nil
}

func (s *stubResultRepo) DeleteByScrim(ctx context.Context, _ repositories.SQLExecutor, scrimID int) error {
	if s.deleteByScrim != nil {
		return s.deleteByScrim(ctx, scrimID)
	}
	return nil
}
