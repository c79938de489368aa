package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Adfay-Inc/Puntus/scoring"
	"github.com/Adfay-Inc/Puntus/services"
)

const refreshTimeout = 10 * time.Second

// LeaderboardUpdate is the payload pushed to a scrim room after results
// change. Changes carry, per team ID, how far the team moved since the
// previous push; teams that held their position are absent.
type LeaderboardUpdate struct {
	Leaderboard *services.Leaderboard          `json:"leaderboard"`
	Changes     map[int]scoring.PositionChange `json:"changes,omitempty"`
}

// Tracker turns result-change notifications into live leaderboard pushes.
// It keeps the last ranked snapshot per scrim so each push can include
// position movement. Implements services.StandingsNotifier.
type Tracker struct {
	hub       *Hub
	standings services.StandingsService
	logger    *slog.Logger

	refresh chan int

	mu        sync.Mutex
	snapshots map[int][]scoring.RankedTeam
}

func NewTracker(hub *Hub, standings services.StandingsService, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		hub:       hub,
		standings: standings,
		logger:    logger,
		refresh:   make(chan int, 64),
		snapshots: make(map[int][]scoring.RankedTeam),
	}
}

// StandingsChanged queues a refresh for the scrim. Never blocks; under
// sustained pressure a queued refresh for the same scrim already covers
// the dropped one once it runs.
func (t *Tracker) StandingsChanged(scrimID int) {
	select {
	case t.refresh <- scrimID:
	default:
		t.logger.Warn("live refresh queue full, dropping notification", slog.Int("scrim_id", scrimID))
	}
}

// Run consumes refresh notifications until ctx is cancelled.
func (t *Tracker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case scrimID := <-t.refresh:
			t.push(ctx, scrimID)
		}
	}
}

func (t *Tracker) push(ctx context.Context, scrimID int) {
	if t.hub.ViewerCount(scrimID) == 0 {
		// Nobody is watching; forget the snapshot so the next viewer
		// starts from a clean baseline.
		t.mu.Lock()
		delete(t.snapshots, scrimID)
		t.mu.Unlock()
		return
	}

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	leaderboard, err := t.standings.GetLeaderboard(ctx, scrimID)
	if err != nil {
		t.logger.Error("failed to refresh live leaderboard",
			slog.Int("scrim_id", scrimID),
			slog.Any("error", err),
		)
		return
	}

	t.mu.Lock()
	previous := t.snapshots[scrimID]
	t.snapshots[scrimID] = leaderboard.Standings
	t.mu.Unlock()

	t.hub.BroadcastToScrim(scrimID, Message{
		Type:    MessageLeaderboardUpdate,
		ScrimID: scrimID,
		Payload: LeaderboardUpdate{
			Leaderboard: leaderboard,
			Changes:     scoring.DetectPositionChanges(previous, leaderboard.Standings),
		},
	})
}

// Forget drops the stored snapshot for a scrim, e.g. after deletion.
func (t *Tracker) Forget(scrimID int) {
	t.mu.Lock()
	delete(t.snapshots, scrimID)
	t.mu.Unlock()
}
