package app

import (
	"log/slog"

	"go-td-sim/internal/event"
)

// Stats counts world events since the game was created.
type Stats struct {
	Ticks         uint64
	Spawned       int
	Killed        int
	Fired         int
	Expired       int
	ReachedEnd    int
	TowersPlaced  int
	TowersRemoved int
}

func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		s.Spawned++
	case event.EnemyKilled:
		s.Killed++
	case event.EnemyReachedEnd:
		s.ReachedEnd++
	case event.ProjectileFired:
		s.Fired++
	case event.ProjectileExpired:
		s.Expired++
	case event.TowerPlaced:
		s.TowersPlaced++
	case event.TowerRemoved:
		s.TowersRemoved++
	}
}

// LogValue lets a Stats value be passed straight to slog.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("ticks", s.Ticks),
		slog.Int("spawned", s.Spawned),
		slog.Int("killed", s.Killed),
		slog.Int("fired", s.Fired),
		slog.Int("expired", s.Expired),
		slog.Int("reached_end", s.ReachedEnd),
		slog.Int("towers_placed", s.TowersPlaced),
		slog.Int("towers_removed", s.TowersRemoved),
	)
}
