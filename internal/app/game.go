// internal/app/game.go
package app

import (
	"log/slog"
	"time"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/system"
	"go-td-sim/internal/types"
)

// Game holds the simulation world: the entity store, the systems that advance
// it and the queue of commands waiting for the next tick boundary.
type Game struct {
	ECS              *entity.ECS
	Path             *component.Path
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EventDispatcher  *event.Dispatcher
	Stats            *Stats

	enemySpeed float64
	enemySize  float64
	towerRange float64
	towerSize  float64
	cooldown   time.Duration
	maxEnemies int
	logger     *slog.Logger
	commands   []Command
	lastUpdate time.Duration
	ticks      uint64
}

// NewGame builds a world from settings and places the configured initial towers.
func NewGame(settings *config.Settings, logger *slog.Logger) *Game {
	if settings == nil {
		settings = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Path:            component.NewPath(settings.PathPoints()...),
		EventDispatcher: eventDispatcher,
		Stats:           &Stats{},
		enemySpeed:      settings.Enemy.Speed,
		enemySize:       settings.Enemy.Size,
		towerRange:      settings.Tower.Range,
		towerSize:       settings.Tower.Size,
		cooldown:        settings.Tower.AttackCooldown,
		maxEnemies:      settings.Spawn.MaxEnemies,
		logger:          logger,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, system.ProjectileSpec{
		Speed: settings.Projectile.Speed,
		Size:  settings.Projectile.Size,
	})
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)

	eventDispatcher.SubscribeAll(g.Stats,
		event.EnemySpawned, event.EnemyKilled, event.EnemyReachedEnd,
		event.ProjectileFired, event.ProjectileExpired,
		event.TowerPlaced, event.TowerRemoved,
	)
	eventDispatcher.SubscribeAll(&GameEventListener{logger: logger},
		event.EnemyKilled, event.EnemyReachedEnd, event.TowerPlaced, event.TowerRemoved,
	)

	for _, p := range settings.Towers {
		g.PlaceTower(p.Point())
	}
	return g
}

// Update advances the world by one tick. now is the simulated clock and must
// not go backwards; an earlier value is treated as the previous one.
// Порядок внутри тика: команды, враги, башни, снаряды, уборка.
func (g *Game) Update(now time.Duration) {
	if now < g.lastUpdate {
		now = g.lastUpdate
	}
	g.lastUpdate = now
	g.ECS.GameTime = now

	g.applyCommands()

	g.MovementSystem.Update()
	g.CombatSystem.Update(now)
	g.ProjectileSystem.Update()

	g.ECS.Compact()
	g.ticks++
	g.Stats.Ticks = g.ticks
}

// Now returns the timestamp of the last tick.
func (g *Game) Now() time.Duration {
	return g.lastUpdate
}

// SpawnEnemy puts a new enemy at the start of the configured path.
func (g *Game) SpawnEnemy() (types.EntityID, bool) {
	return g.SpawnEnemyOn(g.Path, g.enemySpeed)
}

// SpawnEnemyOn appends an enemy walking path at speed. It is skipped when the
// live enemy count has reached the configured cap, or the path is empty.
func (g *Game) SpawnEnemyOn(path *component.Path, speed float64) (types.EntityID, bool) {
	if path == nil || path.Len() == 0 {
		return types.NoEntity, false
	}
	if g.maxEnemies > 0 {
		if alive, _, _ := g.ECS.Counts(); alive >= g.maxEnemies {
			return types.NoEntity, false
		}
	}

	enemy := &component.Enemy{
		ID:       g.ECS.NewEntity(),
		Position: path.Points[0],
		Path:     path,
		Speed:    speed,
		Alive:    true,
		Size:     g.enemySize,
	}
	g.ECS.AddEnemy(enemy)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EntityData{ID: enemy.ID, Position: enemy.Position},
	})
	return enemy.ID, true
}

// Enemy resolves a live enemy by ID.
func (g *Game) Enemy(id types.EntityID) (*component.Enemy, bool) {
	return g.ECS.Enemy(id)
}

// GameEventListener пишет в лог заметные события мира.
type GameEventListener struct {
	logger *slog.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.HitData:
		l.logger.Debug("enemy killed", "enemy_id", data.TargetID, "projectile_id", data.ProjectileID,
			"x", data.Position.X, "y", data.Position.Y)
	case event.EntityData:
		l.logger.Debug(eventMessage(e.Type), "id", data.ID, "x", data.Position.X, "y", data.Position.Y)
	}
}

func eventMessage(t event.EventType) string {
	switch t {
	case event.EnemyReachedEnd:
		return "enemy reached end of path"
	case event.TowerPlaced:
		return "tower placed"
	case event.TowerRemoved:
		return "tower removed"
	default:
		return string(t)
	}
}

var _ event.Listener = (*GameEventListener)(nil)
