package system

import (
	"math"
	"time"

	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/pkg/geom"
)

const eps = 1e-9

func nearPoint(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// eventLog записывает все события, на которые подписан.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecordingDispatcher() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log,
		event.EnemySpawned, event.EnemyKilled, event.EnemyReachedEnd,
		event.ProjectileFired, event.ProjectileExpired,
		event.TowerPlaced, event.TowerRemoved,
	)
	return d, log
}

func addEnemy(ecs *entity.ECS, path *component.Path, speed float64) *component.Enemy {
	e := &component.Enemy{
		ID:       ecs.NewEntity(),
		Position: path.Points[0],
		Path:     path,
		Speed:    speed,
		Alive:    true,
		Size:     20,
	}
	ecs.AddEnemy(e)
	return e
}

// addStationaryEnemy ставит врага на вырожденный путь из одной точки.
func addStationaryEnemy(ecs *entity.ECS, at geom.Point) *component.Enemy {
	return addEnemy(ecs, component.NewPath(at), 1)
}

func addTower(ecs *entity.ECS, at geom.Point, rangeRadius float64, cooldown time.Duration) *component.Tower {
	t := &component.Tower{
		ID:             ecs.NewEntity(),
		Position:       at,
		Range:          rangeRadius,
		AttackCooldown: cooldown,
		Size:           40,
	}
	ecs.AddTower(t)
	return t
}
