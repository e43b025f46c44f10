// internal/system/movement.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/pkg/geom"
)

// MovementSystem двигает врагов по их путям, по одному шагу за тик.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update() {
	for _, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			continue
		}
		if AdvanceEnemy(enemy) {
			enemy.ReachedEnd = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyReachedEnd,
				Data: event.EntityData{ID: enemy.ID, Position: enemy.Position},
			})
		}
	}
}

// AdvanceEnemy делает один шаг к следующей точке пути. Прибытие определяется
// по проходу через точку, а не по точному равенству координат.
// Возвращает true, если на этом шаге враг достиг последней точки.
func AdvanceEnemy(e *component.Enemy) bool {
	if e.OnFinalWaypoint() {
		return false
	}
	next := e.Path.Points[e.WaypointIndex+1]
	direction := next.Sub(e.Position)
	e.Position = geom.StepToward(e.Position, next, e.Speed)
	if !geom.HasPassed(e.Position, next, direction) {
		return false
	}
	e.WaypointIndex++
	return e.OnFinalWaypoint()
}
