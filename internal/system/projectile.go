// internal/system/projectile.go
package system

import (
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и попаданиями
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update() {
	for _, proj := range s.ecs.Projectiles {
		if !proj.Alive {
			continue
		}

		// Цель уже убита другим снарядом или удалена — снаряд исчезает без эффекта
		target, ok := s.ecs.Enemy(proj.TargetID)
		if !ok {
			proj.Alive = false
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ProjectileExpired,
				Data: event.EntityData{ID: proj.ID, Position: proj.Position},
			})
			continue
		}

		proj.Position = geom.StepToward(proj.Position, target.Position, proj.Speed)

		// Проверяем даже если снаряд уже в центре цели, иначе он зависнет
		if proj.Bounds().Overlaps(target.Bounds()) {
			target.Alive = false
			proj.Alive = false
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.HitData{ProjectileID: proj.ID, TargetID: target.ID, Position: target.Position},
			})
		}
	}
}
