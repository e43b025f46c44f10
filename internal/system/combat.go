// internal/system/combat.go
package system

import (
	"time"

	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
)

// ProjectileSpec — параметры снарядов, которые выпускают башни.
type ProjectileSpec struct {
	Speed float64
	Size  float64
}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	projectile      ProjectileSpec
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, projectile ProjectileSpec) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		projectile:      projectile,
	}
}

// Update даёт каждой готовой башне один шанс выстрелить. Башня без цели
// остаётся в Ready и попробует снова на следующем тике.
func (s *CombatSystem) Update(now time.Duration) {
	for _, tower := range s.ecs.Towers {
		if tower.State(now) != component.TowerReady {
			continue
		}
		target, found := FindNearest(tower.Position, s.ecs.Enemies, tower.Range)
		if !found {
			continue
		}
		s.createProjectile(tower, target)
		tower.LastAttackTime = now
		tower.Shots++
	}
}

func (s *CombatSystem) createProjectile(tower *component.Tower, target *component.Enemy) *component.Projectile {
	proj := &component.Projectile{
		ID:       s.ecs.NewEntity(),
		Position: tower.Position,
		TargetID: target.ID,
		SourceID: tower.ID,
		Speed:    s.projectile.Speed,
		Alive:    true,
		Size:     s.projectile.Size,
	}
	s.ecs.AddProjectile(proj)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.FireData{TowerID: tower.ID, ProjectileID: proj.ID, TargetID: target.ID},
	})
	return proj
}
