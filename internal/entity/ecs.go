// internal/entity/ecs.go
package entity

import (
	"time"

	"go-td-sim/internal/component"
	"go-td-sim/internal/types"
)

// ECS хранит все сущности мира. Коллекции упорядочены по времени вставки:
// от этого порядка зависит выбор цели при равных расстояниях.
type ECS struct {
	GameTime    time.Duration
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile

	enemyIndex map[types.EntityID]*component.Enemy
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		enemyIndex: make(map[types.EntityID]*component.Enemy),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
}

func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.Towers = append(ecs.Towers, t)
}

func (ecs *ECS) AddProjectile(p *component.Projectile) {
	ecs.Projectiles = append(ecs.Projectiles, p)
}

// Enemy разрешает ID в живого врага. Убитый или удалённый враг не находится.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	if !ok || !e.Alive {
		return nil, false
	}
	return e, true
}

// RemoveTower удаляет башню по индексу, сохраняя порядок остальных.
func (ecs *ECS) RemoveTower(i int) *component.Tower {
	t := ecs.Towers[i]
	copy(ecs.Towers[i:], ecs.Towers[i+1:])
	ecs.Towers[len(ecs.Towers)-1] = nil
	ecs.Towers = ecs.Towers[:len(ecs.Towers)-1]
	return t
}

// Compact выбрасывает мёртвых врагов и снаряды. Вызывается только на границе тика.
func (ecs *ECS) Compact() {
	alive := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if e.Alive {
			alive = append(alive, e)
			continue
		}
		delete(ecs.enemyIndex, e.ID)
	}
	for i := len(alive); i < len(ecs.Enemies); i++ {
		ecs.Enemies[i] = nil
	}
	ecs.Enemies = alive

	live := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if p.Alive {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(ecs.Projectiles); i++ {
		ecs.Projectiles[i] = nil
	}
	ecs.Projectiles = live
}

// Counts — количество живых сущностей каждого вида.
func (ecs *ECS) Counts() (enemies, towers, projectiles int) {
	for _, e := range ecs.Enemies {
		if e.Alive {
			enemies++
		}
	}
	for _, p := range ecs.Projectiles {
		if p.Alive {
			projectiles++
		}
	}
	return enemies, len(ecs.Towers), projectiles
}
