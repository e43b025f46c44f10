package system

import (
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/pkg/geom"
)

func addProjectile(ecs *entity.ECS, at geom.Point, target *component.Enemy, speed float64) *component.Projectile {
	p := &component.Projectile{
		ID:       ecs.NewEntity(),
		Position: at,
		TargetID: target.ID,
		Speed:    speed,
		Alive:    true,
		Size:     6,
	}
	ecs.AddProjectile(p)
	return p
}

func TestProjectileHitsStationaryTarget(t *testing.T) {
	ecs := entity.NewECS()
	d, log := newRecordingDispatcher()
	s := NewProjectileSystem(ecs, d)
	target := addStationaryEnemy(ecs, geom.Pt(100, 40))
	bystander := addStationaryEnemy(ecs, geom.Pt(50, 20))
	p := addProjectile(ecs, geom.Pt(0, 0), target, 5)

	ticks := 0
	for p.Alive && ticks < 100 {
		s.Update()
		ticks++
	}

	if p.Alive {
		t.Fatal("projectile never hit a stationary target")
	}
	if target.Alive {
		t.Error("target survived the hit")
	}
	if !bystander.Alive {
		t.Error("projectile killed an enemy it was not aimed at")
	}
	if n := log.count(event.EnemyKilled); n != 1 {
		t.Errorf("EnemyKilled dispatched %d times, want 1", n)
	}
	// Касание 3+10=13 пикселей по ведущей оси: (100-13)/5 ≈ 18 шагов
	if ticks > 20 {
		t.Errorf("hit took %d ticks", ticks)
	}
}

func TestProjectileStartingOnTargetCenterStillHits(t *testing.T) {
	ecs := entity.NewECS()
	d, _ := newRecordingDispatcher()
	s := NewProjectileSystem(ecs, d)
	target := addStationaryEnemy(ecs, geom.Pt(10, 10))
	p := addProjectile(ecs, geom.Pt(10, 10), target, 5)

	s.Update()

	if p.Alive || target.Alive {
		t.Errorf("projectile on target center did not collide: proj alive=%v target alive=%v", p.Alive, target.Alive)
	}
}

func TestProjectileExpiresWhenTargetGone(t *testing.T) {
	ecs := entity.NewECS()
	d, log := newRecordingDispatcher()
	s := NewProjectileSystem(ecs, d)
	target := addStationaryEnemy(ecs, geom.Pt(100, 0))
	other := addStationaryEnemy(ecs, geom.Pt(5, 0))
	p := addProjectile(ecs, geom.Pt(0, 0), target, 5)

	target.Alive = false
	s.Update()

	if p.Alive {
		t.Error("projectile with a dead target is still alive")
	}
	if !nearPoint(p.Position, geom.Pt(0, 0)) {
		t.Errorf("projectile moved to %v after losing its target", p.Position)
	}
	if !other.Alive {
		t.Error("projectile retargeted and killed another enemy")
	}
	if log.count(event.ProjectileExpired) != 1 || log.count(event.EnemyKilled) != 0 {
		t.Errorf("events: %v", log.events)
	}
}

func TestProjectileTargetRemovedFromWorld(t *testing.T) {
	ecs := entity.NewECS()
	d, _ := newRecordingDispatcher()
	s := NewProjectileSystem(ecs, d)
	target := addStationaryEnemy(ecs, geom.Pt(100, 0))
	p := addProjectile(ecs, geom.Pt(0, 0), target, 5)

	target.Alive = false
	ecs.Compact()
	s.Update()

	if p.Alive {
		t.Error("projectile survived its target being compacted away")
	}
}

func TestTwoProjectilesSameTargetSameTick(t *testing.T) {
	ecs := entity.NewECS()
	d, log := newRecordingDispatcher()
	s := NewProjectileSystem(ecs, d)
	target := addStationaryEnemy(ecs, geom.Pt(3, 0))
	first := addProjectile(ecs, geom.Pt(0, 0), target, 5)
	second := addProjectile(ecs, geom.Pt(1, 0), target, 5)

	s.Update()

	if first.Alive || target.Alive {
		t.Fatal("first projectile should have killed the target")
	}
	if second.Alive {
		t.Error("second projectile should notice the dead target in the same pass")
	}
	if log.count(event.EnemyKilled) != 1 {
		t.Errorf("EnemyKilled dispatched %d times, want exactly 1", log.count(event.EnemyKilled))
	}
	if log.count(event.ProjectileExpired) != 1 {
		t.Errorf("ProjectileExpired dispatched %d times, want 1", log.count(event.ProjectileExpired))
	}
}
