package entity

import (
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/pkg/geom"
)

func newEnemy(ecs *ECS) *component.Enemy {
	e := &component.Enemy{
		ID:    ecs.NewEntity(),
		Path:  component.NewPath(geom.Pt(0, 0), geom.Pt(10, 0)),
		Speed: 1,
		Alive: true,
		Size:  20,
	}
	ecs.AddEnemy(e)
	return e
}

func TestNewEntityIDsAreUnique(t *testing.T) {
	ecs := NewECS()
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		id := uint64(ecs.NewEntity())
		if id == 0 {
			t.Fatal("NewEntity returned the zero ID")
		}
		if seen[id] {
			t.Fatalf("ID %d issued twice", id)
		}
		seen[id] = true
	}
}

func TestEnemyLookupRespectsLiveness(t *testing.T) {
	ecs := NewECS()
	e := newEnemy(ecs)

	if got, ok := ecs.Enemy(e.ID); !ok || got != e {
		t.Fatalf("Enemy(%d) = %v, %v; want the spawned enemy", e.ID, got, ok)
	}

	e.Alive = false
	if _, ok := ecs.Enemy(e.ID); ok {
		t.Error("dead enemy still resolves before compaction")
	}

	ecs.Compact()
	if _, ok := ecs.Enemy(e.ID); ok {
		t.Error("dead enemy resolves after compaction")
	}
	if len(ecs.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d after compaction, want 0", len(ecs.Enemies))
	}
}

func TestCompactKeepsInsertionOrder(t *testing.T) {
	ecs := NewECS()
	a, b, c, d := newEnemy(ecs), newEnemy(ecs), newEnemy(ecs), newEnemy(ecs)
	b.Alive = false
	d.Alive = false

	p1 := &component.Projectile{ID: ecs.NewEntity(), Alive: false}
	p2 := &component.Projectile{ID: ecs.NewEntity(), Alive: true}
	ecs.AddProjectile(p1)
	ecs.AddProjectile(p2)

	ecs.Compact()

	if len(ecs.Enemies) != 2 || ecs.Enemies[0] != a || ecs.Enemies[1] != c {
		t.Errorf("Enemies after compaction = %v, want [a c]", ecs.Enemies)
	}
	if len(ecs.Projectiles) != 1 || ecs.Projectiles[0] != p2 {
		t.Errorf("Projectiles after compaction = %v, want [p2]", ecs.Projectiles)
	}
}

func TestRemoveTowerKeepsOrder(t *testing.T) {
	ecs := NewECS()
	var towers []*component.Tower
	for i := 0; i < 3; i++ {
		tw := &component.Tower{ID: ecs.NewEntity()}
		ecs.AddTower(tw)
		towers = append(towers, tw)
	}

	removed := ecs.RemoveTower(1)
	if removed != towers[1] {
		t.Errorf("RemoveTower returned %v, want the middle tower", removed)
	}
	if len(ecs.Towers) != 2 || ecs.Towers[0] != towers[0] || ecs.Towers[1] != towers[2] {
		t.Errorf("Towers after removal = %v", ecs.Towers)
	}
}

func TestCounts(t *testing.T) {
	ecs := NewECS()
	newEnemy(ecs)
	dead := newEnemy(ecs)
	dead.Alive = false
	ecs.AddTower(&component.Tower{ID: ecs.NewEntity()})
	ecs.AddProjectile(&component.Projectile{ID: ecs.NewEntity(), Alive: true})

	enemies, towers, projectiles := ecs.Counts()
	if enemies != 1 || towers != 1 || projectiles != 1 {
		t.Errorf("Counts() = %d, %d, %d; want 1, 1, 1", enemies, towers, projectiles)
	}
}
