// internal/app/tower_management.go
package app

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// PlaceTower appends a tower centered at p. Overlapping towers are allowed and
// coordinates are not clamped to the screen.
func (g *Game) PlaceTower(p geom.Point) types.EntityID {
	tower := &component.Tower{
		ID:             g.ECS.NewEntity(),
		Position:       p,
		Range:          g.towerRange,
		AttackCooldown: g.cooldown,
		Size:           g.towerSize,
	}
	g.ECS.AddTower(tower)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.EntityData{ID: tower.ID, Position: tower.Position},
	})
	return tower.ID
}

// RemoveTower removes the first tower, in placement order, whose bounds
// contain p. It reports whether a tower was removed.
func (g *Game) RemoveTower(p geom.Point) bool {
	i, ok := g.towerIndexAt(p)
	if !ok {
		return false
	}
	tower := g.ECS.RemoveTower(i)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerRemoved,
		Data: event.EntityData{ID: tower.ID, Position: tower.Position},
	})
	return true
}

// TowerAt returns the first tower whose bounds contain p.
func (g *Game) TowerAt(p geom.Point) (*component.Tower, bool) {
	i, ok := g.towerIndexAt(p)
	if !ok {
		return nil, false
	}
	return g.ECS.Towers[i], true
}

func (g *Game) towerIndexAt(p geom.Point) (int, bool) {
	for i, tower := range g.ECS.Towers {
		if tower.Bounds().Contains(p) {
			return i, true
		}
	}
	return -1, false
}
