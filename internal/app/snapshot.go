package app

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
)

// Snapshot returns what the presentation adapters draw, in draw order:
// towers, then enemies, then projectiles. Dead entities are skipped.
func (g *Game) Snapshot() []component.Renderable {
	out := make([]component.Renderable, 0, len(g.ECS.Towers)+len(g.ECS.Enemies)+len(g.ECS.Projectiles))
	for _, t := range g.ECS.Towers {
		out = append(out, component.Renderable{
			ID:       t.ID,
			Kind:     component.KindTower,
			Position: t.Position,
			Bounds:   t.Bounds(),
			Shape:    component.ShapeRect,
			Color:    config.TowerColor,
		})
	}
	for _, e := range g.ECS.Enemies {
		if !e.Alive {
			continue
		}
		out = append(out, component.Renderable{
			ID:       e.ID,
			Kind:     component.KindEnemy,
			Position: e.Position,
			Bounds:   e.Bounds(),
			Shape:    component.ShapeCircle,
			Color:    config.EnemyColor,
		})
	}
	for _, p := range g.ECS.Projectiles {
		if !p.Alive {
			continue
		}
		out = append(out, component.Renderable{
			ID:       p.ID,
			Kind:     component.KindProjectile,
			Position: p.Position,
			Bounds:   p.Bounds(),
			Shape:    component.ShapeCircle,
			Color:    config.ProjectileColor,
		})
	}
	return out
}
