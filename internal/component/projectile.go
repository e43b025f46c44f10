// internal/component/projectile.go
package component

import (
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// Projectile представляет летящий снаряд. Цель хранится только как ID:
// снаряд не владеет врагом и проверяет его живость перед каждым шагом.
type Projectile struct {
	ID       types.EntityID
	Position geom.Point
	TargetID types.EntityID
	SourceID types.EntityID // Башня, выпустившая снаряд
	Speed    float64
	Alive    bool
	Size     float64
}

func (p *Projectile) Bounds() geom.Rect {
	return geom.RectAround(p.Position, p.Size, p.Size)
}
