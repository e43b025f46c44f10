// internal/component/enemy.go
package component

import (
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// Enemy — враг, идущий по пути с постоянной скоростью.
type Enemy struct {
	ID            types.EntityID
	Position      geom.Point
	Path          *Path
	Speed         float64
	WaypointIndex int  // Индекс последней пройденной точки пути, только растёт
	Alive         bool
	ReachedEnd    bool // Дошёл до конца пути и стоит там
	Size          float64
}

// OnFinalWaypoint — враг стоит на последней точке пути (или путь вырожден).
func (e *Enemy) OnFinalWaypoint() bool {
	return e.WaypointIndex >= e.Path.Last()
}

func (e *Enemy) Bounds() geom.Rect {
	return geom.RectAround(e.Position, e.Size, e.Size)
}
