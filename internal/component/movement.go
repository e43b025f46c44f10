// internal/component/movement.go
package component

import "go-td-sim/pkg/geom"

// Path — путь врагов. Общий для всех врагов, созданных на нём; только для чтения.
type Path struct {
	Points []geom.Point
}

// NewPath копирует точки, чтобы путь не зависел от вызывающего кода.
func NewPath(points ...geom.Point) *Path {
	cp := make([]geom.Point, len(points))
	copy(cp, points)
	return &Path{Points: cp}
}

func (p *Path) Len() int {
	return len(p.Points)
}

// Last — индекс последней точки пути.
func (p *Path) Last() int {
	return len(p.Points) - 1
}
