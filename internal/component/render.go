// component/render.go
package component

import (
	"image/color"

	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// Kind — вид сущности для отрисовки
type Kind int

const (
	KindTower Kind = iota
	KindEnemy
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindTower:
		return "tower"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Shape — форма спрайта
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Renderable — всё, что адаптеру нужно знать, чтобы нарисовать сущность.
type Renderable struct {
	ID       types.EntityID
	Kind     Kind
	Position geom.Point
	Bounds   geom.Rect
	Shape    Shape
	Color    color.RGBA
}
