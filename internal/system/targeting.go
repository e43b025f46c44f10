package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/pkg/geom"
)

// FindNearest returns the live enemy closest to origin whose squared distance
// is strictly below rangeRadius². On ties the enemy inserted first wins.
func FindNearest(origin geom.Point, enemies []*component.Enemy, rangeRadius float64) (*component.Enemy, bool) {
	closest := rangeRadius * rangeRadius
	var nearest *component.Enemy
	for _, enemy := range enemies {
		if !enemy.Alive {
			continue
		}
		if d := geom.DistSq(origin, enemy.Position); d < closest {
			closest = d
			nearest = enemy
		}
	}
	return nearest, nearest != nil
}
