// internal/event/types.go
package event

import (
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

const (
	EnemySpawned      EventType = "EnemySpawned"      // Враг появился в начале пути
	EnemyKilled       EventType = "EnemyKilled"       // Снаряд попал во врага
	EnemyReachedEnd   EventType = "EnemyReachedEnd"   // Враг дошёл до последней точки
	ProjectileFired   EventType = "ProjectileFired"   // Башня выстрелила
	ProjectileExpired EventType = "ProjectileExpired" // Цель пропала, снаряд исчез
	TowerPlaced       EventType = "TowerPlaced"       // Башня построена
	TowerRemoved      EventType = "TowerRemoved"
)

// EntityData — полезная нагрузка большинства событий.
type EntityData struct {
	ID       types.EntityID
	Position geom.Point
}

// HitData — снаряд ProjectileID попал во врага TargetID.
type HitData struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID
	Position     geom.Point
}

// FireData — башня TowerID выпустила снаряд ProjectileID по TargetID.
type FireData struct {
	TowerID      types.EntityID
	ProjectileID types.EntityID
	TargetID     types.EntityID
}
