// internal/component/tower.go
package component

import (
	"time"

	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// TowerState — состояние атаки башни.
type TowerState int

const (
	TowerIdle  TowerState = iota // Перезарядка ещё идёт
	TowerReady                   // Может стрелять
)

func (s TowerState) String() string {
	if s == TowerReady {
		return "ready"
	}
	return "idle"
}

type Tower struct {
	ID             types.EntityID
	Position       geom.Point // Центр башни
	Range          float64
	AttackCooldown time.Duration
	LastAttackTime time.Duration
	Shots          int
	Size           float64
}

// State возвращает Ready, если с последней атаки прошло не меньше перезарядки.
// LastAttackTime изначально ноль: отсчёт идёт от старта симуляции.
func (t *Tower) State(now time.Duration) TowerState {
	if now-t.LastAttackTime >= t.AttackCooldown {
		return TowerReady
	}
	return TowerIdle
}

func (t *Tower) Bounds() geom.Rect {
	return geom.RectAround(t.Position, t.Size, t.Size)
}
