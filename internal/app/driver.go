package app

import (
	"time"

	"go-td-sim/internal/config"
	"go-td-sim/internal/system"
)

// Driver переводит кадры адаптера в тики мира: ведёт симуляционные часы,
// таймер появления врагов, паузу и множитель скорости.
// Общий для оконного, терминального и безголового режимов.
type Driver struct {
	Game    *Game
	Spawner *system.SpawnTimer

	now        time.Duration
	speedIndex int
	paused     bool
}

func NewDriver(g *Game, spawnInterval time.Duration) *Driver {
	d := &Driver{Game: g}
	d.Spawner = system.NewSpawnTimer(spawnInterval, func() { g.SpawnEnemy() })
	return d
}

// Frame продвигает мир на один кадр длительностью dt. Слишком длинный кадр
// обрезается до config.MaxDeltaTime. При множителе N выполняется N тиков,
// каждый со своим dt. Возвращает число выполненных тиков.
func (d *Driver) Frame(dt time.Duration) int {
	if d.paused {
		return 0
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}
	ticks := d.Speed()
	for i := 0; i < ticks; i++ {
		d.Step(dt)
	}
	return ticks
}

// Step выполняет ровно один тик, не глядя на паузу и множитель.
func (d *Driver) Step(dt time.Duration) {
	d.now += dt
	d.Spawner.Update(dt)
	d.Game.Update(d.now)
}

func (d *Driver) TogglePause() bool {
	d.paused = !d.paused
	return d.paused
}

func (d *Driver) Paused() bool {
	return d.paused
}

// CycleSpeed переключает множитель x1 -> x2 -> x4 -> x1.
func (d *Driver) CycleSpeed() int {
	d.speedIndex = (d.speedIndex + 1) % len(config.SpeedMultipliers)
	return d.Speed()
}

// Speed — текущий множитель, тиков за кадр.
func (d *Driver) Speed() int {
	return config.SpeedMultipliers[d.speedIndex]
}

// SpeedIndex нужен адаптерам для выбора цвета кнопки.
func (d *Driver) SpeedIndex() int {
	return d.speedIndex
}

func (d *Driver) Now() time.Duration {
	return d.now
}
