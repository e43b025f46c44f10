// internal/config/settings.go
package config

import (
	"fmt"
	"os"
	"time"

	"go-td-sim/pkg/geom"

	"gopkg.in/yaml.v3"
)

// PointSpec is a point as written in the settings file.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p PointSpec) Point() geom.Point {
	return geom.Pt(p.X, p.Y)
}

type ScreenSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type EnemySettings struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

type TowerSettings struct {
	Range          float64       `yaml:"range"`
	Size           float64       `yaml:"size"`
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
}

type ProjectileSettings struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

type SpawnSettings struct {
	Interval   time.Duration `yaml:"interval"`
	MaxEnemies int           `yaml:"max_enemies"`
}

// Settings holds everything a run can override. Zero values never reach the
// simulation: Load starts from Default and only overwrites keys present in the file.
type Settings struct {
	TPS        int                `yaml:"tps"`
	Screen     ScreenSettings     `yaml:"screen"`
	Path       []PointSpec        `yaml:"path"`
	Enemy      EnemySettings      `yaml:"enemy"`
	Tower      TowerSettings      `yaml:"tower"`
	Projectile ProjectileSettings `yaml:"projectile"`
	Spawn      SpawnSettings      `yaml:"spawn"`
	Towers     []PointSpec        `yaml:"towers"` // Башни, стоящие на карте при старте
}

// Default returns the reference layout: a rectangular loop and a single tower
// in the middle of it.
func Default() *Settings {
	return &Settings{
		TPS:    TPS,
		Screen: ScreenSettings{Width: ScreenWidth, Height: ScreenHeight},
		Path: []PointSpec{
			{100, 100}, {700, 100}, {700, 500}, {100, 500}, {100, 100},
		},
		Enemy:      EnemySettings{Speed: EnemySpeed, Size: EnemySize},
		Tower:      TowerSettings{Range: TowerRange, Size: TowerSize, AttackCooldown: TowerAttackCooldown},
		Projectile: ProjectileSettings{Speed: ProjectileSpeed, Size: ProjectileSize},
		Spawn:      SpawnSettings{Interval: SpawnInterval, MaxEnemies: MaxEnemies},
		Towers:     []PointSpec{{370, 270}},
	}
}

// PathPoints converts the configured path to geometry points.
func (s *Settings) PathPoints() []geom.Point {
	pts := make([]geom.Point, len(s.Path))
	for i, p := range s.Path {
		pts[i] = p.Point()
	}
	return pts
}

// TickDuration is the wall-clock length of one frame at the configured TPS.
func (s *Settings) TickDuration() time.Duration {
	if s.TPS <= 0 {
		return time.Second / TPS
	}
	return time.Second / time.Duration(s.TPS)
}

// Load reads a YAML settings file on top of Default. An empty path returns the
// defaults unchanged.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	return s, nil
}
