package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestDefaultMatchesReferenceLayout(t *testing.T) {
	s := Default()
	if len(s.Path) != 5 {
		t.Fatalf("default path has %d points, want 5", len(s.Path))
	}
	if first, last := s.Path[0], s.Path[len(s.Path)-1]; first != last {
		t.Errorf("default path should be a closed loop, got %v ... %v", first, last)
	}
	if s.Tower.AttackCooldown != 480*time.Millisecond {
		t.Errorf("AttackCooldown = %v, want 480ms", s.Tower.AttackCooldown)
	}
	if s.Spawn.Interval != 100*time.Millisecond {
		t.Errorf("Spawn.Interval = %v, want 100ms", s.Spawn.Interval)
	}
	if len(s.Towers) != 1 {
		t.Errorf("default has %d initial towers, want 1", len(s.Towers))
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if s.Enemy.Speed != EnemySpeed {
		t.Errorf("Enemy.Speed = %v, want %v", s.Enemy.Speed, EnemySpeed)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Settings)
	}{
		{
			name: "overrides keep unspecified defaults",
			yamlContent: `
enemy:
  speed: 3
tower:
  attack_cooldown: 250ms
spawn:
  interval: 1s
  max_enemies: 40
`,
			validate: func(t *testing.T, s *Settings) {
				if s.Enemy.Speed != 3 {
					t.Errorf("Enemy.Speed = %v, want 3", s.Enemy.Speed)
				}
				if s.Enemy.Size != EnemySize {
					t.Errorf("Enemy.Size = %v, want default %v", s.Enemy.Size, EnemySize)
				}
				if s.Tower.AttackCooldown != 250*time.Millisecond {
					t.Errorf("AttackCooldown = %v, want 250ms", s.Tower.AttackCooldown)
				}
				if s.Tower.Range != TowerRange {
					t.Errorf("Tower.Range = %v, want default %v", s.Tower.Range, TowerRange)
				}
				if s.Spawn.Interval != time.Second || s.Spawn.MaxEnemies != 40 {
					t.Errorf("Spawn = %+v", s.Spawn)
				}
				if len(s.Path) != 5 {
					t.Errorf("path replaced unexpectedly: %v", s.Path)
				}
			},
		},
		{
			name: "custom path and towers",
			yamlContent: `
path:
  - {x: 0, y: 0}
  - {x: 10, y: 0}
towers:
  - {x: 5, y: 40}
  - {x: 50, y: 40}
`,
			validate: func(t *testing.T, s *Settings) {
				pts := s.PathPoints()
				if len(pts) != 2 || pts[1].X != 10 {
					t.Errorf("PathPoints() = %v", pts)
				}
				if len(s.Towers) != 2 || s.Towers[1].X != 50 {
					t.Errorf("Towers = %v", s.Towers)
				}
			},
		},
		{
			name: "single point path",
			yamlContent: `
path:
  - {x: 0, y: 0}
`,
			wantErr:     true,
			errContains: "validation failed",
		},
		{
			name: "non-positive speed",
			yamlContent: `
projectile:
  speed: 0
`,
			wantErr:     true,
			errContains: "validation failed",
		},
		{
			name: "unknown key",
			yamlContent: `
enemy:
  health: 10
`,
			wantErr:     true,
			errContains: "validation failed",
		},
		{
			name: "bad duration",
			yamlContent: `
tower:
  attack_cooldown: soon
`,
			wantErr:     true,
			errContains: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.yamlContent)
			s, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() returned error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, s)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read settings file") {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestTickDuration(t *testing.T) {
	s := Default()
	if got := s.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v, want %v", got, time.Second/60)
	}
	s.TPS = 0
	if got := s.TickDuration(); got != time.Second/TPS {
		t.Errorf("TickDuration() with TPS=0 = %v", got)
	}
}
