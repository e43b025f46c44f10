package app

import (
	"testing"
	"time"

	"go-td-sim/internal/config"
)

func TestDriverFrame(t *testing.T) {
	tests := []struct {
		name      string
		frames    []time.Duration
		speedUps  int
		wantTicks uint64
		wantNow   time.Duration
	}{
		{"single frame", []time.Duration{frame}, 0, 1, frame},
		{"long frame is clamped", []time.Duration{time.Second}, 0, 1, config.MaxDeltaTime},
		{"negative frame is zero", []time.Duration{-time.Second}, 0, 1, 0},
		{"x2 runs two ticks", []time.Duration{frame}, 1, 2, 2 * frame},
		{"x4 runs four ticks per frame", []time.Duration{frame, frame}, 2, 8, 8 * frame},
		{"x4 wraps back to x1", []time.Duration{frame}, 3, 1, frame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDriver(newEmptyGame(t), time.Hour)
			for i := 0; i < tt.speedUps; i++ {
				d.CycleSpeed()
			}
			for _, dt := range tt.frames {
				d.Frame(dt)
			}
			if d.Game.Stats.Ticks != tt.wantTicks {
				t.Errorf("ticks = %d, want %d", d.Game.Stats.Ticks, tt.wantTicks)
			}
			if d.Now() != tt.wantNow {
				t.Errorf("Now() = %v, want %v", d.Now(), tt.wantNow)
			}
		})
	}
}

func TestDriverPause(t *testing.T) {
	d := NewDriver(newEmptyGame(t), 100*time.Millisecond)
	if !d.TogglePause() {
		t.Fatal("TogglePause() should report paused")
	}
	if n := d.Frame(time.Second); n != 0 {
		t.Errorf("paused Frame ran %d ticks", n)
	}
	if d.Now() != 0 || len(d.Game.ECS.Enemies) != 0 {
		t.Errorf("paused driver advanced the world")
	}
	d.TogglePause()
	if d.Paused() {
		t.Error("still paused after second toggle")
	}
}

func TestDriverSpawnsOnInterval(t *testing.T) {
	d := NewDriver(newEmptyGame(t), 100*time.Millisecond)
	// 31 кадр по 1/60 с — чуть больше 500 мс, то есть пять врагов.
	for i := 0; i < 31; i++ {
		d.Frame(frame)
	}
	if got := d.Game.Stats.Spawned; got != 5 {
		t.Errorf("spawned = %d, want 5", got)
	}
}

func TestDriverSpeedCycle(t *testing.T) {
	d := NewDriver(newEmptyGame(t), time.Second)
	want := []int{2, 4, 1, 2}
	for i, w := range want {
		if got := d.CycleSpeed(); got != w {
			t.Errorf("CycleSpeed() #%d = %d, want %d", i, got, w)
		}
	}
	if d.SpeedIndex() != 1 {
		t.Errorf("SpeedIndex() = %d, want 1", d.SpeedIndex())
	}
}
