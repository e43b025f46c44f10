package system

import "time"

// SpawnTimer накапливает прошедшее время и вызывает spawn каждый раз, когда
// накопленное превышает интервал. Живёт в адаптере, а не в мире: ядро не
// знает ни о каких таймерах.
type SpawnTimer struct {
	Interval time.Duration
	elapsed  time.Duration
	spawn    func()
}

func NewSpawnTimer(interval time.Duration, spawn func()) *SpawnTimer {
	return &SpawnTimer{Interval: interval, spawn: spawn}
}

// Update добавляет dt и возвращает число вызовов spawn. После длинного кадра
// может сработать несколько раз подряд.
func (t *SpawnTimer) Update(dt time.Duration) int {
	if t.Interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := 0
	for t.elapsed >= t.Interval {
		t.elapsed -= t.Interval
		t.spawn()
		n++
	}
	return n
}

func (t *SpawnTimer) Reset() {
	t.elapsed = 0
}
