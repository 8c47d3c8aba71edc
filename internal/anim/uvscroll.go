package anim

import (
	"time"

	"softraster/internal/mathutil"
)

// UVScroll shifts a texture offset at a constant speed, producing the
// marquee effect on sprites. Speeds are in UV units per second: 1.0 scrolls
// one full texture width each second.
type UVScroll struct {
	set      func(u, v float64)
	speed    mathutil.Vec2f
	offset   mathutil.Vec2f
	rate     float64
	loop     bool
	duration time.Duration
	elapsed  time.Duration
}

// NewUVScroll returns a looping scroll that reports each new offset to set.
func NewUVScroll(set func(u, v float64), speedU, speedV float64) *UVScroll {
	return &UVScroll{
		set:   set,
		speed: mathutil.Vec2f{X: speedU, Y: speedV},
		rate:  1,
		loop:  true,
	}
}

// SetSpeed changes the scroll speed.
func (s *UVScroll) SetSpeed(speedU, speedV float64) {
	s.speed = mathutil.Vec2f{X: speedU, Y: speedV}
}

// SetRate sets the playback multiplier (1 = real time).
func (s *UVScroll) SetRate(r float64) { s.rate = r }

// SetLoop toggles looping.
func (s *UVScroll) SetLoop(loop bool) { s.loop = loop }

// SetDuration bounds a non-looping scroll; zero means unbounded.
func (s *UVScroll) SetDuration(d time.Duration) { s.duration = d }

// Offset returns the accumulated UV offset.
func (s *UVScroll) Offset() (u, v float64) { return s.offset.X, s.offset.Y }

func (s *UVScroll) Loop() bool { return s.loop }

func (s *UVScroll) Update(dt time.Duration) bool {
	step := dt.Seconds() * s.rate
	s.offset = s.offset.Add(s.speed.Scale(step))
	s.elapsed += dt
	if s.set != nil {
		s.set(s.offset.X, s.offset.Y)
	}
	return s.loop || s.duration == 0 || s.elapsed < s.duration
}

func (s *UVScroll) Reset() {
	s.offset = mathutil.Vec2f{}
	s.elapsed = 0
	if s.set != nil {
		s.set(0, 0)
	}
}
