package anim

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestUVScrollAccumulates(t *testing.T) {
	var gotU, gotV float64
	s := NewUVScroll(func(u, v float64) { gotU, gotV = u, v }, 0.5, -0.25)

	for i := 0; i < 4; i++ {
		if !s.Update(500 * time.Millisecond) {
			t.Fatal("looping scroll reported finished")
		}
	}
	if !near(gotU, 1) || !near(gotV, -0.5) {
		t.Errorf("callback offset = (%v, %v), want (1, -0.5)", gotU, gotV)
	}
	if u, v := s.Offset(); !near(u, 1) || !near(v, -0.5) {
		t.Errorf("Offset = (%v, %v)", u, v)
	}

	s.Reset()
	if u, v := s.Offset(); u != 0 || v != 0 || gotU != 0 || gotV != 0 {
		t.Errorf("after Reset offset = (%v, %v), callback = (%v, %v)", u, v, gotU, gotV)
	}
}

func TestUVScrollRate(t *testing.T) {
	s := NewUVScroll(nil, 1, 0)
	s.SetRate(2)
	s.Update(250 * time.Millisecond)
	if u, _ := s.Offset(); !near(u, 0.5) {
		t.Errorf("u = %v, want 0.5", u)
	}
	s.SetSpeed(0, 1)
	s.Update(time.Second)
	if u, v := s.Offset(); !near(u, 0.5) || !near(v, 2) {
		t.Errorf("offset = (%v, %v), want (0.5, 2)", u, v)
	}
}

func TestAnimatorDropsFinished(t *testing.T) {
	var a Animator
	looping := NewUVScroll(nil, 1, 0)
	once := NewUVScroll(nil, 1, 0)
	once.SetLoop(false)
	once.SetDuration(time.Second)

	a.Add(looping)
	a.Add(nil)
	a.Add(once)
	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}

	a.Update(600 * time.Millisecond)
	if a.Len() != 2 {
		t.Fatalf("Len after first update = %d, want 2", a.Len())
	}
	a.Update(600 * time.Millisecond)
	if a.Len() != 1 {
		t.Fatalf("Len after second update = %d, want 1", a.Len())
	}
	if u, _ := once.Offset(); !near(u, 1.2) {
		t.Errorf("u after final update = %v, want 1.2", u)
	}
}

func TestAnimatorRemoveAndClear(t *testing.T) {
	var a Animator
	s1 := NewUVScroll(nil, 1, 0)
	s2 := NewUVScroll(nil, 1, 0)
	a.Add(s1)
	a.Add(s2)

	if !a.Remove(s1) {
		t.Error("Remove(s1) = false")
	}
	if a.Remove(s1) {
		t.Error("second Remove(s1) = true")
	}
	a.Update(time.Second)
	if u, _ := s1.Offset(); u != 0 {
		t.Error("removed animation was updated")
	}

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len after Clear = %d", a.Len())
	}
}
