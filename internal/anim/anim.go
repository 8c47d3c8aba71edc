// Package anim advances time-driven state between frames. Nothing here
// starts goroutines or timers: the frame loop calls Animator.Update with the
// elapsed time and then draws.
package anim

import (
	"slices"
	"time"
)

// Animation is time-dependent state advanced once per frame.
type Animation interface {
	// Update advances by dt and reports whether the animation is still running.
	Update(dt time.Duration) bool
	// Reset rewinds to the initial state.
	Reset()
	// Loop reports whether the animation runs forever.
	Loop() bool
}

// Animator owns a set of animations and drives them together.
type Animator struct {
	anims []Animation
}

// Add registers an animation. Nil is ignored.
func (a *Animator) Add(an Animation) {
	if an != nil {
		a.anims = append(a.anims, an)
	}
}

// Remove unregisters an, reporting whether it was present.
func (a *Animator) Remove(an Animation) bool {
	n := len(a.anims)
	a.anims = slices.DeleteFunc(a.anims, func(x Animation) bool { return x == an })
	return len(a.anims) != n
}

// Clear drops every animation.
func (a *Animator) Clear() {
	clear(a.anims)
	a.anims = a.anims[:0]
}

func (a *Animator) Len() int { return len(a.anims) }

// Update advances every animation by dt. Finished animations that do not
// loop are dropped. Iteration runs back to front so removal keeps the
// remaining indices valid.
func (a *Animator) Update(dt time.Duration) {
	for i := len(a.anims) - 1; i >= 0; i-- {
		an := a.anims[i]
		if running := an.Update(dt); !running && !an.Loop() {
			a.anims = slices.Delete(a.anims, i, i+1)
		}
	}
}
