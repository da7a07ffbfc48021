// Package anim provides timer-driven sprite frame cycling.
package anim

import "fmt"

// Animator cycles through a fixed list of sprite names at a constant rate.
type Animator struct {
	frames        []string
	frameDuration float64 // seconds per frame
	elapsed       float64 // seconds since the last frame change
	index         int
}

// New creates an animator over frames. It panics on an empty frame list or a
// non-positive duration.
func New(frames []string, frameDuration float64) *Animator {
	if len(frames) == 0 {
		panic("anim: animator needs at least one frame")
	}
	if frameDuration <= 0 {
		panic(fmt.Sprintf("anim: invalid frame duration %v", frameDuration))
	}
	return &Animator{
		frames:        append([]string(nil), frames...),
		frameDuration: frameDuration,
	}
}

// Advance accumulates dt and steps to the next frame once a full frame
// duration has passed. The accumulator restarts from zero, so at most one
// frame is advanced per call regardless of dt.
func (a *Animator) Advance(dt float64) {
	a.elapsed += dt
	if a.elapsed >= a.frameDuration {
		a.index = (a.index + 1) % len(a.frames)
		a.elapsed = 0
	}
}

// CurrentFrame returns the sprite name of the current frame.
func (a *Animator) CurrentFrame() string {
	return a.frames[a.index]
}

// Index returns the current frame index.
func (a *Animator) Index() int {
	return a.index
}

// SpriteFrames builds the conventional frame names for a sprite, e.g.
// SpriteFrames("hero", "idle", 2) returns hero_idle1, hero_idle2.
func SpriteFrames(name, mode string, count int) []string {
	frames := make([]string, count)
	for i := range frames {
		frames[i] = fmt.Sprintf("%s_%s%d", name, mode, i+1)
	}
	return frames
}
