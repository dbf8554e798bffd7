package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ZoomAnimator spreads a zoom delta over several ticks with easing.
type ZoomAnimator struct {
	Duration float32
	Ease     ease.TweenFunc

	tween   *gween.Tween
	target  float32
	applied float32
}

func NewZoomAnimator(duration float32) *ZoomAnimator {
	return &ZoomAnimator{Duration: duration, Ease: ease.OutQuad}
}

// Start queues total. Any part of a running animation not yet applied is
// carried into the new one.
func (z *ZoomAnimator) Start(total float64) {
	remaining := z.target - z.applied
	z.target = remaining + float32(total)
	z.applied = 0
	z.tween = gween.New(0, z.target, z.Duration, z.Ease)
}

func (z *ZoomAnimator) Active() bool { return z.tween != nil }

// Step advances by dt seconds and returns the delta to apply this tick.
func (z *ZoomAnimator) Step(dt float32) float64 {
	if z.tween == nil {
		return 0
	}
	current, done := z.tween.Update(dt)
	if done {
		current = z.target
		z.tween = nil
	}
	delta := current - z.applied
	z.applied = current
	if done {
		z.target, z.applied = 0, 0
	}
	return float64(delta)
}
