package pixel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeDuration is how long the game-over overlay takes to fade in, in
// seconds.
const FadeDuration = 0.6

// Fade eases the game-over overlay in. The zero value is idle at 0.
type Fade struct {
	tween  *gween.Tween
	value  float64
	target float64
}

// Start begins fading from 0 to target.
func (f *Fade) Start(target float64) {
	f.tween = gween.New(0, float32(target), FadeDuration, ease.OutQuad)
	f.value = 0
	f.target = target
}

// Stop clears the overlay at once.
func (f *Fade) Stop() {
	f.tween = nil
	f.value = 0
}

// Update advances the fade by dt seconds and returns the current opacity.
func (f *Fade) Update(dt float64) float64 {
	if f.tween == nil {
		return f.value
	}
	v, done := f.tween.Update(float32(dt))
	f.value = float64(v)
	if done {
		f.value = f.target
		f.tween = nil
	}
	return f.value
}

// Value returns the current opacity.
func (f *Fade) Value() float64 { return f.value }

// Active reports whether the fade is still running.
func (f *Fade) Active() bool { return f.tween != nil }
