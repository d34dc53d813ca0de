package dasher

import "github.com/vovakirdan/dasher/internal/core"

// AnimationClock cycles an entity through the frames of its sprite sheet.
type AnimationClock struct {
	elapsed float64
	frame   int
	period  float64
	count   int
	frameW  int
	frameH  int
}

// NewAnimationClock creates a clock that advances one frame every period
// seconds over count frames of frameW×frameH pixels.
func NewAnimationClock(period float64, count, frameW, frameH int) AnimationClock {
	if count < 1 {
		count = 1
	}
	return AnimationClock{period: period, count: count, frameW: frameW, frameH: frameH}
}

// Advance accumulates delta and reports whether the frame changed.
// Every whole period in the accumulator is consumed, so the resulting frame
// depends only on the total time fed in, not on how it was split.
func (c *AnimationClock) Advance(delta float64) bool {
	if c.period <= 0 {
		return false
	}
	c.elapsed += delta
	changed := false
	for c.elapsed >= c.period {
		c.elapsed -= c.period
		c.frame = (c.frame + 1) % c.count
		changed = true
	}
	return changed
}

// Frame returns the current frame index.
func (c AnimationClock) Frame() int {
	return c.frame
}

// SpriteRect returns the sheet sub-rectangle for the current frame.
// Sheets hold four direction rows followed by their four moving rows.
func (c AnimationClock) SpriteRect(dir Direction, moving bool) core.Rect {
	row := int(dir)
	if moving {
		row += 4
	}
	return core.NewRect(c.frame*c.frameW, row*c.frameH, c.frameW, c.frameH)
}
