package pixel

import "github.com/vovakirdan/dasher/internal/core"

// Controls is the keyboard state sampled once per window frame. Movement
// and dash reflect held keys; the rest are set only on the frame the key
// went down.
type Controls struct {
	Up, Down, Left, Right bool
	DashDown              bool // a dash key went down this frame
	DashUp                bool // a dash key was released this frame
	Restart               bool
	Pause                 bool
}

// Frame converts the sampled keys into one simulation input frame.
func (c Controls) Frame() core.InputFrame {
	in := core.NewInputFrame()
	set := func(ok bool, a core.Action) {
		if ok {
			in.Set(a)
		}
	}
	set(c.Up, core.ActionMoveUp)
	set(c.Down, core.ActionMoveDown)
	set(c.Left, core.ActionMoveLeft)
	set(c.Right, core.ActionMoveRight)
	set(c.DashDown, core.ActionDashPress)
	set(c.DashUp && !c.DashDown, core.ActionDashRelease)
	set(c.Restart, core.ActionRestart)
	set(c.Pause, core.ActionPause)
	return in
}
