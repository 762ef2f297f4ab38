package scene

import "github.com/hubastard/oui/engine/core"

// PanController2D scrolls a screen camera over content larger than the
// viewport. WASD pans, the wheel scrolls both axes.
type PanController2D struct {
	MoveSpeed  float32 // pixels per second
	ScrollStep float32 // pixels per wheel notch
	Camera     *ScreenCamera
	// the view never leaves [0, ContentW] x [0, ContentH]
	ContentW, ContentH float32
	x, y               float32
}

func NewPanController2D(cam *ScreenCamera) *PanController2D {
	return &PanController2D{
		MoveSpeed:  600,
		ScrollStep: 40,
		Camera:     cam,
	}
}

// Offset is the content pixel shown at the top-left of the viewport.
func (pc *PanController2D) Offset() (x, y int) { return int(pc.x), int(pc.y) }

func (pc *PanController2D) SetContentSize(w, h int) {
	pc.ContentW, pc.ContentH = float32(w), float32(h)
	pc.apply()
}

func (pc *PanController2D) Update(e *core.Engine, dt float32) {
	in := e.Input
	speed := pc.MoveSpeed * dt

	if in.IsKeyDown(core.KeyW) {
		pc.y -= speed
	}
	if in.IsKeyDown(core.KeyS) {
		pc.y += speed
	}
	if in.IsKeyDown(core.KeyA) {
		pc.x -= speed
	}
	if in.IsKeyDown(core.KeyD) {
		pc.x += speed
	}
	pc.apply()
}

// HandleEvent scrolls on wheel events and follows resizes. Only wheel
// events are consumed.
func (pc *PanController2D) HandleEvent(ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventScroll:
		// wheel up shows what is above
		pc.x -= float32(v.Xoff) * pc.ScrollStep
		pc.y -= float32(v.Yoff) * pc.ScrollStep
		pc.apply()
		return true
	case core.EventResize:
		pc.Camera.SetViewportPixels(v.W, v.H)
		pc.apply()
	}
	return false
}

func (pc *PanController2D) apply() {
	c := pc.Camera
	w, h := c.Width(), c.Height()
	pc.x = min(max(pc.x, 0), max(pc.ContentW-w, 0))
	pc.y = min(max(pc.y, 0), max(pc.ContentH-h, 0))
	c.SetPosition(pc.x, pc.y)
}
