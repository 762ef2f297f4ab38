package core

// Pointer receives cursor and button state; a ui.Context implements it.
type Pointer interface {
	SetCursor(x, y int)
	SetButton(index int, down bool)
}

type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	buttons        [MouseButtonCount]bool
	// framebuffer pixels per window unit
	scaleX, scaleY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}, scaleX: 1, scaleY: 1} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if e.Button >= 0 && e.Button < MouseButtonCount {
			in.buttons[e.Button] = e.Down
		}
	}
}

// SetScale sets how many framebuffer pixels one window unit covers, which
// differs from 1 on high-density displays.
func (in *Input) SetScale(sx, sy float64) {
	if sx <= 0 || sy <= 0 {
		sx, sy = 1, 1
	}
	in.scaleX, in.scaleY = sx, sy
}

func (in *Input) IsKeyDown(k Key) bool                 { return in.keys[k] }
func (in *Input) Mouse() (float64, float64)            { return in.mouseX, in.mouseY }
func (in *Input) IsMouseButtonDown(b MouseButton) bool { return b >= 0 && b < MouseButtonCount && in.buttons[b] }

// Apply hands the cursor, in framebuffer pixels, and the buttons to p.
func (in *Input) Apply(p Pointer) {
	p.SetCursor(int(in.mouseX*in.scaleX), int(in.mouseY*in.scaleY))
	for i, down := range in.buttons {
		p.SetButton(i, down)
	}
}
