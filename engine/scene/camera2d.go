package scene

// ScreenCamera projects layout pixels onto the framebuffer: origin top-left,
// Y down. X, Y is the layout pixel shown at the top-left of the viewport and
// one layout pixel covers Scale framebuffer pixels.
type ScreenCamera struct {
	W, H  int
	X, Y  float32
	Scale float32
	vp    [16]float32
	dirty bool
}

func NewScreen2D(width, height int) *ScreenCamera {
	c := &ScreenCamera{Scale: 1}
	c.SetViewportPixels(width, height)
	return c
}

func (c *ScreenCamera) SetViewportPixels(w, h int) {
	c.W, c.H = max(w, 1), max(h, 1)
	c.dirty = true
}

// Width and Height are the visible extent in layout pixels.
func (c *ScreenCamera) Width() float32  { return float32(c.W) / c.Scale }
func (c *ScreenCamera) Height() float32 { return float32(c.H) / c.Scale }

func (c *ScreenCamera) SetPosition(x, y float32) { c.X, c.Y = x, y; c.dirty = true }

// SetScale is clamped to [0.25, 8].
func (c *ScreenCamera) SetScale(s float32) {
	c.Scale = min(max(s, 0.25), 8)
	c.dirty = true
}

// ToContent maps a framebuffer pixel to the layout pixel drawn there.
func (c *ScreenCamera) ToContent(x, y int) (int, int) {
	return int(float32(x)/c.Scale + c.X), int(float32(y)/c.Scale + c.Y)
}

func (c *ScreenCamera) VP() [16]float32 {
	if c.dirty {
		c.vp = ortho(c.X, c.X+c.Width(), c.Y+c.Height(), c.Y)
		c.dirty = false
	}
	return c.vp
}

// ortho is the column-major GL projection of l..r, b..t onto -1..1, with
// depth left alone.
func ortho(l, r, b, t float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -1, 0,
		-(r + l) * rl, -(t + b) * tb, 0, 1,
	}
}
