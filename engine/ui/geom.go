package ui

// Axis selects one of the two independent layout dimensions.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type Vec2 struct{ X, Y int }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an integer box. Item rects are relative to the parent's origin.
type Rect struct{ X, Y, W, H int }

// Contains reports whether (x,y) lies inside r; the far edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func rectOf(b [4]int) Rect { return Rect{X: b[0], Y: b[1], W: b[2], H: b[3]} }

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
