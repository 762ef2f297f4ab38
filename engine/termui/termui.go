// Package termui rasterises a widget tree into a grid of terminal cells and
// styles it with lipgloss. A cell shows the item under its centre pixel, so
// mapping a cell back to that pixel hits the item drawn there.
package termui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/scratch"
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/widget"
)

// Pixels covered by one terminal cell.
const (
	CellW = 8
	CellH = 20
)

// CellToPixel returns the pixel at the centre of a cell.
func CellToPixel(col, row int) (x, y int) {
	return col*CellW + CellW/2, row*CellH + CellH/2
}

// cellRange returns the cells [first, end) whose centres lie in [x, x+w).
func cellRange(x, w, size int) (first, end int) {
	return divCeil(x-size/2, size), divCeil(x+w-size/2, size)
}

func divCeil(a, b int) int {
	if a >= 0 {
		return (a + b - 1) / b
	}
	return -(-a / b)
}

type role uint8

const (
	roleNone role = iota
	rolePanel
	roleLabel
	roleRegular
	roleRadio
	roleOption
	roleSlider
	roleSliderFill
)

type cell struct {
	r rune
	// second half of a wide rune, printed by its first half
	cont   bool
	role   role
	state  ui.ItemState
	dimmed bool
}

// Screen is a cell grid with the styles it is printed with.
type Screen struct {
	cols, rows int
	cells      []cell
	owners     []ui.Item

	pal      colors.Palette
	renderer *lipgloss.Renderer
	styles   map[cell]lipgloss.Style
	scratch  *scratch.Buffer
}

func NewScreen(cols, rows int, pal colors.Palette) *Screen {
	s := &Screen{
		pal:      pal,
		renderer: lipgloss.DefaultRenderer(),
		styles:   map[cell]lipgloss.Style{},
		scratch:  scratch.New(256),
	}
	s.Resize(cols, rows)
	return s
}

func (s *Screen) Size() (cols, rows int) { return s.cols, s.rows }

// SetRenderer makes String style cells for r's color profile.
func (s *Screen) SetRenderer(r *lipgloss.Renderer) {
	s.renderer = r
	clear(s.styles)
}

func (s *Screen) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
	s.owners = make([]ui.Item, s.cols*s.rows)
}

// Owner is the item drawn in a cell, or ui.None.
func (s *Screen) Owner(col, row int) ui.Item {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return ui.None
	}
	return s.owners[row*s.cols+col]
}

// Draw rasterises the tree of ctx after Layout and Process.
func (s *Screen) Draw(ctx *widget.Context) {
	s.scratch.Reset()
	for i := range s.cells {
		s.cells[i] = cell{r: ' '}
		s.owners[i] = ui.None
	}
	if ctx.Count() == 0 {
		return
	}

	visits := map[ui.Item]widget.Visit{}
	widget.Walk(ctx, ctx.Root(), func(v widget.Visit) { visits[v.Item] = v })

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			x, y := CellToPixel(col, row)
			it := pick(ctx, ctx.Root(), x, y)
			if !it.Valid() {
				continue
			}
			v := visits[it]
			i := row*s.cols + col
			s.owners[i] = it
			s.cells[i] = cell{r: ' ', role: roleOf(v.Widget), state: v.State, dimmed: v.Dimmed}
		}
	}

	for _, v := range visits {
		s.drawLeaf(v)
	}
}

// pick is FindItem without skipping frozen items: frozen items are still
// drawn, dimmed.
func pick(ctx *widget.Context, it ui.Item, x, y int) ui.Item {
	r := ctx.Rect(it)
	if !r.Contains(x, y) {
		return ui.None
	}
	for kid := ctx.FirstChild(it); kid.Valid(); kid = ctx.NextSibling(kid) {
		if hit := pick(ctx, kid, x-r.X, y-r.Y); hit.Valid() {
			return hit
		}
	}
	return it
}

func roleOf(w widget.Widget) role {
	switch w.(type) {
	case *widget.Panel, *widget.Row, *widget.Column:
		return rolePanel
	case *widget.Label, *widget.Check:
		return roleLabel
	case *widget.Button:
		return roleRegular
	case *widget.Radio:
		return roleRadio
	case *widget.Slider:
		return roleSlider
	}
	return roleNone
}

// drawLeaf writes the text of a leaf on the first row it owns.
func (s *Screen) drawLeaf(v widget.Visit) {
	c0, c1 := cellRange(v.Rect.X, v.Rect.W, CellW)
	r0, r1 := cellRange(v.Rect.Y, v.Rect.H, CellH)
	c0, c1 = max(c0, 0), min(c1, s.cols)
	r0, r1 = max(r0, 0), min(r1, s.rows)
	if c0 >= c1 || r0 >= r1 {
		return
	}
	row := r0

	switch w := v.Widget.(type) {
	case *widget.Label:
		s.text(v.Item, row, c0, c1, w.Text, false)
	case *widget.Button:
		s.edges(v, row, c0, c1)
		s.text(v.Item, row, c0+1, c1-1, orIcon(w.Text, w.Icon), w.Text == "")
	case *widget.Radio:
		s.edges(v, row, c0, c1)
		s.text(v.Item, row, c0+1, c1-1, orIcon(w.Text, w.Icon), w.Text == "")
	case *widget.Check:
		mark := "[ ]"
		if v.State == ui.Active {
			mark = "[x]"
		}
		for i := 0; i < 3; i++ {
			if c := s.at(v.Item, row, c0+padOf(c1-c0)+i); c != nil {
				c.role = roleOption
			}
		}
		s.text(v.Item, row, c0, c1, mark+" "+w.Text, false)
	case *widget.Slider:
		var value float32
		if w.Value != nil {
			value = *w.Value
		}
		fill := c0 + int(float32(c1-c0)*max(0, min(1, value))+0.5)
		for r := r0; r < r1; r++ {
			for c := c0; c < fill; c++ {
				if cl := s.at(v.Item, r, c); cl != nil {
					cl.role = roleSliderFill
				}
			}
		}
		s.text(v.Item, row, c0, c1, s.scratch.Percent(w.Text, value), true)
	}
}

func orIcon(text string, icon widget.Icon) string {
	if text == "" && icon != widget.NoIcon {
		return "*"
	}
	return text
}

// edges marks the sides of a grouped widget: round sides get brackets,
// sides joined to a neighbour a bar.
func (s *Screen) edges(v widget.Visit, row, c0, c1 int) {
	if c1-c0 < 3 {
		return
	}
	left, right := '[', ']'
	if v.Corners&widget.CornerLeft == widget.CornerLeft {
		left = '|'
	}
	if v.Corners&widget.CornerRight == widget.CornerRight {
		right = '|'
	}
	if c := s.at(v.Item, row, c0); c != nil {
		c.r = left
	}
	if c := s.at(v.Item, row, c1-1); c != nil {
		c.r = right
	}
}

// at returns the cell if it is owned by it.
func (s *Screen) at(it ui.Item, row, col int) *cell {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return nil
	}
	i := row*s.cols + col
	if s.owners[i] != it {
		return nil
	}
	return &s.cells[i]
}

// text writes str into the cells [c0, c1) owned by it, clipped by display
// width, left-aligned after a one cell pad or centered.
func (s *Screen) text(it ui.Item, row, c0, c1 int, str string, center bool) {
	avail := c1 - c0
	if avail <= 0 || str == "" {
		return
	}
	pad := 0
	if !center {
		pad = padOf(avail)
	}
	str = runewidth.Truncate(str, avail-pad, "")
	col := c0 + pad
	if center {
		col = c0 + (avail-runewidth.StringWidth(str))/2
	}
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c := s.at(it, row, col); c != nil {
			c.r = r
			if w == 2 {
				if next := s.at(it, row, col+1); next != nil {
					next.cont = true
				} else {
					c.r = ' '
				}
			}
		}
		col += w
	}
}

// padOf is the left inset of text in a span of n cells.
func padOf(n int) int {
	if n > 2 {
		return 1
	}
	return 0
}

// Plain returns the grid without styling.
func (s *Screen) Plain() string {
	var sb strings.Builder
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			if c := s.cells[row*s.cols+col]; !c.cont {
				sb.WriteRune(c.r)
			}
		}
		if row < s.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String renders the grid with one lipgloss style per run of equally
// styled cells.
func (s *Screen) String() string {
	var sb strings.Builder
	var run strings.Builder
	for row := 0; row < s.rows; row++ {
		var key cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(s.style(key).Render(run.String()))
			run.Reset()
		}
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			if c.cont {
				continue
			}
			k := cell{role: c.role, state: c.state, dimmed: c.dimmed}
			if k != key {
				flush()
				key = k
			}
			run.WriteRune(c.r)
		}
		flush()
		if row < s.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (s *Screen) style(key cell) lipgloss.Style {
	if st, ok := s.styles[key]; ok {
		return st
	}
	st := s.renderer.NewStyle()
	hot, active := key.state == ui.Hot, key.state == ui.Active
	color := func(c colors.Color) lipgloss.Color { return lipgloss.Color(c.Hex()) }
	widgetStyle := func(th colors.WidgetTheme) lipgloss.Style {
		fg := th.Text
		if active {
			fg = th.TextActive
		}
		return st.Background(color(th.InnerFor(hot, active))).Foreground(color(fg))
	}

	switch key.role {
	case rolePanel, roleLabel:
		st = st.Background(color(s.pal.Background)).Foreground(color(s.pal.Label))
	case roleRegular:
		st = widgetStyle(s.pal.Regular)
	case roleRadio:
		st = widgetStyle(s.pal.Radio)
	case roleOption:
		st = widgetStyle(s.pal.Option).Bold(true)
	case roleSlider:
		st = widgetStyle(s.pal.Slider)
	case roleSliderFill:
		st = widgetStyle(s.pal.Slider).Background(color(s.pal.Slider.Item))
	}
	if key.dimmed {
		st = st.Faint(true)
	}
	s.styles[key] = st
	return st
}
