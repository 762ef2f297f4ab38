package termui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/widget"
)

func TestCellRange(t *testing.T) {
	tests := []struct {
		x, w, size int
		first, end int
	}{
		{0, 16, 8, 0, 2},
		{0, 80, 8, 0, 10},
		{29, 21, 20, 1, 2},
		{51, 21, 20, 3, 4},
		{-10, 8, 8, -1, 0},
		{5, 2, 8, 1, 1},
	}
	for _, tt := range tests {
		first, end := cellRange(tt.x, tt.w, tt.size)
		if first != tt.first || end != tt.end {
			t.Errorf("cellRange(%d, %d, %d) = %d, %d, want %d, %d", tt.x, tt.w, tt.size, first, end, tt.first, tt.end)
		}
	}
}

func TestCellToPixel(t *testing.T) {
	if x, y := CellToPixel(3, 2); x != 28 || y != 50 {
		t.Errorf("CellToPixel(3, 2) = %d, %d, want 28, 50", x, y)
	}
}

// buttonTree is an 80x40 root with one 80x21 button on top.
func buttonTree(clicks *int) (*widget.Context, widget.Node) {
	b := widget.NewBuilder(ui.New[widget.Widget](8), nil)
	root := b.Panel().Layout(ui.Left | ui.Top).Size(80, 40)
	col := b.Column(root).Layout(ui.HFill | ui.Top)
	btn := b.Button(col, 1, widget.NoIcon, "go", func(ui.Tag) { *clicks++ })
	b.Context().Layout()
	return b.Context(), btn
}

func TestDrawButton(t *testing.T) {
	var clicks int
	ctx, btn := buttonTree(&clicks)
	s := NewScreen(10, 2, colors.DefaultPalette())
	s.Draw(ctx)

	want := "[ go     ]\n          "
	if got := s.Plain(); got != want {
		t.Errorf("Plain() =\n%q\nwant\n%q", got, want)
	}
	if got := s.Owner(5, 0); got != btn.Item() {
		t.Errorf("Owner(5, 0) = %v, want the button %v", got, btn.Item())
	}
	if got := s.Owner(5, 1); got != ctx.Root() {
		t.Errorf("Owner(5, 1) = %v, want the root", got)
	}
	if got := s.Owner(10, 0); got != ui.None {
		t.Errorf("Owner outside the grid = %v, want None", got)
	}
}

func TestCellClickHitsDrawnItem(t *testing.T) {
	var clicks int
	ctx, _ := buttonTree(&clicks)
	s := NewScreen(10, 2, colors.DefaultPalette())
	s.Draw(ctx)

	for _, cell := range [][2]int{{3, 0}, {5, 1}} {
		x, y := CellToPixel(cell[0], cell[1])
		ctx.SetCursor(x, y)
		ctx.SetButton(0, true)
		ctx.Process()
		ctx.SetButton(0, false)
		ctx.Process()
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestDrawCheckAndSlider(t *testing.T) {
	on, value := true, float32(0.5)
	b := widget.NewBuilder(ui.New[widget.Widget](8), nil)
	root := b.Panel().Layout(ui.Left | ui.Top).Size(80, 60)
	col := b.Column(root).Layout(ui.HFill | ui.Top)
	b.Check(col, 1, "on", &on, nil)
	b.Slider(col, 2, "s", &value)
	b.Context().Layout()
	b.Context().Process()

	s := NewScreen(10, 3, colors.DefaultPalette())
	s.Draw(b.Context())

	want := " [x] on   \n  s: 50%  \n          "
	if got := s.Plain(); got != want {
		t.Errorf("Plain() =\n%q\nwant\n%q", got, want)
	}
	for i := 0; i < 10; i++ {
		wantFill := i < 5
		if got := s.cells[10+i].role == roleSliderFill; got != wantFill {
			t.Errorf("slider cell %d filled = %v, want %v", i, got, wantFill)
		}
	}
}

func TestDrawGroupEdges(t *testing.T) {
	var sel int
	b := widget.NewBuilder(ui.New[widget.Widget](8), nil)
	root := b.Panel().Layout(ui.Left | ui.Top).Size(160, 21)
	row := b.HGroup(root).Layout(ui.HFill | ui.Top)
	b.Radio(row, 1, widget.NoIcon, "a", &sel)
	b.Radio(row, 2, widget.NoIcon, "b", &sel)
	b.Context().Layout()

	s := NewScreen(20, 1, colors.DefaultPalette())
	s.Draw(b.Context())

	got := s.Plain()
	if !strings.HasPrefix(got, "[ a") || !strings.HasSuffix(got, "]") {
		t.Fatalf("Plain() = %q, want outer sides rounded", got)
	}
	if strings.Count(got, "|") != 2 {
		t.Errorf("Plain() = %q, want the joined sides drawn as bars", got)
	}
}

func TestDrawWideRunes(t *testing.T) {
	b := widget.NewBuilder(ui.New[widget.Widget](8), nil)
	root := b.Panel().Layout(ui.Left | ui.Top).Size(48, 21)
	col := b.Column(root).Layout(ui.HFill | ui.Top)
	b.Label(col, widget.NoIcon, "日本語")
	b.Context().Layout()

	s := NewScreen(6, 1, colors.DefaultPalette())
	s.Draw(b.Context())

	// one pad cell leaves room for two wide runes
	if got, want := s.Plain(), " 日本 "; got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
}

func TestStringColorProfiles(t *testing.T) {
	var clicks int
	ctx, _ := buttonTree(&clicks)
	s := NewScreen(10, 2, colors.DefaultPalette())
	s.Draw(ctx)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	s.SetRenderer(r)
	if got, want := s.String(), s.Plain(); got != want {
		t.Errorf("ascii String() = %q, want %q", got, want)
	}

	r = lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	s.SetRenderer(r)
	if got := s.String(); !strings.Contains(got, "\x1b[") {
		t.Errorf("truecolor String() = %q, want escape sequences", got)
	}
}
