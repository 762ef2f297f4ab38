package theme

import (
	"reflect"
	"testing"

	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/core"
	"github.com/hubastard/oui/engine/gfx/renderer2d"
	"github.com/hubastard/oui/engine/scratch"
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/widget"
)

func TestRoundRect(t *testing.T) {
	tests := []struct {
		name   string
		r      ui.Rect
		radius int
		sharp  widget.Corners
		want   []ui.Rect
	}{
		{
			"all round", ui.Rect{W: 20, H: 10}, 3, widget.CornerNone,
			[]ui.Rect{{X: 3, W: 14, H: 3}, {Y: 3, W: 20, H: 4}, {X: 3, Y: 7, W: 14, H: 3}},
		},
		{
			"left sharp", ui.Rect{W: 20, H: 10}, 3, widget.CornerLeft,
			[]ui.Rect{{W: 17, H: 3}, {Y: 3, W: 20, H: 4}, {Y: 7, W: 17, H: 3}},
		},
		{
			"offset", ui.Rect{X: 5, Y: 5, W: 10, H: 10}, 2, widget.CornerDown,
			[]ui.Rect{{X: 7, Y: 5, W: 6, H: 2}, {X: 5, Y: 7, W: 10, H: 6}, {X: 5, Y: 13, W: 10, H: 2}},
		},
		{"all sharp", ui.Rect{W: 20, H: 10}, 3, widget.CornerAll, []ui.Rect{{W: 20, H: 10}}},
		{"too small", ui.Rect{W: 1, H: 1}, 3, widget.CornerNone, []ui.Rect{{W: 1, H: 1}}},
	}
	for _, tt := range tests {
		if got := RoundRect(tt.r, tt.radius, tt.sharp); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: RoundRect = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSliderFill(t *testing.T) {
	r := ui.Rect{X: 10, Y: 2, W: 200, H: 19}
	tests := []struct {
		value float32
		want  int
	}{
		{0, 0},
		{0.25, 50},
		{1, 200},
		{-1, 0},
		{2, 200},
	}
	for _, tt := range tests {
		got := SliderFill(r, tt.value)
		if got.W != tt.want || got.X != r.X || got.H != r.H {
			t.Errorf("SliderFill(%v) = %+v, want width %d", tt.value, got, tt.want)
		}
	}
}

type fakeHandle uint32

func (h fakeHandle) ID() uint32       { return uint32(h) }
func (h fakeHandle) Size() (int, int) { return 1, 1 }

type fakeRenderer struct{}

func (fakeRenderer) Init() error                                          { return nil }
func (fakeRenderer) Resize(int, int)                                      {}
func (fakeRenderer) Clear(_, _, _, _ float32)                             {}
func (fakeRenderer) Shutdown()                                            {}
func (fakeRenderer) Draw(core.DrawCmd)                                    {}
func (fakeRenderer) GPUVendor() string                                    { return "" }
func (fakeRenderer) GPURenderer() string                                  { return "" }
func (fakeRenderer) GPUVersion() string                                   { return "" }
func (fakeRenderer) CreateTexture(core.TextureDesc) (core.Texture, error) { return fakeHandle(1), nil }
func (fakeRenderer) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	return fakeHandle(2), nil
}
func (fakeRenderer) CreateMesh(core.MeshDesc) (core.Mesh, error)     { return fakeHandle(3), nil }
func (fakeRenderer) UpdateMesh(core.Mesh, []float32, []uint32) error { return nil }

func TestPaintQuads(t *testing.T) {
	r2d, err := renderer2d.New(fakeRenderer{}, "", "", 100)
	if err != nil {
		t.Fatal(err)
	}
	b := widget.NewBuilder(ui.New[widget.Widget](8), nil)
	root := b.Panel().Layout(ui.Left | ui.Top).Size(100, 50)
	col := b.Column(root).Layout(ui.HFill | ui.Top)
	b.Button(col, 1, widget.IconAt(1, 1), "go", nil)
	b.Context().Layout()

	p := New(r2d, nil, colors.DefaultPalette(), scratch.New(64))
	r2d.BeginScene([16]float32{})
	p.Paint(b.Context())
	r2d.EndScene()

	// panel, outline and inner in three parts each, icon
	if got := r2d.Stats().QuadCount; got != 8 {
		t.Errorf("QuadCount = %d, want 8", got)
	}
}

func TestIconSheet(t *testing.T) {
	img := DrawIconSheet(16, 11)
	if got := img.Bounds().Size(); got.X != 256 || got.Y != 176 {
		t.Fatalf("sheet size = %v, want 256x176", got)
	}
	// cell corners stay transparent, the centre of a disc is set
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(IconCell/2, IconCell/2).A; a != 255 {
		t.Errorf("centre alpha = %d, want 255", a)
	}

	sheet, err := UploadIconSheet(fakeRenderer{}, 256, 176, img.Pix)
	if err != nil {
		t.Fatal(err)
	}
	sub := sheet.Sub(widget.IconAt(1, 10))
	if sub.U0 != 16.0/256 || sub.U1 != 32.0/256 || sub.V0 != 160.0/176 || sub.V1 != 1 {
		t.Errorf("Sub(1,10) = %+v", sub)
	}

	if _, err := UploadIconSheet(fakeRenderer{}, 8, 8, nil); err == nil {
		t.Error("UploadIconSheet accepted a sheet smaller than a cell")
	}
}

func TestPaintIconFromSheet(t *testing.T) {
	r2d, err := renderer2d.New(fakeRenderer{}, "", "", 100)
	if err != nil {
		t.Fatal(err)
	}
	b := widget.NewBuilder(ui.New[widget.Widget](8), nil)
	root := b.Panel().Layout(ui.Left | ui.Top).Size(100, 50)
	col := b.Column(root).Layout(ui.HFill | ui.Top)
	b.Label(col, widget.IconAt(2, 0), "")
	b.Context().Layout()

	p := New(r2d, nil, colors.DefaultPalette(), scratch.New(64))
	p.SetIcons(&IconSheet{Texture: fakeHandle(7), W: 64, H: 64})
	r2d.BeginScene([16]float32{})
	p.Paint(b.Context())
	r2d.EndScene()

	// panel and icon; the icon binds the sheet texture
	st := r2d.Stats()
	if st.QuadCount != 2 {
		t.Errorf("QuadCount = %d, want 2", st.QuadCount)
	}
	if st.TextureCount < 2 {
		t.Errorf("TextureCount = %d, want the sheet bound next to the white texture", st.TextureCount)
	}
}

func TestShadeOf(t *testing.T) {
	inner := colors.Gray
	top, bottom := ShadeOf(inner, false)
	if !(top[0] > inner[0] && bottom[0] < inner[0]) {
		t.Errorf("ShadeOf(released) = %v, %v; want lighter top, darker bottom", top, bottom)
	}
	ptop, pbottom := ShadeOf(inner, true)
	if ptop != bottom || pbottom != top {
		t.Errorf("ShadeOf(pressed) = %v, %v; want the released blend flipped", ptop, pbottom)
	}
	if top[3] != 1 || bottom[3] != 1 {
		t.Errorf("ShadeOf changed alpha: %v, %v", top, bottom)
	}
}
