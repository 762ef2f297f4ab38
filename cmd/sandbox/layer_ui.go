package main

import (
	"log"

	"github.com/hubastard/oui/engine/assets"
	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/core"
	"github.com/hubastard/oui/engine/demo"
	"github.com/hubastard/oui/engine/gfx/renderer2d"
	"github.com/hubastard/oui/engine/profiler"
	"github.com/hubastard/oui/engine/scene"
	"github.com/hubastard/oui/engine/scratch"
	"github.com/hubastard/oui/engine/text"
	"github.com/hubastard/oui/engine/theme"
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/uifile"
	"github.com/hubastard/oui/engine/widget"
)

// LayerUI rebuilds, lays out and paints the demo tree every frame.
type LayerUI struct {
	cam     *scene.ScreenCamera
	pan     *scene.PanController2D
	r2d     *renderer2d.Renderer2D
	painter *theme.Painter
	scene   *demo.Scene
	// document reloaded with Ctrl+R, empty for the built-in demo
	layout string
	scale  float32
	stats  renderer2d.Statistics
}

func NewLayerUI(cfg core.UIConfig, r core.Renderer, r2d *renderer2d.Renderer2D, font *text.Font, buf *scratch.Buffer) (*LayerUI, error) {
	var doc *uifile.Document
	if cfg.Layout != "" {
		var err error
		if doc, err = uifile.Load(cfg.Layout); err != nil {
			return nil, err
		}
	}
	icons, err := loadIcons(r, cfg.Icons)
	if err != nil {
		return nil, err
	}
	painter := theme.New(r2d, font, colors.DefaultPalette(), buf)
	painter.SetIcons(icons)

	b := widget.NewBuilder(ui.New[widget.Widget](cfg.Capacity), log.Default())
	return &LayerUI{
		r2d:     r2d,
		painter: painter,
		scene:   demo.NewScene(b, doc),
		layout:  cfg.Layout,
		scale:   cfg.Scale,
	}, nil
}

// loadIcons uploads the sheet at path, or a stand-in sheet when path is empty.
func loadIcons(r core.Renderer, path string) (*theme.IconSheet, error) {
	if path == "" {
		img := theme.DrawIconSheet(16, 16)
		return theme.UploadIconSheet(r, img.Rect.Dx(), img.Rect.Dy(), img.Pix)
	}
	w, h, pix, err := assets.LoadPNG(path)
	if err != nil {
		return nil, err
	}
	return theme.UploadIconSheet(r, w, h, pix)
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewScreen2D(w, h)
	l.cam.SetScale(l.scale)
	l.pan = scene.NewPanController2D(l.cam)
}

func (l *LayerUI) OnDetach(e *core.Engine) {}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {
	l.pan.Update(e, float32(dt))
}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	renderEnd := profiler.Start("LayerUI.OnRender")
	defer renderEnd()

	// the cursor is in framebuffer pixels; the tree is laid out in layout pixels
	ctx := l.scene.Context()
	e.Input.Apply(ctx)
	c := ctx.Cursor()
	ctx.SetCursor(l.cam.ToContent(c.X, c.Y))

	frameEnd := profiler.Start("ui.frame")
	err := l.scene.Frame()
	frameEnd()
	if err != nil {
		log.Printf("ui: %v", err)
		e.Window.RequestClose()
		return
	}
	root := ctx.Rect(ctx.Root())
	l.pan.SetContentSize(root.X+root.W, root.Y+root.H)

	l.r2d.BeginScene(l.cam.VP())
	paintEnd := profiler.Start("paint")
	l.painter.Paint(ctx)
	paintEnd()
	l.r2d.EndScene()
	l.stats = l.r2d.Stats()
}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyR && (v.Mods&core.ModCtrl) != 0 {
			l.reload()
			return true
		}
	}
	return l.pan.HandleEvent(ev)
}

// reload swaps in the layout document again; a broken document keeps the
// current one.
func (l *LayerUI) reload() {
	if l.layout == "" {
		return
	}
	doc, err := uifile.Load(l.layout)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	l.scene.Doc = doc
	log.Printf("reloaded %s", l.layout)
}
