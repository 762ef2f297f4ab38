package main

import (
	"log"

	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/core"
	"github.com/hubastard/oui/engine/gfx/renderer2d"
	"github.com/hubastard/oui/engine/profiler"
	"github.com/hubastard/oui/engine/scene"
	"github.com/hubastard/oui/engine/scratch"
	"github.com/hubastard/oui/engine/text"
)

const (
	debugWidth   = 260
	debugPadding = 12
)

// LayerDebug overlays frame, renderer and UI statistics on the right edge.
type LayerDebug struct {
	cam           *scene.ScreenCamera
	r2d           *renderer2d.Renderer2D
	font          *text.Font
	scratch       *scratch.Buffer
	ui            *LayerUI
	frameDuration float32
	tick          int
	phases        []profiler.Phase
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewScreen2D(w, h)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	scopeRender := profiler.Start("LayerDebug.OnRender")
	defer scopeRender()

	buf := l.scratch
	ctx := l.ui.scene.Context()
	stats := l.ui.stats
	fps := float32(0)
	if l.frameDuration > 0 {
		fps = 1000 / l.frameDuration
	}

	type line struct {
		s      string
		header bool
	}
	lines := []line{
		{buf.Sprintf("Frame: %d", l.tick), true},
		{buf.Sprintf("  %.3f ms (%.2f FPS)", l.frameDuration, fps), false},
		{"2D Renderer", true},
		{buf.Sprintf("  Draw Calls: %d", stats.DrawCalls), false},
		{buf.Sprintf("  Quads: %d", stats.QuadCount), false},
		{buf.Sprintf("  Vertices: %d", stats.TotalVertexCount()), false},
		{buf.Sprintf("  Textures: %d", stats.TextureCount), false},
		{"UI", true},
		{buf.Sprintf("  Items: %d", ctx.Count()), false},
		{buf.Sprintf("  Hot: %s", ctx.HotItem()), false},
		{buf.Sprintf("  Active: %s", ctx.ActiveItem()), false},
		{"Phases", true},
	}
	l.phases = profiler.Phases(l.phases[:0])
	for _, p := range l.phases {
		ms := float32(p.Avg.Microseconds()) / 1000
		lines = append(lines, line{buf.Sprintf("  %s: %.3f ms", p.Name, ms), false})
	}
	lines = append(lines, []line{
		{"Memory", true},
		{buf.Sprintf("  Usage: %.3f MB", float32(profiler.MemoryUsage())/(1<<20)), false},
		{buf.Sprintf("  Allocs: %d", profiler.MemoryAllocs()), false},
		{buf.Sprintf("  Goroutines: %d", profiler.NumGoroutine()), false},
		{buf.Sprintf("  CPUs: %d", profiler.NumCPU()), false},
		{"GPU", true},
		{buf.Sprintf("  %s", e.Renderer.GPURenderer()), false},
		{buf.Sprintf("  %s", e.Renderer.GPUVersion()), false},
	}...)

	lh := text.LineHeight(l.font)
	x := l.cam.Width() - debugWidth
	y := float32(debugPadding)
	h := lh*float32(len(lines)) + 2*debugPadding

	l.r2d.BeginScene(l.cam.VP())
	l.r2d.DrawRect(x, 0, debugWidth, h, colors.Black.WithAlpha(0.5))
	for _, ln := range lines {
		c := colors.White
		if ln.header {
			c = colors.Yellow
		}
		text.DrawText(l.r2d, l.font, x+debugPadding, y, ln.s, c)
		y += lh
	}
	l.r2d.EndScene()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.OpenProfilerGraph(); err == nil {
				log.Println("speedscope dump:", path)
			} else {
				log.Println("profiler dump error:", err)
			}
			return true
		}
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}
