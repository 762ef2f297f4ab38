package main

import (
	"flag"
	"log"
	"time"

	"github.com/hubastard/oui/engine/assets"
	"github.com/hubastard/oui/engine/core"
	glbackend "github.com/hubastard/oui/engine/gfx/gl"
	"github.com/hubastard/oui/engine/gfx/renderer2d"
	"github.com/hubastard/oui/engine/platform"
	"github.com/hubastard/oui/engine/profiler"
	"github.com/hubastard/oui/engine/scratch"
	"github.com/hubastard/oui/engine/text"
)

type App struct {
	lastFrame  time.Time
	tick       int
	r2d        *renderer2d.Renderer2D
	font       *text.Font
	scratch    *scratch.Buffer
	layer      *LayerUI
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(e.Config.ProfilerCapacity)

	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		log.Fatal(err)
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		log.Fatal(err)
	}

	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 10000)
	if err != nil {
		log.Fatal(err)
	}

	a.font, err = text.LoadFont(e.Renderer, e.Config.UI.Font, e.Config.UI.FontSize)
	if err != nil {
		log.Fatal(err)
	}

	a.scratch = scratch.New(e.Config.ScratchCapacity)
	a.scratch.Logger = log.Default()

	a.layer, err = NewLayerUI(e.Config.UI, e.Renderer, a.r2d, a.font, a.scratch)
	if err != nil {
		log.Fatal(err)
	}
	e.PushLayer(a.layer)

	a.debugLayer = &LayerDebug{r2d: a.r2d, font: a.font, scratch: a.scratch, ui: a.layer}
	e.PushLayer(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	// Calculate frame duration
	now := time.Now()
	if a.debugLayer != nil && !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

// OnRender starts a fresh label buffer; the layers render after it.
func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.scratch.Reset()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	a.font.Close()
}

func main() {
	configPath := flag.String("config", "oui.yaml", "engine config file")
	layoutPath := flag.String("layout", "", "tree document to build instead of the built-in demo")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	}
	if *layoutPath != "" {
		cfg.UI.Layout = *layoutPath
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
