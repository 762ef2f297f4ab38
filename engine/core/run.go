package core

import (
	"log"
	"runtime"
	"time"
)

const (
	tick = time.Second / 60
	// updates run per frame at most; the rest of a stall is dropped
	maxSteps = 10
	// an idle loop still wakes this often
	idleWake = 250 * time.Millisecond
)

// Run opens the window and renderer and drives app and its layers until the
// window closes: fixed 60 Hz updates, then one render per loop turn. With
// cfg.Idle set the loop sleeps until input arrives.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// GL contexts belong to the main OS thread
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), Config: cfg, start: time.Now()}
	eng.fitViewport()
	win.SetEventCallback(func(ev Event) { eng.handle(app, ev) })

	app.OnStart(eng)
	clk := clock{prev: time.Now()}
	c := cfg.ClearColor
	for !win.ShouldClose() {
		if cfg.Idle {
			win.WaitEvents(idleWake)
		} else {
			win.PollEvents()
		}

		steps, alpha := clk.advance(time.Now())
		dt := tick.Seconds()
		for i := 0; i < steps; i++ {
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
		}

		rend.Clear(c[0], c[1], c[2], c[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		win.SwapBuffers()
	}

	for eng.Layers.Len() > 0 {
		eng.PopLayer()
	}
	app.OnShutdown(eng)
	log.Println("engine exit")
	return nil
}

// handle feeds ev to the input state, then to the layers from the top, then
// to the app if no layer took it.
func (e *Engine) handle(app App, ev Event) {
	e.Input.Handle(ev)
	if _, ok := ev.(EventResize); ok {
		e.fitViewport()
	}
	if !e.Layers.Dispatch(e, ev) {
		app.OnEvent(e, ev)
	}
}

// fitViewport resizes the renderer to the framebuffer and maps window units
// to framebuffer pixels. A minimised window keeps the old state.
func (e *Engine) fitViewport() {
	fw, fh := e.Window.FramebufferSize()
	ww, wh := e.Window.WindowSize()
	if fw < 1 || fh < 1 || ww < 1 || wh < 1 {
		return
	}
	e.Renderer.Resize(fw, fh)
	e.Input.SetScale(float64(fw)/float64(ww), float64(fh)/float64(wh))
}

// clock turns wall time into whole ticks plus the fraction of the next one.
type clock struct {
	prev  time.Time
	accum time.Duration
}

func (c *clock) advance(now time.Time) (steps int, alpha float64) {
	c.accum += now.Sub(c.prev)
	c.prev = now
	for c.accum >= tick && steps < maxSteps {
		c.accum -= tick
		steps++
	}
	if steps == maxSteps {
		c.accum = 0
	}
	return steps, float64(c.accum) / float64(tick)
}
