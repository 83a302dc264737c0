// Package engine runs the desktop WebGPU front end: a fixed-rate tick goroutine advancing the globe,
// a render goroutine drawing it, and the window message loop on the main thread feeding input.
package engine

import (
	"errors"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/Carmen-Shannon/oxy-globe/engine/gesture"
	"github.com/Carmen-Shannon/oxy-globe/engine/globe"
	"github.com/Carmen-Shannon/oxy-globe/engine/overlay"
	"github.com/Carmen-Shannon/oxy-globe/engine/profiler"
	"github.com/Carmen-Shannon/oxy-globe/engine/renderer"
	"github.com/Carmen-Shannon/oxy-globe/engine/window"
)

// DefaultWheelStep is the synthetic pinch distance, in pixels, for one wheel notch.
const DefaultWheelStep = 30.0

// engine implements the Engine interface.
// Coordinates tick, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration

	wg sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	errMu sync.Mutex
	err   error

	window   window.Window
	globe    globe.Globe
	renderer renderer.Renderer
	logger   *slog.Logger

	base           *image.RGBA
	label          *overlay.Label
	labelVersion   uint64
	textureVersion uint64
	textureLoaded  bool

	// pointerHeld is only touched on the window thread.
	pointerHeld bool
	wheelStep   float64

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate   time.Duration
	renderFrameLimit time.Duration
}

// Engine drives a globe in a desktop window.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Globe returns the globe being driven.
	//
	// Returns:
	//   - globe.Globe: the globe
	Globe() globe.Globe

	// SetTickRate sets how many times per second the orbit advances.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the tick and render goroutines and runs the window loop on the calling goroutine,
	// which must be the main thread. Blocks until the window closes or rendering fails.
	//
	// Returns:
	//   - error: the render failure that stopped the engine, nil on a normal close
	Run() error

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates an Engine for a window, a globe and a renderer drawing to that window.
//
// Parameters:
//   - w: the window, already open
//   - g: the globe
//   - r: the renderer bound to w's surface
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(w window.Window, g globe.Globe, r renderer.Renderer, options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		window:          w,
		globe:           g,
		renderer:        r,
		logger:          slog.Default(),
		wheelStep:       DefaultWheelStep,
		engineTickRate:  time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.base == nil {
		width, height := g.Annotator().Size()
		e.base = overlay.Graticule(width, height)
	}
	e.profiler = profiler.NewProfiler(e.logger, time.Second)

	w.SetResizeCallback(e.handleResize)
	w.SetPointerCallback(e.handlePointer)
	w.SetScrollCallback(e.handleScroll)
	w.SetUpdateCallback(e.handleWindowUpdate)
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Globe() globe.Globe {
	return e.globe
}

func (e *engine) Run() error {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()

	e.window.ProcessMessages()

	e.signalQuit()
	e.wg.Wait()
	e.renderer.Release()
	if err := e.window.Close(); err != nil {
		e.logger.Debug("window already closed", "error", err)
	}

	e.errMu.Lock()
	defer e.errMu.Unlock()
	return e.err
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// fail records the first fatal error and stops the engine.
func (e *engine) fail(err error) {
	e.errMu.Lock()
	if e.err == nil {
		e.err = err
	}
	e.errMu.Unlock()
	e.signalQuit()
}

// handleEngine advances the globe at the configured tick rate and listens for rate changes.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			e.globe.Tick()
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
		}
	}
}

// handleRender uploads the map texture whenever the marker layer changes and draws a frame per
// iteration. Recovers from panics and stops the engine with an error instead of crashing.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("render goroutine recovered from panic", "panic", r)
			e.fail(errors.New("render goroutine panicked"))
		}
	}()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
		}
		start := time.Now()

		if err := e.syncTexture(); err != nil {
			e.logger.Error("texture upload failed", "error", err)
			e.fail(err)
			return
		}
		if err := e.renderer.Draw(e.globe.Frame()); err != nil {
			e.logger.Error("draw failed", "error", err)
			e.fail(err)
			return
		}

		if e.profilingEnabled {
			e.profiler.Tick()
		}

		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

// syncTexture re-composites and uploads the globe texture when the annotator version moved.
func (e *engine) syncTexture() error {
	annotator := e.globe.Annotator()
	version := annotator.Version()
	if e.textureLoaded && version == e.textureVersion {
		return nil
	}
	composite := annotator.Composite(e.base)
	if err := e.renderer.UpdateTexture(common.NewTextureStagingData(composite)); err != nil {
		return err
	}
	e.textureVersion = version
	e.textureLoaded = true
	return nil
}

// handleWindowUpdate runs on the window thread each message loop iteration. It mirrors the pick
// label into the title bar and closes the window once the engine has quit.
func (e *engine) handleWindowUpdate() {
	select {
	case <-e.quitChannel:
		if err := e.window.Close(); err != nil {
			e.logger.Debug("window close failed", "error", err)
		}
		return
	default:
	}

	if e.label == nil {
		return
	}
	text, version := e.label.Text()
	if version == e.labelVersion {
		return
	}
	e.labelVersion = version
	title := e.window.Title()
	if text != "" {
		title += " | " + text
	}
	e.window.SetTitle(title)
}

func (e *engine) handleResize(width, height int) {
	e.globe.Resize(width, height)
	if err := e.renderer.Resize(width, height); err != nil {
		e.logger.Error("surface resize failed", "error", err, "width", width, "height", height)
		e.fail(err)
	}
}

func (e *engine) handlePointer(ev gesture.PointerEvent) {
	switch ev.Action {
	case gesture.ActionDown:
		e.pointerHeld = true
	case gesture.ActionUp:
		e.pointerHeld = false
	}
	e.globe.HandlePointer(ev)
}

// handleScroll replays a wheel notch as a pinch. It is dropped while the mouse button is held since
// the synthetic sequence would restart the drag in progress.
func (e *engine) handleScroll(delta float32, x, y float64) {
	if e.pointerHeld {
		return
	}
	for _, ev := range gesture.SyntheticPinch(x, y, float64(delta)*e.wheelStep) {
		e.globe.HandlePointer(ev)
	}
}

func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	// Replace any pending update rather than block.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
