// Package window opens the desktop window for the WebGPU backend and translates mouse input into
// globe pointer events.
package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-globe/engine/gesture"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and pointer input.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration on the window thread.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetPointerCallback sets the function receiving pointer events. The left mouse button acts as a
	// single touch pointer.
	//
	// Parameters:
	//   - callback: function receiving each pointer event in order
	SetPointerCallback(callback func(ev gesture.PointerEvent))

	// SetScrollCallback sets the callback for mouse wheel events.
	//
	// Parameters:
	//   - callback: function receiving the wheel delta (positive = up) and the cursor position
	SetScrollCallback(callback func(delta float32, x, y float64))

	// SetTitle replaces the window title. Must be called from the window thread, for example inside
	// the update callback.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// Title returns the title requested at construction.
	//
	// Returns:
	//   - string: the base title
	Title() string

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	minWidth, minHeight int
	width, height       int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// tracker turns mouse button state into pointer events for pointer 0.
	tracker gesture.Tracker

	onUpdate  func()
	onResize  func(width, height int)
	onPointer func(ev gesture.PointerEvent)
	onScroll  func(delta float32, x, y float64)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a Window with the specified options.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
//   - error: platform window creation failure
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "Globe",
		minWidth:  320,
		minHeight: 240,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetPointerCallback(callback func(ev gesture.PointerEvent)) {
	w.onPointer = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32, x, y float64)) {
	w.onScroll = callback
}

func (w *engineWindow) SetTitle(title string) {
	platformSetTitle(w, title)
}

func (w *engineWindow) Title() string {
	return w.title
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// mousePointer feeds the left button state through the tracker and forwards the resulting events.
// pressed reports whether the button is held after this input.
func (w *engineWindow) mousePointer(pressed bool, x, y float64) {
	var held []gesture.Pointer
	if pressed {
		held = []gesture.Pointer{{ID: 0, X: x, Y: y}}
	}
	for _, ev := range w.tracker.Update(held) {
		if w.onPointer != nil {
			w.onPointer(ev)
		}
	}
}
