package window

import (
	"fmt"
	"runtime"
	"time"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/JiriMyslikovjan/gltf-viewer/engine/input"
	"github.com/JiriMyslikovjan/gltf-viewer/engine/profiler"
)

// Window provides platform windowing and polled input access for the viewer.
// It implements input.Source, so camera controllers can be constructed
// directly on top of it. Rendering is left to the host: the window only hands
// out a surface descriptor for whatever renderer the host attaches.
type Window interface {
	input.Source

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up, negative = down)
	SetScrollCallback(callback func(delta float32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating
	// a WebGPU surface. The descriptor is platform-appropriate (Windows HWND,
	// X11 Xlib, Wayland, macOS Metal, etc.) and is created by the wgpuglfw
	// bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
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

	// Run drives the frame loop until the window closes. Each iteration polls
	// pending window events, then calls the frame callback with the elapsed
	// time since the previous frame. The callback reports whether the camera
	// changed, which feeds the optional profiler's redraw statistics.
	// Must be called from the main goroutine.
	//
	// Parameters:
	//   - frame: per-frame callback receiving elapsed seconds, returning whether a redraw is needed
	Run(frame func(elapsedTime float32) bool)

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

// viewerWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type viewerWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height track the current framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	onScroll func(delta float32)

	// prof, when non-nil, receives one Tick per frame from Run.
	prof *profiler.Profiler
}

var _ Window = &viewerWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &viewerWindow{
		title:  "glTF Viewer",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *viewerWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *viewerWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *viewerWindow) IsKeyDown(key input.Key) bool {
	return platformIsKeyDown(w, key)
}

func (w *viewerWindow) IsMouseButtonDown(button input.MouseButton) bool {
	return platformIsMouseButtonDown(w, button)
}

func (w *viewerWindow) CursorPosition() (x, y float64) {
	return platformCursorPosition(w)
}

func (w *viewerWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *viewerWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *viewerWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *viewerWindow) Run(frame func(elapsedTime float32) bool) {
	lastTime := time.Now()
	for w.IsRunning() {
		if succ := platformPollEvents(w); !succ {
			break
		}

		now := time.Now()
		elapsed := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		changed := frame(elapsed)
		if w.prof != nil {
			w.prof.Tick(changed)
		}

		runtime.Gosched()
	}
}

func (w *viewerWindow) Width() int {
	return w.width
}

func (w *viewerWindow) Height() int {
	return w.height
}
