package window

import "github.com/JiriMyslikovjan/gltf-viewer/engine/profiler"

// WindowBuilderOption is a functional option for configuring a viewerWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *viewerWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *viewerWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *viewerWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *viewerWindow) {
		w.height = height
	}
}

// WithProfiling attaches a frame profiler to the window's Run loop, logging
// FPS and redraw statistics once per second.
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithProfiling() WindowBuilderOption {
	return func(w *viewerWindow) {
		w.prof = profiler.NewProfiler()
	}
}
