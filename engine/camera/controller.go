package camera

import (
	"github.com/JiriMyslikovjan/gltf-viewer/engine/input"
)

// Cursor-delta and key-step scale factors shared by the controllers.
const (
	// cursorRotateScale converts pointer pixels to radians for pan, tilt,
	// and orbit rotations.
	cursorRotateScale = 0.01

	// cursorPanScale converts pointer pixels to world units for trackball
	// pan and zoom.
	cursorPanScale = 0.01

	// rollStep is the fixed roll increment per polled frame while a roll key
	// is held. Not scaled by elapsed time.
	rollStep = 0.001

	// zoomEpsilon keeps the eye strictly short of the center when zooming in,
	// so the view vector can never collapse to zero length.
	zoomEpsilon = 1e-4
)

// Controller is the capability shared by all camera controllers. The host
// loop depends only on this interface, not on a concrete controller.
type Controller interface {
	// Update samples input, applies the resulting camera change, and reports
	// whether the camera changed this frame. Callers use the result to skip
	// redundant scene re-renders. Update is synchronous, non-blocking, and
	// must be called from a single goroutine.
	//
	// Parameters:
	//   - elapsedTime: seconds since the previous frame
	//
	// Returns:
	//   - bool: true if the camera changed
	Update(elapsedTime float32) bool
}

// dragTracker tracks press/release edges of one mouse button and produces
// frame-to-frame cursor deltas while the button is held.
//
// The stored cursor position is only meaningful between a press edge and the
// matching release edge; it is re-captured on the next press. The delta is
// zero whenever the button is not held, even if the pointer moved.
type dragTracker struct {
	button  input.MouseButton
	pressed bool
	lastX   float64
	lastY   float64
}

// cursorDelta advances the edge-tracking state machine one frame and returns
// the pointer delta since the previous frame of the current drag. On the
// press-edge frame the baseline is captured from the current pointer
// position, so that frame's delta is zero regardless of motion that happened
// before the press.
func (d *dragTracker) cursorDelta(src input.Source) (dx, dy float64) {
	down := src.IsMouseButtonDown(d.button)
	if down && !d.pressed {
		d.pressed = true
		d.lastX, d.lastY = src.CursorPosition()
	} else if !down && d.pressed {
		d.pressed = false
	}

	if !d.pressed {
		return 0, 0
	}

	x, y := src.CursorPosition()
	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	return dx, dy
}
