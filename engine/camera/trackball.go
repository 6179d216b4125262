package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/JiriMyslikovjan/gltf-viewer/engine/input"
)

// trackballMode identifies which of the mutually exclusive trackball modes is
// active for the current frame.
type trackballMode int

const (
	modeOrbit trackballMode = iota
	modePan
	modeZoom
)

// trackballController interprets input as orbit/pan/zoom around the camera's
// look-at center. Exactly one mode runs per frame, selected from the
// currently held modifier keys.
//
// Pan uses an incremental local translation. Zoom and orbit recompute the eye
// from the center and rebuild the camera wholesale instead of chaining
// rotations onto the existing frame, so repeated small steps cannot
// accumulate orthonormality drift over a long session.
type trackballController struct {
	cam Camera
	src input.Source
	cfg controllerConfig

	drag dragTracker
}

var _ Controller = &trackballController{}

// NewTrackballController creates a trackball (orbit) controller driving the
// given camera from the given input source.
//
// Parameters:
//   - cam: the camera to drive
//   - src: polled input state
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewTrackballController(cam Camera, src input.Source, options ...ControllerOption) Controller {
	cfg := defaultControllerConfig()
	for _, option := range options {
		option(&cfg)
	}
	return &trackballController{
		cam:  cam,
		src:  src,
		cfg:  cfg,
		drag: dragTracker{button: cfg.dragButton},
	}
}

func (tc *trackballController) Update(elapsedTime float32) bool {
	dx, dy := tc.drag.cursorDelta(tc.src)

	switch tc.resolveMode() {
	case modePan:
		return tc.pan(dx, dy)
	case modeZoom:
		return tc.zoom(dx)
	default:
		return tc.orbit(dx, dy)
	}
}

// resolveMode selects the frame's mode from held modifier keys, in priority
// order: pan beats zoom beats orbit. Pan needs only its modifier; zoom needs
// its modifier plus the drag button currently held; orbit is the default.
// Must run after the drag tracker has observed this frame's button state.
func (tc *trackballController) resolveMode() trackballMode {
	if tc.src.IsKeyDown(tc.cfg.panModifier) {
		return modePan
	}
	if tc.src.IsKeyDown(tc.cfg.zoomModifier) && tc.drag.pressed {
		return modeZoom
	}
	return modeOrbit
}

// pan translates the camera in its own left/up plane.
func (tc *trackballController) pan(dx, dy float64) bool {
	truckLeft := cursorPanScale * float32(dx)
	pedestalUp := cursorPanScale * float32(dy)

	if truckLeft == 0 && pedestalUp == 0 {
		return false
	}

	tc.cam.MoveLocal(truckLeft, pedestalUp, 0)
	return true
}

// zoom translates the eye along the view vector toward or away from the
// center. Movement toward the center is clamped so the eye stays strictly
// short of it; movement away is unbounded.
func (tc *trackballController) zoom(dx float64) bool {
	offset := cursorPanScale * float32(dx)
	if offset == 0 {
		return false
	}

	eye := tc.cam.Eye()
	center := tc.cam.Center()
	viewVector := center.Sub(eye)
	viewLen := viewVector.Len()

	if limit := viewLen - zoomEpsilon; offset > 0 && offset > limit {
		offset = limit
	}

	front := viewVector.Mul(1 / viewLen)
	newEye := eye.Add(front.Mul(offset))
	tc.cam.Reset(newEye, center, tc.cfg.worldUp)
	return true
}

// orbit rotates the eye around the center: vertical orbit about the camera's
// current left axis, then horizontal orbit about the world up axis, both as
// pure direction rotations applied to the depth axis.
func (tc *trackballController) orbit(dx, dy float64) bool {
	longitudeAngle := cursorRotateScale * float32(dy)
	latitudeAngle := -cursorRotateScale * float32(dx)

	if longitudeAngle == 0 && latitudeAngle == 0 {
		return false
	}

	center := tc.cam.Center()
	depthAxis := tc.cam.Eye().Sub(center)

	longitudeRot := mgl32.HomogRotate3D(longitudeAngle, tc.cam.Left())
	depthAxis = longitudeRot.Mul4x1(depthAxis.Vec4(0)).Vec3()

	latitudeRot := mgl32.HomogRotate3D(latitudeAngle, tc.cfg.worldUp)
	depthAxis = latitudeRot.Mul4x1(depthAxis.Vec4(0)).Vec3()

	tc.cam.Reset(center.Add(depthAxis), center, tc.cfg.worldUp)
	return true
}
