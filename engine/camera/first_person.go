package camera

import (
	"github.com/JiriMyslikovjan/gltf-viewer/engine/input"
)

// KeyMap binds keys to the first-person movement intents.
type KeyMap struct {
	DollyIn      input.Key
	DollyOut     input.Key
	TruckLeft    input.Key
	TruckRight   input.Key
	PedestalUp   input.Key
	PedestalDown input.Key
	RollLeft     input.Key
	RollRight    input.Key
}

// firstPersonController interprets input as fly-through navigation: held keys
// drive local strafe/dolly/pedestal motion and roll, pointer drags drive
// local tilt and a world-space yaw about the configured up axis.
type firstPersonController struct {
	cam Camera
	src input.Source
	cfg controllerConfig

	drag dragTracker
}

var _ Controller = &firstPersonController{}

// NewFirstPersonController creates a first-person (free-fly) controller
// driving the given camera from the given input source.
//
// Parameters:
//   - cam: the camera to drive
//   - src: polled input state
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewFirstPersonController(cam Camera, src input.Source, options ...ControllerOption) Controller {
	cfg := defaultControllerConfig()
	for _, option := range options {
		option(&cfg)
	}
	return &firstPersonController{
		cam:  cam,
		src:  src,
		cfg:  cfg,
		drag: dragTracker{button: cfg.dragButton},
	}
}

func (fp *firstPersonController) Update(elapsedTime float32) bool {
	dx, dy := fp.drag.cursorDelta(fp.src)

	// Held keys contribute every frame they are down; this is level-triggered
	// polling, not edge-triggered events.
	var truckLeft, pedestalUp, dollyIn, rollRightAngle float32
	step := fp.cfg.speed * elapsedTime

	if fp.src.IsKeyDown(fp.cfg.keys.DollyIn) {
		dollyIn += step
	}
	if fp.src.IsKeyDown(fp.cfg.keys.DollyOut) {
		dollyIn -= step
	}
	if fp.src.IsKeyDown(fp.cfg.keys.TruckLeft) {
		truckLeft += step
	}
	if fp.src.IsKeyDown(fp.cfg.keys.TruckRight) {
		truckLeft -= step
	}
	if fp.src.IsKeyDown(fp.cfg.keys.PedestalUp) {
		pedestalUp += step
	}
	if fp.src.IsKeyDown(fp.cfg.keys.PedestalDown) {
		pedestalUp -= step
	}
	if fp.src.IsKeyDown(fp.cfg.keys.RollLeft) {
		rollRightAngle -= rollStep
	}
	if fp.src.IsKeyDown(fp.cfg.keys.RollRight) {
		rollRightAngle += rollStep
	}

	// Rightward pointer motion yaws the view left and downward motion tilts
	// it down: grab-and-drag semantics, so the pan axis inverts the raw
	// screen delta.
	panLeftAngle := -cursorRotateScale * float32(dx)
	tiltDownAngle := cursorRotateScale * float32(dy)

	hasMoved := truckLeft != 0 || pedestalUp != 0 || dollyIn != 0 ||
		rollRightAngle != 0 || panLeftAngle != 0 || tiltDownAngle != 0
	if !hasMoved {
		return false
	}

	// Order matters: the local translation is evaluated in the pre-rotation
	// frame, and local roll/tilt precede the world-frame yaw.
	if truckLeft != 0 || pedestalUp != 0 || dollyIn != 0 {
		fp.cam.MoveLocal(truckLeft, pedestalUp, dollyIn)
	}
	if rollRightAngle != 0 || tiltDownAngle != 0 {
		fp.cam.RotateLocal(rollRightAngle, tiltDownAngle, 0)
	}
	if panLeftAngle != 0 {
		fp.cam.RotateWorld(panLeftAngle, fp.cfg.worldUp)
	}

	return true
}
