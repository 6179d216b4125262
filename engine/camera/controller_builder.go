package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/JiriMyslikovjan/gltf-viewer/engine/input"
)

// controllerConfig holds the settings shared by both controller
// implementations. Each field is constant for the controller's lifetime.
// Settings that do not apply to a given controller are ignored by it.
type controllerConfig struct {
	speed      float32
	worldUp    mgl32.Vec3
	dragButton input.MouseButton

	// First-person key bindings.
	keys KeyMap

	// Trackball mode modifiers.
	panModifier  input.Key
	zoomModifier input.Key
}

// defaultControllerConfig returns the settings both controllers start from.
func defaultControllerConfig() controllerConfig {
	return controllerConfig{
		speed:      1.0,
		worldUp:    mgl32.Vec3{0, 1, 0},
		dragButton: input.MouseButtonMiddle,
		keys: KeyMap{
			DollyIn:      input.KeyW,
			DollyOut:     input.KeyS,
			TruckLeft:    input.KeyA,
			TruckRight:   input.KeyD,
			PedestalUp:   input.KeyUp,
			PedestalDown: input.KeyDown,
			RollLeft:     input.KeyQ,
			RollRight:    input.KeyE,
		},
		panModifier:  input.KeyLeftShift,
		zoomModifier: input.KeyLeftControl,
	}
}

// ControllerOption is a functional option for configuring a camera controller.
type ControllerOption func(*controllerConfig)

// WithSpeed sets the translation speed in world units per second.
// Used by the first-person controller's key-driven motion.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - ControllerOption: functional option to set the speed
func WithSpeed(speed float32) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.speed = speed
	}
}

// WithWorldUpAxis sets the fixed world up axis used for world-space yaw and
// for completing the basis on camera reconstruction.
//
// Parameters:
//   - axis: world up axis (must be unit length)
//
// Returns:
//   - ControllerOption: functional option to set the world up axis
func WithWorldUpAxis(axis mgl32.Vec3) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.worldUp = axis
	}
}

// WithDragButton sets the mouse button whose drags drive pointer motion.
//
// Parameters:
//   - button: the button to track
//
// Returns:
//   - ControllerOption: functional option to set the drag button
func WithDragButton(button input.MouseButton) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.dragButton = button
	}
}

// WithKeyMap sets the first-person movement key bindings.
//
// Parameters:
//   - keys: the full key binding set
//
// Returns:
//   - ControllerOption: functional option to set the key bindings
func WithKeyMap(keys KeyMap) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.keys = keys
	}
}

// WithPanModifier sets the key that switches the trackball into pan mode
// while held.
//
// Parameters:
//   - key: the pan modifier key
//
// Returns:
//   - ControllerOption: functional option to set the pan modifier
func WithPanModifier(key input.Key) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.panModifier = key
	}
}

// WithZoomModifier sets the key that switches the trackball into zoom mode
// while held together with the drag button.
//
// Parameters:
//   - key: the zoom modifier key
//
// Returns:
//   - ControllerOption: functional option to set the zoom modifier
func WithZoomModifier(key input.Key) ControllerOption {
	return func(cfg *controllerConfig) {
		cfg.zoomModifier = key
	}
}
