package input

// Key is a virtual key code for cross-platform input handling.
// Values match GLFW key codes, which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

const (
	KeyW Key = 87 // W key (ASCII)
	KeyA Key = 65 // A key (ASCII)
	KeyS Key = 83 // S key (ASCII)
	KeyD Key = 68 // D key (ASCII)
	KeyQ Key = 81 // Q key (ASCII)
	KeyE Key = 69 // E key (ASCII)
	KeyF Key = 70 // F key (ASCII)
	KeyT Key = 84 // T key (ASCII)

	KeySpace Key = 32  // Spacebar (ASCII)
	KeyEsc   Key = 256 // Escape key (GLFW)

	KeyRight Key = 262 // Right arrow (GLFW)
	KeyLeft  Key = 263 // Left arrow (GLFW)
	KeyDown  Key = 264 // Down arrow (GLFW)
	KeyUp    Key = 265 // Up arrow (GLFW)

	KeyLeftShift   Key = 340 // Left shift (GLFW)
	KeyLeftControl Key = 341 // Left control (GLFW)
	KeyLeftAlt     Key = 342 // Left alt (GLFW)
)

// MouseButton is a mouse button code. Values match GLFW button codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Source provides polled access to current device state.
// All methods are synchronous reads with no side effects from the caller's
// perspective; they reflect external device state the caller does not own.
// A press and release occurring between two polls of the same frame is
// invisible - only the state at poll time is observed.
type Source interface {
	// IsKeyDown reports whether the given key is currently held down.
	//
	// Parameters:
	//   - key: the virtual key code to query
	//
	// Returns:
	//   - bool: true while the key is held
	IsKeyDown(key Key) bool

	// IsMouseButtonDown reports whether the given mouse button is currently held down.
	//
	// Parameters:
	//   - button: the mouse button to query
	//
	// Returns:
	//   - bool: true while the button is held
	IsMouseButtonDown(button MouseButton) bool

	// CursorPosition returns the current pointer position in window coordinates.
	//
	// Returns:
	//   - x, y: pointer position in pixels, origin at the top-left corner
	CursorPosition() (x, y float64)
}
