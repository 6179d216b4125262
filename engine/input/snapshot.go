package input

// Snapshot is a value capture of polled input state. It implements Source, so
// several controllers can share a single device poll per frame instead of each
// re-querying the device. Keys and buttons not captured read as up.
type Snapshot struct {
	keys    map[Key]bool
	buttons map[MouseButton]bool
	cursorX float64
	cursorY float64
}

var _ Source = Snapshot{}

// TakeSnapshot polls the given source once for the listed keys and buttons plus
// the cursor position, and returns an immutable capture of the results.
//
// Parameters:
//   - src: the live source to poll
//   - keys: keys to capture
//   - buttons: mouse buttons to capture
//
// Returns:
//   - Snapshot: the captured state
func TakeSnapshot(src Source, keys []Key, buttons []MouseButton) Snapshot {
	s := Snapshot{
		keys:    make(map[Key]bool, len(keys)),
		buttons: make(map[MouseButton]bool, len(buttons)),
	}
	for _, k := range keys {
		s.keys[k] = src.IsKeyDown(k)
	}
	for _, b := range buttons {
		s.buttons[b] = src.IsMouseButtonDown(b)
	}
	s.cursorX, s.cursorY = src.CursorPosition()
	return s
}

func (s Snapshot) IsKeyDown(key Key) bool {
	return s.keys[key]
}

func (s Snapshot) IsMouseButtonDown(button MouseButton) bool {
	return s.buttons[button]
}

func (s Snapshot) CursorPosition() (x, y float64) {
	return s.cursorX, s.cursorY
}
