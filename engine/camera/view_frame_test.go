package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrameFromViewToWorldExtractsColumns(t *testing.T) {
	m := mgl32.Mat4FromCols(
		mgl32.Vec4{1, 0, 0, 0}, // right
		mgl32.Vec4{0, 1, 0, 0}, // up
		mgl32.Vec4{0, 0, 1, 0}, // backward
		mgl32.Vec4{4, 5, 6, 1}, // eye
	)

	frame := FrameFromViewToWorld(m)

	if frame.Left != (mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("Left = %v, want (-1, 0, 0)", frame.Left)
	}
	if frame.Up != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Up = %v, want (0, 1, 0)", frame.Up)
	}
	if frame.Front != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Front = %v, want (0, 0, -1)", frame.Front)
	}
	if frame.Eye != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("Eye = %v, want (4, 5, 6)", frame.Eye)
	}
}

func TestFrameFromViewToWorldDoesNotNormalize(t *testing.T) {
	// A scaled basis passes straight through; the extraction is a pure column
	// read with no normalization.
	m := mgl32.Mat4FromCols(
		mgl32.Vec4{2, 0, 0, 0},
		mgl32.Vec4{0, 3, 0, 0},
		mgl32.Vec4{0, 0, 4, 0},
		mgl32.Vec4{0, 0, 0, 1},
	)

	frame := FrameFromViewToWorld(m)

	if frame.Left != (mgl32.Vec3{-2, 0, 0}) {
		t.Errorf("Left = %v, want (-2, 0, 0)", frame.Left)
	}
	if frame.Up != (mgl32.Vec3{0, 3, 0}) {
		t.Errorf("Up = %v, want (0, 3, 0)", frame.Up)
	}
	if frame.Front != (mgl32.Vec3{0, 0, -4}) {
		t.Errorf("Front = %v, want (0, 0, -4)", frame.Front)
	}
}
