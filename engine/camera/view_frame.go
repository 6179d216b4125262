package camera

import "github.com/go-gl/mathgl/mgl32"

// ViewFrame is an orthonormal camera basis (left, up, front) plus an eye
// position, all in world space.
type ViewFrame struct {
	Left  mgl32.Vec3
	Up    mgl32.Vec3
	Front mgl32.Vec3
	Eye   mgl32.Vec3
}

// FrameFromViewToWorld extracts a ViewFrame from a view-to-world transform:
// left is the negated first basis column, up the second column, front the
// negated third column, and eye the translation column. No normalization is
// performed; the transform is assumed already orthonormal.
//
// Parameters:
//   - viewToWorld: column-major view-to-world transform
//
// Returns:
//   - ViewFrame: the extracted frame
func FrameFromViewToWorld(viewToWorld mgl32.Mat4) ViewFrame {
	return ViewFrame{
		Left:  viewToWorld.Col(0).Vec3().Mul(-1),
		Up:    viewToWorld.Col(1).Vec3(),
		Front: viewToWorld.Col(2).Vec3().Mul(-1),
		Eye:   viewToWorld.Col(3).Vec3(),
	}
}
