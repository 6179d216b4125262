package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func assertOrthonormal(t *testing.T, cam Camera) {
	t.Helper()
	left, up, front := cam.Left(), cam.Up(), cam.Front()

	const tol = 1e-5
	if !approxEqual(left.Len(), 1, tol) || !approxEqual(up.Len(), 1, tol) || !approxEqual(front.Len(), 1, tol) {
		t.Errorf("basis not unit length: |left|=%v |up|=%v |front|=%v", left.Len(), up.Len(), front.Len())
	}
	if !approxEqual(left.Dot(up), 0, tol) || !approxEqual(left.Dot(front), 0, tol) || !approxEqual(up.Dot(front), 0, tol) {
		t.Errorf("basis not orthogonal: l·u=%v l·f=%v u·f=%v", left.Dot(up), left.Dot(front), up.Dot(front))
	}
}

func TestNewCameraDerivesCanonicalFrame(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	const tol = 1e-6
	if !vec3ApproxEqual(cam.Front(), mgl32.Vec3{0, 0, -1}, tol) {
		t.Errorf("front = %v, want (0, 0, -1)", cam.Front())
	}
	if !vec3ApproxEqual(cam.Left(), mgl32.Vec3{-1, 0, 0}, tol) {
		t.Errorf("left = %v, want (-1, 0, 0)", cam.Left())
	}
	if !vec3ApproxEqual(cam.Up(), mgl32.Vec3{0, 1, 0}, tol) {
		t.Errorf("up = %v, want (0, 1, 0)", cam.Up())
	}
	assertOrthonormal(t, cam)
}

func TestMoveLocalTranslatesEyeAndCenterTogether(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	cam.MoveLocal(1, 2, 3)

	const tol = 1e-5
	// left=(-1,0,0), up=(0,1,0), front=(0,0,-1)
	if !vec3ApproxEqual(cam.Eye(), mgl32.Vec3{-1, 2, 2}, tol) {
		t.Errorf("eye = %v, want (-1, 2, 2)", cam.Eye())
	}
	if !vec3ApproxEqual(cam.Center(), mgl32.Vec3{-1, 2, -3}, tol) {
		t.Errorf("center = %v, want (-1, 2, -3)", cam.Center())
	}
	// Direction unchanged by a local translation.
	if !vec3ApproxEqual(cam.Front(), mgl32.Vec3{0, 0, -1}, tol) {
		t.Errorf("front = %v, want (0, 0, -1)", cam.Front())
	}
}

func TestRotateLocalTiltDownLowersFront(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	cam.RotateLocal(0, 0.5, 0)

	if cam.Front().Y() >= 0 {
		t.Errorf("front.y = %v, want < 0 after tilting down", cam.Front().Y())
	}
	if !vec3ApproxEqual(cam.Eye(), mgl32.Vec3{0, 0, 5}, 1e-6) {
		t.Errorf("eye moved during a pure rotation: %v", cam.Eye())
	}
	assertOrthonormal(t, cam)
}

func TestRotateWorldYawKeepsEyeFixed(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	cam.RotateWorld(0.3, mgl32.Vec3{0, 1, 0})

	if !vec3ApproxEqual(cam.Eye(), mgl32.Vec3{0, 0, 5}, 1e-6) {
		t.Errorf("eye moved during world yaw: %v", cam.Eye())
	}
	// Yaw about world up keeps front level.
	if !approxEqual(cam.Front().Y(), 0, 1e-5) {
		t.Errorf("front.y = %v, want 0 after yaw about world up", cam.Front().Y())
	}
	assertOrthonormal(t, cam)
}

func TestBasisStaysOrthonormalUnderRepeatedRotation(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{3, 2, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	for i := 0; i < 2000; i++ {
		cam.RotateLocal(0.003, 0.002, 0)
		cam.RotateWorld(-0.004, mgl32.Vec3{0, 1, 0})
	}

	assertOrthonormal(t, cam)
}

func TestResetRebuildsFrameWholesale(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	// Put some roll on the frame, then Reset; the rebuilt frame must be
	// derived purely from (eye, center, worldUp), with the roll gone.
	cam.RotateLocal(0.7, 0, 0)
	cam.Reset(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	const tol = 1e-6
	if !vec3ApproxEqual(cam.Up(), mgl32.Vec3{0, 1, 0}, tol) {
		t.Errorf("up = %v, want (0, 1, 0) after reconstruction", cam.Up())
	}
	assertOrthonormal(t, cam)
}

func TestViewToWorldMatrixRoundTripsThroughViewFrame(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{-2, 0, 4}, mgl32.Vec3{0, 1, 0})

	frame := FrameFromViewToWorld(cam.ViewToWorldMatrix())

	const tol = 1e-6
	if !vec3ApproxEqual(frame.Left, cam.Left(), tol) {
		t.Errorf("frame.Left = %v, want %v", frame.Left, cam.Left())
	}
	if !vec3ApproxEqual(frame.Up, cam.Up(), tol) {
		t.Errorf("frame.Up = %v, want %v", frame.Up, cam.Up())
	}
	if !vec3ApproxEqual(frame.Front, cam.Front(), tol) {
		t.Errorf("frame.Front = %v, want %v", frame.Front, cam.Front())
	}
	if !vec3ApproxEqual(frame.Eye, cam.Eye(), tol) {
		t.Errorf("frame.Eye = %v, want %v", frame.Eye, cam.Eye())
	}
}
