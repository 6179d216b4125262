package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// cameraImpl is the single implementation of Camera.
// Pose is stored as an eye position, a look-at center, and an orthonormal
// basis (left, up, front). The basis is re-derived wholesale by Reset and
// kept orthonormal by every mutator.
type cameraImpl struct {
	mu *sync.Mutex

	eye    mgl32.Vec3
	center mgl32.Vec3

	// Orthonormal view basis in world space.
	left  mgl32.Vec3
	up    mgl32.Vec3
	front mgl32.Vec3
}

// Camera defines the interface for a look-at camera pose.
// Mutators keep the basis orthonormal; callers never hand-edit the frame.
// The camera is safe to share between a tick thread mutating the pose and a
// render thread reading matrices.
type Camera interface {
	// Eye returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space eye position
	Eye() mgl32.Vec3

	// Center returns the world-space look-at target.
	//
	// Returns:
	//   - mgl32.Vec3: world-space center position
	Center() mgl32.Vec3

	// Left returns the camera's unit left vector in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit left axis
	Left() mgl32.Vec3

	// Up returns the camera's unit up vector in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit up axis
	Up() mgl32.Vec3

	// Front returns the camera's unit front (viewing direction) vector in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit front axis
	Front() mgl32.Vec3

	// MoveLocal translates the camera along its own axes. Both eye and center
	// move by the same offset, so the viewing direction is unchanged.
	//
	// Parameters:
	//   - truckLeft: translation along the local left axis
	//   - pedestalUp: translation along the local up axis
	//   - dollyIn: translation along the local front axis
	MoveLocal(truckLeft, pedestalUp, dollyIn float32)

	// RotateLocal rotates the camera about its own axes, in order: roll about
	// front, then tilt about the rolled left axis, then pan about the tilted
	// up axis. The eye stays fixed; the center follows the new front vector.
	//
	// Parameters:
	//   - rollRight: rotation about the local front axis in radians
	//   - tiltDown: rotation about the local left axis in radians
	//   - panLeft: rotation about the local up axis in radians
	RotateLocal(rollRight, tiltDown, panLeft float32)

	// RotateWorld rotates the camera about a fixed world axis through the eye.
	// The eye stays fixed; the center follows the rotated front vector.
	//
	// Parameters:
	//   - angle: rotation angle in radians
	//   - axis: world-space rotation axis (must be unit length)
	RotateWorld(angle float32, axis mgl32.Vec3)

	// Reset re-derives the entire frame from an eye position, a look-at
	// center, and a world up axis, discarding the previous basis. This is the
	// wholesale-reconstruction path: repeated small rotations expressed as
	// Reset calls cannot accumulate orthonormality drift.
	//
	// Parameters:
	//   - eye: new world-space eye position
	//   - center: new world-space look-at target
	//   - worldUp: world up axis used to complete the basis
	Reset(eye, center, worldUp mgl32.Vec3)

	// ViewMatrix returns the world-to-view transform for the current pose.
	//
	// Returns:
	//   - mgl32.Mat4: column-major view matrix
	ViewMatrix() mgl32.Mat4

	// ViewToWorldMatrix returns the view-to-world transform for the current
	// pose: basis columns (-left, up, -front) and the eye as translation.
	//
	// Returns:
	//   - mgl32.Mat4: column-major view-to-world matrix
	ViewToWorldMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera looking from eye toward center, with the basis
// completed from the given world up axis.
//
// Parameters:
//   - eye: world-space eye position
//   - center: world-space look-at target
//   - worldUp: world up axis used to complete the basis
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(eye, center, worldUp mgl32.Vec3) Camera {
	c := &cameraImpl{mu: &sync.Mutex{}}
	c.rebuild(eye, center, worldUp)
	return c
}

// rebuild re-derives the orthonormal basis from eye, center, and worldUp.
// If the view vector is degenerate or parallel to worldUp the previous basis
// is kept (garbage-in is a collaborator precondition violation, not a fault
// detected here). Caller must hold the mutex.
func (c *cameraImpl) rebuild(eye, center, worldUp mgl32.Vec3) {
	c.eye = eye
	c.center = center

	view := center.Sub(eye)
	if view.Len() < 1e-8 {
		return
	}
	front := view.Normalize()

	left := worldUp.Cross(front)
	if left.Len() < 1e-8 {
		return
	}
	left = left.Normalize()

	c.front = front
	c.left = left
	c.up = front.Cross(left)
}

// rotateBasis applies a rotation matrix to all three basis vectors as pure
// directions (w = 0, translation unaffected). Caller must hold the mutex.
func (c *cameraImpl) rotateBasis(rot mgl32.Mat4) {
	c.left = rot.Mul4x1(c.left.Vec4(0)).Vec3()
	c.up = rot.Mul4x1(c.up.Vec4(0)).Vec3()
	c.front = rot.Mul4x1(c.front.Vec4(0)).Vec3()
}

// orthonormalize removes accumulated floating-point error from the basis:
// front is renormalized, left is re-orthogonalized against front, and up is
// recomputed as their cross product. Roll is preserved. Caller must hold the mutex.
func (c *cameraImpl) orthonormalize() {
	c.front = c.front.Normalize()
	c.left = c.left.Sub(c.front.Mul(c.left.Dot(c.front))).Normalize()
	c.up = c.front.Cross(c.left)
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) Center() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.center
}

func (c *cameraImpl) Left() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) MoveLocal(truckLeft, pedestalUp, dollyIn float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	offset := c.left.Mul(truckLeft).
		Add(c.up.Mul(pedestalUp)).
		Add(c.front.Mul(dollyIn))
	c.eye = c.eye.Add(offset)
	c.center = c.center.Add(offset)
}

func (c *cameraImpl) RotateLocal(rollRight, tiltDown, panLeft float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	depth := c.center.Sub(c.eye).Len()

	if rollRight != 0 {
		c.rotateBasis(mgl32.HomogRotate3D(rollRight, c.front))
	}
	if tiltDown != 0 {
		c.rotateBasis(mgl32.HomogRotate3D(tiltDown, c.left))
	}
	if panLeft != 0 {
		c.rotateBasis(mgl32.HomogRotate3D(panLeft, c.up))
	}

	c.orthonormalize()
	c.center = c.eye.Add(c.front.Mul(depth))
}

func (c *cameraImpl) RotateWorld(angle float32, axis mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	depth := c.center.Sub(c.eye).Len()

	c.rotateBasis(mgl32.HomogRotate3D(angle, axis))
	c.orthonormalize()
	c.center = c.eye.Add(c.front.Mul(depth))
}

func (c *cameraImpl) Reset(eye, center, worldUp mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebuild(eye, center, worldUp)
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.LookAtV(c.eye, c.eye.Add(c.front), c.up)
}

func (c *cameraImpl) ViewToWorldMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Mat4FromCols(
		c.left.Mul(-1).Vec4(0),
		c.up.Vec4(0),
		c.front.Mul(-1).Vec4(0),
		c.eye.Vec4(1),
	)
}
