package orbit

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SpinPerTick is the globe's spin about its own Y axis per animation tick, in radians.
	SpinPerTick = float32(0.0005)
	// ZoomPerDelta scales a wheel deltaY into camera distance.
	ZoomPerDelta = float32(0.01)
	// DragDegreesPerPixel: one pixel of pointer travel is one degree of rotation.
	DragDegreesPerPixel = float32(1)
	// DefaultDistance is the camera's starting distance along +Z.
	DefaultDistance = float32(7)
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

// Controller owns the globe's orientation, spin and the camera distance, plus the transient drag state.
// It is not safe for concurrent use: the frame loop owns it and feeds it input events and ticks
// on the same goroutine that reads it for drawing.
type Controller struct {
	orientation mgl32.Quat
	spin        float32
	distance    float32

	spinPerTick     float32
	initialDistance float32

	dragging bool
	last     mgl32.Vec2
}

// New returns a controller with identity orientation, zero spin and the camera at distance.
func New(distance float32) *Controller {
	return &Controller{
		orientation:     mgl32.QuatIdent(),
		distance:        distance,
		spinPerTick:     SpinPerTick,
		initialDistance: distance,
	}
}

// SetSpinPerTick changes the per-tick spin increment (radians).
func (c *Controller) SetSpinPerTick(rad float32) {
	c.spinPerTick = rad
}

// Tick advances the spin by one increment. Called once per frame.
func (c *Controller) Tick() {
	c.spin += c.spinPerTick
}

// PointerDown starts a drag at (x, y). A second down while dragging just moves the reference point.
func (c *Controller) PointerDown(x, y float32) {
	c.dragging = true
	c.last = mgl32.Vec2{x, y}
}

// PointerMove applies the displacement since the last pointer position as a world-space rotation.
// Ignored when no drag is in progress.
func (c *Controller) PointerMove(x, y float32) {
	if !c.dragging {
		return
	}
	dx := x - c.last.X()
	dy := y - c.last.Y()
	c.orientation = DragRotation(dx, dy).Mul(c.orientation).Normalize()
	c.last = mgl32.Vec2{x, y}
}

// PointerUp ends the drag. There is no momentum.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// Wheel moves the camera by deltaY * ZoomPerDelta. Distance is not clamped and may go negative.
func (c *Controller) Wheel(deltaY float32) {
	c.distance += deltaY * ZoomPerDelta
}

// SetDistance puts the camera at d.
func (c *Controller) SetDistance(d float32) {
	c.distance = d
}

// Reset restores identity orientation, zero spin and the starting distance, and drops any drag.
func (c *Controller) Reset() {
	c.orientation = mgl32.QuatIdent()
	c.spin = 0
	c.distance = c.initialDistance
	c.dragging = false
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Orientation is the accumulated drag rotation.
func (c *Controller) Orientation() mgl32.Quat { return c.orientation }

// Spin is the accumulated intrinsic rotation about the globe's Y axis, in radians.
func (c *Controller) Spin() float32 { return c.spin }

// Distance is the camera's position along +Z.
func (c *Controller) Distance() float32 { return c.distance }

// Rotation is the globe's full model rotation: the drag orientation applied after the
// object-space spin.
func (c *Controller) Rotation() mgl32.Quat {
	return c.orientation.Mul(mgl32.QuatRotate(c.spin, axisY))
}

// DragRotation builds the incremental rotation for a pointer displacement of (dx, dy) pixels:
// pitch about X from dy, then yaw about Y from dx, no roll (Euler XYZ order).
func DragRotation(dx, dy float32) mgl32.Quat {
	pitch := toRadians(dy * DragDegreesPerPixel)
	yaw := toRadians(dx * DragDegreesPerPixel)
	return mgl32.QuatRotate(pitch, axisX).Mul(mgl32.QuatRotate(yaw, axisY))
}

func toRadians(deg float32) float32 {
	return deg * (math32.Pi / 180)
}
