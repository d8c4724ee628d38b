package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body represents a 2D kinematic body: the player craft or the ball.
// Y points up, the angle is in degrees, clockwise, 0 facing +Y.
type Body struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2

	AngularVelocity float64 // deg/s
	Angle           float64 // degrees, always in [0, 360)

	// Collision box, centered on Position
	HalfExtents mgl64.Vec2

	accumulatedForce  mgl64.Vec2
	accumulatedTorque float64
}

// NewBody creates a body at rest
func NewBody(position, halfExtents mgl64.Vec2) *Body {
	return &Body{
		Position:    position,
		HalfExtents: halfExtents,
	}
}

// Bounds returns the collision box at the current position
func (b *Body) Bounds() Rect {
	return RectFromCenter(b.Position, b.HalfExtents)
}

// Facing returns the unit vector the body points to
func (b *Body) Facing() mgl64.Vec2 {
	rad := mgl64.DegToRad(b.Angle)
	return mgl64.Vec2{math.Sin(rad), math.Cos(rad)}
}

// AddForce accumulates a linear acceleration, applied by the next IntegrateLinear
func (b *Body) AddForce(force mgl64.Vec2) {
	b.accumulatedForce = b.accumulatedForce.Add(force)
}

// AddTorque accumulates an angular impulse, applied by the next IntegrateAngular
func (b *Body) AddTorque(torque float64) {
	b.accumulatedTorque += torque
}

func (b *Body) ClearForces() {
	b.accumulatedForce = mgl64.Vec2{0, 0}
	b.accumulatedTorque = 0
}

// IntegrateAngular adds the accumulated torque to the angular velocity, damps it,
// then advances and wraps the angle.
func (b *Body) IntegrateAngular(dt float64, drag float64) {
	b.AngularVelocity = (b.AngularVelocity + b.accumulatedTorque) * drag
	b.Angle = WrapAngle(b.Angle + b.AngularVelocity*dt)
	b.accumulatedTorque = 0
}

// IntegrateLinear applies the accumulated force over dt, then each drag coefficient in order
// with the law v -= k*v*dt.
func (b *Body) IntegrateLinear(dt float64, drags ...float64) {
	b.Velocity = b.Velocity.Add(b.accumulatedForce.Mul(dt))
	for _, k := range drags {
		b.Velocity = b.Velocity.Sub(b.Velocity.Mul(k * dt))
	}
	b.accumulatedForce = mgl64.Vec2{0, 0}
}

// WrapAngle maps any finite angle in degrees to [0, 360)
func WrapAngle(degrees float64) float64 {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	// -tiny + 360 rounds up to 360
	if a >= 360 {
		a = 0
	}
	return a
}
