package actor

import "github.com/go-gl/mathgl/mgl64"

// Craft represents the 3D flying body.
// Linear and angular velocities are expressed in the local frame.
type Craft struct {
	Transform Transform

	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	Grounded bool

	Shape *Box

	accumulatedForce  mgl64.Vec3
	accumulatedTorque mgl64.Vec3
}

// NewCraft creates a craft at rest
func NewCraft(transform Transform, shape *Box) *Craft {
	if transform.Rotation == (mgl64.Quat{}) {
		transform.Rotation = mgl64.QuatIdent()
	}

	c := &Craft{
		Transform: transform,
		Shape:     shape,
	}
	c.Shape.ComputeAABB(c.Transform)

	return c
}

// AddForce accumulates a local linear acceleration
func (c *Craft) AddForce(force mgl64.Vec3) {
	c.accumulatedForce = c.accumulatedForce.Add(force)
}

// AddTorque accumulates a local angular acceleration
func (c *Craft) AddTorque(torque mgl64.Vec3) {
	c.accumulatedTorque = c.accumulatedTorque.Add(torque)
}

func (c *Craft) Force() mgl64.Vec3 {
	return c.accumulatedForce
}

func (c *Craft) Torque() mgl64.Vec3 {
	return c.accumulatedTorque
}

func (c *Craft) ClearForces() {
	c.accumulatedForce = mgl64.Vec3{0, 0, 0}
	c.accumulatedTorque = mgl64.Vec3{0, 0, 0}
}
