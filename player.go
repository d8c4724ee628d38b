package clover

import (
	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/collision"
	"github.com/akmonengine/clover/input"
	"github.com/akmonengine/clover/tuning"
	"github.com/go-gl/mathgl/mgl64"
)

// Controls is the player control state derived from the input snapshots
type Controls struct {
	Armed    bool
	Throttle float64 // [0, 1]
	Roll     float64 // [-1, 1]
	Grab     bool

	arm input.Edge
}

// Apply reads one input snapshot. It returns true when the armed state toggled.
func (c *Controls) Apply(snapshot input.Snapshot) bool {
	snapshot = snapshot.Clamped()

	toggled := c.arm.Rising(snapshot.Arm)
	if toggled {
		c.Armed = !c.Armed
	}
	c.Throttle = input.Throttle(snapshot.Thrust)
	c.Roll = snapshot.Roll
	c.Grab = snapshot.Grab

	return toggled
}

// AdvancePlayer integrates the player over one tick and moves it against the obstacles of mask.
// grounded is the result of the previous tick, the new one is returned.
func AdvancePlayer(body *actor.Body, controls Controls, grounded bool, q collision.Query, mask collision.Mask, f tuning.Flight, dt float64) bool {
	if controls.Armed {
		body.AddTorque(controls.Roll * f.AngularThrust)
	}
	body.IntegrateAngular(dt, f.AngularAirDrag)

	if controls.Armed {
		body.AddForce(body.Facing().Mul(controls.Throttle * f.Thrust))
	}
	body.AddForce(mgl64.Vec2{0, -f.Gravity})
	if grounded {
		body.IntegrateLinear(dt, f.LinearAirDrag, f.GroundFriction)
	} else {
		body.IntegrateLinear(dt, f.LinearAirDrag)
	}

	// Ground probe, the body is not moved
	accepted, _ := collision.Probe(q, body.Bounds(), mgl64.Vec2{0, body.Velocity.Y() - f.ProbeBias}, mask)
	grounded = !accepted

	// Velocities are per tick: the displacement is the velocity itself
	for _, axis := range [2]int{1, 0} {
		moved, blocked := collision.Slide(q, body.Bounds(), axis, body.Velocity[axis], mask)
		body.Position[axis] += moved
		if blocked {
			body.Velocity[axis] = 0
		}
	}

	return grounded
}
