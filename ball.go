package clover

import (
	"math"

	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/collision"
	"github.com/akmonengine/clover/tuning"
	"github.com/go-gl/mathgl/mgl64"
)

// Bounce describes one ball collision response
type Bounce struct {
	Axis int
	// Speed on the axis before the bounce, units per tick
	Speed     float64
	Intensity float64
	// Wedged is set when the bounced move still overlapped and was cancelled
	Wedged bool
}

// AdvanceBall moves the ball for one tick. A grabbed ball is pinned behind the player
// and keeps its velocity. A free ball falls, then moves on x and y in turn, bouncing off
// the ball obstacles. It returns the bounces loud enough to be heard.
func AdvanceBall(ball, player *actor.Body, grabbed bool, q collision.Query, f tuning.Flight, dt float64) []Bounce {
	if grabbed {
		ball.Position = player.Position.Sub(player.Facing().Mul(f.BallOffset))
		return nil
	}

	ball.AddForce(mgl64.Vec2{0, -f.Gravity})
	ball.IntegrateLinear(dt, f.LinearAirDrag)

	if q.Overlaps(ball.Bounds(), slowMask) {
		ball.Velocity = ball.Velocity.Mul(f.BallSlow)
	}

	var bounces []Bounce
	for axis := 0; axis < 2; axis++ {
		bounce, ok := bounceAxis(ball, axis, q, f)
		if ok && bounce.Intensity >= f.BounceMinIntensity {
			bounces = append(bounces, bounce)
		}
	}

	return bounces
}

// bounceAxis applies the per tick velocity on one axis, with a single bounce retry.
// Positions are always recomputed from the starting coordinate so a cancelled move
// restores it exactly.
func bounceAxis(ball *actor.Body, axis int, q collision.Query, f tuning.Flight) (Bounce, bool) {
	v := ball.Velocity[axis]
	if v == 0 {
		return Bounce{}, false
	}

	start := ball.Position[axis]
	ball.Position[axis] = start + v
	if !q.Overlaps(ball.Bounds(), BallMask) {
		return Bounce{}, false
	}

	bounced := -v * f.BallElasticity
	if axis == 1 && math.Abs(bounced) < f.BallStopBounce {
		bounced = 0
	}
	ball.Position[axis] = start + bounced
	ball.Velocity[axis] = bounced

	b := Bounce{
		Axis:      axis,
		Speed:     math.Abs(v),
		Intensity: min(1, math.Abs(v)*f.BounceIntensityScale),
	}

	if q.Overlaps(ball.Bounds(), BallMask) {
		ball.Velocity[axis] = 0
		ball.Position[axis] = start
		b.Wedged = true
	}

	return b, true
}
