package clover

import (
	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/collision"
	"github.com/akmonengine/clover/input"
)

// Active obstacle sets. with_ball and no_ball are never both in a player mask.
var (
	PlayerFreeMask     = collision.MaskOf(collision.LayerCollision, collision.LayerOnlyBall, collision.LayerWithBall)
	PlayerAttachedMask = collision.MaskOf(collision.LayerCollision, collision.LayerOnlyBall, collision.LayerNoBall)
	BallMask           = collision.MaskOf(collision.LayerCollision, collision.LayerBallSolid)

	noBallMask = collision.MaskOf(collision.LayerNoBall)
	slowMask   = collision.MaskOf(collision.LayerSlowBall)
	finishMask = collision.MaskOf(collision.LayerFinish)
)

type GrabState uint8

const (
	Free GrabState = iota
	Attached
)

func (s GrabState) String() string {
	if s == Attached {
		return "attached"
	}
	return "free"
}

type Transition uint8

const (
	NoTransition Transition = iota
	Grabbed
	Released
)

// Grab is the ball grab/release state machine.
// The previous grab button sample is its only memory besides the state.
type Grab struct {
	State GrabState

	button input.Edge
}

func (g *Grab) Attached() bool {
	return g.State == Attached
}

// PlayerMask returns the obstacle set the player collides with in the current state
func (g *Grab) PlayerMask() collision.Mask {
	if g.State == Attached {
		return PlayerAttachedMask
	}
	return PlayerFreeMask
}

// Evaluate samples the grab button once and applies at most one transition.
// Grabbing needs a rising edge, the player outside every no_ball obstacle and the ball
// closer than radius. Releasing only needs the button up. On release the ball takes
// the player velocity.
func (g *Grab) Evaluate(button bool, player, ball *actor.Body, q collision.Query, radius float64) Transition {
	rising := g.button.Rising(button)

	switch g.State {
	case Free:
		if !rising {
			return NoTransition
		}
		if q.Overlaps(player.Bounds(), noBallMask) {
			return NoTransition
		}
		if player.Position.Sub(ball.Position).Len() >= radius {
			return NoTransition
		}
		g.State = Attached
		return Grabbed
	case Attached:
		if button {
			return NoTransition
		}
		g.State = Free
		ball.Velocity = player.Velocity
		return Released
	}

	return NoTransition
}
