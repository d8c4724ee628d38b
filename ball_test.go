package clover

import (
	"math"
	"testing"

	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/collision"
	"github.com/akmonengine/clover/tuning"
	"github.com/go-gl/mathgl/mgl64"
)

func newBall(position, velocity mgl64.Vec2) *actor.Body {
	ball := actor.NewBody(position, mgl64.Vec2{12, 12})
	ball.Velocity = velocity
	return ball
}

func TestAdvanceBall_Grabbed(t *testing.T) {
	f := tuning.Default().Flight
	player := actor.NewBody(mgl64.Vec2{100, 100}, mgl64.Vec2{48, 30})
	ball := newBall(mgl64.Vec2{0, 0}, mgl64.Vec2{5, -3})

	tests := []struct {
		angle float64
		want  mgl64.Vec2
	}{
		{0, mgl64.Vec2{100, 76}},
		{90, mgl64.Vec2{76, 100}},
		{180, mgl64.Vec2{100, 124}},
		{270, mgl64.Vec2{124, 100}},
	}

	for _, tt := range tests {
		player.Angle = tt.angle
		if bounces := AdvanceBall(ball, player, true, collision.List{}, f, tick); bounces != nil {
			t.Errorf("grabbed ball bounced: %v", bounces)
		}
		if !approx(ball.Position.X(), tt.want.X(), 1e-9) || !approx(ball.Position.Y(), tt.want.Y(), 1e-9) {
			t.Errorf("angle %v: Position = %v, want %v", tt.angle, ball.Position, tt.want)
		}
	}
	if ball.Velocity != (mgl64.Vec2{5, -3}) {
		t.Errorf("Velocity = %v, want untouched", ball.Velocity)
	}
}

func TestAdvanceBall_FreeFlight(t *testing.T) {
	f := frictionless()
	ball := newBall(mgl64.Vec2{0, 0}, mgl64.Vec2{3, -2})

	AdvanceBall(ball, nil, false, collision.List{}, f, tick)

	// Velocity is applied per tick, not scaled by dt
	if ball.Position != (mgl64.Vec2{3, -2}) {
		t.Errorf("Position = %v, want [3 -2]", ball.Position)
	}

	f = tuning.Default().Flight
	ball = newBall(mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0})
	AdvanceBall(ball, nil, false, collision.List{}, f, tick)
	want := -f.Gravity * tick * (1 - f.LinearAirDrag*tick)
	if !approx(ball.Velocity.Y(), want, 1e-12) {
		t.Errorf("vy = %v, want %v", ball.Velocity.Y(), want)
	}
}

func TestAdvanceBall_Bounce(t *testing.T) {
	f := frictionless()
	e := f.BallElasticity
	walls := collision.List{
		wall(65, -100, 100, 100, collision.LayerCollision),
		wall(-100, -100, 100, -40, collision.LayerBallSolid),
		wall(-100, 40, 100, 100, collision.LayerOnlyBall),
	}

	tests := []struct {
		name         string
		start        mgl64.Vec2
		velocity     mgl64.Vec2
		wantVelocity mgl64.Vec2
		wantPosition mgl64.Vec2
	}{
		{"wall", mgl64.Vec2{50, 0}, mgl64.Vec2{5, 0}, mgl64.Vec2{-5 * e, 0}, mgl64.Vec2{50 - 5*e, 0}},
		{"fast wall", mgl64.Vec2{50, 0}, mgl64.Vec2{20, 0}, mgl64.Vec2{-20 * e, 0}, mgl64.Vec2{50 - 20*e, 0}},
		{"floor", mgl64.Vec2{50, 0}, mgl64.Vec2{0, -50}, mgl64.Vec2{0, 50 * e}, mgl64.Vec2{50, 50 * e}},
		{"floor above stop bounce", mgl64.Vec2{50, 0}, mgl64.Vec2{0, -30}, mgl64.Vec2{0, 30 * e}, mgl64.Vec2{50, 30 * e}},
		{"floor below stop bounce", mgl64.Vec2{50, -27}, mgl64.Vec2{0, -2}, mgl64.Vec2{0, 0}, mgl64.Vec2{50, -27}},
		{"wall below stop bounce keeps bouncing", mgl64.Vec2{52, 0}, mgl64.Vec2{2, 0}, mgl64.Vec2{-2 * e, 0}, mgl64.Vec2{52 - 2*e, 0}},
		{"only_ball is not solid for the ball", mgl64.Vec2{50, 0}, mgl64.Vec2{0, 35}, mgl64.Vec2{0, 35}, mgl64.Vec2{50, 35}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := newBall(tt.start, tt.velocity)

			AdvanceBall(ball, nil, false, walls, f, tick)

			if ball.Velocity != tt.wantVelocity {
				t.Errorf("Velocity = %v, want %v", ball.Velocity, tt.wantVelocity)
			}
			if ball.Position != tt.wantPosition {
				t.Errorf("Position = %v, want %v", ball.Position, tt.wantPosition)
			}
			if walls.Overlaps(ball.Bounds(), BallMask) {
				t.Error("ball left inside an obstacle")
			}
		})
	}
}

func TestAdvanceBall_BounceIntensity(t *testing.T) {
	f := frictionless()
	walls := collision.List{wall(65, -100, 100, 100, collision.LayerCollision)}

	ball := newBall(mgl64.Vec2{50, 0}, mgl64.Vec2{30, 0})
	bounces := AdvanceBall(ball, nil, false, walls, f, tick)
	if len(bounces) != 1 {
		t.Fatalf("len(bounces) = %d, want 1", len(bounces))
	}
	if b := bounces[0]; b.Axis != 0 || b.Speed != 30 || b.Intensity != 1 || b.Wedged {
		t.Errorf("bounce = %+v, want axis 0, speed 30, intensity 1", b)
	}

	ball = newBall(mgl64.Vec2{52.6, 0}, mgl64.Vec2{0.5, 0})
	if bounces := AdvanceBall(ball, nil, false, walls, f, tick); len(bounces) != 0 {
		t.Errorf("soft bounce reported: %v", bounces)
	}
	if want := -0.5 * f.BallElasticity; ball.Velocity.X() != want {
		t.Errorf("soft bounce velocity = %v, want %v", ball.Velocity.X(), want)
	}
}

func TestAdvanceBall_Wedge(t *testing.T) {
	f := frictionless()
	walls := collision.List{
		wall(65, -100, 100, 100, collision.LayerCollision),
		wall(0, -100, 37, 100, collision.LayerBallSolid),
	}
	ball := newBall(mgl64.Vec2{50, 0}, mgl64.Vec2{5, 0})

	bounces := AdvanceBall(ball, nil, false, walls, f, tick)

	if ball.Velocity != (mgl64.Vec2{0, 0}) {
		t.Errorf("Velocity = %v, want zero after a single tick", ball.Velocity)
	}
	if ball.Position != (mgl64.Vec2{50, 0}) {
		t.Errorf("Position = %v, want the pre-move position", ball.Position)
	}
	if walls.Overlaps(ball.Bounds(), BallMask) {
		t.Error("ball left inside an obstacle")
	}
	for _, b := range bounces {
		if !b.Wedged {
			t.Errorf("bounce %+v should be wedged", b)
		}
	}
}

func TestAdvanceBall_SlowZone(t *testing.T) {
	f := frictionless()
	zone := collision.List{wall(-100, -100, 100, 100, collision.LayerSlowBall)}
	ball := newBall(mgl64.Vec2{0, 0}, mgl64.Vec2{10, -5})

	AdvanceBall(ball, nil, false, zone, f, tick)

	want := mgl64.Vec2{10 * f.BallSlow, -5 * f.BallSlow}
	if ball.Velocity != want {
		t.Errorf("Velocity = %v, want %v", ball.Velocity, want)
	}
	if ball.Position != want {
		t.Errorf("Position = %v, want %v", ball.Position, want)
	}
}

func TestAdvanceBall_Settles(t *testing.T) {
	f := tuning.Default().Flight
	floor := collision.List{wall(-1000, -32, 1000, 0, collision.LayerCollision)}
	ball := newBall(mgl64.Vec2{0, 300}, mgl64.Vec2{0, 0})

	var last []Bounce
	for i := 0; i < 1200; i++ {
		last = AdvanceBall(ball, nil, false, floor, f, tick)
		if floor.Overlaps(ball.Bounds(), BallMask) {
			t.Fatalf("tick %d: ball inside the floor at %v", i, ball.Position)
		}
	}

	if ball.Velocity.Y() != 0 {
		t.Errorf("vy = %v, want 0 once resting", ball.Velocity.Y())
	}
	if bottom := ball.Bounds().Min.Y(); bottom < 0 || bottom > f.Gravity*tick*2 {
		t.Errorf("ball bottom = %v, want just above the floor", bottom)
	}
	if len(last) != 0 {
		t.Errorf("resting ball still bounces: %v", last)
	}
	if math.IsNaN(ball.Position.X()) || ball.Position.X() != 0 {
		t.Errorf("x = %v, want 0", ball.Position.X())
	}
}
