package sim3d

import (
	"math"
	"math/rand"
	"testing"

	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/input"
	"github.com/akmonengine/clover/tuning"
	"github.com/go-gl/mathgl/mgl64"
)

const tick = 1.0 / 60.0

func floor() actor.AABB {
	return actor.AABB{Min: mgl64.Vec3{-1000, -1000, -100}, Max: mgl64.Vec3{1000, 1000, 0}}
}

func TestEngine_Falls(t *testing.T) {
	tu := tuning.Default().Craft3D
	e := NewEngine(mgl64.Vec3{0, 0, 200}, tu)
	e.AddObstacle(floor())

	for i := 0; i < 600; i++ {
		e.Step(input.Snapshot3D{}, tick)
		if e.Blocked(e.Craft.Shape.GetAABB()) {
			t.Fatalf("tick %d: craft inside the floor at %v", i, e.Craft.Transform.Position)
		}
	}

	if !e.Craft.Grounded {
		t.Error("craft should be grounded")
	}
	bottom := e.Craft.Shape.GetAABB().Min.Z()
	if bottom < 0 || bottom > tu.Gravity*tick*tick*2 {
		t.Errorf("bottom = %v, want resting on the floor", bottom)
	}
	if e.Craft.Velocity.Z() != 0 {
		t.Errorf("vz = %v, want 0 on the ground", e.Craft.Velocity.Z())
	}
}

func TestEngine_ZeroInputWeightless(t *testing.T) {
	tu := tuning.Default().Craft3D
	tu.Gravity = 0
	e := NewEngine(mgl64.Vec3{10, 20, 30}, tu)
	e.AddObstacle(floor())

	for i := 0; i < 600; i++ {
		e.Step(input.Snapshot3D{}, tick)
	}

	if e.Craft.Transform.Position != (mgl64.Vec3{10, 20, 30}) {
		t.Errorf("Position = %v, want unchanged", e.Craft.Transform.Position)
	}
	if e.Craft.Transform.Rotation != mgl64.QuatIdent() {
		t.Errorf("Rotation = %v, want identity", e.Craft.Transform.Rotation)
	}
	if e.Craft.Grounded {
		t.Error("craft should not be grounded")
	}
}

func TestEngine_Thrust(t *testing.T) {
	tu := tuning.Default().Craft3D
	tu.Gravity = 0
	e := NewEngine(mgl64.Vec3{0, 0, 0}, tu)

	e.Step(input.Snapshot3D{Thrust: 1}, tick)

	want := tu.Thrust * tick
	if !vecApprox(e.Craft.Velocity, mgl64.Vec3{0, 0, want}, 1e-9) {
		t.Errorf("Velocity = %v, want [0 0 %v]", e.Craft.Velocity, want)
	}
	if !vecApprox(e.Craft.Transform.Position, mgl64.Vec3{0, 0, want * tick}, 1e-9) {
		t.Errorf("Position = %v", e.Craft.Transform.Position)
	}

	// Negative throttle is idle
	e = NewEngine(mgl64.Vec3{0, 0, 0}, tu)
	e.Step(input.Snapshot3D{Thrust: -1}, tick)
	if e.Craft.Velocity != (mgl64.Vec3{}) {
		t.Errorf("Velocity = %v, want zero", e.Craft.Velocity)
	}
}

func TestEngine_Turn(t *testing.T) {
	tu := tuning.Default().Craft3D
	tu.Gravity = 0
	e := NewEngine(mgl64.Vec3{0, 0, 0}, tu)

	e.Step(input.Snapshot3D{Yaw: 1}, tick)

	omega := tu.YawThrust * tick
	omega -= omega * tu.AngularAirDrag * tick
	if !vecApprox(e.Craft.AngularVelocity, mgl64.Vec3{0, 0, omega}, 1e-9) {
		t.Errorf("AngularVelocity = %v, want [0 0 %v]", e.Craft.AngularVelocity, omega)
	}
	want := FromAxisAngle(mgl64.Vec3{0, 0, 1}, omega*tick)
	if !e.Craft.Transform.Rotation.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("Rotation = %v, want %v", e.Craft.Transform.Rotation, want)
	}
}

func TestEngine_WallStopsOneAxis(t *testing.T) {
	tu := tuning.Default().Craft3D
	tu.Gravity = 0
	tu.LinearAirDrag = 0
	e := NewEngine(mgl64.Vec3{0, 0, 100}, tu)
	e.AddObstacle(actor.AABB{Min: mgl64.Vec3{20, -500, -500}, Max: mgl64.Vec3{40, 500, 500}})

	e.Craft.Velocity = mgl64.Vec3{600, 300, 0}
	e.Step(input.Snapshot3D{}, tick)

	if e.Craft.Transform.Position.X() != 0 {
		t.Errorf("x = %v, want blocked at 0", e.Craft.Transform.Position.X())
	}
	if !approx(e.Craft.Transform.Position.Y(), 300*tick) {
		t.Errorf("y = %v, want %v", e.Craft.Transform.Position.Y(), 300*tick)
	}
	if !vecApprox(e.Craft.Velocity, mgl64.Vec3{0, 300, 0}, 1e-9) {
		t.Errorf("Velocity = %v, want [0 300 0]", e.Craft.Velocity)
	}
	if e.Craft.Grounded {
		t.Error("a wall does not ground the craft")
	}
}

func TestEngine_UnitNorm(t *testing.T) {
	tu := tuning.Default().Craft3D
	e := NewEngine(mgl64.Vec3{0, 0, 500}, tu)
	e.AddObstacle(floor())
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 5000; i++ {
		e.Step(input.Snapshot3D{
			Thrust: rng.Float64(),
			Roll:   rng.Float64()*2 - 1,
			Pitch:  rng.Float64()*2 - 1,
			Yaw:    rng.Float64()*2 - 1,
		}, tick)
		if q := e.Craft.Transform.Rotation; math.Abs(q.Len()-1) > 1e-9 {
			t.Fatalf("step %d: |rot| = %v", i, q.Len())
		}
		if e.Blocked(e.Craft.Shape.GetAABB()) {
			t.Fatalf("step %d: craft inside the floor", i)
		}
	}
}

func TestEngine_TurnOnGroundRefused(t *testing.T) {
	tu := tuning.Default().Craft3D
	e := NewEngine(mgl64.Vec3{0, 0, 200}, tu)
	e.AddObstacle(floor())

	for i := 0; i < 600; i++ {
		e.Step(input.Snapshot3D{}, tick)
	}
	if !e.Craft.Grounded {
		t.Fatal("craft should be resting on the floor")
	}

	for i := 0; i < 20; i++ {
		e.Step(input.Snapshot3D{Roll: 1}, tick)
		if e.Blocked(e.Craft.Shape.GetAABB()) {
			t.Fatalf("roll tick %d: craft inside the floor", i)
		}
	}

	start := e.Craft.Transform.Position
	for i := 0; i < 600; i++ {
		e.Step(input.Snapshot3D{Thrust: 1}, tick)
		if e.Blocked(e.Craft.Shape.GetAABB()) {
			t.Fatalf("thrust tick %d: craft inside the floor", i)
		}
	}

	if rise := e.Craft.Transform.Position.Z() - start.Z(); rise < 10 {
		t.Errorf("craft rose %v after full thrust, want it to take off", rise)
	}
}

func TestEngine_Blocked(t *testing.T) {
	e := NewEngine(mgl64.Vec3{}, tuning.Default().Craft3D)
	e.AddObstacle(actor.AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{10, 10, 10}})
	// Far away: may share hashed cells, must not be reported
	e.AddObstacle(actor.AABB{Min: mgl64.Vec3{5000, 5000, 5000}, Max: mgl64.Vec3{5010, 5010, 5010}})

	tests := []struct {
		name string
		aabb actor.AABB
		want bool
	}{
		{"inside", actor.AABB{Min: mgl64.Vec3{2, 2, 2}, Max: mgl64.Vec3{4, 4, 4}}, true},
		{"touching", actor.AABB{Min: mgl64.Vec3{10, 0, 0}, Max: mgl64.Vec3{20, 10, 10}}, false},
		{"apart", actor.AABB{Min: mgl64.Vec3{100, 100, 100}, Max: mgl64.Vec3{110, 110, 110}}, false},
		{"far obstacle", actor.AABB{Min: mgl64.Vec3{5005, 5005, 5005}, Max: mgl64.Vec3{5006, 5006, 5006}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Blocked(tt.aabb); got != tt.want {
				t.Errorf("Blocked() = %v, want %v", got, tt.want)
			}
		})
	}
	if len(e.Obstacles()) != 2 {
		t.Errorf("len(Obstacles()) = %d, want 2", len(e.Obstacles()))
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}
