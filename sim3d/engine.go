// Package sim3d is the 3D variant of the flight model: a box craft with a quaternion
// orientation, flying among static axis-aligned boxes. Collisions only stop motion.
package sim3d

import (
	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/input"
	"github.com/akmonengine/clover/tuning"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultCellSize = 64
	DefaultNumCells = 1024
)

// Engine steps one craft against static obstacles
type Engine struct {
	Craft  *actor.Craft
	Tuning tuning.Craft3D

	obstacles []actor.AABB
	grid      *SpatialGrid
	seen      []uint64
	stamp     uint64
}

// NewEngine creates an engine with the craft at rest at position
func NewEngine(position mgl64.Vec3, t tuning.Craft3D) *Engine {
	transform := actor.NewTransform()
	transform.Position = position

	return &Engine{
		Craft:  actor.NewCraft(transform, &actor.Box{HalfExtents: mgl64.Vec3(t.HalfExtents)}),
		Tuning: t,
		grid:   NewSpatialGrid(DefaultCellSize, DefaultNumCells),
	}
}

// AddObstacle adds a static box and returns its index
func (e *Engine) AddObstacle(aabb actor.AABB) int {
	index := len(e.obstacles)
	e.obstacles = append(e.obstacles, aabb)
	e.seen = append(e.seen, 0)
	e.grid.Insert(index, aabb)
	return index
}

func (e *Engine) Obstacles() []actor.AABB {
	return e.obstacles
}

// Blocked reports whether aabb overlaps any obstacle
func (e *Engine) Blocked(aabb actor.AABB) bool {
	e.stamp++
	blocked := false
	e.grid.Query(aabb, func(index int) {
		if blocked || e.seen[index] == e.stamp {
			return
		}
		e.seen[index] = e.stamp
		blocked = e.obstacles[index].Overlaps(aabb)
	})
	return blocked
}

// Step advances the craft by dt.
// Snapshot thrust is a throttle in [0, 1]; roll, pitch and yaw turn around local X, Y and Z.
func (e *Engine) Step(snapshot input.Snapshot3D, dt float64) {
	c := e.Craft
	t := e.Tuning
	snapshot = snapshot.Clamped()

	// Angular
	c.AddTorque(mgl64.Vec3{
		snapshot.Roll * t.AngularThrust,
		snapshot.Pitch * t.AngularThrust,
		snapshot.Yaw * t.YawThrust,
	})
	c.AngularVelocity = c.AngularVelocity.Add(c.Torque().Mul(dt))
	c.AngularVelocity = c.AngularVelocity.Sub(c.AngularVelocity.Mul(t.AngularAirDrag * dt))
	rotation := c.Transform.Rotation
	c.Transform.Rotation = ApplyLocalAngular(rotation, c.AngularVelocity.Mul(dt))

	// Turning grows the world box: a turn into an obstacle is refused like a move
	c.Shape.ComputeAABB(c.Transform)
	if e.Blocked(c.Shape.GetAABB()) {
		c.Transform.Rotation = rotation
		c.AngularVelocity = mgl64.Vec3{0, 0, 0}
	}

	// Linear, local frame
	drag := t.LinearAirDrag
	if c.Grounded {
		drag = t.GroundFriction
	}
	v := c.Velocity
	c.AddForce(mgl64.Vec3{0, 0, max(0, snapshot.Thrust) * t.Thrust})
	c.AddForce(mgl64.Vec3{-v.X() * drag, -v.Y() * drag, -v.Z() * t.LinearAirDrag})
	c.Velocity = c.Velocity.Add(c.Force().Mul(dt))
	c.Velocity = c.Velocity.Sub(ToLocal(c.Transform.Rotation, mgl64.Vec3{0, 0, t.Gravity}).Mul(dt))
	c.ClearForces()

	// Per world axis: accept the move or stop on that axis
	world := ToWorld(c.Transform.Rotation, c.Velocity)
	stopped := false
	c.Grounded = false
	for axis := 0; axis < 3; axis++ {
		var delta mgl64.Vec3
		delta[axis] = world[axis] * dt
		if delta[axis] == 0 {
			continue
		}

		c.Shape.ComputeAABB(c.Transform.Translated(delta))
		if !e.Blocked(c.Shape.GetAABB()) {
			c.Transform.Position = c.Transform.Position.Add(delta)
			continue
		}

		world[axis] = 0
		stopped = true
		if axis == 2 && delta[axis] < 0 {
			c.Grounded = true
		}
	}
	if stopped {
		c.Velocity = ToLocal(c.Transform.Rotation, world)
	}
	c.Shape.ComputeAABB(c.Transform)
}
