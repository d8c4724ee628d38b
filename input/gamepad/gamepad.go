// Package gamepad samples the first connected gamepad through ebiten,
// falling back to the keyboard when none is connected.
package gamepad

import (
	"github.com/akmonengine/clover/input"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	axisStickX = 0
	axisStickY = 1
	axisRoll3D = 2
	axisYaw3D  = 3
)

const (
	buttonGrab = ebiten.GamepadButton3
	buttonArm  = ebiten.GamepadButton7
)

type Sampler struct {
	ids []ebiten.GamepadID
}

func New() *Sampler {
	return &Sampler{}
}

// Sample must be called from the ebiten Update goroutine
func (s *Sampler) Sample() input.Snapshot {
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	if len(s.ids) == 0 {
		return keyboard()
	}

	id := s.ids[0]
	return input.Snapshot{
		// stick up reads negative
		Thrust: -ebiten.GamepadAxisValue(id, axisStickY),
		Roll:   ebiten.GamepadAxisValue(id, axisStickX),
		Arm:    ebiten.IsGamepadButtonPressed(id, buttonArm),
		Grab:   ebiten.IsGamepadButtonPressed(id, buttonGrab),
	}.Clamped()
}

func (s *Sampler) Sample3D() input.Snapshot3D {
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	if len(s.ids) == 0 {
		return input.Snapshot3D{}
	}

	id := s.ids[0]
	return input.Snapshot3D{
		Thrust: input.Throttle(-ebiten.GamepadAxisValue(id, axisStickY)),
		Pitch:  ebiten.GamepadAxisValue(id, axisStickX),
		Roll:   ebiten.GamepadAxisValue(id, axisRoll3D),
		Yaw:    ebiten.GamepadAxisValue(id, axisYaw3D),
	}.Clamped()
}

func keyboard() input.Snapshot {
	snapshot := input.Snapshot{Thrust: -1}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		snapshot.Thrust = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		snapshot.Roll -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		snapshot.Roll += 1
	}
	snapshot.Arm = ebiten.IsKeyPressed(ebiten.KeySpace)
	snapshot.Grab = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyE)

	return snapshot
}
