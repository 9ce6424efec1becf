package program

import (
	"github.com/dop251/goja"

	"github.com/rparrett/scriplets/common/utils/number"
)

// Movement is the write side of the capability surface: the intent fields a
// script may set on its unit's movement state. Implemented by the game's
// movement component.
type Movement interface {
	SetInputMove(x float64, y float64)
	SetInputRotation(rotation float64)
	ToggleHandBrake()
	Snapshot() MovementSnapshot
}

// MovementSnapshot is the read-only projection of the movement state
// exposed to scripts.
type MovementSnapshot struct {
	MovementType        string
	Speed               float64
	MaxSpeed            float64
	MaxSpeedBackwards   float64
	Acceleration        float64
	BrakingAcceleration float64
	PassiveDeceleration float64
	RotationSpeed       float64
	HandBrake           bool
}

// Pose is a read-only snapshot of a unit's position and orientation.
// Orientation is the internal angle in radians (counter-clockwise positive);
// scripts see degrees with the sign flipped, matching the steering
// convention where positive rotation input turns clockwise.
type Pose struct {
	Position    [2]float64
	Orientation float64
}

// UnitHandle is the capability object passed to a script's entry point. It
// lives for exactly one invocation: the runtime revokes it before Tick
// returns, so a script that retains the handle keeps nothing but a dead
// reference whose mutators throw.
type UnitHandle struct {
	movement            Movement
	pose                Pose
	timeSinceUnitStart  float64
	timeSinceWorldStart float64
	revoked             bool
}

// NewUnitHandle binds one tick's view of a unit. movement may be nil: a
// unit need not have movement state, in which case the mutators are no-ops
// and the movement field reads as null.
func NewUnitHandle(movement Movement, pose Pose, timeSinceUnitStart float64, timeSinceWorldStart float64) *UnitHandle {
	return &UnitHandle{
		movement:            movement,
		pose:                pose,
		timeSinceUnitStart:  timeSinceUnitStart,
		timeSinceWorldStart: timeSinceWorldStart,
	}
}

func (h *UnitHandle) revoke() {
	h.revoked = true
	h.movement = nil
}

func (h *UnitHandle) assertLive(vm *goja.Runtime) {
	if h.revoked {
		panic(vm.NewTypeError("unit handle used outside of its tick"))
	}
}

// bind projects the handle into the unit's interpreter. Mutators are
// buffered writes into the movement intents; accessors are values captured
// at handle construction. The script sees:
//
//	handle.move(dx, dy)
//	handle.rotate(amount)
//	handle.toggle_hand_brake()
//	handle.time_since_unit_start
//	handle.time_since_world_start
//	handle.pose            -> { position: [x, y], rotation: degrees }
//	handle.movement        -> snapshot table, or null without movement state
func (h *UnitHandle) bind(vm *goja.Runtime) *goja.Object {
	obj := vm.NewObject()

	obj.Set("move", func(call goja.FunctionCall) goja.Value {
		h.assertLive(vm)
		if h.movement != nil {
			h.movement.SetInputMove(call.Argument(0).ToFloat(), call.Argument(1).ToFloat())
		}
		return goja.Undefined()
	})

	obj.Set("rotate", func(call goja.FunctionCall) goja.Value {
		h.assertLive(vm)
		if h.movement != nil {
			h.movement.SetInputRotation(call.Argument(0).ToFloat())
		}
		return goja.Undefined()
	})

	obj.Set("toggle_hand_brake", func(call goja.FunctionCall) goja.Value {
		h.assertLive(vm)
		if h.movement != nil {
			h.movement.ToggleHandBrake()
		}
		return goja.Undefined()
	})

	obj.Set("time_since_unit_start", h.timeSinceUnitStart)
	obj.Set("time_since_world_start", h.timeSinceWorldStart)

	pose := vm.NewObject()
	pose.Set("position", h.pose.Position)
	pose.Set("rotation", -number.RadianToDegree(h.pose.Orientation))
	obj.Set("pose", pose)

	if h.movement != nil {
		snapshot := h.movement.Snapshot()

		movement := vm.NewObject()
		movement.Set("movement_type", snapshot.MovementType)
		movement.Set("speed", snapshot.Speed)
		movement.Set("max_speed", snapshot.MaxSpeed)
		movement.Set("max_speed_backwards", snapshot.MaxSpeedBackwards)
		movement.Set("acceleration", snapshot.Acceleration)
		movement.Set("braking_acceleration", snapshot.BrakingAcceleration)
		movement.Set("passive_deceleration", snapshot.PassiveDeceleration)
		movement.Set("rotation_speed", snapshot.RotationSpeed)
		movement.Set("is_hand_brake_pulled", snapshot.HandBrake)
		obj.Set("movement", movement)
	} else {
		obj.Set("movement", goja.Null())
	}

	return obj
}
