package scriplets

import (
	"github.com/rparrett/scriplets/common/utils/vector"
	"github.com/rparrett/scriplets/program"
	"github.com/rparrett/scriplets/prototypes"
)

func (game ScripletsGame) CastMovement(data interface{}) *Movement {
	return data.(*Movement)
}

// Movement is the per-unit movement state: a value copy of the profile's
// physical constants plus the live fields. speed is the signed scalar
// velocity along the unit's forward axis. The input fields hold one tick's
// request from the unit's program; the integrator consumes and clears them
// every step. Exactly two actors touch this component: the script writes
// intents, the integrator reads them and writes speed.
type Movement struct {
	movementType prototypes.MovementType

	speed               float64
	maxSpeed            float64
	maxSpeedBackwards   float64
	acceleration        float64
	brakingAcceleration float64
	passiveDeceleration float64
	rotationSpeed       float64
	rotationOffset      float64

	inputMove     vector.Vector2
	inputRotation float64
	handBrake     bool
}

// NewMovementFromPrototype builds the component from its named profile;
// optional profile fields are resolved to their documented defaults here,
// kept non-negative, and negated at the point of use in the integrator.
func NewMovementFromPrototype(proto prototypes.Movement) *Movement {
	return &Movement{
		movementType:        proto.MovementType,
		speed:               proto.Speed,
		maxSpeed:            proto.MaxSpeed,
		maxSpeedBackwards:   proto.MaxSpeedBackwardsOrDefault(),
		acceleration:        proto.Acceleration,
		brakingAcceleration: proto.BrakingAccelerationOrDefault(),
		passiveDeceleration: proto.PassiveDeceleration,
		rotationSpeed:       proto.RotationSpeed,
		rotationOffset:      proto.RotationOffset,
	}
}

func (m *Movement) GetMovementType() prototypes.MovementType {
	return m.movementType
}

func (m *Movement) GetSpeed() float64 {
	return m.speed
}

func (m *Movement) GetInputMove() vector.Vector2 {
	return m.inputMove
}

func (m *Movement) GetInputRotation() float64 {
	return m.inputRotation
}

func (m *Movement) IsHandBrakePulled() bool {
	return m.handBrake
}

func (m *Movement) clearInputs() {
	m.inputMove = vector.MakeNullVector2()
	m.inputRotation = 0
}

/* <implementing program.Movement> */

func (m *Movement) SetInputMove(x float64, y float64) {
	m.inputMove = vector.MakeVector2(x, y)
}

func (m *Movement) SetInputRotation(rotation float64) {
	m.inputRotation = rotation
}

func (m *Movement) ToggleHandBrake() {
	m.handBrake = !m.handBrake
}

func (m *Movement) Snapshot() program.MovementSnapshot {
	return program.MovementSnapshot{
		MovementType:        string(m.movementType),
		Speed:               m.speed,
		MaxSpeed:            m.maxSpeed,
		MaxSpeedBackwards:   m.maxSpeedBackwards,
		Acceleration:        m.acceleration,
		BrakingAcceleration: m.brakingAcceleration,
		PassiveDeceleration: m.passiveDeceleration,
		RotationSpeed:       m.rotationSpeed,
		HandBrake:           m.handBrake,
	}
}

/* </implementing program.Movement> */
