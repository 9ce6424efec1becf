package scriplets

import (
	"math"

	"github.com/bytearena/ecs"

	"github.com/rparrett/scriplets/common/utils/number"
	"github.com/rparrett/scriplets/common/utils/vector"
	"github.com/rparrett/scriplets/prototypes"
)

// systemMovement is the movement integrator: once per physics step it turns
// each unit's buffered intents into a pose delta according to the unit's
// motion model, sweep-tests the delta against the world, and commits or
// discards it whole. A rejected step moves nothing; there is no sliding
// along the obstruction. Intent fields are cleared in every case.
func systemMovement(game *ScripletsGame) {
	for _, entityresult := range game.movementView.Get() {
		movementAspect := game.CastMovement(entityresult.Components[game.movementComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		switch movementAspect.GetMovementType() {
		case prototypes.MovementTypeOmnidirectional:
			stepOmnidirectional(game, entityresult.Entity, movementAspect, physicalAspect)
		case prototypes.MovementTypeAcceleratedSteering:
			stepAcceleratedSteering(game, entityresult.Entity, movementAspect, physicalAspect)
		case prototypes.MovementTypeTrain:
			// reserved variant, deliberately not integrated
			movementAspect.clearInputs()
		}
	}
}

// stepOmnidirectional responds instantly in any direction. Rotation is
// applied directly and never collision-tested; translation is swept and
// committed only when unobstructed.
func stepOmnidirectional(game *ScripletsGame, entity *ecs.Entity, m *Movement, p *PhysicalBody) {
	defer m.clearInputs()

	if m.handBrake {
		return
	}

	tps := float64(game.tps)

	if m.inputRotation != 0 {
		rotation := number.DegreeToRadian(m.rotationSpeed*number.Clamp(m.inputRotation, -1, 1)) / tps
		p.SetOrientation(p.GetOrientation() - rotation)
	}

	if m.inputMove.IsNull() {
		return
	}

	// local right axis is the unit's forward
	unrotated := m.inputMove.Limit(1.0).MultScalar(m.speed / tps)
	delta := unrotated.Rotate(p.GetOrientation())

	if game.sweepBody(p.GetBody(), delta, p.GetOrientation()) == nil {
		p.SetPosition(p.GetPosition().Add(delta))
	}
}

// stepAcceleratedSteering integrates a signed longitudinal speed under
// acceleration, braking and passive deceleration, then advances the unit
// along a fixed-radius arc around a pivot derived from its lateral
// rotation offset. Position and rotation commit together or not at all.
func stepAcceleratedSteering(game *ScripletsGame, entity *ecs.Entity, m *Movement, p *PhysicalBody) {
	defer m.clearInputs()

	tps := float64(game.tps)

	inputX := number.Clamp(m.inputMove.GetX(), -1, 1)
	inputY := number.Clamp(m.inputMove.GetY(), -1, 1)

	m.speed = integrateSpeed(m, inputX, tps)

	if m.speed == 0 {
		return
	}

	linearDelta := m.speed / tps

	// turn angle this step; clockwise for positive input, mirrored in reverse
	turnAngle := number.DegreeToRadian(m.rotationSpeed) * inputY / tps
	if m.speed < 0 {
		turnAngle = -turnAngle
	}

	orientation := p.GetOrientation()
	right := vector.MakeVector2(math.Cos(orientation), math.Sin(orientation))
	up := vector.MakeVector2(-math.Sin(orientation), math.Cos(orientation))

	var resultPosition vector.Vector2
	resultOrientation := orientation - turnAngle

	if turnAngle == 0 {
		// straight line; the arc below would divide by the turn angle
		resultPosition = p.GetPosition().Add(right.MultScalar(linearDelta))
	} else {
		// steer around a pivot offset laterally from the rotation point,
		// with a radius such that the arc length matches the linear step
		starting := p.GetPosition().Add(up.MultScalar(m.rotationOffset))
		radius := linearDelta / turnAngle
		pivot := starting.Sub(up.MultScalar(radius))

		rotated := pivot.Add(starting.Sub(pivot).Rotate(-turnAngle))

		upAfter := vector.MakeVector2(-math.Sin(resultOrientation), math.Cos(resultOrientation))
		resultPosition = rotated.Sub(upAfter.MultScalar(m.rotationOffset))
	}

	delta := resultPosition.Sub(p.GetPosition())

	if game.sweepBody(p.GetBody(), delta, resultOrientation) == nil {
		p.SetPose(resultPosition, resultOrientation)
	}
}

// integrateSpeed derives this step's longitudinal acceleration and applies
// it, clamped to the profile's speed range. A non-zero speed never changes
// sign within one step: braking and deceleration stop at zero instead of
// overshooting through it.
func integrateSpeed(m *Movement, inputX float64, tps float64) float64 {
	var dv float64

	switch {
	case m.handBrake:
		if m.speed > 0 {
			dv = -m.brakingAcceleration / tps
		} else if m.speed < 0 {
			dv = m.brakingAcceleration / tps
		}
	case inputX != 0 && (m.speed == 0 || sameSign(inputX, m.speed)):
		dv = m.acceleration * inputX / tps
	case inputX != 0:
		// input opposes current motion: braking toward zero
		dv = m.brakingAcceleration * inputX / tps
	case m.speed > 0:
		dv = -m.passiveDeceleration / tps
	case m.speed < 0:
		dv = m.passiveDeceleration / tps
	}

	newSpeed := number.Clamp(m.speed+dv, -m.maxSpeedBackwards, m.maxSpeed)

	if m.speed > 0 {
		newSpeed = math.Max(newSpeed, 0)
	} else if m.speed < 0 {
		newSpeed = math.Min(newSpeed, 0)
	}

	return newSpeed
}

func sameSign(a float64, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
