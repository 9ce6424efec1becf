package scriplets

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"
	bettererrors "github.com/xtuc/better-errors"

	commontypes "github.com/rparrett/scriplets/common/types"
	"github.com/rparrett/scriplets/common/utils/vector"
	"github.com/rparrett/scriplets/program"
)

// unit colliders are squares slightly under one tile, so that adjacent
// tiles do not scrape each other
const unitColliderHalfExtent = 0.499

// NewEntityUnit spawns a scripted unit. profileName selects the movement
// prototype; the empty string spawns a unit without movement state (its
// handle's movement reads as null). An unknown profile name or a program
// that fails to load is a spawn-time error: no partially-initialized unit
// is ever left in the world.
func (game *ScripletsGame) NewEntityUnit(position vector.Vector2, profileName string, source []byte) (*ecs.Entity, error) {

	var movementAspect *Movement
	if profileName != "" {
		proto, ok := game.prototypes.MovementByName(profileName)
		if !ok {
			return nil, bettererrors.New("Unknown movement prototype \"" + profileName + "\"")
		}

		movementAspect = NewMovementFromPrototype(proto)
	}

	unitProgram, err := program.NewUnitProgram(source)
	if err != nil {
		return nil, err
	}

	unit := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_kinematicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(unitColliderHalfExtent, unitColliderHalfExtent)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 20.0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Unit,
		unit.GetID().String(),
	))

	unit.
		AddComponent(game.programComponent, NewProgram(unitProgram)).
		AddComponent(game.clockComponent, NewClock()).
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body: body,
		}).
		AddComponent(game.renderComponent, &Render{
			type_: "unit",
		})

	if movementAspect != nil {
		unit.AddComponent(game.movementComponent, movementAspect)
	}

	return unit, nil
}
