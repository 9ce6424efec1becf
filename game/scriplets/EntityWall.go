package scriplets

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	commontypes "github.com/rparrett/scriplets/common/types"
	"github.com/rparrett/scriplets/common/types/mapcontainer"
)

const wallColliderHalfExtent = 0.5

// NewEntityWall spawns one static wall tile from the arena map.
func (game *ScripletsGame) NewEntityWall(wall mapcontainer.MapWall) *ecs.Entity {

	entity := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(wall.Point.X, wall.Point.Y)
	bodydef.Type = box2d.B2BodyType.B2_staticBody

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(wallColliderHalfExtent, wallColliderHalfExtent)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Wall,
		wall.Id,
	))

	return entity.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body: body,
		}).
		AddComponent(game.renderComponent, &Render{
			type_: "wall",
		})
}
