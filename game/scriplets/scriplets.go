// Package scriplets is the simulation game: script-driven units with
// optional movement state, integrated under rigid-body collision in a 2D
// world seen from the top.
package scriplets

import (
	"encoding/json"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	commontypes "github.com/rparrett/scriplets/common/types"
	"github.com/rparrett/scriplets/common/types/mapcontainer"
	"github.com/rparrett/scriplets/prototypes"
)

type ScripletsGame struct {
	ticknum int
	tps     int

	arenaMap   *mapcontainer.MapContainer
	prototypes *prototypes.Prototypes
	manager    *ecs.Manager

	physicalBodyComponent *ecs.Component
	movementComponent     *ecs.Component
	programComponent      *ecs.Component
	clockComponent        *ecs.Component
	renderComponent       *ecs.Component

	programView    *ecs.View
	movementView   *ecs.View
	clockView      *ecs.View
	renderableView *ecs.View

	worldClock *Clock

	PhysicalWorld *box2d.B2World
}

func NewScripletsGame(protos *prototypes.Prototypes, arenaMap *mapcontainer.MapContainer, tps int) *ScripletsGame {
	manager := ecs.NewManager()

	game := &ScripletsGame{
		tps: tps,

		arenaMap:   arenaMap,
		prototypes: protos,
		manager:    manager,

		physicalBodyComponent: manager.NewComponent(),
		movementComponent:     manager.NewComponent(),
		programComponent:      manager.NewComponent(),
		clockComponent:        manager.NewComponent(),
		renderComponent:       manager.NewComponent(),

		worldClock: NewClock(),
	}

	// the simulation is seen from the top; no gravity
	gravity := box2d.MakeB2Vec2(0.0, 0.0)
	world := box2d.MakeB2World(gravity)
	game.PhysicalWorld = &world

	game.programView = manager.CreateView(
		game.programComponent,
		game.clockComponent,
		game.physicalBodyComponent,
	)

	game.movementView = manager.CreateView(
		game.movementComponent,
		game.physicalBodyComponent,
	)

	game.clockView = manager.CreateView(
		game.clockComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.physicalBodyComponent,
	)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		physicalAspect := data.(*PhysicalBody)
		game.PhysicalWorld.DestroyBody(physicalAspect.GetBody())
	})

	for _, wall := range arenaMap.Data.Walls {
		game.NewEntityWall(wall)
	}

	return game
}

func (game *ScripletsGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game *ScripletsGame) GetTps() int {
	return game.tps
}

func (game *ScripletsGame) GetMapContainer() *mapcontainer.MapContainer {
	return game.arenaMap
}

func (game *ScripletsGame) GetPrototypes() *prototypes.Prototypes {
	return game.prototypes
}

// Step advances the simulation by one tick: clocks first, then every unit's
// program in sequence, then movement integration against committed
// positions only. dt is the frame's delta-time in seconds, supplied by the
// outer scheduler.
func (game *ScripletsGame) Step(ticknum int, dt float64) {
	game.ticknum = ticknum

	systemClocks(game, dt)
	systemPrograms(game)
	systemMovement(game)
}

func (game *ScripletsGame) GetVizFrameJson() []byte {
	msg := commontypes.VizMessage{
		Tick:    game.ticknum,
		Objects: []commontypes.VizMessageObject{},
	}

	for _, entityresult := range game.renderableView.Get() {
		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		speed := 0.0
		if qr := game.getEntity(entityresult.Entity.GetID(), game.movementComponent); qr != nil {
			speed = game.CastMovement(qr.Components[game.movementComponent]).GetSpeed()
		}

		msg.Objects = append(msg.Objects, commontypes.VizMessageObject{
			Id:          entityresult.Entity.GetID().String(),
			Type:        renderAspect.GetType(),
			Position:    physicalAspect.GetPosition(),
			Orientation: physicalAspect.GetOrientation(),
			Speed:       speed,
		})
	}

	res, _ := json.Marshal(msg)
	return res
}
