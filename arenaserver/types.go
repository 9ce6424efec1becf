package arenaserver

import (
	"github.com/bytearena/ecs"

	"github.com/rparrett/scriplets/common/types/mapcontainer"
	"github.com/rparrett/scriplets/common/utils/vector"
)

// Game is what the server loop drives: a fixed-step simulation that can
// spawn units and publish viz frames.
type Game interface {
	Step(ticknum int, dt float64)
	GetVizFrameJson() []byte
	GetMapContainer() *mapcontainer.MapContainer
	NewEntityUnit(position vector.Vector2, profileName string, source []byte) (*ecs.Entity, error)
}
