package scriplets

import (
	"encoding/json"
	"testing"

	commontypes "github.com/rparrett/scriplets/common/types"
	"github.com/rparrett/scriplets/common/types/mapcontainer"
	"github.com/rparrett/scriplets/common/utils/vector"
)

func TestSpawnUnknownPrototype(t *testing.T) {
	game := makeTestGame(t)

	if _, err := game.NewEntityUnit(vector.MakeNullVector2(), "submarine", nil); err == nil {
		t.Fatal("an unknown prototype name should fail the spawn")
	}
}

func TestSpawnBrokenProgram(t *testing.T) {
	game := makeTestGame(t)

	if _, err := game.NewEntityUnit(vector.MakeNullVector2(), "runner", []byte(`function (`)); err == nil {
		t.Fatal("a program that fails to load should fail the spawn")
	}
}

func TestUnitWithoutMovement(t *testing.T) {
	game := makeTestGame(t)

	entity, err := game.NewEntityUnit(vector.MakeNullVector2(), "", []byte(`
		function on_tick(handle) {
			if (handle.movement !== null) {
				throw "movement should read as null";
			}
		}
	`))
	if err != nil {
		t.Fatal("a unit without movement state should spawn:", err)
	}

	if qr := game.getEntity(entity.GetID(), game.movementComponent); qr != nil {
		t.Fatal("unit should carry no movement component")
	}

	stepOnce(game)
}

func TestProgramDrivesMovement(t *testing.T) {
	game := makeTestGame(t)

	entity, err := game.NewEntityUnit(vector.MakeNullVector2(), "runner", []byte(`
		function on_tick(handle) {
			handle.move(1, 0);
		}
	`))
	if err != nil {
		t.Fatal("unit should have spawned:", err)
	}

	qr := game.getEntity(entity.GetID(), game.movementComponent, game.physicalBodyComponent)
	movementAspect := game.CastMovement(qr.Components[game.movementComponent])
	physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])

	stepOnce(game)

	if !almostEq(physicalAspect.GetPosition().GetX(), 1) {
		t.Fatal("the program's intent should reach the integrator within the same tick, got", physicalAspect.GetPosition().String())
	}
	if !movementAspect.GetInputMove().IsNull() {
		t.Fatal("intents should not leak into the next tick")
	}
}

func TestProgramErrorDoesNotStopTheFrame(t *testing.T) {
	game := makeTestGame(t)

	_, err := game.NewEntityUnit(vector.MakeNullVector2(), "runner", []byte(`
		function on_tick(handle) {
			throw "unit is on fire";
		}
	`))
	if err != nil {
		t.Fatal("unit should have spawned:", err)
	}

	healthy, err := game.NewEntityUnit(vector.MakeVector2(10, 10), "runner", []byte(`
		function on_tick(handle) {
			handle.move(0, 1);
		}
	`))
	if err != nil {
		t.Fatal("unit should have spawned:", err)
	}

	stepOnce(game)

	qr := game.getEntity(healthy.GetID(), game.physicalBodyComponent)
	pos := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent]).GetPosition()
	if !almostEq(pos.GetY(), 11) {
		t.Fatal("other units should still run after one unit's script error, got", pos.String())
	}
}

func TestClocksAdvance(t *testing.T) {
	game := makeTestGame(t)
	entity, _, _ := spawnTestUnit(t, game, "runner")

	stepOnce(game)
	stepOnce(game)
	stepOnce(game)

	qr := game.getEntity(entity.GetID(), game.clockComponent)
	clockAspect := game.CastClock(qr.Components[game.clockComponent])

	if !almostEq(clockAspect.ElapsedSecs(), 3.0/testTps) {
		t.Fatal("unit clock should accumulate the frame deltas, got", clockAspect.ElapsedSecs())
	}
	if !almostEq(game.worldClock.ElapsedSecs(), 3.0/testTps) {
		t.Fatal("world clock should accumulate the frame deltas, got", game.worldClock.ElapsedSecs())
	}
}

func TestVizFrame(t *testing.T) {
	game := makeTestGame(t,
		mapcontainer.MapWall{Id: "w1", Point: mapcontainer.MapPoint{X: 5, Y: 0}},
	)
	spawnTestUnit(t, game, "runner")

	game.Step(42, 1.0/float64(testTps))

	var msg commontypes.VizMessage
	if err := json.Unmarshal(game.GetVizFrameJson(), &msg); err != nil {
		t.Fatal("viz frame should be valid JSON:", err)
	}

	if msg.Tick != 42 {
		t.Fatal("viz frame should carry the tick number, got", msg.Tick)
	}

	if len(msg.Objects) != 2 {
		t.Fatal("viz frame should carry the wall and the unit, got", len(msg.Objects))
	}

	types := map[string]int{}
	for _, obj := range msg.Objects {
		types[obj.Type]++
		if obj.Id == "" {
			t.Fatal("every viz object should carry its entity id")
		}
	}

	if types["unit"] != 1 || types["wall"] != 1 {
		t.Fatal("viz frame should label object types, got", types)
	}
}
