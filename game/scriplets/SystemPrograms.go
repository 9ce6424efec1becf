package scriplets

import (
	"github.com/rparrett/scriplets/common/utils"
	"github.com/rparrett/scriplets/program"
)

// systemPrograms invokes every unit's program entry point, strictly in
// sequence: no unit's script observes another unit's mid-tick mutations.
// Each invocation gets a fresh handle bound to that unit only, revoked when
// the call returns. A script error ends that unit's tick early and is
// logged; whatever intents it already wrote stand, and the frame goes on.
func systemPrograms(game *ScripletsGame) {
	for _, entityresult := range game.programView.Get() {
		programAspect := game.CastProgram(entityresult.Components[game.programComponent])
		clockAspect := game.CastClock(entityresult.Components[game.clockComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		// movement is optional: not every unit can move
		var movementAspect program.Movement
		if qr := game.getEntity(entityresult.Entity.GetID(), game.movementComponent); qr != nil {
			movementAspect = game.CastMovement(qr.Components[game.movementComponent])
		}

		handle := program.NewUnitHandle(
			movementAspect,
			program.Pose{
				Position:    physicalAspect.GetPosition().ToFloatArray(),
				Orientation: physicalAspect.GetOrientation(),
			},
			clockAspect.ElapsedSecs(),
			game.worldClock.ElapsedSecs(),
		)

		if err := programAspect.GetRuntime().Tick(handle); err != nil {
			utils.Warn("scriplets-program", "script error on unit "+entityresult.Entity.GetID().String()+"; "+err.Error())
		}
	}
}
