package scriplets

// systemClocks advances every unit clock and the world clock by the same
// frame delta, before anything else runs in the tick.
func systemClocks(game *ScripletsGame, dt float64) {
	game.worldClock.Tick(dt)

	for _, entityresult := range game.clockView.Get() {
		clockAspect := game.CastClock(entityresult.Components[game.clockComponent])
		clockAspect.Tick(dt)
	}
}
