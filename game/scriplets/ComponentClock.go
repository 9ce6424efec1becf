package scriplets

func (game ScripletsGame) CastClock(data interface{}) *Clock {
	return data.(*Clock)
}

// Clock is a monotonic elapsed-time counter. One lives on every unit
// (time since that unit spawned) and one on the game (time since the
// simulation started); both advance by the same per-frame delta and are
// never reset during a unit's lifetime.
type Clock struct {
	elapsedSecs float64
}

func NewClock() *Clock {
	return &Clock{}
}

func (c *Clock) Tick(dt float64) {
	c.elapsedSecs += dt
}

func (c *Clock) ElapsedSecs() float64 {
	return c.elapsedSecs
}
