package scriplets

func (game ScripletsGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

// Render tags an entity for the viz stream; actual drawing happens client
// side, the game only publishes poses.
type Render struct {
	type_ string
}

func (r Render) GetType() string {
	return r.type_
}
