package types

import (
	"github.com/rparrett/scriplets/common/utils/vector"
)

type VizMessage struct {
	Tick    int
	Objects []VizMessageObject
}

type VizMessageObject struct {
	Id          string
	Type        string
	Position    vector.Vector2
	Orientation float64
	Speed       float64
}
