package mapcontainer

import (
	"encoding/json"

	bettererrors "github.com/xtuc/better-errors"
)

// MapContainer describes the arena layout consumed at startup: where units
// may spawn and where the walls stand. Walls are unit squares centered on
// their point, on the same grid scale as unit colliders.
type MapContainer struct {
	Meta struct {
		Readme string `json:"readme"`
		Kind   string `json:"kind"`
		Date   string `json:"date"`
	} `json:"meta"`
	Data struct {
		Starts []MapStart `json:"starts"`
		Walls  []MapWall  `json:"walls"`
	} `json:"data"`
}

type MapPoint struct {
	X float64
	Y float64
}

func (p MapPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.X, p.Y})
}

func (p *MapPoint) UnmarshalJSON(b []byte) error {
	var floats []float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return err
	}

	if len(floats) != 2 {
		return bettererrors.New("MapPoint must be a [x, y] pair")
	}

	p.X = floats[0]
	p.Y = floats[1]

	return nil
}

type MapStart struct {
	Id    string   `json:"id"`
	Point MapPoint `json:"point"`
}

type MapWall struct {
	Id    string   `json:"id"`
	Point MapPoint `json:"point"`
}

func ParseMapContainer(data []byte) (*MapContainer, error) {
	var container MapContainer
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, bettererrors.
			New("Invalid map JSON").
			With(bettererrors.NewFromErr(err))
	}

	return &container, nil
}
