package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rparrett/scriplets/vizserver/types"
)

type homeInfo struct {
	Tps     int    `json:"tps"`
	Units   int    `json:"units"`
	Watch   string `json:"watch"`
	Comment string `json:"comment"`
}

func Home(source types.FrameSource) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		info := homeInfo{
			Tps:     source.GetTicksPerSecond(),
			Units:   source.GetNbUnits(),
			Watch:   "/ws",
			Comment: "Connect a websocket on /ws to receive framebatch messages",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(info)
	}
}
