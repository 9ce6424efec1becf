package vizserver

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apphandler "github.com/rparrett/scriplets/vizserver/handler"
	"github.com/rparrett/scriplets/vizserver/types"
)

// VizService redistributes the arena server's committed frames over
// websocket; it renders nothing itself.
type VizService struct {
	addr   string
	source types.FrameSource
}

func NewVizService(addr string, source types.FrameSource) *VizService {
	return &VizService{
		addr:   addr,
		source: source,
	}
}

func (viz *VizService) ListenAndServe() error {

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.source)),
	)).Methods("GET")

	router.Handle("/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.source)),
	)).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, router)
}
