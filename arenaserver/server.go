package arenaserver

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/rparrett/scriplets/common/utils/vector"
)

// Server runs the simulation on a single goroutine at a fixed logical tick
// rate. Within one tick the game steps clocks, scripts and movement in
// order; observers receive the committed frame afterwards.
type Server struct {
	stopticking chan struct{}
	tickspersec int

	units      map[uuid.UUID]ecs.EntityID
	unitsmutex *sync.Mutex

	ticknum      int
	ticknummutex *sync.Mutex

	stateobservers      []chan []byte
	stateobserversmutex *sync.Mutex

	game Game
}

func NewServer(game Game, tickspersec int) *Server {
	return &Server{
		stopticking: make(chan struct{}),
		tickspersec: tickspersec,

		units:      make(map[uuid.UUID]ecs.EntityID),
		unitsmutex: &sync.Mutex{},

		ticknummutex:        &sync.Mutex{},
		stateobserversmutex: &sync.Mutex{},

		game: game,
	}
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

func (server *Server) GetGame() Game {
	return server.game
}

// RegisterUnit spawns a scripted unit on the next free map starting point.
// Unknown profile names and programs that fail to load surface here, before
// the first tick.
func (server *Server) RegisterUnit(profileName string, source []byte) (uuid.UUID, error) {
	server.unitsmutex.Lock()
	defer server.unitsmutex.Unlock()

	starts := server.game.GetMapContainer().Data.Starts
	spawnPointIndex := len(server.units)

	if spawnPointIndex >= len(starts) {
		return uuid.UUID{}, bettererrors.New("Unit cannot spawn, no starting point left")
	}

	spawnPoint := starts[spawnPointIndex].Point

	entity, err := server.game.NewEntityUnit(
		vector.MakeVector2(spawnPoint.X, spawnPoint.Y),
		profileName,
		source,
	)
	if err != nil {
		return uuid.UUID{}, err
	}

	unitid := uuid.NewV4()
	server.units[unitid] = entity.GetID()

	log.Print(chalk.Green)
	log.Println("Registered unit "+unitid.String()+" on starting point "+strconv.Itoa(spawnPointIndex), chalk.Reset)

	return unitid, nil
}

func (server *Server) GetNbUnits() int {
	server.unitsmutex.Lock()
	defer server.unitsmutex.Unlock()
	return len(server.units)
}

func (s *Server) setTicknum(ticknum int) {
	s.ticknummutex.Lock()
	s.ticknum = ticknum
	s.ticknummutex.Unlock()
}

func (s *Server) GetTicknum() int {
	s.ticknummutex.Lock()
	res := s.ticknum
	s.ticknummutex.Unlock()
	return res
}

// Start begins ticking; the returned channel blocks until the server stops.
func (server *Server) Start() chan interface{} {
	server.startTicking()

	block := make(chan interface{})
	notify.Start("app:stopticking", block)

	return block
}

func (server *Server) Stop() {
	close(server.stopticking)
}

func (server *Server) startTicking() {

	go func() {

		tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
		ticker := time.Tick(tickduration)

		for {
			select {
			case <-server.stopticking:
				{
					log.Println("Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					return // exiting goroutine
				}
			case <-ticker:
				{
					server.DoTick()
				}
			}
		}
	}()
}

func (server *Server) DoTick() {

	ticknum := server.GetTicknum() + 1
	server.setTicknum(ticknum)

	dolog := (ticknum % server.tickspersec) == 0

	if dolog {
		fmt.Print(chalk.Yellow)
		log.Println("######## Tick #####", ticknum, chalk.Reset)
	}

	// the logical step is fixed; wall-clock jitter must not leak into the
	// simulation
	dt := 1.0 / float64(server.tickspersec)

	server.game.Step(ticknum, dt)

	frame := server.game.GetVizFrameJson()

	server.stateobserversmutex.Lock()
	for _, subscriber := range server.stateobservers {
		select {
		case subscriber <- frame:
		default:
			// observer not keeping up; it gets the next frame instead
		}
	}
	server.stateobserversmutex.Unlock()
}

// SubscribeStateObservation registers an observer of committed viz frames.
func (server *Server) SubscribeStateObservation() chan []byte {
	ch := make(chan []byte)
	server.stateobserversmutex.Lock()
	server.stateobservers = append(server.stateobservers, ch)
	server.stateobserversmutex.Unlock()
	return ch
}
