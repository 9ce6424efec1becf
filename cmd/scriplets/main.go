package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/rparrett/scriplets/arenaserver"
	"github.com/rparrett/scriplets/common/types/mapcontainer"
	"github.com/rparrett/scriplets/common/utils"
	"github.com/rparrett/scriplets/game/scriplets"
	"github.com/rparrett/scriplets/prototypes"
	"github.com/rparrett/scriplets/vizserver"
)

// demo assets, used when no -prototypes/-map/-program files are given

var defaultPrototypesJson = []byte(`{
	"movement": [
		{
			"name": "default",
			"movement_type": "omnidirectional",
			"speed": 60,
			"rotation_speed": 90
		},
		{
			"name": "tank",
			"movement_type": "accelerated-steering",
			"max_speed": 10,
			"max_speed_backwards": 4,
			"acceleration": 8,
			"braking_acceleration": 16,
			"passive_deceleration": 4,
			"rotation_speed": 45,
			"rotation_offset": 0.5
		}
	]
}`)

var defaultMapJson = []byte(`{
	"meta": {"readme": "demo arena", "kind": "demo"},
	"data": {
		"starts": [
			{"id": "start-0", "point": [0, 0]},
			{"id": "start-1", "point": [0, 2]},
			{"id": "start-2", "point": [2, 0]}
		],
		"walls": [
			{"id": "wall-0", "point": [1, 5]},
			{"id": "wall-1", "point": [2, 5]},
			{"id": "wall-2", "point": [3, 5]},
			{"id": "wall-3", "point": [4, 5]},
			{"id": "wall-4", "point": [5, 5]},
			{"id": "wall-5", "point": [5, 0]},
			{"id": "wall-6", "point": [5, 1]},
			{"id": "wall-7", "point": [5, 2]},
			{"id": "wall-8", "point": [5, 3]},
			{"id": "wall-9", "point": [5, 4]},
			{"id": "wall-10", "point": [-1, 5]}
		]
	}
}`)

var defaultProgram = []byte(`
function on_tick(handle) {
	handle.move(1, 1);
}
`)

func main() {
	tps := flag.Int("tps", 60, "Ticks per second of the simulation")
	port := flag.Int("port", 8081, "Port of the viz service")
	prototypesPath := flag.String("prototypes", "", "Path to the prototypes JSON asset")
	mapPath := flag.String("map", "", "Path to the arena map JSON")
	programPath := flag.String("program", "", "Path to the unit program")
	profileName := flag.String("profile", "default", "Movement prototype name for spawned units")
	nbunits := flag.Int("units", 1, "Number of units to spawn")

	flag.Parse()

	utils.Assert(*tps > 0, "tps must be positive")

	log.Println("Scriplets Arena Server v0.1")

	protosBytes := defaultPrototypesJson
	if *prototypesPath != "" {
		var err error
		protosBytes, err = os.ReadFile(*prototypesPath)
		utils.Check(err, "Could not read prototypes asset "+*prototypesPath)
	}

	protos, err := prototypes.Parse(protosBytes)
	if err != nil {
		utils.FailWith(err)
	}

	utils.Debug("scriplets", "Loaded prototypes; content hash "+strconv.FormatUint(protos.Hash, 16))

	mapBytes := defaultMapJson
	if *mapPath != "" {
		mapBytes, err = os.ReadFile(*mapPath)
		utils.Check(err, "Could not read map "+*mapPath)
	}

	arenaMap, err := mapcontainer.ParseMapContainer(mapBytes)
	if err != nil {
		utils.FailWith(err)
	}

	programSource := defaultProgram
	if *programPath != "" {
		programSource, err = os.ReadFile(*programPath)
		utils.Check(err, "Could not read program "+*programPath)
	}

	game := scriplets.NewScripletsGame(protos, arenaMap, *tps)
	server := arenaserver.NewServer(game, *tps)

	for i := 0; i < *nbunits; i++ {
		if _, err := server.RegisterUnit(*profileName, programSource); err != nil {
			utils.FailWith(err)
		}
	}

	// the viz channel is a debugging aid; losing it does not stop the simulation
	viz := vizserver.NewVizService("0.0.0.0:"+strconv.Itoa(*port), server)
	go func() {
		if err := viz.ListenAndServe(); err != nil {
			utils.WarnWith(bettererrors.
				New("Viz service stopped").
				With(bettererrors.NewFromErr(err)))
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		server.Stop()
	}()

	<-server.Start()

	log.Println("Simulation stopped")
}
