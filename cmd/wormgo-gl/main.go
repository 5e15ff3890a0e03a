// Command wormgo-gl runs the game in a window. Rendering rides ebiten's
// draw cadence; the animator runs the logic loop only.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bcingle/wormgo/audio"
	"github.com/bcingle/wormgo/config"
	"github.com/bcingle/wormgo/engine"
	"github.com/bcingle/wormgo/event"
	"github.com/bcingle/wormgo/game"
	"github.com/bcingle/wormgo/gfx"
	"github.com/bcingle/wormgo/logging"
	"github.com/bcingle/wormgo/render"
)

var (
	configFlag = flag.String("config", "wormgo.yaml", "Path to the YAML config")
	seedFlag   = flag.Int64("seed", 0, "Apple placement seed; 0 seeds from the clock")
	zoomFlag   = flag.Int("zoom", 3, "Window pixels per board pixel")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wormgo-gl: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	events := event.NewQueue()
	router := event.NewRouter(events)
	clock := engine.NewMonotonicTimeProvider()

	// No renderer, no pulse: ebiten's Draw is the presentation loop.
	var controller *game.Controller
	animator := engine.NewAnimator(
		cfg.Tick.BaseRate,
		engine.LogicFunc(func(frame uint64) { controller.Frame(frame) }),
		nil, nil,
		log,
	)

	controller = game.New(cfg, animator, events, log, seed)

	surface := gfx.NewSurface()
	meter := engine.NewFPSMeter(clock)
	orchestrator := render.NewOrchestrator(surface, controller, meter)
	orchestrator.RegisterDefaults()

	animator.AddFrameListener(meter.Tick)
	animator.AddFrameListener(func(uint64) { router.DispatchAll() })

	if cfg.Audio.Enabled {
		sound := audio.NewManager(controller, log)
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing silent: %v", err)
		} else {
			router.Register(sound)
			defer sound.Close()
		}
	}

	zoom := *zoomFlag
	if zoom < 1 {
		zoom = 1
	}
	ebiten.SetWindowSize(cfg.Board.Width*zoom, cfg.Board.Height*zoom)
	ebiten.SetWindowTitle("wormgo")

	animator.Start()
	defer animator.Stop()

	g := gfx.NewGame(controller, orchestrator, surface, cfg.Board.Width, cfg.Board.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run: %v", err)
		os.Exit(1)
	}
}
