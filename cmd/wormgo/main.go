// Command wormgo runs the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bcingle/wormgo/audio"
	"github.com/bcingle/wormgo/config"
	"github.com/bcingle/wormgo/engine"
	"github.com/bcingle/wormgo/event"
	"github.com/bcingle/wormgo/game"
	"github.com/bcingle/wormgo/logging"
	"github.com/bcingle/wormgo/render"
	"github.com/bcingle/wormgo/term"
)

var (
	configFlag = flag.String("config", "wormgo.yaml", "Path to the YAML config")
	seedFlag   = flag.Int64("seed", 0, "Apple placement seed; 0 seeds from the clock")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wormgo: %v\n", err)
		os.Exit(1)
	}

	// The terminal is in raw mode while the game runs; diagnostics go to
	// a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wormgo: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logging.New(logOut, logging.ParseLevel(cfg.Log.Level))

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wormgo: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "wormgo: screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Restore the terminal before the stack trace lands on it.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "wormgo crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	events := event.NewQueue()
	router := event.NewRouter(events)
	clock := engine.NewMonotonicTimeProvider()
	pulse := engine.NewTickerPulse(cfg.Render.RefreshRate)
	defer pulse.Stop()

	// The animator and controller reference each other: the controller is
	// the logic callback, the animator is the controller's tick-rate
	// knob. The closures resolve the cycle; neither runs before Start.
	var (
		controller   *game.Controller
		orchestrator *render.Orchestrator
	)
	animator := engine.NewAnimator(
		cfg.Tick.BaseRate,
		engine.LogicFunc(func(frame uint64) { controller.Frame(frame) }),
		engine.RendererFunc(func(frame uint64) { orchestrator.RenderFrame(frame) }),
		pulse,
		log,
	)

	controller = game.New(cfg, animator, events, log, seed)

	surface := term.NewSurface(screen, cfg.Board.Scale)
	meter := engine.NewFPSMeter(clock)
	orchestrator = render.NewOrchestrator(surface, controller, meter)
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

	log.Info("wormgo starting: %dx%d px, scale %d, %.2f fps baseline, seed %d",
		cfg.Board.Width, cfg.Board.Height, cfg.Board.Scale, cfg.Tick.BaseRate, seed)

	animator.Start()
	defer animator.Stop()

	// Blocks until the player quits.
	term.RunInput(screen, controller.HandleKey)
}
