package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sushi-belt/asset"
	"github.com/lixenwraith/sushi-belt/audio"
	"github.com/lixenwraith/sushi-belt/config"
	"github.com/lixenwraith/sushi-belt/constants"
	"github.com/lixenwraith/sushi-belt/core"
	"github.com/lixenwraith/sushi-belt/engine"
	"github.com/lixenwraith/sushi-belt/game"
	"github.com/lixenwraith/sushi-belt/input"
	"github.com/lixenwraith/sushi-belt/render"
	"github.com/lixenwraith/sushi-belt/status"
)

var (
	configFlag     = flag.String("config", "", "Path to a TOML config file")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/ and show metrics")
	difficultyFlag = flag.Int("difficulty", 0, "Difficulty: 1 easy, 2 normal, 3 hard")
	motionFlag     = flag.String("motion", "", "Motion model: belt or orbit")
	seedFlag       = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	spriteFlag     = flag.String("sprite", "", "PNG to use as the hazard icon")
	muteFlag       = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if closer := setupLogging(cfg.Debug); closer != nil {
		defer closer.Close()
	}

	keyTable, err := input.DefaultKeyTable().WithBindings(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Key binding error: %v\n", err)
		os.Exit(1)
	}

	// Audio failure is not fatal
	sounds := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
			log.Printf("[Main] audio disabled: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}
	sounds.SetMuted(*muteFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetScreen(screen)
	defer func() {
		core.SetScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	icon := asset.NewHazardIcon()
	icon.Load(cfg.Asset.HazardSprite)

	reg := status.NewRegistry()
	renderer := render.NewRenderer(screen, icon, cfg)
	renderer.SetMuted(sounds.Muted())
	if cfg.Debug {
		renderer.SetDebug(reg)
	}

	keys := input.NewKeyState(cfg.RotateHold(), cfg.ReachHold())
	queue := engine.NewFrameQueue()
	ctl := game.NewController(cfg, game.Deps{
		Scheduler: queue,
		Renderer:  renderer,
		Controls:  keys,
		Keys:      keys,
		Sounds:    sounds,
		Status:    reg,
	})

	a := &app{
		screen:   screen,
		keyTable: keyTable,
		keys:     keys,
		queue:    queue,
		ctl:      ctl,
		renderer: renderer,
		sounds:   sounds,
		commands: make(chan input.Action, constants.EventChannelSize),
		resize:   make(chan struct{}, 1),
	}
	a.run(cfg.FrameInterval())

	log.Printf("[Main] exit: %s", strings.Join(reg.Snapshot(), " "))
}

// loadConfig reads the config file if given and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *difficultyFlag != 0 {
		cfg.Difficulty = *difficultyFlag
	}
	if *motionFlag != "" {
		cfg.Motion = *motionFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *spriteFlag != "" {
		cfg.Asset.HazardSprite = *spriteFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "flags")
	}
	return cfg, nil
}

// app owns the main loop; only its goroutine touches the controller and renderer
type app struct {
	screen   tcell.Screen
	keyTable *input.KeyTable
	keys     *input.KeyState
	queue    *engine.FrameQueue
	ctl      *game.Controller
	renderer *render.Renderer
	sounds   *audio.SoundManager

	commands chan input.Action
	resize   chan struct{}
}

// poll reads terminal events; held controls go straight to the key state
func (a *app) poll() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			action := a.keyTable.Lookup(ev)
			switch {
			case action == input.ActionNone:
			case action.Held():
				a.keys.Press(action, time.Now())
			default:
				a.commands <- action
			}
		case *tcell.EventResize:
			select {
			case a.resize <- struct{}{}:
			default:
			}
		}
	}
}

func (a *app) run(frameInterval time.Duration) {
	core.Go(a.poll)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case action := <-a.commands:
			if !a.handle(action) {
				a.ctl.Driver().Stop()
				return
			}
		case <-a.resize:
			a.screen.Sync()
		case now := <-ticker.C:
			if a.ctl.Playing() {
				a.queue.Fire(now)
			} else {
				a.renderer.RenderIdle(a.overlay())
			}
		}
	}
}

func (a *app) overlay() render.Overlay {
	return render.Overlay{
		Run:        a.ctl.Stats(),
		Difficulty: a.ctl.Difficulty(),
		Started:    a.ctl.Started(),
		GameOver:   a.ctl.GameOver(),
	}
}

// handle applies a one-shot command; false means quit
func (a *app) handle(action input.Action) bool {
	var err error
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionPause:
		err = a.ctl.Toggle()
	case input.ActionRestart:
		err = a.ctl.Restart()
	case input.ActionDifficultyEasy:
		a.setDifficulty(1)
	case input.ActionDifficultyNormal:
		a.setDifficulty(2)
	case input.ActionDifficultyHard:
		a.setDifficulty(3)
	case input.ActionToggleMute:
		muted := a.sounds.ToggleMute()
		a.renderer.SetMuted(muted)
		log.Printf("[Main] muted=%v", muted)
	}
	if err != nil {
		log.Printf("[Main] %s: %v", action, err)
	}
	return true
}

func (a *app) setDifficulty(d int) {
	if !a.ctl.SetDifficulty(d) {
		log.Printf("[Main] difficulty %d ignored while playing", d)
	}
}
