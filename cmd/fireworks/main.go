package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/constants"
	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/scene"
	"github.com/lixenwraith/fireworks/terminal"
	"github.com/lixenwraith/fireworks/vmath"
)

var (
	demoFlag      = flag.Int("demo", 0, "Built-in demo number")
	sceneFlag     = flag.String("scene", "", "YAML scene file, overrides -demo")
	loopFlag      = flag.Bool("loop", false, "Replay the show once every firework is gone")
	gradientFlag  = flag.Bool("gradient", false, "Fade colors over particle lifetime (best on opaque black terminals)")
	dynamicFlag   = flag.Bool("dynamic", false, "Endless random bursts sized to the terminal")
	randomFlag    = flag.Bool("random-colors", false, "Dynamic bursts use generated palettes")
	cjkFlag       = flag.Bool("cjk", false, "Double-width cells for terminals that render CJK glyphs wide")
	muteFlag      = flag.Bool("mute", false, "Disable sound")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	fpsFlag       = flag.Int("fps", int(time.Second/constants.FrameUpdateInterval), "Frames per second")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 for time based")
)

func main() {
	// Restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Usage = usage
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fireworks: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(flag.CommandLine.Output(), "\nDemos:\n")
	for i, name := range scene.DemoNames {
		fmt.Fprintf(flag.CommandLine.Output(), "  %d  %s\n", i, name)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nKeys: q/Esc quit, r restart, p/space pause\n")
}

func run() error {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}
	if *sceneFlag == "" && !*dynamicFlag && (*demoFlag < 0 || *demoFlag >= len(scene.DemoNames)) {
		return fmt.Errorf("%w: %d (have 0-%d)", scene.ErrUnknownDemo, *demoFlag, len(scene.DemoNames)-1)
	}
	fps := min(max(*fpsFlag, constants.MinFPS), constants.MaxFPS)

	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	screen := terminal.NewScreen(ts, *cjkFlag)
	screen.SetColorMode(resolveColorMode(*colorModeFlag))
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	terminal.RegisterCrashScreen(screen)

	rng := newRand(*seedFlag)
	width, height := screen.Size()
	compositor := render.NewCompositor(width, height, *cjkFlag, rng)
	manager := firework.NewManager()

	show, err := engine.NewShow(engine.ShowOptions{
		Manager:    manager,
		Compositor: compositor,
		Display:    screen,
		Feeder:     scene.NewGenerator(rng, *gradientFlag).WithRandomPalettes(*randomFlag),
	})
	if err != nil {
		return err
	}

	plotW, plotH := compositor.PlotSize()
	if err := populate(manager, rng, show.Now(), plotW, plotH); err != nil {
		return err
	}
	log.Printf("fireworks: %d fireworks, install=%v loop=%v, plot %dx%d at %d fps",
		manager.Len(), manager.Install(), manager.Loop(), plotW, plotH, fps)

	if !*muteFlag {
		sm := audio.NewSoundManager(audio.LoadAudioConfig())
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: unavailable, continuing muted: %v", err)
		} else {
			defer sm.Cleanup()
			manager.SetListener(sm)
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-screen.Events():
			if !handleEvent(show, ev) {
				return nil
			}
		case <-ticker.C:
			if err := show.Step(); err != nil {
				if errors.Is(err, terminal.ErrClosed) {
					return nil
				}
				return err
			}
		}
	}
}

// populate fills the manager from the scene file or a demo. Dynamic installs start
// empty and are fed by the show.
func populate(m *firework.Manager, rng *rand.Rand, now time.Time, plotW, plotH int) error {
	center := vmath.V(float64(plotW)/2, float64(plotH)/2)
	m.SetLoop(*loopFlag)

	switch {
	case *sceneFlag != "":
		f, err := scene.Load(*sceneFlag, scene.ParseOptions{
			Now:      now,
			Center:   center,
			Gradient: *gradientFlag,
			Rand:     rng,
		})
		if err != nil {
			return err
		}
		m.Add(f.Fireworks...)
		m.SetLoop(f.Loop || *loopFlag)
		m.SetInstall(f.Install)
		return nil

	case *dynamicFlag:
		m.SetInstall(firework.DynamicInstall)
		return nil
	}

	fws, err := scene.Demo(*demoFlag, scene.DemoOptions{
		Now:      now,
		Center:   center,
		Delay:    700 * time.Millisecond,
		Gradient: *gradientFlag,
		Rand:     rng,
	})
	if err != nil {
		return err
	}
	m.Add(fws...)
	return nil
}

// showControl is the part of engine.Show driven by input
type showControl interface {
	Resize(width, height int)
	Restart()
	TogglePause() bool
}

// handleEvent applies one terminal event and reports whether to keep running
func handleEvent(s showControl, ev terminal.Event) bool {
	switch ev.Kind {
	case terminal.EventClosed:
		return false
	case terminal.EventResize:
		s.Resize(ev.Width, ev.Height)
	case terminal.EventKey:
		switch ev.Key {
		case terminal.KeyEscape, terminal.KeyCtrlC:
			return false
		case terminal.KeyRune:
			switch ev.Rune {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				s.Restart()
			case 'p', 'P', ' ':
				s.TogglePause()
			}
		}
	}
	return true
}

func resolveColorMode(flagValue string) terminal.ColorMode {
	switch flagValue {
	case "256":
		return terminal.ColorMode256
	case "truecolor", "true", "24bit":
		return terminal.ColorModeTrueColor
	}
	return terminal.DetectColorMode()
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
