package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solar-sim/audio"
	"github.com/lixenwraith/solar-sim/constant"
	"github.com/lixenwraith/solar-sim/input"
	"github.com/lixenwraith/solar-sim/render"
	"github.com/lixenwraith/solar-sim/sim"
)

var fpsFlag = flag.Int("fps", constant.DefaultFPS, "Target rendering frame rate")

func main() {
	flag.Parse()

	fps := *fpsFlag
	if fps < 1 {
		fps = 1
	}

	// Configuration faults are fatal before any terminal state changes
	ctrl, err := sim.New(sim.DefaultSolarSystem())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid simulation configuration: %v\n", err)
		os.Exit(1)
	}

	// Audio is optional; initialize before raw mode so the warning is
	// visible on a sane terminal
	sound, err := audio.NewEngine()
	if err != nil {
		fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: the deferred Fini below restores the terminal
	// first (LIFO), then the panic and stack land on a readable stderr
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\x1b[31mSOLAR-SIM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	renderer := render.New(screen)

	eventChan := make(chan tcell.Event, constant.EventChanSize)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch it := input.Translate(ev); it.Type {
			case input.IntentQuit:
				return

			case input.IntentTogglePause:
				sound.PlayPause(ctrl.TogglePause())

			case input.IntentSpeedUp:
				ctrl.IncreaseSpeed()
				sound.PlaySpeed(true)

			case input.IntentSpeedDown:
				ctrl.DecreaseSpeed()
				sound.PlaySpeed(false)

			case input.IntentSelect:
				tf := renderer.Transform()
				if b := ctrl.SelectAt(tf.Pointer(it.X, it.Y), tf.Project); b != nil {
					sound.PlaySelect()
				}

			case input.IntentDeselect:
				ctrl.Deselect()

			case input.IntentResize:
				renderer.Resize()
			}

		case <-ticker.C:
			// Tick, then render: the renderer only ever observes a
			// fully completed step
			ctrl.Tick()
			renderer.Frame(ctrl, fps)
		}
	}
}
