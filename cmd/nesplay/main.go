// Command nesplay is a thin SDL2 demo host for the core: it loads a
// cartridge, drives System.StepFrame() in a loop, blits the returned
// RGBA buffer to a window, and turns keyboard state into an input.State
// snapshot once per frame. Grounded on the teacher's cmd/gones/main.go
// and pkg/gui/gui.go, trimmed of the APU/audio-device wiring this core
// doesn't carry.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/nesgones/nesgones/pkg/input"
	"github.com/nesgones/nesgones/pkg/logger"
	"github.com/nesgones/nesgones/pkg/nes"
)

const (
	windowScale = 3
	windowTitle = "nesplay"

	// 1789773 / 29780.5 Hz, the NTSC NES frame rate.
	targetFPS = 60.0988
)

var frameTime = time.Duration(float64(time.Second) / targetFPS)

func main() {
	var (
		logLevel = flag.String("log-level", "info", "log level (off, error, warn, info, debug, trace)")
		logFile  = flag.String("log-file", "", "log file path (empty for stdout)")
		cpuLog   = flag.Bool("cpu-log", false, "enable CPU instruction logging")
		ppuLog   = flag.Bool("ppu-log", false, "enable PPU logging")
		dmaLog   = flag.Bool("dma-log", false, "enable DMA logging")
		headless = flag.Bool("headless", false, "run without opening a window, for smoke-testing a ROM")
		frames   = flag.Int("frames", 600, "frames to run in headless mode")
	)

	flag.Usage = func() {
		fmt.Printf("Usage: %s [options] <rom_file>\n\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Println("\nControls:")
		fmt.Println("  Z - A button      X - B button")
		fmt.Println("  A - Select        S - Start")
		fmt.Println("  Arrow keys - D-pad")
		fmt.Println("  ESC - Quit")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	if err := logger.Init(logger.LevelFromString(*logLevel), *logFile); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Close()
	logger.EnableCPU(*cpuLog)
	logger.EnablePPU(*ppuLog)
	logger.EnableDMA(*dmaLog)

	f, err := os.Open(romPath)
	if err != nil {
		log.Fatalf("open rom: %v", err)
	}
	defer f.Close()

	sys, err := nes.Load(f)
	if err != nil {
		log.Fatalf("load cartridge: %v", err)
	}
	logger.Info("loaded %s", romPath)

	if *headless {
		runHeadless(sys, *frames)
		return
	}
	if err := runWindowed(sys); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func runHeadless(sys *nes.System, frames int) {
	start := time.Now()
	for i := 0; i < frames; i++ {
		sys.StepFrame()
	}
	logger.Info("ran %d frames in %v", frames, time.Since(start))
}

func runWindowed(sys *nes.System) error {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		256*windowScale, 256*windowScale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer renderer.Destroy()
	renderer.SetDrawBlendMode(sdl.BLENDMODE_NONE)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, 256, 256)
	if err != nil {
		return err
	}
	defer texture.Destroy()
	texture.SetBlendMode(sdl.BLENDMODE_NONE)

	state := input.State{}
	running := true
	frameStart := time.Now()
	var frameCount int

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
				applyKey(&state, e)
			}
		}

		sys.LatchButtons(state)
		pixels := sys.StepFrame()

		texture.Update(nil, unsafe.Pointer(&pixels[0]), 256*4)
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		frameCount++
		targetEnd := frameStart.Add(time.Duration(frameCount) * frameTime)
		if now := time.Now(); now.Before(targetEnd) {
			time.Sleep(targetEnd.Sub(now))
		}
	}
	return nil
}

// applyKey updates state in place per the canonical key map; repeat
// events are harmless since each branch just re-sets the same field.
func applyKey(state *input.State, e *sdl.KeyboardEvent) {
	pressed := e.State == sdl.PRESSED
	switch e.Keysym.Sym {
	case sdl.K_z:
		state.A = pressed
	case sdl.K_x:
		state.B = pressed
	case sdl.K_a:
		state.Select = pressed
	case sdl.K_s:
		state.Start = pressed
	case sdl.K_UP:
		state.Up = pressed
	case sdl.K_DOWN:
		state.Down = pressed
	case sdl.K_LEFT:
		state.Left = pressed
	case sdl.K_RIGHT:
		state.Right = pressed
	}
}
