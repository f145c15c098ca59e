// Package nes wires the CPU, PPU, buses, DMA unit, and controller
// into the top-level System and drives the frame loop. Grounded on
// the teacher's pkg/nes/nes.go System type, trimmed of the APU/GUI
// wiring this core doesn't carry and rebuilt around step_frame's
// documented DMA-vs-CPU-step alternation.
package nes

import (
	"io"

	"github.com/nesgones/nesgones/pkg/cartridge"
	"github.com/nesgones/nesgones/pkg/cpu"
	"github.com/nesgones/nesgones/pkg/dma"
	"github.com/nesgones/nesgones/pkg/input"
	"github.com/nesgones/nesgones/pkg/interrupt"
	"github.com/nesgones/nesgones/pkg/logger"
	"github.com/nesgones/nesgones/pkg/memory"
	"github.com/nesgones/nesgones/pkg/ppu"
	"github.com/nesgones/nesgones/pkg/renderer"
)

// System is the emulator core's public surface: step_frame() and
// latch_buttons(state), plus the Cycles/FrameCount counters a demo
// host can use for an FPS readout or determinism tests without the
// core exposing any new operation.
type System struct {
	CPU        *cpu.CPU
	PPU        *ppu.PPU
	Bus        *memory.CPUBus
	DMA        *dma.Unit
	Controller *input.Controller
	Cartridge  *cartridge.Cartridge

	Cycles     int
	FrameCount int
}

// Load parses a cartridge image and returns a System reset and ready
// to run. Cartridge parsing itself is explicitly out of the core's
// scope per spec.md §1; this is the one place the core still has to
// call into it to get something to run.
func Load(r io.Reader) (*System, error) {
	cart, err := cartridge.Load(r)
	if err != nil {
		return nil, err
	}
	return New(cart), nil
}

// New builds a System around an already-loaded cartridge.
func New(cart *cartridge.Cartridge) *System {
	lines := interrupt.New()
	controller := input.New()
	dmaUnit := dma.New()

	mirroring := ppu.MirrorHorizontal
	if cart.Mirroring == cartridge.MirrorVertical {
		mirroring = ppu.MirrorVertical
	}
	p := ppu.New(cart, mirroring, lines)
	bus := memory.NewCPUBus(p, controller, cart, dmaUnit)
	c := cpu.New(bus, lines)

	sys := &System{
		CPU:        c,
		PPU:        p,
		Bus:        bus,
		DMA:        dmaUnit,
		Controller: controller,
		Cartridge:  cart,
	}
	sys.Reset()
	return sys
}

// Reset resets the CPU and PPU to power-on state.
func (s *System) Reset() {
	s.CPU.Reset()
	s.PPU.Reset()
	logger.Info("system reset, PC=$%04X", s.CPU.PC)
}

// LatchButtons delivers the host's current eight-button snapshot to
// the controller port; callers invoke this once between frames.
func (s *System) LatchButtons(state input.State) {
	s.Controller.Latch(state)
}

// StepFrame runs CPU instructions (and any armed DMA transfer)
// against the PPU's 3x-dot clock until the PPU completes a frame,
// then renders it and returns. Per spec.md §4.7's loop: an armed DMA
// preempts the next CPU step and its 514-cycle charge is fed to the
// PPU like any other cycle count.
func (s *System) StepFrame() []byte {
	for {
		var cycles int
		if s.DMA.Pending() {
			s.DMA.Run(s.Bus, s.PPU)
			cycles = dma.StallCycles
		} else {
			cycles = s.CPU.Step()
		}
		s.Cycles += cycles

		if frame := s.PPU.Run(cycles * 3); frame != nil {
			s.FrameCount++
			return renderer.Render(frame)
		}
	}
}
