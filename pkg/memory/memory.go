// Package memory implements the CPU bus fabric: 2KiB work RAM, the
// PPU register window, the OAM DMA trigger, the controller port, and
// the PRG image mapping. Grounded on the teacher's pkg/memory/memory.go,
// restructured around the cartridge/ppu/input/dma packages this core
// actually has instead of the teacher's APU and multi-mapper surface.
package memory

import (
	"github.com/nesgones/nesgones/pkg/cartridge"
	"github.com/nesgones/nesgones/pkg/dma"
	"github.com/nesgones/nesgones/pkg/input"
	"github.com/nesgones/nesgones/pkg/logger"
)

// PPUPort is the slice of PPU behavior the CPU bus forwards register
// traffic to.
type PPUPort interface {
	ReadRegister(reg uint8) uint8
	WriteRegister(reg uint8, value uint8)
	OAMWrite(index uint8, value uint8)
}

// CPUBus is the 16-bit address space the CPU sees.
type CPUBus struct {
	RAM        [2048]uint8
	PPU        PPUPort
	Controller *input.Controller
	Cartridge  *cartridge.Cartridge
	DMA        *dma.Unit
}

// NewCPUBus wires a bus to its PPU, controller, cartridge, and DMA
// unit. All four are required; the core has no optional-peripheral
// mode.
func NewCPUBus(ppu PPUPort, controller *input.Controller, cart *cartridge.Cartridge, d *dma.Unit) *CPUBus {
	return &CPUBus{PPU: ppu, Controller: controller, Cartridge: cart, DMA: d}
}

// Read dispatches a CPU read per spec.md §3's memory map. Unmapped
// addresses return 0 rather than faulting.
func (b *CPUBus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.RAM[addr&0x07FF]
	case addr < 0x4000:
		return b.PPU.ReadRegister(uint8((addr - 0x2000) % 8))
	case addr == 0x4016:
		return b.Controller.Read()
	case addr < 0x4020:
		return 0
	case addr < 0x8000:
		return 0
	default:
		return b.Cartridge.ReadPRG(addr - 0x8000)
	}
}

// Write dispatches a CPU write. $4014 arms the OAM DMA unit with the
// written page; the actual 256-byte copy and CPU stall are driven by
// the system loop, not from here, since the bus has no cycle budget
// of its own to charge.
func (b *CPUBus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.RAM[addr&0x07FF] = value
	case addr < 0x4000:
		b.PPU.WriteRegister(uint8((addr-0x2000)%8), value)
	case addr == 0x4014:
		logger.DMA("CPU wrote $4014 = $%02X, arming OAM DMA", value)
		b.DMA.Write(value)
	case addr == 0x4016:
		b.Controller.Write(value)
	default:
		// $4000-$4013/$4015/$4017 (APU/IO, out of scope) and
		// $4020-$7FFF (open bus): silent no-op, per spec.md §7.
	}
}
