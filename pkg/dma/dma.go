// Package dma implements OAM DMA: a write to $4014 arms a 256-byte
// transfer from CPU work RAM into PPU OAM, and stalls the CPU for 514
// cycles while it runs (spec.md §4.5).
package dma

import "github.com/nesgones/nesgones/pkg/logger"

// CPUReader is the slice of the CPU bus DMA needs to pull source bytes
// from; it is satisfied by the CPU bus's Read, including its mirroring.
type CPUReader interface {
	Read(addr uint16) uint8
}

// OAMWriter is the slice of the PPU DMA writes into.
type OAMWriter interface {
	OAMWrite(index uint8, value uint8)
}

// StallCycles is the canonical CPU stall charged for an OAM DMA
// transfer. Real hardware charges 513 or 514 depending on whether the
// transfer starts on an odd CPU cycle; this core uses the single
// figure spec.md §4.5 calls "the canonical figure," uniformly.
const StallCycles = 514

// Unit is the OAM DMA controller living inside the CPU bus.
type Unit struct {
	pending bool
	page    uint8
}

// New returns a disarmed DMA unit.
func New() *Unit {
	return &Unit{}
}

// Write arms the unit with the source page (page<<8 is the source base
// address); the actual copy happens on the next Run call.
func (u *Unit) Write(page uint8) {
	u.page = page
	u.pending = true
	logger.DMA("armed: page=$%02X00", page)
}

// Pending reports whether a transfer is armed and waiting to run.
func (u *Unit) Pending() bool { return u.pending }

// Run copies 256 bytes from work RAM at page<<8 into PPU OAM indexes
// 0-255 via OAMWrite, which writes by index and leaves the PPU's
// OAMADDR cursor untouched, then disarms.
func (u *Unit) Run(cpu CPUReader, oam OAMWriter) {
	base := uint16(u.page) << 8
	for i := 0; i < 256; i++ {
		value := cpu.Read(base + uint16(i))
		oam.OAMWrite(uint8(i), value)
	}
	u.pending = false
	logger.DMA("transfer complete: page=$%02X00", u.page)
}
