// Package ppu implements the NES picture processing unit: the
// scanline/dot state machine, VRAM/OAM/palette memory, nametable
// mirroring, and background/sprite list construction that feeds the
// renderer. Grounded on the teacher's pkg/ppu/ppu.go, restructured
// around a batched Run(cycles) entry point instead of a per-dot Step
// call from the system loop.
package ppu

import (
	"github.com/nesgones/nesgones/pkg/interrupt"
	"github.com/nesgones/nesgones/pkg/logger"
)

// Cartridge is the slice of cartridge behavior the PPU needs: CHR
// memory access. Mirroring is read once at construction time since
// it never changes for the NROM mapper this core supports.
type Cartridge interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, value uint8)
}

// Mirroring selects how the PPU folds the 2KiB physical nametable
// VRAM across its 4KiB logical window.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

// Control register ($2000) bits.
const (
	ctrlNMIEnable    = 1 << 7
	ctrlSpritePatTbl = 1 << 3
	ctrlBgPatTbl     = 1 << 4
	ctrlIncrement32  = 1 << 2
	ctrlNametableMsk = 0x03
)

// Mask register ($2001) bits.
const (
	maskBgEnable     = 1 << 3
	maskSpriteEnable = 1 << 4
)

// Status register ($2002) bits.
const (
	statusVBlank      = 1 << 7
	statusSprite0Hit  = 1 << 6
	statusOverflow    = 1 << 5
)

// PPU is one picture processing unit instance.
type PPU struct {
	Cartridge Cartridge
	Mirroring Mirroring
	Lines     *interrupt.Lines

	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	OAM     [256]uint8

	vram [2048]uint8
	pal  *PaletteManager

	vramAddr   uint16
	readBuffer uint8
	writeToggle bool
	scrollX    uint8
	scrollY    uint8

	dot      int
	scanline int
	Frame    int

	background []BackgroundTile
	sprites    []SpriteInfo
}

// New returns a PPU wired to a cartridge's CHR memory, its mirroring
// mode, and the interrupt lines it shares with the CPU.
func New(cart Cartridge, mirroring Mirroring, lines *interrupt.Lines) *PPU {
	return &PPU{
		Cartridge: cart,
		Mirroring: mirroring,
		Lines:     lines,
		pal:       NewPaletteManager(),
	}
}

// Reset zeroes registers, counters, OAM, VRAM, and palette RAM.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.OAM = [256]uint8{}
	p.vram = [2048]uint8{}
	p.pal = NewPaletteManager()
	p.vramAddr, p.readBuffer = 0, 0
	p.writeToggle = false
	p.scrollX, p.scrollY = 0, 0
	p.dot, p.scanline, p.Frame = 0, 0, 0
	p.background, p.sprites = nil, nil
}

// Run advances the PPU by the given number of dots (called with
// 3*cpu_cycles by the system loop) and returns a completed Frame
// exactly once, on the dot that finishes the pre-render scanline.
func (p *PPU) Run(cycles int) *Frame {
	var completed *Frame
	for i := 0; i < cycles; i++ {
		if f := p.tick(); f != nil {
			completed = f
		}
	}
	return completed
}

func (p *PPU) tick() *Frame {
	var frame *Frame

	if p.scanline == 0 && p.dot == 0 {
		p.buildSprites()
	}
	if p.scanline >= 0 && p.scanline < 240 && p.dot == 1 && p.scanline%8 == 0 {
		p.buildBackgroundRow(p.scanline / 8)
	}
	if p.scanline >= 0 && p.scanline < 240 && p.dot == 2 {
		p.checkSprite0()
	}
	if p.scanline == 241 && p.dot == 1 {
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 {
			p.Lines.AssertNMI()
			logger.PPU("vblank NMI asserted at frame %d", p.Frame)
		}
	}
	if p.scanline == 261 && p.dot == 1 {
		p.status &^= statusVBlank | statusSprite0Hit | statusOverflow
	}

	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			p.Frame++
			frame = &Frame{
				Palette:    p.pal.Snapshot(),
				Background: p.background,
				Sprites:    p.sprites,
				ScrollX:    p.scrollX,
				ScrollY:    p.scrollY,
			}
		}
	}
	return frame
}

// ReadRegister handles a CPU read of $2000-$2007 (reg already folded
// mod 8 by the caller).
func (p *PPU) ReadRegister(reg uint8) uint8 {
	switch reg {
	case 2:
		v := p.status
		p.status &^= statusVBlank
		p.writeToggle = false
		return v
	case 4:
		return p.OAM[p.oamAddr]
	case 7:
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister handles a CPU write to $2000-$2007.
func (p *PPU) WriteRegister(reg uint8, value uint8) {
	switch reg {
	case 0:
		p.ctrl = value
	case 1:
		p.mask = value
	case 3:
		p.oamAddr = value
	case 4:
		p.OAM[p.oamAddr] = value
		p.oamAddr++
	case 5:
		if !p.writeToggle {
			p.scrollX = value
		} else {
			p.scrollY = value
		}
		p.writeToggle = !p.writeToggle
	case 6:
		if !p.writeToggle {
			p.vramAddr = uint16(value) << 8
		} else {
			p.vramAddr = (p.vramAddr & 0xFF00) | uint16(value)
		}
		p.writeToggle = !p.writeToggle
	case 7:
		p.writeData(value)
	}
}

// OAMWrite is the direct 0-indexed write the OAM DMA unit uses; it
// bypasses the OAMADDR cursor entirely, matching spec.md §8 scenario
// 4's literal "OAM[i] == i" contract rather than the CPU-register
// write path.
func (p *PPU) OAMWrite(index uint8, value uint8) {
	p.OAM[index] = value
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&ctrlIncrement32 != 0 {
		return 32
	}
	return 1
}

func (p *PPU) readData() uint8 {
	addr := p.vramAddr
	var value uint8
	if addr >= 0x3F00 {
		value = p.pal.Read(addr)
		p.readBuffer = p.readVRAM(addr - 0x1000)
	} else {
		value = p.readBuffer
		p.readBuffer = p.readVRAM(addr)
	}
	p.vramAddr += p.vramIncrement()
	return value
}

func (p *PPU) writeData(value uint8) {
	addr := p.vramAddr
	switch {
	case addr < 0x2000:
		p.Cartridge.WriteCHR(addr, value)
	case addr < 0x3F00:
		p.vram[p.mirrorNametable(addr)] = value
	default:
		p.pal.Write(addr, value)
	}
	p.vramAddr += p.vramIncrement()
}

func (p *PPU) readVRAM(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return p.Cartridge.ReadCHR(addr)
	case addr < 0x3F00:
		return p.vram[p.mirrorNametable(addr)]
	default:
		return p.pal.Read(addr)
	}
}

// mirrorNametable folds the 4KiB logical nametable window ($2000-$2FFF,
// with $3000-$3EFF mirroring it) down onto the 2KiB physical VRAM per
// the cartridge's mirroring mode.
func (p *PPU) mirrorNametable(addr uint16) uint16 {
	a := (addr - 0x2000) % 0x1000
	table := a / 0x0400
	offset := a % 0x0400
	var physicalTable uint16
	if p.Mirroring == MirrorHorizontal {
		physicalTable = table / 2
	} else {
		physicalTable = table % 2
	}
	return physicalTable*0x0400 + offset
}

func (p *PPU) nametableBase() uint16 {
	return 0x2000 + uint16(p.ctrl&ctrlNametableMsk)*0x0400
}

// buildBackgroundRow assembles 33 tile-columns of background data for
// visible scanline row `row` (0..29), per spec.md §4.2's "once per
// eight visible scanlines" rule.
func (p *PPU) buildBackgroundRow(row int) {
	if row == 0 {
		p.background = p.background[:0]
	}
	if p.mask&maskBgEnable == 0 {
		return
	}
	patternBase := uint16(0)
	if p.ctrl&ctrlBgPatTbl != 0 {
		patternBase = 0x1000
	}
	base := p.nametableBase()
	tileY := row + int(p.scrollY)/8
	for col := 0; col < 33; col++ {
		tileX := col + int(p.scrollX)/8
		nametableAddr := base + uint16((tileY%30)*32+(tileX%32))
		index := p.readVRAM(nametableAddr)

		attrAddr := base + 0x03C0 + uint16((tileY/4)*8+(tileX/4))
		attrByte := p.readVRAM(attrAddr)
		quadrantShift := uint((tileY%4)/2*4 + (tileX%4)/2*2)
		paletteID := (attrByte >> quadrantShift) & 0x03

		patternAddr := patternBase + uint16(index)*16
		lo := p.Cartridge.ReadCHR(patternAddr + uint16(tileY%8))
		hi := p.Cartridge.ReadCHR(patternAddr + uint16(tileY%8) + 8)

		p.background = append(p.background, BackgroundTile{
			PatternLo: lo,
			PatternHi: hi,
			PaletteID: paletteID,
		})
	}
}

// buildSprites walks OAM once per frame and resolves the active
// sprite list the renderer composites on top of the background.
func (p *PPU) buildSprites() {
	p.sprites = p.sprites[:0]
	if p.mask&maskSpriteEnable == 0 {
		return
	}
	patternBase := uint16(0)
	if p.ctrl&ctrlSpritePatTbl != 0 {
		patternBase = 0x1000
	}
	for i := 0; i < 64; i++ {
		y := p.OAM[i*4]
		tileIndex := p.OAM[i*4+1]
		attr := p.OAM[i*4+2]
		x := p.OAM[i*4+3]
		if y >= 0xEF {
			continue
		}
		patternAddr := patternBase + uint16(tileIndex)*16
		lo := p.Cartridge.ReadCHR(patternAddr)
		hi := p.Cartridge.ReadCHR(patternAddr + 8)
		p.sprites = append(p.sprites, SpriteInfo{
			X:         x,
			Y:         y,
			PatternLo: lo,
			PatternHi: hi,
			PaletteID: attr & SpritePaletteMask,
			FlipH:     attr&SpriteFlipHorizontal != 0,
			FlipV:     attr&SpriteFlipVertical != 0,
			Priority:  attr&SpritePriority != 0,
			OAMIndex:  i,
		})
	}
}

// Sprite0Hit reports whether the coarse sprite-0 hit condition is
// met for the current scanline — a Y match between the current
// scanline and OAM[0]'s Y with both background and sprites enabled.
// spec.md §9 documents this as a known-coarse approximation of the
// real per-pixel-opacity rule.
func (p *PPU) Sprite0Hit() bool {
	if p.mask&maskBgEnable == 0 || p.mask&maskSpriteEnable == 0 {
		return false
	}
	return p.scanline == int(p.OAM[0])
}

// checkSprite0 is called once per scanline tick to latch the status
// bit when the coarse condition holds.
func (p *PPU) checkSprite0() {
	if p.Sprite0Hit() {
		p.status |= statusSprite0Hit
	}
}
