package ppu

// masterPalette is the standard 64-entry NES RGB color table, carried
// over from the teacher's pkg/ppu/palette.go master palette values.
var masterPalette = [64][3]uint8{
	{84, 84, 84}, {0, 30, 116}, {8, 16, 144}, {48, 0, 136},
	{68, 0, 100}, {92, 0, 48}, {84, 4, 0}, {60, 24, 0},
	{32, 42, 0}, {8, 58, 0}, {0, 64, 0}, {0, 60, 0},
	{0, 50, 60}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	{152, 150, 152}, {8, 76, 196}, {48, 50, 236}, {92, 30, 228},
	{136, 20, 176}, {160, 20, 100}, {152, 34, 32}, {120, 60, 0},
	{84, 90, 0}, {40, 114, 0}, {8, 124, 0}, {0, 118, 40},
	{0, 102, 120}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	{236, 238, 236}, {76, 154, 236}, {120, 124, 236}, {176, 98, 236},
	{228, 84, 236}, {236, 88, 180}, {236, 106, 100}, {212, 136, 32},
	{160, 170, 0}, {116, 196, 0}, {76, 208, 32}, {56, 204, 108},
	{56, 180, 204}, {60, 60, 60}, {0, 0, 0}, {0, 0, 0},
	{236, 238, 236}, {168, 204, 236}, {188, 188, 236}, {212, 178, 236},
	{236, 174, 236}, {236, 174, 212}, {236, 180, 176}, {228, 196, 144},
	{204, 210, 120}, {180, 222, 120}, {168, 226, 144}, {152, 226, 180},
	{160, 214, 228}, {160, 162, 160}, {0, 0, 0}, {0, 0, 0},
}

// foldPaletteAddr collapses the four background-color mirror pairs
// $10/$14/$18/$1C onto $00/$04/$08/$0C. This is a real piece of NES
// silicon, not an emulation shortcut: those two address ranges are
// literally the same memory cell, so the fold is symmetric on both
// read and write — the only way two successive palette accesses
// (write $3F10, read $3F00) can observe the same byte.
func foldPaletteAddr(addr uint16) uint16 {
	a := addr & 0x1F
	if a&0x13 == 0x10 {
		a &^= 0x10
	}
	return a
}

// PaletteManager holds the 32-byte palette RAM, grounded on the
// teacher's PaletteManager in pkg/ppu/palette.go.
type PaletteManager struct {
	ram [32]uint8
}

// NewPaletteManager returns palette RAM zeroed, per spec.md §3's
// lifecycle contract ("palette are zero-filled").
func NewPaletteManager() *PaletteManager {
	return &PaletteManager{}
}

// Read returns the palette byte at addr, applying the mirror fold.
func (p *PaletteManager) Read(addr uint16) uint8 {
	return p.ram[foldPaletteAddr(addr)]
}

// Write stores a palette byte at addr, applying the mirror fold.
func (p *PaletteManager) Write(addr uint16, value uint8) {
	p.ram[foldPaletteAddr(addr)] = value
}

// Snapshot copies the 32 palette bytes for inclusion in a Frame.
func (p *PaletteManager) Snapshot() [32]uint8 {
	return p.ram
}

// RGB looks up a 6-bit NES color index in the master palette.
func RGB(colorIndex uint8) (r, g, b uint8) {
	c := masterPalette[colorIndex&0x3F]
	return c[0], c[1], c[2]
}
