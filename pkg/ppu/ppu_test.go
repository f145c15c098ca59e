package ppu

import (
	"testing"

	"github.com/nesgones/nesgones/pkg/interrupt"
)

type fakeCart struct {
	chr [0x2000]uint8
}

func (f *fakeCart) ReadCHR(addr uint16) uint8        { return f.chr[addr&0x1FFF] }
func (f *fakeCart) WriteCHR(addr uint16, value uint8) { f.chr[addr&0x1FFF] = value }

func newTestPPU() *PPU {
	p := New(&fakeCart{}, MirrorHorizontal, interrupt.New())
	p.Reset()
	return p
}

func TestPaletteMirrorViaRegisters(t *testing.T) {
	p := newTestPPU()

	p.WriteRegister(6, 0x3F) // address high
	p.WriteRegister(6, 0x10) // address low -> $3F10
	p.WriteRegister(7, 0x2A) // data write

	p.WriteRegister(6, 0x3F)
	p.WriteRegister(6, 0x10)
	if got := p.ReadRegister(7); got != 0x2A {
		t.Errorf("read $3F10 = %02X, want 2A", got)
	}

	p.WriteRegister(6, 0x3F)
	p.WriteRegister(6, 0x00)
	if got := p.ReadRegister(7); got != 0x2A {
		t.Errorf("read $3F00 = %02X, want 2A (mirror of $3F10)", got)
	}
}

func TestStatusReadClearsVBlankAndToggle(t *testing.T) {
	p := newTestPPU()
	p.status = statusVBlank
	p.writeToggle = true

	got := p.ReadRegister(2)
	if got&statusVBlank == 0 {
		t.Error("status read should return vblank bit set")
	}
	if p.status&statusVBlank != 0 {
		t.Error("reading status should clear vblank")
	}
	if p.writeToggle {
		t.Error("reading status should reset the write toggle")
	}
}

func TestOAMDataWritePostIncrements(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(3, 0x05) // OAMADDR = 5
	p.WriteRegister(4, 0x99)
	if p.OAM[5] != 0x99 {
		t.Errorf("OAM[5] = %02X, want 99", p.OAM[5])
	}
	if p.oamAddr != 6 {
		t.Errorf("oamAddr = %d, want 6", p.oamAddr)
	}
}

func TestOAMWriteDirectIndexBypassesCursor(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(3, 0xFF) // OAMADDR far from index 0
	p.OAMWrite(0, 0x11)
	if p.OAM[0] != 0x11 {
		t.Errorf("OAM[0] = %02X, want 11", p.OAM[0])
	}
	if p.oamAddr != 0xFF {
		t.Error("OAMWrite must not disturb the OAMADDR cursor")
	}
}

func TestRunEmitsExactlyOneFramePerScan(t *testing.T) {
	p := newTestPPU()
	dotsPerFrame := 341 * 262
	if f := p.Run(dotsPerFrame - 1); f != nil {
		t.Fatal("frame emitted before the pre-render scanline finished")
	}
	if f := p.Run(1); f == nil {
		t.Fatal("expected a frame on the final dot")
	}
}

func TestVBlankAssertsNMIWhenEnabled(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(0, 0x80) // NMI enable
	p.Run(341*241 + 2) // ticks through scanline 241 dot 1
	if !p.Lines.ConsumeNMI() {
		t.Error("expected NMI asserted at scanline 241 dot 1")
	}
}

func TestBackgroundDisabledYieldsNoTiles(t *testing.T) {
	p := newTestPPU()
	p.Run(341 * 241) // well past the first background build point
	if len(p.background) != 0 {
		t.Errorf("background tiles = %d, want 0 when mask bg-enable is off", len(p.background))
	}
}
