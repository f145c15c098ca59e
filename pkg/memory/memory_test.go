package memory

import (
	"bytes"
	"testing"

	"github.com/nesgones/nesgones/pkg/cartridge"
	"github.com/nesgones/nesgones/pkg/dma"
	"github.com/nesgones/nesgones/pkg/input"
)

type stubPPU struct {
	regs [8]uint8
}

func (s *stubPPU) ReadRegister(reg uint8) uint8         { return s.regs[reg] }
func (s *stubPPU) WriteRegister(reg uint8, value uint8) { s.regs[reg] = value }
func (s *stubPPU) OAMWrite(index uint8, value uint8)    {}

func newTestBus(t *testing.T) *CPUBus {
	t.Helper()
	prg := make([]byte, 16*1024)
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	rom := append(header, prg...)
	cart, err := cartridge.Load(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("cartridge.Load: %v", err)
	}
	return NewCPUBus(&stubPPU{}, input.New(), cart, dma.New())
}

func TestWorkRAMMirrors(t *testing.T) {
	bus := newTestBus(t)
	bus.Write(0x0042, 0x99)
	for k := uint16(0); k < 4; k++ {
		addr := 0x0042 + 0x0800*k
		if got := bus.Read(addr); got != 0x99 {
			t.Errorf("Read($%04X) = %02X, want 99", addr, got)
		}
	}
}

func TestPPURegisterWindowMirrorsEvery8(t *testing.T) {
	bus := newTestBus(t)
	bus.Write(0x2000, 0x77)
	for k := uint16(0); k < 100; k++ {
		addr := 0x2000 + 8*k
		if addr >= 0x4000 {
			break
		}
		if got := bus.Read(addr); got != 0x77 {
			t.Errorf("Read($%04X) = %02X, want 77", addr, got)
		}
	}
}

func TestPRGMirrorsFor16KImage(t *testing.T) {
	bus := newTestBus(t)
	for a := uint32(0x8000); a < 0xC000; a++ {
		if bus.Read(uint16(a)) != bus.Read(uint16(a+0x4000)) {
			t.Fatalf("PRG mirror broken at $%04X", a)
		}
	}
}

func TestUnmappedReadsReturnZero(t *testing.T) {
	bus := newTestBus(t)
	if got := bus.Read(0x4008); got != 0 {
		t.Errorf("Read($4008) = %02X, want 0", got)
	}
	if got := bus.Read(0x5000); got != 0 {
		t.Errorf("Read($5000) = %02X, want 0", got)
	}
}
