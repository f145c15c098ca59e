package cpu

import (
	"testing"

	"github.com/nesgones/nesgones/pkg/interrupt"
)

// flatBus is a 64KiB flat RAM used only to exercise the CPU in
// isolation; the real CPU bus fabric (mirroring, PPU window, DMA
// trigger) lives in pkg/memory and is tested there.
type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) Read(addr uint16) uint8        { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, value uint8) { b.mem[addr] = value }

func newTestCPU() (*CPU, *flatBus) {
	bus := &flatBus{}
	c := New(bus, interrupt.New())
	return c, bus
}

func loadProgram(bus *flatBus, origin uint16, program []uint8) {
	copy(bus.mem[origin:], program)
	bus.mem[0xFFFC] = uint8(origin)
	bus.mem[0xFFFD] = uint8(origin >> 8)
}

func TestResetVector(t *testing.T) {
	c, bus := newTestCPU()
	loadProgram(bus, 0x8000, []uint8{0xEA}) // NOP
	c.Reset()

	if c.PC != 0x8000 {
		t.Fatalf("PC after reset = %04X, want 8000", c.PC)
	}
	cycles := c.Step()
	if c.PC != 0x8001 {
		t.Errorf("PC after step = %04X, want 8001", c.PC)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
}

func TestLDAImmediateThenSTAAbsolute(t *testing.T) {
	c, bus := newTestCPU()
	loadProgram(bus, 0x8000, []uint8{0xA9, 0x42, 0x8D, 0x00, 0x02, 0xEA})
	c.Reset()

	c.Step() // LDA #$42
	c.Step() // STA $0200

	if bus.mem[0x0200] != 0x42 {
		t.Errorf("RAM[$0200] = %02X, want 42", bus.mem[0x0200])
	}
	if c.A != 0x42 {
		t.Errorf("A = %02X, want 42", c.A)
	}
	if c.getFlag(FlagZero) {
		t.Error("Z set, want clear")
	}
	if c.getFlag(FlagNegative) {
		t.Error("N set, want clear")
	}
}

func TestBranchPageCrossPenalty(t *testing.T) {
	c, bus := newTestCPU()
	// BEQ at $80FE with Z already set, displacement +4 lands on $8104.
	bus.mem[0x80FE] = 0xF0
	bus.mem[0x80FF] = 0x04
	bus.mem[0xFFFC], bus.mem[0xFFFD] = 0xFE, 0x80
	c.Reset()
	c.setFlag(FlagZero, true)

	cycles := c.Step()
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4 (2 base + 1 taken + 1 page cross)", cycles)
	}
	if c.PC != 0x8104 {
		t.Errorf("PC = %04X, want 8104", c.PC)
	}
}

func TestStackRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.Reset()
	startSP := c.SP

	values := []uint8{0x11, 0x22, 0x33}
	for _, v := range values {
		c.push(v)
	}
	var popped []uint8
	for range values {
		popped = append(popped, c.pop())
	}
	for i, v := range popped {
		want := values[len(values)-1-i]
		if v != want {
			t.Errorf("pop %d = %02X, want %02X", i, v, want)
		}
	}
	if c.SP != startSP {
		t.Errorf("SP = %02X, want %02X (back to initial)", c.SP, startSP)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	loadProgram(bus, 0x8000, []uint8{0x08, 0x28}) // PHP, PLP
	c.Reset()
	c.P = FlagCarry | FlagNegative | FlagZero

	c.Step() // PHP
	c.P = 0  // scramble
	c.Step() // PLP

	want := FlagCarry | FlagNegative | FlagZero | FlagUnused
	if c.P != want {
		t.Errorf("P after PLP = %02X, want %02X", c.P, want)
	}
}

func TestNMIEdgeConsumed(t *testing.T) {
	c, bus := newTestCPU()
	loadProgram(bus, 0x8000, []uint8{0xEA})
	bus.mem[0xFFFA], bus.mem[0xFFFB] = 0x00, 0x90
	c.Reset()
	c.Lines.AssertNMI()

	c.Step()
	if c.Lines.NMIPending() {
		t.Error("NMI still pending immediately after dispatch")
	}
	if c.PC != 0x9000 {
		t.Errorf("PC after NMI dispatch = %04X, want 9000", c.PC)
	}
}

func TestCycleFloor(t *testing.T) {
	for opcode := 0; opcode < 256; opcode++ {
		c, bus := newTestCPU()
		loadProgram(bus, 0x8000, []uint8{uint8(opcode), 0, 0, 0, 0})
		c.Reset()
		c.X, c.Y, c.A = 0x10, 0x10, 0x10
		cycles := c.Step()
		if cycles < 2 {
			t.Errorf("opcode %02X reported %d cycles, want >= 2", opcode, cycles)
		}
	}
}
