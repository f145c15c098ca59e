package dma

import "testing"

type fakeCPUBus struct {
	ram [0x10000]uint8
}

func (f *fakeCPUBus) Read(addr uint16) uint8 { return f.ram[addr] }

type fakeOAM struct {
	data [256]uint8
}

func (f *fakeOAM) OAMWrite(index uint8, value uint8) { f.data[index] = value }

func TestDMATransfersPage(t *testing.T) {
	cpu := &fakeCPUBus{}
	for i := 0; i < 256; i++ {
		cpu.ram[0x0200+i] = uint8(i)
	}
	oam := &fakeOAM{}

	u := New()
	if u.Pending() {
		t.Fatal("new unit should not be pending")
	}
	u.Write(0x02)
	if !u.Pending() {
		t.Fatal("Write should arm the unit")
	}
	u.Run(cpu, oam)
	if u.Pending() {
		t.Fatal("Run should disarm the unit")
	}
	for i := 0; i < 256; i++ {
		if oam.data[i] != uint8(i) {
			t.Fatalf("OAM[%d] = %02X, want %02X", i, oam.data[i], uint8(i))
		}
	}
}
