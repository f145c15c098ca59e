package nes

import (
	"bytes"
	"testing"
)

// buildNROM returns a minimal iNES image: prgBanks*16KiB of NOPs with
// the reset vector ($FFFC/$FFFD, the image's last bytes but two)
// pointing at the first byte of the image.
func buildNROM(prgBanks uint8) []byte {
	prg := bytes.Repeat([]byte{0xEA}, int(prgBanks)*16*1024)
	origin := uint16(0x10000 - int(prgBanks)*0x4000)
	prg[len(prg)-4] = byte(origin)
	prg[len(prg)-3] = byte(origin >> 8)
	header := []byte{'N', 'E', 'S', 0x1A, prgBanks, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	return append(header, prg...)
}

func TestStepFrameProducesFullSizeBuffer(t *testing.T) {
	sys, err := Load(bytes.NewReader(buildNROM(1)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	frame := sys.StepFrame()
	if len(frame) != 256*256*4 {
		t.Fatalf("frame length = %d, want %d", len(frame), 256*256*4)
	}
	for i, b := range frame {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0 (no rendering enabled)", i, b)
		}
	}
}

func TestStepFrameAdvancesFrameCount(t *testing.T) {
	sys, err := Load(bytes.NewReader(buildNROM(1)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sys.StepFrame()
	if sys.FrameCount != 1 {
		t.Errorf("FrameCount = %d, want 1", sys.FrameCount)
	}
	sys.StepFrame()
	if sys.FrameCount != 2 {
		t.Errorf("FrameCount = %d, want 2", sys.FrameCount)
	}
}

func TestDMAArmedByCPUWriteFillsOAM(t *testing.T) {
	// Program: LDA #$02, STA $4014 (arm DMA off page 2), then NOPs.
	prg := make([]byte, 16*1024)
	for i := range prg {
		prg[i] = 0xEA
	}
	prg[0] = 0xA9
	prg[1] = 0x02
	prg[2] = 0x8D
	prg[3] = 0x14
	prg[4] = 0x40
	origin := uint16(0xC000)
	prg[0xFFFC-0xC000] = byte(origin)
	prg[0xFFFD-0xC000] = byte(origin >> 8)
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	rom := append(header, prg...)

	sys, err := Load(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 0; i < 256; i++ {
		sys.Bus.RAM[0x0200+i] = uint8(i)
	}

	sys.CPU.Step() // LDA #$02
	sys.CPU.Step() // STA $4014
	if !sys.DMA.Pending() {
		t.Fatal("expected DMA armed after writing $4014")
	}
	sys.DMA.Run(sys.Bus, sys.PPU)
	for i := 0; i < 256; i++ {
		if sys.PPU.OAM[i] != uint8(i) {
			t.Fatalf("OAM[%d] = %02X, want %02X", i, sys.PPU.OAM[i], uint8(i))
		}
	}
}
