package cartridge

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nesgones/nesgones/pkg/neserr"
)

func buildROM(prgBanks, chrBanks uint8, flags6, flags7 byte, prg, chr []byte) []byte {
	buf := make([]byte, 0, headerSize+len(prg)+len(chr))
	header := []byte{'N', 'E', 'S', 0x1A, prgBanks, chrBanks, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	buf = append(buf, header...)
	buf = append(buf, prg...)
	buf = append(buf, chr...)
	return buf
}

func TestLoadNROM32KPRGWithCHRROM(t *testing.T) {
	prg := bytes.Repeat([]byte{0xEA}, 2*prgBankSize)
	chr := bytes.Repeat([]byte{0x11}, chrBankSize)
	rom := buildROM(2, 1, 0x00, 0x00, prg, chr)

	cart, err := Load(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cart.PRG) != 2*prgBankSize {
		t.Errorf("PRG size = %d, want %d", len(cart.PRG), 2*prgBankSize)
	}
	if cart.CHRIsRAM {
		t.Error("expected CHR-ROM, got CHR-RAM")
	}
	if cart.Mirroring != MirrorHorizontal {
		t.Errorf("Mirroring = %v, want horizontal", cart.Mirroring)
	}
}

func TestLoadNROM16KMirrorsPRG(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0x42
	rom := buildROM(1, 0, 0x01, 0x00, prg, nil)

	cart, err := Load(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cart.CHRIsRAM {
		t.Error("expected CHR-RAM when CHR bank count is 0")
	}
	if cart.Mirroring != MirrorVertical {
		t.Errorf("Mirroring = %v, want vertical", cart.Mirroring)
	}
	if got := cart.ReadPRG(0x0000); got != 0x42 {
		t.Errorf("ReadPRG(0x0000) = %02X, want 42", got)
	}
	if got := cart.ReadPRG(0x4000); got != 0x42 {
		t.Errorf("ReadPRG(0x4000) = %02X, want 42 (16K image must mirror)", got)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	rom := buildROM(1, 0, 0, 0, make([]byte, prgBankSize), nil)
	rom[0] = 'X'

	_, err := Load(bytes.NewReader(rom))
	if err == nil {
		t.Fatal("expected error for bad magic bytes")
	}
	var nesErr *neserr.Error
	if !errors.As(err, &nesErr) || nesErr.Kind != neserr.CartridgeFormat {
		t.Errorf("expected CartridgeFormat error, got %v", err)
	}
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	// mapper 1 -> flags6 high nibble = 1
	rom := buildROM(1, 0, 0x10, 0x00, make([]byte, prgBankSize), nil)

	_, err := Load(bytes.NewReader(rom))
	if err == nil {
		t.Fatal("expected error for mapper != 0")
	}
}

func TestLoadRejectsTruncatedPRG(t *testing.T) {
	rom := buildROM(2, 0, 0, 0, make([]byte, prgBankSize), nil) // claims 2 banks, has 1

	_, err := Load(bytes.NewReader(rom))
	if err == nil {
		t.Fatal("expected error for truncated PRG")
	}
}

func TestCHRReadWriteRAM(t *testing.T) {
	rom := buildROM(1, 0, 0, 0, make([]byte, prgBankSize), nil)
	cart, err := Load(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cart.WriteCHR(0x0010, 0x99)
	if got := cart.ReadCHR(0x0010); got != 0x99 {
		t.Errorf("ReadCHR after write = %02X, want 99", got)
	}
}
