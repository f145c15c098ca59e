// Package cartridge parses iNES 1.0 ROM images into the PRG/CHR byte
// slices, mirroring flag and mapper id spec.md §3 and §6 describe.
// This core supports exactly one mapper — NROM (mapper 0) — and
// surfaces every other mapper id as a CartridgeFormat error rather
// than attempting to emulate bank switching it doesn't implement.
package cartridge

import (
	"io"

	"github.com/nesgones/nesgones/pkg/neserr"
)

// Mirroring selects how the PPU's two physical nametables are mapped
// onto the four logical nametable slots.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

const (
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
	headerSize  = 16
)

// Header holds the fields this core reads from the 16-byte iNES 1.0
// header, kept around so tests and callers can inspect it without
// re-parsing.
type Header struct {
	Magic      [4]byte
	PRGBanks   uint8
	CHRBanks   uint8
	Flags6     uint8
	Flags7     uint8
}

// Cartridge is the immutable, parsed contents of a ROM image: PRG and
// CHR images, mirroring mode, and mapper id.
type Cartridge struct {
	Header    Header
	PRG       []byte // 16 KiB or 32 KiB
	CHR       []byte // 8 KiB or more; a zeroed 8 KiB buffer when CHRIsRAM
	CHRIsRAM  bool
	Mirroring Mirroring
	MapperID  uint8
}

// Load parses an iNES 1.0 image from r. Only mapper 0 (NROM) is
// accepted; any other mapper id is returned as a CartridgeFormat
// error, per spec.md §6's "mappers other than 0 are rejected by the
// loader."
func Load(r io.Reader) (*Cartridge, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, neserr.Wrap(neserr.CartridgeFormat, "truncated iNES header", err)
	}

	cart := &Cartridge{}
	copy(cart.Header.Magic[:], header[0:4])
	cart.Header.PRGBanks = header[4]
	cart.Header.CHRBanks = header[5]
	cart.Header.Flags6 = header[6]
	cart.Header.Flags7 = header[7]

	if err := cart.Validate(); err != nil {
		return nil, err
	}

	cart.MapperID = (cart.Header.Flags6 >> 4) | (cart.Header.Flags7 & 0xF0)
	if cart.MapperID != 0 {
		return nil, neserr.New(neserr.CartridgeFormat, "unsupported mapper (only NROM/mapper 0 is implemented)")
	}

	if cart.Header.Flags6&0x01 != 0 {
		cart.Mirroring = MirrorVertical
	} else {
		cart.Mirroring = MirrorHorizontal
	}

	prgSize := int(cart.Header.PRGBanks) * prgBankSize
	cart.PRG = make([]byte, prgSize)
	if _, err := io.ReadFull(r, cart.PRG); err != nil {
		return nil, neserr.Wrap(neserr.CartridgeFormat, "truncated PRG ROM", err)
	}

	chrSize := int(cart.Header.CHRBanks) * chrBankSize
	if chrSize > 0 {
		cart.CHR = make([]byte, chrSize)
		if _, err := io.ReadFull(r, cart.CHR); err != nil {
			return nil, neserr.Wrap(neserr.CartridgeFormat, "truncated CHR ROM", err)
		}
	} else {
		cart.CHR = make([]byte, chrBankSize)
		cart.CHRIsRAM = true
	}

	return cart, nil
}

// Validate checks the header in isolation — magic bytes, a non-zero
// PRG size, and a supported mapper id — without reading the PRG/CHR
// payload. Split out from Load so a caller (or a test) can validate a
// candidate ROM without committing to a full parse.
func (c *Cartridge) Validate() error {
	if string(c.Header.Magic[:]) != "NES\x1a" {
		return neserr.New(neserr.CartridgeFormat, "bad iNES signature")
	}
	if c.Header.PRGBanks == 0 {
		return neserr.New(neserr.CartridgeFormat, "PRG ROM size is zero")
	}
	if (c.Header.Flags6>>4)|(c.Header.Flags7&0xF0) != 0 {
		return neserr.New(neserr.CartridgeFormat, "unsupported mapper (only NROM/mapper 0 is implemented)")
	}
	return nil
}

// ReadPRG reads a byte from 32 KiB PRG space ($8000-$FFFF relative
// offset already applied by the caller). A 16 KiB image mirrors onto
// both halves of the window, per spec.md §3's CPU bus table.
func (c *Cartridge) ReadPRG(offset uint16) byte {
	if len(c.PRG) == prgBankSize {
		return c.PRG[offset%prgBankSize]
	}
	if int(offset) >= len(c.PRG) {
		panic(neserr.New(neserr.BusAddressOutOfRange, "PRG read past end of image"))
	}
	return c.PRG[offset]
}

// ReadCHR reads a byte from the 8 KiB CHR window (ROM or RAM).
func (c *Cartridge) ReadCHR(addr uint16) byte {
	return c.CHR[addr%chrBankSize]
}

// WriteCHR writes a byte to CHR space. Writes to CHR-ROM cartridges
// are accepted but harmless on real NROM hardware without CHR-RAM;
// we still honor them so a CHR-RAM cartridge works correctly.
func (c *Cartridge) WriteCHR(addr uint16, value byte) {
	c.CHR[addr%chrBankSize] = value
}
