package cpu

// Mnemonic names the operation an opcode byte performs. Unofficial
// opcodes get their own mnemonic rather than aliasing an official one,
// even where the effect is a documented combination (e.g. LAX loads A
// and X together) — this keeps the dispatch switch in instructions.go
// a flat mnemonic -> effect map, the second switch spec.md §9
// recommends pairing with the mode -> payload switch here.
type Mnemonic int

const (
	mnNone Mnemonic = iota
	// Load/store
	mnLDA
	mnLDX
	mnLDY
	mnSTA
	mnSTX
	mnSTY
	// Transfer
	mnTAX
	mnTAY
	mnTXA
	mnTYA
	mnTSX
	mnTXS
	// Stack
	mnPHA
	mnPHP
	mnPLA
	mnPLP
	// Arithmetic
	mnADC
	mnSBC
	// Increment/decrement
	mnINC
	mnINX
	mnINY
	mnDEC
	mnDEX
	mnDEY
	// Shifts/rotates
	mnASL
	mnLSR
	mnROL
	mnROR
	// Logic
	mnAND
	mnORA
	mnEOR
	mnBIT
	// Compare
	mnCMP
	mnCPX
	mnCPY
	// Branches
	mnBCC
	mnBCS
	mnBEQ
	mnBMI
	mnBNE
	mnBPL
	mnBVC
	mnBVS
	// Jumps/calls
	mnJMP
	mnJSR
	mnRTS
	mnRTI
	mnBRK
	// Flags
	mnCLC
	mnCLD
	mnCLI
	mnCLV
	mnSEC
	mnSED
	mnSEI
	// Misc
	mnNOP
	mnJAM
	// Unofficial combined read-modify-write and load/store ops, named
	// per the common NES community names spec.md §9 calls out (LAX,
	// SAX, and "the read-modify-write variants").
	mnLAX
	mnSAX
	mnDCP
	mnISB
	mnSLO
	mnRLA
	mnSRE
	mnRRA
	mnANC
	mnALR
	mnARR
	mnSBX
	mnLXA
	mnLAS
	mnANE
	mnSHA
	mnSHX
	mnSHY
	mnTAS
)

// opcodeEntry is the precomputed record spec.md §9 recommends in place
// of per-opcode polymorphic dispatch objects: decoding an opcode byte
// is one array index, and the interpreter body is the two switches
// (mode -> operand resolution in addressing.go, mnemonic -> effect in
// instructions.go) the note describes.
type opcodeEntry struct {
	mnemonic Mnemonic
	mode     AddressingMode
	cycles   uint8
}

// opcodeTable is the full 256-entry NMOS 6502 decode table, including
// the unofficial opcodes spec.md §9 says to keep (several commercial
// NES games depend on LAX, SAX, and the RMW combos) and the
// documented-but-unused JAM/NOP slots every byte value must still
// decode to something for. Cycle counts are base counts before any
// page-cross or branch-taken penalty instructions.go adds on top.
var opcodeTable = [256]opcodeEntry{
	0x00: {mnBRK, AddrImplied, 7},
	0x01: {mnORA, AddrIndexedIndirect, 6},
	0x02: {mnJAM, AddrImplied, 2},
	0x03: {mnSLO, AddrIndexedIndirect, 8},
	0x04: {mnNOP, AddrZeroPage, 3},
	0x05: {mnORA, AddrZeroPage, 3},
	0x06: {mnASL, AddrZeroPage, 5},
	0x07: {mnSLO, AddrZeroPage, 5},
	0x08: {mnPHP, AddrImplied, 3},
	0x09: {mnORA, AddrImmediate, 2},
	0x0A: {mnASL, AddrAccumulator, 2},
	0x0B: {mnANC, AddrImmediate, 2},
	0x0C: {mnNOP, AddrAbsolute, 4},
	0x0D: {mnORA, AddrAbsolute, 4},
	0x0E: {mnASL, AddrAbsolute, 6},
	0x0F: {mnSLO, AddrAbsolute, 6},

	0x10: {mnBPL, AddrRelative, 2},
	0x11: {mnORA, AddrIndirectIndexed, 5},
	0x12: {mnJAM, AddrImplied, 2},
	0x13: {mnSLO, AddrIndirectIndexed, 8},
	0x14: {mnNOP, AddrZeroPageX, 4},
	0x15: {mnORA, AddrZeroPageX, 4},
	0x16: {mnASL, AddrZeroPageX, 6},
	0x17: {mnSLO, AddrZeroPageX, 6},
	0x18: {mnCLC, AddrImplied, 2},
	0x19: {mnORA, AddrAbsoluteY, 4},
	0x1A: {mnNOP, AddrImplied, 2},
	0x1B: {mnSLO, AddrAbsoluteY, 7},
	0x1C: {mnNOP, AddrAbsoluteX, 4},
	0x1D: {mnORA, AddrAbsoluteX, 4},
	0x1E: {mnASL, AddrAbsoluteX, 7},
	0x1F: {mnSLO, AddrAbsoluteX, 7},

	0x20: {mnJSR, AddrAbsolute, 6},
	0x21: {mnAND, AddrIndexedIndirect, 6},
	0x22: {mnJAM, AddrImplied, 2},
	0x23: {mnRLA, AddrIndexedIndirect, 8},
	0x24: {mnBIT, AddrZeroPage, 3},
	0x25: {mnAND, AddrZeroPage, 3},
	0x26: {mnROL, AddrZeroPage, 5},
	0x27: {mnRLA, AddrZeroPage, 5},
	0x28: {mnPLP, AddrImplied, 4},
	0x29: {mnAND, AddrImmediate, 2},
	0x2A: {mnROL, AddrAccumulator, 2},
	0x2B: {mnANC, AddrImmediate, 2},
	0x2C: {mnBIT, AddrAbsolute, 4},
	0x2D: {mnAND, AddrAbsolute, 4},
	0x2E: {mnROL, AddrAbsolute, 6},
	0x2F: {mnRLA, AddrAbsolute, 6},

	0x30: {mnBMI, AddrRelative, 2},
	0x31: {mnAND, AddrIndirectIndexed, 5},
	0x32: {mnJAM, AddrImplied, 2},
	0x33: {mnRLA, AddrIndirectIndexed, 8},
	0x34: {mnNOP, AddrZeroPageX, 4},
	0x35: {mnAND, AddrZeroPageX, 4},
	0x36: {mnROL, AddrZeroPageX, 6},
	0x37: {mnRLA, AddrZeroPageX, 6},
	0x38: {mnSEC, AddrImplied, 2},
	0x39: {mnAND, AddrAbsoluteY, 4},
	0x3A: {mnNOP, AddrImplied, 2},
	0x3B: {mnRLA, AddrAbsoluteY, 7},
	0x3C: {mnNOP, AddrAbsoluteX, 4},
	0x3D: {mnAND, AddrAbsoluteX, 4},
	0x3E: {mnROL, AddrAbsoluteX, 7},
	0x3F: {mnRLA, AddrAbsoluteX, 7},

	0x40: {mnRTI, AddrImplied, 6},
	0x41: {mnEOR, AddrIndexedIndirect, 6},
	0x42: {mnJAM, AddrImplied, 2},
	0x43: {mnSRE, AddrIndexedIndirect, 8},
	0x44: {mnNOP, AddrZeroPage, 3},
	0x45: {mnEOR, AddrZeroPage, 3},
	0x46: {mnLSR, AddrZeroPage, 5},
	0x47: {mnSRE, AddrZeroPage, 5},
	0x48: {mnPHA, AddrImplied, 3},
	0x49: {mnEOR, AddrImmediate, 2},
	0x4A: {mnLSR, AddrAccumulator, 2},
	0x4B: {mnALR, AddrImmediate, 2},
	0x4C: {mnJMP, AddrAbsolute, 3},
	0x4D: {mnEOR, AddrAbsolute, 4},
	0x4E: {mnLSR, AddrAbsolute, 6},
	0x4F: {mnSRE, AddrAbsolute, 6},

	0x50: {mnBVC, AddrRelative, 2},
	0x51: {mnEOR, AddrIndirectIndexed, 5},
	0x52: {mnJAM, AddrImplied, 2},
	0x53: {mnSRE, AddrIndirectIndexed, 8},
	0x54: {mnNOP, AddrZeroPageX, 4},
	0x55: {mnEOR, AddrZeroPageX, 4},
	0x56: {mnLSR, AddrZeroPageX, 6},
	0x57: {mnSRE, AddrZeroPageX, 6},
	0x58: {mnCLI, AddrImplied, 2},
	0x59: {mnEOR, AddrAbsoluteY, 4},
	0x5A: {mnNOP, AddrImplied, 2},
	0x5B: {mnSRE, AddrAbsoluteY, 7},
	0x5C: {mnNOP, AddrAbsoluteX, 4},
	0x5D: {mnEOR, AddrAbsoluteX, 4},
	0x5E: {mnLSR, AddrAbsoluteX, 7},
	0x5F: {mnSRE, AddrAbsoluteX, 7},

	0x60: {mnRTS, AddrImplied, 6},
	0x61: {mnADC, AddrIndexedIndirect, 6},
	0x62: {mnJAM, AddrImplied, 2},
	0x63: {mnRRA, AddrIndexedIndirect, 8},
	0x64: {mnNOP, AddrZeroPage, 3},
	0x65: {mnADC, AddrZeroPage, 3},
	0x66: {mnROR, AddrZeroPage, 5},
	0x67: {mnRRA, AddrZeroPage, 5},
	0x68: {mnPLA, AddrImplied, 4},
	0x69: {mnADC, AddrImmediate, 2},
	0x6A: {mnROR, AddrAccumulator, 2},
	0x6B: {mnARR, AddrImmediate, 2},
	0x6C: {mnJMP, AddrIndirect, 5},
	0x6D: {mnADC, AddrAbsolute, 4},
	0x6E: {mnROR, AddrAbsolute, 6},
	0x6F: {mnRRA, AddrAbsolute, 6},

	0x70: {mnBVS, AddrRelative, 2},
	0x71: {mnADC, AddrIndirectIndexed, 5},
	0x72: {mnJAM, AddrImplied, 2},
	0x73: {mnRRA, AddrIndirectIndexed, 8},
	0x74: {mnNOP, AddrZeroPageX, 4},
	0x75: {mnADC, AddrZeroPageX, 4},
	0x76: {mnROR, AddrZeroPageX, 6},
	0x77: {mnRRA, AddrZeroPageX, 6},
	0x78: {mnSEI, AddrImplied, 2},
	0x79: {mnADC, AddrAbsoluteY, 4},
	0x7A: {mnNOP, AddrImplied, 2},
	0x7B: {mnRRA, AddrAbsoluteY, 7},
	0x7C: {mnNOP, AddrAbsoluteX, 4},
	0x7D: {mnADC, AddrAbsoluteX, 4},
	0x7E: {mnROR, AddrAbsoluteX, 7},
	0x7F: {mnRRA, AddrAbsoluteX, 7},

	0x80: {mnNOP, AddrImmediate, 2},
	0x81: {mnSTA, AddrIndexedIndirect, 6},
	0x82: {mnNOP, AddrImmediate, 2},
	0x83: {mnSAX, AddrIndexedIndirect, 6},
	0x84: {mnSTY, AddrZeroPage, 3},
	0x85: {mnSTA, AddrZeroPage, 3},
	0x86: {mnSTX, AddrZeroPage, 3},
	0x87: {mnSAX, AddrZeroPage, 3},
	0x88: {mnDEY, AddrImplied, 2},
	0x89: {mnNOP, AddrImmediate, 2},
	0x8A: {mnTXA, AddrImplied, 2},
	0x8B: {mnANE, AddrImmediate, 2},
	0x8C: {mnSTY, AddrAbsolute, 4},
	0x8D: {mnSTA, AddrAbsolute, 4},
	0x8E: {mnSTX, AddrAbsolute, 4},
	0x8F: {mnSAX, AddrAbsolute, 4},

	0x90: {mnBCC, AddrRelative, 2},
	0x91: {mnSTA, AddrIndirectIndexed, 6},
	0x92: {mnJAM, AddrImplied, 2},
	0x93: {mnSHA, AddrIndirectIndexed, 6},
	0x94: {mnSTY, AddrZeroPageX, 4},
	0x95: {mnSTA, AddrZeroPageX, 4},
	0x96: {mnSTX, AddrZeroPageY, 4},
	0x97: {mnSAX, AddrZeroPageY, 4},
	0x98: {mnTYA, AddrImplied, 2},
	0x99: {mnSTA, AddrAbsoluteY, 5},
	0x9A: {mnTXS, AddrImplied, 2},
	0x9B: {mnTAS, AddrAbsoluteY, 5},
	0x9C: {mnSHY, AddrAbsoluteX, 5},
	0x9D: {mnSTA, AddrAbsoluteX, 5},
	0x9E: {mnSHX, AddrAbsoluteY, 5},
	0x9F: {mnSHA, AddrAbsoluteY, 5},

	0xA0: {mnLDY, AddrImmediate, 2},
	0xA1: {mnLDA, AddrIndexedIndirect, 6},
	0xA2: {mnLDX, AddrImmediate, 2},
	0xA3: {mnLAX, AddrIndexedIndirect, 6},
	0xA4: {mnLDY, AddrZeroPage, 3},
	0xA5: {mnLDA, AddrZeroPage, 3},
	0xA6: {mnLDX, AddrZeroPage, 3},
	0xA7: {mnLAX, AddrZeroPage, 3},
	0xA8: {mnTAY, AddrImplied, 2},
	0xA9: {mnLDA, AddrImmediate, 2},
	0xAA: {mnTAX, AddrImplied, 2},
	0xAB: {mnLXA, AddrImmediate, 2},
	0xAC: {mnLDY, AddrAbsolute, 4},
	0xAD: {mnLDA, AddrAbsolute, 4},
	0xAE: {mnLDX, AddrAbsolute, 4},
	0xAF: {mnLAX, AddrAbsolute, 4},

	0xB0: {mnBCS, AddrRelative, 2},
	0xB1: {mnLDA, AddrIndirectIndexed, 5},
	0xB2: {mnJAM, AddrImplied, 2},
	0xB3: {mnLAX, AddrIndirectIndexed, 5},
	0xB4: {mnLDY, AddrZeroPageX, 4},
	0xB5: {mnLDA, AddrZeroPageX, 4},
	0xB6: {mnLDX, AddrZeroPageY, 4},
	0xB7: {mnLAX, AddrZeroPageY, 4},
	0xB8: {mnCLV, AddrImplied, 2},
	0xB9: {mnLDA, AddrAbsoluteY, 4},
	0xBA: {mnTSX, AddrImplied, 2},
	0xBB: {mnLAS, AddrAbsoluteY, 4},
	0xBC: {mnLDY, AddrAbsoluteX, 4},
	0xBD: {mnLDA, AddrAbsoluteX, 4},
	0xBE: {mnLDX, AddrAbsoluteY, 4},
	0xBF: {mnLAX, AddrAbsoluteY, 4},

	0xC0: {mnCPY, AddrImmediate, 2},
	0xC1: {mnCMP, AddrIndexedIndirect, 6},
	0xC2: {mnNOP, AddrImmediate, 2},
	0xC3: {mnDCP, AddrIndexedIndirect, 8},
	0xC4: {mnCPY, AddrZeroPage, 3},
	0xC5: {mnCMP, AddrZeroPage, 3},
	0xC6: {mnDEC, AddrZeroPage, 5},
	0xC7: {mnDCP, AddrZeroPage, 5},
	0xC8: {mnINY, AddrImplied, 2},
	0xC9: {mnCMP, AddrImmediate, 2},
	0xCA: {mnDEX, AddrImplied, 2},
	0xCB: {mnSBX, AddrImmediate, 2},
	0xCC: {mnCPY, AddrAbsolute, 4},
	0xCD: {mnCMP, AddrAbsolute, 4},
	0xCE: {mnDEC, AddrAbsolute, 6},
	0xCF: {mnDCP, AddrAbsolute, 6},

	0xD0: {mnBNE, AddrRelative, 2},
	0xD1: {mnCMP, AddrIndirectIndexed, 5},
	0xD2: {mnJAM, AddrImplied, 2},
	0xD3: {mnDCP, AddrIndirectIndexed, 8},
	0xD4: {mnNOP, AddrZeroPageX, 4},
	0xD5: {mnCMP, AddrZeroPageX, 4},
	0xD6: {mnDEC, AddrZeroPageX, 6},
	0xD7: {mnDCP, AddrZeroPageX, 6},
	0xD8: {mnCLD, AddrImplied, 2},
	0xD9: {mnCMP, AddrAbsoluteY, 4},
	0xDA: {mnNOP, AddrImplied, 2},
	0xDB: {mnDCP, AddrAbsoluteY, 7},
	0xDC: {mnNOP, AddrAbsoluteX, 4},
	0xDD: {mnCMP, AddrAbsoluteX, 4},
	0xDE: {mnDEC, AddrAbsoluteX, 7},
	0xDF: {mnDCP, AddrAbsoluteX, 7},

	0xE0: {mnCPX, AddrImmediate, 2},
	0xE1: {mnSBC, AddrIndexedIndirect, 6},
	0xE2: {mnNOP, AddrImmediate, 2},
	0xE3: {mnISB, AddrIndexedIndirect, 8},
	0xE4: {mnCPX, AddrZeroPage, 3},
	0xE5: {mnSBC, AddrZeroPage, 3},
	0xE6: {mnINC, AddrZeroPage, 5},
	0xE7: {mnISB, AddrZeroPage, 5},
	0xE8: {mnINX, AddrImplied, 2},
	0xE9: {mnSBC, AddrImmediate, 2},
	0xEA: {mnNOP, AddrImplied, 2},
	0xEB: {mnSBC, AddrImmediate, 2}, // undocumented duplicate of 0xE9
	0xEC: {mnCPX, AddrAbsolute, 4},
	0xED: {mnSBC, AddrAbsolute, 4},
	0xEE: {mnINC, AddrAbsolute, 6},
	0xEF: {mnISB, AddrAbsolute, 6},

	0xF0: {mnBEQ, AddrRelative, 2},
	0xF1: {mnSBC, AddrIndirectIndexed, 5},
	0xF2: {mnJAM, AddrImplied, 2},
	0xF3: {mnISB, AddrIndirectIndexed, 8},
	0xF4: {mnNOP, AddrZeroPageX, 4},
	0xF5: {mnSBC, AddrZeroPageX, 4},
	0xF6: {mnINC, AddrZeroPageX, 6},
	0xF7: {mnISB, AddrZeroPageX, 6},
	0xF8: {mnSED, AddrImplied, 2},
	0xF9: {mnSBC, AddrAbsoluteY, 4},
	0xFA: {mnNOP, AddrImplied, 2},
	0xFB: {mnISB, AddrAbsoluteY, 7},
	0xFC: {mnNOP, AddrAbsoluteX, 4},
	0xFD: {mnSBC, AddrAbsoluteX, 4},
	0xFE: {mnINC, AddrAbsoluteX, 7},
	0xFF: {mnISB, AddrAbsoluteX, 7},
}

// chargesPageCrossCycle reports the mnemonics that bill one extra
// cycle when resolving their operand crosses a page boundary: indexed
// reads only. Relative branches are not listed here; execute() adds
// their page-cross cycle itself, and only when the branch is taken.
// Unofficial read-modify-write ops
// (SLO, RLA, SRE, RRA, DCP, ISB) and the fixed-cost write opcode
// 0x9D/0x99/... already carry their worst-case cycle count in the
// table above and never take the extra cycle, matching the "tests do
// not pin down write-opcode over-charging" note — this core simply
// never charges it for writes in the first place.
func chargesPageCrossCycle(mn Mnemonic) bool {
	switch mn {
	case mnLDA, mnLDX, mnLDY, mnADC, mnSBC, mnAND, mnORA, mnEOR, mnCMP,
		mnLAX:
		return true
	default:
		return false
	}
}
