package cpu

import (
	"fmt"

	"github.com/nesgones/nesgones/pkg/neserr"
)

// execute decodes opcode through opcodeTable and runs its effect,
// returning the total cycle cost: base cycles, plus one for a page
// cross on the indexed reads that charge it, plus one more if a
// branch was taken and one more again if that taken branch crossed a
// page.
func (c *CPU) execute(opcode uint8) int {
	entry := opcodeTable[opcode]
	if entry.mnemonic == mnNone {
		panic(neserr.New(neserr.OpcodeNotImplemented, fmt.Sprintf("opcode $%02X has no table entry", opcode)))
	}
	cycles := int(entry.cycles)

	switch entry.mode {
	case AddrImplied, AddrAccumulator:
		cycles += c.executeImplied(entry.mnemonic)

	default:
		addr, pageCrossed := c.resolveAddress(entry.mode)
		branched := c.executeWithAddress(entry.mnemonic, entry.mode, addr)
		if pageCrossed && chargesPageCrossCycle(entry.mnemonic) {
			cycles++
		}
		if branched {
			cycles++
			if pageCrossed {
				cycles++
			}
		}
	}
	return cycles
}

// executeImplied runs the mnemonics that take no operand address:
// Implied and Accumulator modes.
func (c *CPU) executeImplied(mn Mnemonic) (extra int) {
	switch mn {
	case mnNOP, mnJAM:
		// JAM opcodes hang real hardware; this core has no bus to
		// hang, so it is just a harmless no-op cycle burn.
	case mnBRK:
		c.PC++
		c.dispatchInterrupt(0xFFFE, true)
	case mnRTI:
		status := c.pop()
		c.P = (status &^ FlagBreak) | FlagUnused
		c.PC = c.popWord()
	case mnRTS:
		c.PC = c.popWord() + 1
	case mnPHA:
		c.push(c.A)
	case mnPHP:
		c.push(c.P | FlagUnused | FlagBreak)
	case mnPLA:
		c.A = c.pop()
		c.setZN(c.A)
	case mnPLP:
		c.P = (c.pop() &^ FlagBreak) | FlagUnused
	case mnTAX:
		c.X = c.A
		c.setZN(c.X)
	case mnTAY:
		c.Y = c.A
		c.setZN(c.Y)
	case mnTXA:
		c.A = c.X
		c.setZN(c.A)
	case mnTYA:
		c.A = c.Y
		c.setZN(c.A)
	case mnTSX:
		c.X = c.SP
		c.setZN(c.X)
	case mnTXS:
		c.SP = c.X
	case mnINX:
		c.X++
		c.setZN(c.X)
	case mnINY:
		c.Y++
		c.setZN(c.Y)
	case mnDEX:
		c.X--
		c.setZN(c.X)
	case mnDEY:
		c.Y--
		c.setZN(c.Y)
	case mnCLC:
		c.setFlag(FlagCarry, false)
	case mnSEC:
		c.setFlag(FlagCarry, true)
	case mnCLI:
		c.setFlag(FlagInterrupt, false)
	case mnSEI:
		c.setFlag(FlagInterrupt, true)
	case mnCLD:
		c.setFlag(FlagDecimal, false)
	case mnSED:
		c.setFlag(FlagDecimal, true)
	case mnCLV:
		c.setFlag(FlagOverflow, false)
	case mnASL:
		c.A = c.shiftLeft(c.A)
	case mnLSR:
		c.A = c.shiftRight(c.A)
	case mnROL:
		c.A = c.rotateLeft(c.A)
	case mnROR:
		c.A = c.rotateRight(c.A)
	}
	return 0
}

// executeWithAddress runs every mnemonic that reads an operand
// address, returning true when a branch was taken (the caller adds
// the extra cycle for that).
func (c *CPU) executeWithAddress(mn Mnemonic, mode AddressingMode, addr uint16) bool {
	switch mn {
	case mnLDA:
		c.A = c.Memory.Read(addr)
		c.setZN(c.A)
	case mnLDX:
		c.X = c.Memory.Read(addr)
		c.setZN(c.X)
	case mnLDY:
		c.Y = c.Memory.Read(addr)
		c.setZN(c.Y)
	case mnSTA:
		c.Memory.Write(addr, c.A)
	case mnSTX:
		c.Memory.Write(addr, c.X)
	case mnSTY:
		c.Memory.Write(addr, c.Y)

	case mnADC:
		c.adc(c.Memory.Read(addr))
	case mnSBC:
		c.adc(^c.Memory.Read(addr))

	case mnAND:
		c.A &= c.Memory.Read(addr)
		c.setZN(c.A)
	case mnORA:
		c.A |= c.Memory.Read(addr)
		c.setZN(c.A)
	case mnEOR:
		c.A ^= c.Memory.Read(addr)
		c.setZN(c.A)
	case mnBIT:
		v := c.Memory.Read(addr)
		c.setFlag(FlagNegative, v&0x80 != 0)
		c.setFlag(FlagOverflow, v&0x40 != 0)
		c.setFlag(FlagZero, c.A&v == 0)

	case mnCMP:
		c.compare(c.A, c.Memory.Read(addr))
	case mnCPX:
		c.compare(c.X, c.Memory.Read(addr))
	case mnCPY:
		c.compare(c.Y, c.Memory.Read(addr))

	case mnINC:
		v := c.Memory.Read(addr) + 1
		c.Memory.Write(addr, v)
		c.setZN(v)
	case mnDEC:
		v := c.Memory.Read(addr) - 1
		c.Memory.Write(addr, v)
		c.setZN(v)

	case mnASL:
		c.Memory.Write(addr, c.shiftLeft(c.Memory.Read(addr)))
	case mnLSR:
		c.Memory.Write(addr, c.shiftRight(c.Memory.Read(addr)))
	case mnROL:
		c.Memory.Write(addr, c.rotateLeft(c.Memory.Read(addr)))
	case mnROR:
		c.Memory.Write(addr, c.rotateRight(c.Memory.Read(addr)))

	case mnJMP:
		c.PC = addr
	case mnJSR:
		c.pushWord(c.PC - 1)
		c.PC = addr

	case mnBCC:
		return c.branch(!c.getFlag(FlagCarry), addr)
	case mnBCS:
		return c.branch(c.getFlag(FlagCarry), addr)
	case mnBEQ:
		return c.branch(c.getFlag(FlagZero), addr)
	case mnBNE:
		return c.branch(!c.getFlag(FlagZero), addr)
	case mnBMI:
		return c.branch(c.getFlag(FlagNegative), addr)
	case mnBPL:
		return c.branch(!c.getFlag(FlagNegative), addr)
	case mnBVC:
		return c.branch(!c.getFlag(FlagOverflow), addr)
	case mnBVS:
		return c.branch(c.getFlag(FlagOverflow), addr)

	case mnNOP:
		if mode == AddrImmediate || mode == AddrZeroPage || mode == AddrZeroPageX ||
			mode == AddrAbsolute || mode == AddrAbsoluteX {
			c.Memory.Read(addr) // documented NOPs still perform the bus read
		}

	// Unofficial read-modify-write combos: each performs the first
	// effect, writes it back, then folds in the second effect exactly
	// as spec.md describes them.
	case mnLAX:
		c.A = c.Memory.Read(addr)
		c.X = c.A
		c.setZN(c.A)
	case mnSAX:
		c.Memory.Write(addr, c.A&c.X)
	case mnDCP:
		v := c.Memory.Read(addr) - 1
		c.Memory.Write(addr, v)
		c.compare(c.A, v)
	case mnISB:
		v := c.Memory.Read(addr) + 1
		c.Memory.Write(addr, v)
		c.adc(^v)
	case mnSLO:
		v := c.shiftLeft(c.Memory.Read(addr))
		c.Memory.Write(addr, v)
		c.A |= v
		c.setZN(c.A)
	case mnRLA:
		v := c.rotateLeft(c.Memory.Read(addr))
		c.Memory.Write(addr, v)
		c.A &= v
		c.setZN(c.A)
	case mnSRE:
		v := c.shiftRight(c.Memory.Read(addr))
		c.Memory.Write(addr, v)
		c.A ^= v
		c.setZN(c.A)
	case mnRRA:
		v := c.rotateRight(c.Memory.Read(addr))
		c.Memory.Write(addr, v)
		c.adc(v)

	// Rare, unstable unofficial opcodes. No commercial NES game relies
	// on the bus-contention-dependent bits of ANE/LAS/SHA/SHX/SHY/TAS,
	// so this core implements the commonly documented non-magic-number
	// behavior rather than the unstable one, to stay deterministic
	// (spec.md §9's determinism requirement rules out a "sometimes"
	// implementation).
	case mnANC:
		c.A &= c.Memory.Read(addr)
		c.setZN(c.A)
		c.setFlag(FlagCarry, c.A&0x80 != 0)
	case mnALR:
		c.A &= c.Memory.Read(addr)
		c.A = c.shiftRight(c.A)
	case mnARR:
		c.A &= c.Memory.Read(addr)
		c.A = c.rotateRight(c.A)
		c.setFlag(FlagCarry, c.A&0x40 != 0)
		c.setFlag(FlagOverflow, (c.A>>6)&1 != (c.A>>5)&1)
	case mnSBX:
		v := c.Memory.Read(addr)
		r := (c.A & c.X) - v
		c.setFlag(FlagCarry, c.A&c.X >= v)
		c.X = r
		c.setZN(c.X)
	case mnLXA:
		c.A = c.Memory.Read(addr)
		c.X = c.A
		c.setZN(c.A)
	case mnLAS:
		v := c.Memory.Read(addr) & c.SP
		c.A, c.X, c.SP = v, v, v
		c.setZN(v)
	case mnANE:
		c.A = c.X & c.Memory.Read(addr)
		c.setZN(c.A)
	case mnSHA:
		c.Memory.Write(addr, c.A&c.X)
	case mnSHX:
		c.Memory.Write(addr, c.X)
	case mnSHY:
		c.Memory.Write(addr, c.Y)
	case mnTAS:
		c.SP = c.A & c.X
		c.Memory.Write(addr, c.SP)
	}
	return false
}

// adc implements ADC; SBC calls it with the operand bit-inverted so
// the same carry/overflow math applies to both.
func (c *CPU) adc(operand uint8) {
	carry := uint16(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(operand) + carry
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (c.A^operand)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, operand uint8) {
	c.setFlag(FlagCarry, reg >= operand)
	c.setZN(reg - operand)
}

func (c *CPU) shiftLeft(v uint8) uint8 {
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	return v
}

func (c *CPU) shiftRight(v uint8) uint8 {
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.setFlag(FlagNegative, false)
	c.setFlag(FlagZero, v == 0)
	return v
}

func (c *CPU) rotateLeft(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 1
	}
	c.setFlag(FlagCarry, v&0x80 != 0)
	v = (v << 1) | oldCarry
	c.setZN(v)
	return v
}

func (c *CPU) rotateRight(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 0x80
	}
	c.setFlag(FlagCarry, v&0x01 != 0)
	v = (v >> 1) | oldCarry
	c.setZN(v)
	return v
}

// branch jumps to addr when taken is true and reports whether it took
// the branch, so execute() can add the taken/page-cross cycles.
func (c *CPU) branch(taken bool, addr uint16) bool {
	if taken {
		c.PC = addr
	}
	return taken
}
