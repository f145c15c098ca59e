// Package cpu implements the 6502 instruction interpreter: registers,
// addressing modes, the opcode table, cycle accounting, and interrupt
// dispatch. It knows nothing about the PPU or cartridges directly —
// all memory traffic goes through the Bus it is constructed with.
package cpu

import (
	"fmt"

	"github.com/nesgones/nesgones/pkg/interrupt"
	"github.com/nesgones/nesgones/pkg/logger"
)

// Bus is the CPU's view of memory: the CPU bus fabric (work RAM, PPU
// register window, controller port, DMA trigger, PRG image) behind a
// single flat 16-bit address space.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// Status flag bits, packed N V 1 B D I Z C from bit 7 to bit 0.
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagInterrupt uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreak     uint8 = 1 << 4
	FlagUnused    uint8 = 1 << 5
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

// CPU is one 6502 core. It holds no PPU or cartridge references of its
// own; Step drives exactly one instruction (or one interrupt dispatch)
// through the Bus and the shared interrupt.Lines.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8

	Memory Bus
	Lines  *interrupt.Lines

	Cycles int
}

// New returns a CPU wired to the given bus and interrupt lines. Call
// Reset before stepping it.
func New(bus Bus, lines *interrupt.Lines) *CPU {
	return &CPU{
		Memory: bus,
		Lines:  lines,
		SP:     0xFD,
		P:      FlagUnused | FlagInterrupt,
	}
}

// Reset sets registers to their power-on state and loads PC from the
// reset vector at $FFFC/$FFFD.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagUnused | FlagInterrupt
	c.PC = c.readWord(0xFFFC)
	c.Cycles = 0
}

// Step dispatches a pending interrupt if one is asserted, otherwise
// decodes and executes exactly one instruction, and returns the
// number of cycles it cost.
func (c *CPU) Step() int {
	if c.Lines.ConsumeNMI() {
		c.dispatchInterrupt(0xFFFA, false)
		logger.CPU("NMI dispatched, PC now $%04X", c.PC)
		c.Cycles += 7
		return 7
	}
	if c.Lines.IRQPending() && !c.getFlag(FlagInterrupt) {
		c.Lines.ConsumeIRQ()
		c.dispatchInterrupt(0xFFFE, false)
		logger.CPU("IRQ dispatched, PC now $%04X", c.PC)
		c.Cycles += 7
		return 7
	}

	opcode := c.fetchByte()
	cycles := c.execute(opcode)
	c.Cycles += cycles
	return cycles
}

// dispatchInterrupt runs the shared NMI/IRQ/BRK push-and-vector
// sequence: PC high, PC low, then status with the reserved bit forced
// to 1 and the break bit set per brk. I is set afterward in every
// case.
func (c *CPU) dispatchInterrupt(vector uint16, brk bool) {
	c.pushWord(c.PC)
	status := c.P | FlagUnused
	if brk {
		status |= FlagBreak
	} else {
		status &^= FlagBreak
	}
	c.push(status)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.readWord(vector)
}

func (c *CPU) getFlag(flag uint8) bool { return c.P&flag != 0 }

func (c *CPU) setFlag(flag uint8, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

func (c *CPU) readWord(addr uint16) uint16 {
	lo := uint16(c.Memory.Read(addr))
	hi := uint16(c.Memory.Read(addr + 1))
	return hi<<8 | lo
}

func (c *CPU) push(v uint8) {
	c.Memory.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.Memory.Read(0x0100 | uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// String renders the register file, used by CPU-logging call sites
// and by tests that want a one-line snapshot.
func (c *CPU) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%02X", c.A, c.X, c.Y, c.SP, c.PC, c.P)
}
