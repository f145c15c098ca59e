// Package interrupt models the two interrupt lines shared by the CPU
// and PPU: NMI and IRQ. Both are edge-consumed at dispatch time. The
// PPU is the only producer of NMI in this core; IRQ is wired but has
// no producer since mapper 0 never raises it (left pluggable for a
// future mapper, per the design notes in spec.md).
package interrupt

// Lines holds the two interrupt request flags as plain booleans, owned
// by the System and shared by reference between the CPU and PPU. There
// is deliberately no mutex here: the emulator is single-threaded and
// cooperative (spec.md §5), so a shared struct is sufficient.
type Lines struct {
	nmi bool
	irq bool
}

// New returns a fresh, deasserted pair of interrupt lines.
func New() *Lines {
	return &Lines{}
}

// AssertNMI raises the NMI line. Called by the PPU at the start of vblank.
func (l *Lines) AssertNMI() { l.nmi = true }

// NMIPending reports whether NMI is currently asserted.
func (l *Lines) NMIPending() bool { return l.nmi }

// ConsumeNMI deasserts NMI and reports whether it had been asserted.
// The CPU calls this once per Step before deciding whether to dispatch.
func (l *Lines) ConsumeNMI() bool {
	pending := l.nmi
	l.nmi = false
	return pending
}

// AssertIRQ raises the IRQ line. No producer in this core uses it yet;
// kept for future mappers that generate scanline IRQs.
func (l *Lines) AssertIRQ() { l.irq = true }

// IRQPending reports whether IRQ is currently asserted.
func (l *Lines) IRQPending() bool { return l.irq }

// ConsumeIRQ deasserts IRQ and reports whether it had been asserted.
func (l *Lines) ConsumeIRQ() bool {
	pending := l.irq
	l.irq = false
	return pending
}
