// Package input implements the NES controller port at $4016: an
// eight-button snapshot, serialized one bit per read in the canonical
// order A, B, SELECT, START, UP, DOWN, LEFT, RIGHT (spec.md §6).
package input

// Button indexes the eight buttons in their canonical serialization
// order.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// State is the boolean snapshot a host hands to Controller.Latch once
// per frame; this is the "eight-button boolean snapshot" spec.md §1
// treats as coming from an external host input subsystem.
type State struct {
	A, B, Select, Start   bool
	Up, Down, Left, Right bool
}

func (s State) mask() uint8 {
	var m uint8
	set := func(bit uint, pressed bool) {
		if pressed {
			m |= 1 << bit
		}
	}
	set(uint(ButtonA), s.A)
	set(uint(ButtonB), s.B)
	set(uint(ButtonSelect), s.Select)
	set(uint(ButtonStart), s.Start)
	set(uint(ButtonUp), s.Up)
	set(uint(ButtonDown), s.Down)
	set(uint(ButtonLeft), s.Left)
	set(uint(ButtonRight), s.Right)
	return m
}

// Port is one serial shift register of the kind the NES exposes at
// both $4016 and $4017. While strobe is held high every write reloads
// the shift register from the live snapshot; the falling edge of
// strobe captures the snapshot that subsequent reads will serialize,
// and resets the read index to 0.
type Port struct {
	live   uint8 // latest snapshot handed in via Latch
	shift  uint8 // captured register being serialized out
	strobe bool
	index  uint8
}

// Latch records the host's current button snapshot. It does not by
// itself affect what Read returns — that only happens once the CPU
// strobes the port — mirroring real hardware, where the button lines
// are sampled at strobe time, not at Latch time.
func (p *Port) Latch(s State) {
	p.live = s.mask()
}

// Write handles a CPU write to the port's strobe register.
func (p *Port) Write(value uint8) {
	strobe := value&1 != 0
	if strobe {
		p.shift = p.live
	} else if p.strobe && !strobe {
		p.shift = p.live
		p.index = 0
	}
	p.strobe = strobe
}

// Read returns the next serialized bit in bit 0 (upper bits 0). After
// eight reads, further reads return 1, matching real NES controllers
// and the "controller is idempotent to extra reads" contract in
// spec.md §7.
func (p *Port) Read() uint8 {
	if p.index >= 8 {
		return 1
	}
	bit := (p.shift >> p.index) & 1
	if !p.strobe {
		p.index++
	}
	return bit
}

// Controller is the $4016 controller interface the CPU bus talks to.
// It wraps a single Port; spec.md §6's memory map only wires $4016,
// with $4017 named as ignored, so a second port is left unattached
// here — adding one is a one-line Port2 *Port field plus a dispatch
// case in the bus's $4017 handling, not a restructuring.
type Controller struct {
	Port1 *Port
}

// New returns a controller with no buttons pressed.
func New() *Controller {
	return &Controller{Port1: &Port{}}
}

// Latch records the host's current button snapshot for port 1.
func (c *Controller) Latch(s State) {
	c.Port1.Latch(s)
}

// Write handles a CPU write to $4016.
func (c *Controller) Write(value uint8) {
	c.Port1.Write(value)
}

// Read handles a CPU read of $4016.
func (c *Controller) Read() uint8 {
	return c.Port1.Read()
}
