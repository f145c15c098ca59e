package input

import "testing"

func strobeLatch(c *Controller, s State) {
	c.Latch(s)
	c.Write(1)
	c.Write(0)
}

func TestSerializationCanonicalOrder(t *testing.T) {
	c := New()
	strobeLatch(c, State{A: true, Start: true, Right: true})

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1} // A, B, SELECT, START, UP, DOWN, LEFT, RIGHT
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("read %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadsAfterEightReturnOne(t *testing.T) {
	c := New()
	strobeLatch(c, State{})
	for i := 0; i < 8; i++ {
		c.Read()
	}
	for i := 0; i < 4; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("extra read %d = %d, want 1", i, got)
		}
	}
}

func TestStrobeHighRereadsLiveBitZero(t *testing.T) {
	c := New()
	c.Latch(State{A: true})
	c.Write(1) // strobe held high: every read returns bit 0 of live state
	if got := c.Read(); got != 1 {
		t.Errorf("Read() while strobed = %d, want 1", got)
	}
	if got := c.Read(); got != 1 {
		t.Errorf("second Read() while strobed = %d, want 1 (index does not advance)", got)
	}
}

func TestLatchDoesNotAffectInFlightRead(t *testing.T) {
	c := New()
	strobeLatch(c, State{A: true})
	// Change the live snapshot mid-serialization; already-captured
	// shift register must not change.
	c.Latch(State{B: true})
	if got := c.Read(); got != 1 {
		t.Errorf("Read() after a later Latch = %d, want 1 (A still captured)", got)
	}
}
