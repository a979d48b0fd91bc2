package nes

import "testing"

func TestControllerShiftOrder(t *testing.T) {
	c := NewController()
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonStart, true)

	c.Write(0x01) // strobe on: reads would report button A without shifting
	c.Write(0x00) // strobe off: latch the snapshot

	var bits []byte
	for i := 0; i < 8; i++ {
		bits = append(bits, c.Read())
	}

	want := []byte{1, 0, 0, 1, 0, 0, 0, 0} // A, B, Select, Start, Up, Down, Left, Right
	for i := range want {
		if bits[i] != want[i] {
			t.Errorf("bit %d: got %d, want %d", i, bits[i], want[i])
		}
	}
}

func TestControllerReadsPastEighthReturnOne(t *testing.T) {
	c := NewController()
	c.Write(0x00)

	for i := 0; i < 8; i++ {
		c.Read()
	}

	if got := c.Read(); got != 1 {
		t.Errorf("got %d, want 1 after exhausting the shift register", got)
	}
}

func TestControllerStrobeHighReportsButtonAContinuously(t *testing.T) {
	c := NewController()
	c.SetButton(ButtonA, true)
	c.Write(0x01)

	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d: got %d, want 1 (button A held, strobe high)", i, got)
		}
	}
}

func TestControllerRelatchAfterStrobe(t *testing.T) {
	c := NewController()
	c.Write(0x00)
	c.Read()
	c.Read()

	c.SetButton(ButtonB, true)
	c.Write(0x01)
	c.Write(0x00) // re-latch picks up the new button state

	if got := c.Read(); got != 0 {
		t.Errorf("got %d, want 0 (button A still released in first bit)", got)
	}
	if got := c.Read(); got != 1 {
		t.Errorf("got %d, want 1 (button B now held in second bit)", got)
	}
}
