package nes

import "testing"

func TestMapperNROM16KMirrors(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xAA
	prg[0x3FFF] = 0xBB

	m := newMapperNROM(prg, make([]byte, 0x2000), false, MirrorHorizontal)

	if got := m.read8(0x8000); got != 0xAA {
		t.Errorf("got %#x at $8000, want 0xAA", got)
	}
	if got := m.read8(0xC000); got != 0xAA {
		t.Errorf("got %#x at $C000, want 0xAA (16K image mirrored)", got)
	}
	if got := m.read8(0xFFFF); got != 0xBB {
		t.Errorf("got %#x at $FFFF, want 0xBB", got)
	}
}

func TestMapperNROM32KNoMirror(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0] = 0x11
	prg[0x4000] = 0x22

	m := newMapperNROM(prg, make([]byte, 0x2000), false, MirrorHorizontal)

	if got := m.read8(0x8000); got != 0x11 {
		t.Errorf("got %#x at $8000, want 0x11", got)
	}
	if got := m.read8(0xC000); got != 0x22 {
		t.Errorf("got %#x at $C000, want 0x22 (distinct bank, no mirroring)", got)
	}
}

func TestMapperNROMWritesDropped(t *testing.T) {
	prg := make([]byte, 0x4000)
	m := newMapperNROM(prg, make([]byte, 0x2000), false, MirrorHorizontal)

	m.write8(0x8000, 0x42)

	if m.read8(0x8000) != 0 {
		t.Error("expected PRG writes to be dropped on NROM")
	}
}

func TestMapperNROMChrRamWritable(t *testing.T) {
	m := newMapperNROM(make([]byte, 0x4000), make([]byte, 0x2000), true, MirrorHorizontal)

	m.chrWrite8(0x0000, 0x55)

	if got := m.chrRead8(0x0000); got != 0x55 {
		t.Errorf("got %#x, want 0x55 when CHR is RAM", got)
	}
}

func TestMapperNROMChrRomNotWritable(t *testing.T) {
	m := newMapperNROM(make([]byte, 0x4000), make([]byte, 0x2000), false, MirrorHorizontal)

	m.chrWrite8(0x0000, 0x55)

	if got := m.chrRead8(0x0000); got != 0 {
		t.Error("expected CHR-ROM writes to be dropped")
	}
}

func TestMapperUxROMBankSwitch(t *testing.T) {
	prg := make([]byte, 0x4000*4) // 4 banks
	for bank := 0; bank < 4; bank++ {
		prg[bank*0x4000] = byte(bank)
	}
	prg[3*0x4000+0x3FFF] = 0xFE // last byte of the fixed last bank

	m := newMapperUxROM(prg, nil, false, MirrorVertical)

	if got := m.read8(0x8000); got != 0 {
		t.Errorf("got %#x, want bank 0 selected initially", got)
	}

	m.write8(0x8000, 2)
	if got := m.read8(0x8000); got != 2 {
		t.Errorf("got %#x, want bank 2 after bank-select write", got)
	}

	if got := m.read8(0xFFFF); got != 0xFE {
		t.Errorf("got %#x, want the fixed last bank regardless of bank select", got)
	}
}

func TestMapperUxROMBankSelectWraps(t *testing.T) {
	prg := make([]byte, 0x4000*2)
	m := newMapperUxROM(prg, nil, false, MirrorVertical)

	m.write8(0x8000, 5) // 5 % 2 banks == 1

	if m.bankSelect != 1 {
		t.Errorf("got bankSelect=%d, want 1 (5 mod 2 total banks)", m.bankSelect)
	}
}

func TestMapperUxROMChrIsAlwaysRam(t *testing.T) {
	m := newMapperUxROM(make([]byte, 0x4000), nil, false, MirrorVertical)

	m.chrWrite8(0x0000, 0x99)
	if got := m.chrRead8(0x0000); got != 0x99 {
		t.Errorf("got %#x, want 0x99 (CHR always RAM on UxROM)", got)
	}
}

func TestMapperMMC1ControlRegisterSetsMirroring(t *testing.T) {
	m := newMapperMMC1(make([]byte, 0x4000*4), make([]byte, 0x2000), true)

	writeMMC1Serial(m, 0x8000, 0x02) // control register, mirroring bits = 10 (vertical)

	if m.Mirroring() != MirrorVertical {
		t.Errorf("got mirror mode %v, want MirrorVertical", m.Mirroring())
	}
}

func TestMapperMMC1PrgRamWindow(t *testing.T) {
	m := newMapperMMC1(make([]byte, 0x4000*2), make([]byte, 0x2000), true)

	m.write8(0x6000, 0x77)
	if got := m.read8(0x6000); got != 0x77 {
		t.Errorf("got %#x, want 0x77 through the PRG-RAM window", got)
	}
}

// writeMMC1Serial performs the 5-bit serial-shift write protocol MMC1
// registers require: one write per bit, LSB first, the 5th write commits.
func writeMMC1Serial(m *mapperMMC1, addr uint16, v byte) {
	for i := 0; i < 5; i++ {
		bit := (v >> i) & 0x01
		m.write8(addr, bit)
	}
}

func TestMapperFactoryRejectsUnsupportedID(t *testing.T) {
	_, err := newMapper(99, make([]byte, 0x4000), make([]byte, 0x2000), false, MirrorHorizontal)
	if err != ErrUnsupportedMapper {
		t.Errorf("got err=%v, want ErrUnsupportedMapper", err)
	}
}

func TestMapperFactoryBuildsKnownIDs(t *testing.T) {
	for _, id := range []byte{0, 1, 2} {
		if _, err := newMapper(id, make([]byte, 0x4000*2), make([]byte, 0x2000), false, MirrorHorizontal); err != nil {
			t.Errorf("mapper %d: unexpected error %v", id, err)
		}
	}
}
