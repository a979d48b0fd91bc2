package nes

// mapperUxROM is mapper 2: 16 KiB PRG banks switchable at $8000-$BFFF via
// any write into $8000-$FFFF, with $C000-$FFFF pinned to the last bank.
// UxROM boards carry no CHR-ROM, so CHR is always 8 KiB of RAM.
type mapperUxROM struct {
	prg        []byte
	chr        []byte
	totalBanks int
	bankSelect int
	mirror     MirrorMode
}

func newMapperUxROM(prg, chr []byte, chrIsRam bool, mirror MirrorMode) *mapperUxROM {
	if chr == nil {
		chr = make([]byte, 0x2000)
	}
	return &mapperUxROM{
		prg:        prg,
		chr:        chr,
		totalBanks: len(prg) / 0x4000,
		mirror:     mirror,
	}
}

func (m *mapperUxROM) read8(addr uint16) byte {
	switch {
	case addr >= 0x8000 && addr <= 0xBFFF:
		base := m.bankSelect * 0x4000
		return m.prg[base+int(addr-0x8000)]
	case addr >= 0xC000:
		base := (m.totalBanks - 1) * 0x4000
		return m.prg[base+int(addr-0xC000)]
	default:
		return 0
	}
}

func (m *mapperUxROM) write8(addr uint16, v byte) {
	if addr >= 0x8000 {
		m.bankSelect = int(v) % m.totalBanks
	}
}

func (m *mapperUxROM) chrRead8(addr uint16) byte      { return m.chr[addr&0x1FFF] }
func (m *mapperUxROM) chrWrite8(addr uint16, v byte)  { m.chr[addr&0x1FFF] = v }
func (m *mapperUxROM) Mirroring() MirrorMode          { return m.mirror }
