package nes

import "github.com/pkg/errors"

const (
	inesHeaderSize = 16
	inesTrainerSize = 512
	prgBankSize    = 0x4000
	chrBankSize    = 0x2000
)

// Cartridge owns the PRG/CHR images decoded from an iNES file and the
// mapper instantiated for them. It is the CPU and PPU's sole window onto
// cartridge memory.
type Cartridge struct {
	mapper Mapper
}

// LoadCartridge parses a complete iNES-format ROM image and builds the
// mapper its header names. Failures are wrapped, not panicked: bad magic,
// a truncated file, and an unsupported mapper number are all distinct,
// inspectable via errors.Cause.
func LoadCartridge(data []byte) (*Cartridge, error) {
	if len(data) < inesHeaderSize {
		return nil, errors.Wrap(ErrTruncatedRom, "reading iNES header")
	}
	if data[0] != 'N' || data[1] != 'E' || data[2] != 'S' || data[3] != 0x1A {
		return nil, errors.Wrap(ErrBadMagic, "parsing iNES header")
	}

	prgBanks := int(data[4])
	chrBanks := int(data[5])
	flags6 := data[6]
	flags7 := data[7]

	hasTrainer := flags6&0x04 != 0
	verticalMirror := flags6&0x01 != 0

	mapperID := (flags7 & 0xF0) | (flags6 >> 4)

	offset := inesHeaderSize
	if hasTrainer {
		offset += inesTrainerSize
	}

	prgSize := prgBanks * prgBankSize
	if len(data) < offset+prgSize {
		return nil, errors.Wrap(ErrTruncatedRom, "reading PRG-ROM")
	}
	prg := data[offset : offset+prgSize]
	offset += prgSize

	var chr []byte
	chrIsRam := chrBanks == 0
	if chrIsRam {
		chr = make([]byte, chrBankSize)
	} else {
		chrSize := chrBanks * chrBankSize
		if len(data) < offset+chrSize {
			return nil, errors.Wrap(ErrTruncatedRom, "reading CHR-ROM")
		}
		chr = data[offset : offset+chrSize]
	}

	mirror := MirrorHorizontal
	if verticalMirror {
		mirror = MirrorVertical
	}

	mapper, err := newMapper(mapperID, prg, chr, chrIsRam, mirror)
	if err != nil {
		return nil, errors.Wrapf(err, "mapper number %d", mapperID)
	}

	return &Cartridge{mapper: mapper}, nil
}

func (c *Cartridge) cpuRead(addr uint16) byte        { return c.mapper.read8(addr) }
func (c *Cartridge) cpuWrite(addr uint16, v byte)    { c.mapper.write8(addr, v) }
func (c *Cartridge) ppuRead(addr uint16) byte        { return c.mapper.chrRead8(addr) }
func (c *Cartridge) ppuWrite(addr uint16, v byte)    { c.mapper.chrWrite8(addr, v) }
func (c *Cartridge) Mirroring() MirrorMode           { return c.mapper.Mirroring() }
