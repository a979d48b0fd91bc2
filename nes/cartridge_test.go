package nes

import (
	"testing"

	"github.com/pkg/errors"
)

func buildInesImage(mapperID byte, prgBanks, chrBanks int, verticalMirror bool) []byte {
	header := make([]byte, inesHeaderSize)
	header[0], header[1], header[2], header[3] = 'N', 'E', 'S', 0x1A
	header[4] = byte(prgBanks)
	header[5] = byte(chrBanks)
	if verticalMirror {
		header[6] |= 0x01
	}
	header[6] |= (mapperID & 0x0F) << 4
	header[7] = mapperID & 0xF0

	data := append([]byte{}, header...)
	data = append(data, make([]byte, prgBanks*prgBankSize)...)
	data = append(data, make([]byte, chrBanks*chrBankSize)...)
	return data
}

func TestLoadCartridgeNROM(t *testing.T) {
	data := buildInesImage(0, 1, 1, false)

	cart, err := LoadCartridge(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Mirroring() != MirrorHorizontal {
		t.Errorf("got %v, want MirrorHorizontal", cart.Mirroring())
	}
}

func TestLoadCartridgeBadMagic(t *testing.T) {
	data := buildInesImage(0, 1, 1, false)
	data[0] = 'X'

	_, err := LoadCartridge(data)
	if errors.Cause(err) != ErrBadMagic {
		t.Errorf("got %v, want ErrBadMagic", err)
	}
}

func TestLoadCartridgeTruncated(t *testing.T) {
	data := buildInesImage(0, 1, 1, false)
	data = data[:len(data)-10]

	_, err := LoadCartridge(data)
	if errors.Cause(err) != ErrTruncatedRom {
		t.Errorf("got %v, want ErrTruncatedRom", err)
	}
}

func TestLoadCartridgeUnsupportedMapper(t *testing.T) {
	data := buildInesImage(99, 1, 1, false)

	_, err := LoadCartridge(data)
	if errors.Cause(err) != ErrUnsupportedMapper {
		t.Errorf("got %v, want ErrUnsupportedMapper", err)
	}
}

func TestLoadCartridgeZeroChrBanksMeansChrRam(t *testing.T) {
	data := buildInesImage(0, 1, 0, false)

	cart, err := LoadCartridge(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart.ppuWrite(0x0000, 0x42)
	if got := cart.ppuRead(0x0000); got != 0x42 {
		t.Errorf("got %#x, want 0x42 (CHR should be RAM when header declares zero CHR banks)", got)
	}
}
