package nes

import "image/color"

const (
	ppuScanlinesPerFrame = 262
	ppuDotsPerScanline   = 341
	ppuVisibleScanlines  = 240
	ppuVisibleDots       = 256

	frameWidth  = 256
	frameHeight = 240
)

// Ppu is the PPU boundary stub: the register file and vblank/NMI timing
// the scheduler interleaves against are real, but the pixel-generation
// pipeline is not — the rendering circuit itself is out of scope.
// Framebuffer output is a deterministic coarse per-tile sample, not a
// cycle-accurate picture.
type Ppu struct {
	cart *Cartridge
	cpu  *Cpu6502 // non-owning; used only to raise NMI at vblank

	ctrl   ppuReg
	mask   ppuReg
	status ppuReg

	oamAddr byte
	oam     [256]byte

	nameTable    [2][1024]byte
	paletteTable [32]byte

	vramAddr   uint16
	tempAddr   uint16
	writeLatch bool
	readBuffer byte

	scanline      int
	dot           int
	frameComplete bool

	palette     [paletteSize]color.RGBA
	framebuffer [frameWidth * frameHeight * 4]byte
}

func NewPpu() *Ppu {
	return &Ppu{
		scanline:      0,
		dot:           0,
		frameComplete: false,
		palette:       defaultPalette(),
	}
}

func (p *Ppu) ConnectCartridge(c *Cartridge) { p.cart = c }
func (p *Ppu) ConnectCpu(cpu *Cpu6502)       { p.cpu = cpu }

// UsePaletteFile overrides the default deterministic palette with one
// loaded from a raw .pal file, if present; errors are non-fatal, since a
// missing palette file just keeps the default.
func (p *Ppu) UsePaletteFile(path string) error {
	pal, err := loadPalette(path)
	if err != nil {
		return err
	}
	p.palette = pal
	return nil
}

// tick advances the PPU by one dot. It owns the scanline/dot counters,
// vblank/NMI timing, and frame completion; the console scheduler calls it
// exactly 3 times per CPU cycle retired.
func (p *Ppu) tick() {
	if p.dot == 1 {
		switch p.scanline {
		case 241:
			p.status.setFlag(statusVBlank)
			if p.ctrl.getFlag(ctrlNmi) == 1 && p.cpu != nil {
				p.cpu.TriggerNMI()
			}
		case 261:
			p.status.clearFlag(statusVBlank)
			p.status.clearFlag(statusSprite0Hit)
			p.status.clearFlag(statusSpriteOverflow)
		}
	}

	if p.scanline < ppuVisibleScanlines && p.dot < ppuVisibleDots {
		p.sampleTile(p.dot, p.scanline)
	}

	p.dot++
	if p.dot >= ppuDotsPerScanline {
		p.dot = 0
		p.scanline++
		if p.scanline >= ppuScanlinesPerFrame {
			p.scanline = 0
			p.frameComplete = true
		}
	}
}

// sampleTile fills one framebuffer pixel from a coarse per-8x8-tile
// sample of nametable 0 and the mapper's CHR data, run through the
// current palette. It deliberately does not implement scrolling,
// attribute tables, or sprites — those belong to the excluded pixel
// pipeline.
func (p *Ppu) sampleTile(x, y int) {
	tileX := x / 8
	tileY := y / 8
	ntIndex := uint16(tileY*32+tileX) % 960

	tileByte := p.ppuRead(nameTblAddr + ntIndex)
	chrByte := byte(0)
	if p.cart != nil {
		chrByte = p.cart.ppuRead(uint16(tileByte) * 16)
	}

	idx := (tileByte ^ chrByte) & 0x3F
	c := p.palette[idx]

	off := (y*frameWidth + x) * 4
	p.framebuffer[off] = c.R
	p.framebuffer[off+1] = c.G
	p.framebuffer[off+2] = c.B
	p.framebuffer[off+3] = 0xFF
}

// Framebuffer returns the current 256x240 RGBA buffer, ready for the
// 'frame-ready' observer payload.
func (p *Ppu) Framebuffer() []byte { return p.framebuffer[:] }

// FrameComplete reports and clears the frame-complete latch the
// scheduler polls once per loop iteration.
func (p *Ppu) FrameComplete() bool {
	if !p.frameComplete {
		return false
	}
	p.frameComplete = false
	return true
}

// DMAWrite is the OAM-DMA sink: the bus copies 256 bytes from CPU memory
// here in response to a $4014 write.
func (p *Ppu) DMAWrite(i byte, v byte) { p.oam[i] = v }

// cpuRead/cpuWrite implement the eight CPU-visible registers at
// $2000-$2007 (the bus has already reduced the address mod 8).
func (p *Ppu) cpuRead(addr uint16) byte {
	switch addr {
	case 2: // PPUSTATUS
		data := p.status.byte()
		p.status.clearFlag(statusVBlank)
		p.writeLatch = false
		return data
	case 4: // OAMDATA
		return p.oam[p.oamAddr]
	case 7: // PPUDATA
		data := p.readBuffer
		p.readBuffer = p.ppuRead(p.vramAddr)
		if p.vramAddr >= 0x3F00 {
			data = p.readBuffer
		}
		p.advanceVram()
		return data
	default:
		return 0
	}
}

func (p *Ppu) cpuWrite(addr uint16, v byte) {
	switch addr {
	case 0: // PPUCTRL
		p.ctrl = ppuReg(v)
	case 1: // PPUMASK
		p.mask = ppuReg(v)
	case 3: // OAMADDR
		p.oamAddr = v
	case 4: // OAMDATA
		p.oam[p.oamAddr] = v
		p.oamAddr++
	case 5: // PPUSCROLL
		p.writeLatch = !p.writeLatch
	case 6: // PPUADDR
		if !p.writeLatch {
			p.tempAddr = (p.tempAddr & 0x00FF) | (uint16(v) << 8)
		} else {
			p.tempAddr = (p.tempAddr & 0xFF00) | uint16(v)
			p.vramAddr = p.tempAddr
		}
		p.writeLatch = !p.writeLatch
	case 7: // PPUDATA
		p.ppuWrite(p.vramAddr, v)
		p.advanceVram()
	}
}

func (p *Ppu) advanceVram() {
	if p.ctrl.getFlag(ctrlVramInc) == 1 {
		p.vramAddr += 32
	} else {
		p.vramAddr++
	}
}

const (
	patternTblAddr    uint16 = 0x0000
	patternTblAddrEnd uint16 = 0x1FFF

	nameTblAddr    uint16 = 0x2000
	nameTblAddrEnd uint16 = 0x3EFF

	paletteAddr    uint16 = 0x3F00
	paletteAddrEnd uint16 = 0x3FFF
)

// ppuRead/ppuWrite are the PPU's own 14-bit address space: pattern
// tables delegate to the mapper, nametables resolve through the
// cartridge's declared mirroring mode, and palette RAM aliases
// $3F10/$3F14/$3F18/$3F1C onto $3F00/$3F04/$3F08/$3F0C.
func (p *Ppu) ppuRead(addr uint16) byte {
	addr &= 0x3FFF

	switch {
	case addr <= patternTblAddrEnd:
		if p.cart == nil {
			return 0
		}
		return p.cart.ppuRead(addr)
	case addr <= nameTblAddrEnd:
		bank, off := p.resolveNameTable(addr)
		return p.nameTable[bank][off]
	default:
		return p.paletteTable[paletteIndex(addr)]
	}
}

func (p *Ppu) ppuWrite(addr uint16, v byte) {
	addr &= 0x3FFF

	switch {
	case addr <= patternTblAddrEnd:
		if p.cart != nil {
			p.cart.ppuWrite(addr, v)
		}
	case addr <= nameTblAddrEnd:
		bank, off := p.resolveNameTable(addr)
		p.nameTable[bank][off] = v
	default:
		p.paletteTable[paletteIndex(addr)] = v
	}
}

func paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1F
	if idx == 0x10 || idx == 0x14 || idx == 0x18 || idx == 0x1C {
		idx -= 0x10
	}
	return idx
}

// resolveNameTable maps a $2000-$2FFF address onto one of the two
// physical 1 KiB nametables per the cartridge's mirroring mode.
func (p *Ppu) resolveNameTable(addr uint16) (bank int, off uint16) {
	rel := (addr - nameTblAddr) & 0x0FFF
	quadrant := rel / 0x0400
	off = rel % 0x0400

	mirror := MirrorVertical
	if p.cart != nil {
		mirror = p.cart.Mirroring()
	}

	switch mirror {
	case MirrorVertical:
		bank = int(quadrant % 2)
	case MirrorHorizontal:
		bank = int(quadrant / 2)
	case MirrorSingle0:
		bank = 0
	case MirrorSingle1:
		bank = 1
	}
	return bank, off
}
