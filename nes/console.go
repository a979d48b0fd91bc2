package nes

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const framesPerSecond = 60.0

// Observer receives the Console's signals: 'frame-ready' with a 256x240
// RGBA payload, and 'nes-reset' with a nil payload.
type Observer func(signal string, payload interface{})

// Console is the single owning aggregate named in the design notes: it
// holds the CPU, the bus (and through it the PPU/APU/controllers), and
// drives the master scheduler loop. Nothing outside Console owns any of
// these peers.
type Console struct {
	bus *Bus

	observersMu sync.Mutex
	observers   []Observer

	cancel context.CancelFunc
	done   chan struct{}
}

// NewConsole builds a Console with all peers wired but no cartridge
// loaded; call LoadROM before Start.
func NewConsole(logging bool) *Console {
	return &Console{bus: NewBus(logging)}
}

// AddObserver registers a sink for 'frame-ready'/'nes-reset' signals.
func (c *Console) AddObserver(o Observer) {
	c.observersMu.Lock()
	defer c.observersMu.Unlock()
	c.observers = append(c.observers, o)
}

func (c *Console) notify(signal string, payload interface{}) {
	c.observersMu.Lock()
	observers := append([]Observer(nil), c.observers...)
	c.observersMu.Unlock()

	for _, o := range observers {
		o(signal, payload)
	}
}

// LoadROM parses an iNES image and connects the resulting cartridge to
// the bus. It must complete before Start; it returns a wrapped error
// rather than blocking indefinitely or panicking on a bad image.
func (c *Console) LoadROM(data []byte) error {
	cart, err := LoadCartridge(data)
	if err != nil {
		return errors.Wrap(err, "loading cartridge")
	}

	c.bus.InsertCartridge(cart)
	c.bus.Reset()
	c.notify("nes-reset", nil)
	return nil
}

// Reset re-initializes the CPU and re-emits 'nes-reset'.
func (c *Console) Reset() {
	c.bus.Reset()
	c.notify("nes-reset", nil)
}

// CPU, PPU, Controller1, Controller2 expose the peers a host or a monitor
// CLI needs direct access to, without exposing Bus's internal dispatch.
func (c *Console) CPU() *Cpu6502             { return c.bus.Cpu }
func (c *Console) PPU() *Ppu                 { return c.bus.Ppu }
func (c *Console) Controller1() *Controller  { return c.bus.Controller1 }
func (c *Console) Controller2() *Controller  { return c.bus.Controller2 }

// StepInstruction retires exactly one CPU instruction (bypassing the
// frame-paced scheduler) and advances the PPU in lockstep; used by
// interactive tooling that single-steps rather than running at 60 Hz.
func (c *Console) StepInstruction() byte {
	n := c.bus.Cpu.tick()
	for i := byte(0); i < 3*n; i++ {
		c.bus.Ppu.tick()
	}
	if c.bus.Ppu.FrameComplete() {
		c.notify("frame-ready", c.bus.Ppu.Framebuffer())
	}
	return n
}

// Read and Write expose the bus to tooling that needs to inspect or poke
// memory directly (the monitor CLI's mem/disasm commands).
func (c *Console) Read(addr uint16) byte     { return c.bus.Read(addr) }
func (c *Console) Write(addr uint16, v byte) { c.bus.Write(addr, v) }

// Step runs the scheduler loop for exactly one frame: CPU ticks are
// retired and the PPU is advanced 3 dots per CPU cycle until the PPU
// marks a frame complete, per the 1:3 NTSC clock ratio.
func (c *Console) Step() {
	for {
		n := c.bus.Cpu.tick()
		for i := byte(0); i < 3*n; i++ {
			c.bus.Ppu.tick()
		}
		if c.bus.Ppu.FrameComplete() {
			c.notify("frame-ready", c.bus.Ppu.Framebuffer())
			return
		}
	}
}

// Start spawns exactly one goroutine running the frame loop, paced by a
// 60 Hz ticker. Stop cancels a context the loop polls between frames, so
// cancellation never lands mid-instruction.
func (c *Console) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})

	fps := framesPerSecond
	interval := time.Duration(float64(time.Second) / fps)
	ticker := time.NewTicker(interval)

	go func() {
		defer close(c.done)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Step()
			}
		}
	}()
}

// Stop cancels the running scheduler loop and waits for it to exit.
func (c *Console) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
}
