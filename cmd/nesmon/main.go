// Command nesmon is an interactive console monitor: a command loop for
// stepping the CPU, inspecting registers and memory, disassembling code,
// and running to a breakpoint. It mirrors the way a hardware-debugger
// shell would drive the console, one instruction or one breakpoint at
// a time.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/coffeemakr/nesgo/nes"
)

type runState int

const (
	stateIdle runState = iota
	stateRunning
)

// monitor holds the interactive session's state: the console being
// debugged, the command tree dispatching against it, and the single
// breakpoint a 'break' command may arm.
type monitor struct {
	console *nes.Console

	input  *bufio.Scanner
	output *bufio.Writer

	state      runState
	breakAddr  uint16
	breakSet   bool
	lastLookup *cmd.Selection
}

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "nesmon"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "step",
		Brief:       "Step the CPU one or more instructions",
		Description: "Retire one CPU instruction, or N if a count is given.",
		Usage:       "step [<count>]",
		Data:        (*monitor).cmdStep,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "regs",
		Brief:       "Display CPU registers",
		Description: "Print the program counter, accumulator, index registers, status flags, and cycle count.",
		Usage:       "regs",
		Data:        (*monitor).cmdRegs,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "mem",
		Brief:       "Dump a range of bus addresses",
		Description: "Dump bytes from start to end, inclusive, as read through the bus.",
		Usage:       "mem <start> <end>",
		Data:        (*monitor).cmdMem,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "disasm",
		Brief:       "Disassemble a range of addresses",
		Description: "Disassemble instructions from start to end, inclusive.",
		Usage:       "disasm <start> <end>",
		Data:        (*monitor).cmdDisasm,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "reset",
		Brief:       "Reset the console",
		Description: "Reset the CPU to its power-on state and re-read the reset vector.",
		Usage:       "reset",
		Data:        (*monitor).cmdReset,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "break",
		Brief:       "Set or clear the breakpoint",
		Description: "Arm a breakpoint at the given address, or clear it if none is given.",
		Usage:       "break [<address>]",
		Data:        (*monitor).cmdBreak,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "run",
		Brief:       "Run until the breakpoint or forever",
		Description: "Step the CPU continuously until the program counter hits the armed breakpoint.",
		Usage:       "run",
		Data:        (*monitor).cmdRun,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Exit the monitor",
		Description: "Exit the monitor.",
		Usage:       "quit",
		Data:        (*monitor).cmdQuit,
	})
	cmds = root
}

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM file")
	flag.Parse()

	m := &monitor{console: nes.NewConsole(false)}

	if *romPath != "" {
		data, err := ioutil.ReadFile(*romPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading ROM: %v\n", err)
			os.Exit(1)
		}
		if err := m.console.LoadROM(data); err != nil {
			fmt.Fprintf(os.Stderr, "loading ROM: %v\n", err)
			os.Exit(1)
		}
	}

	m.run(os.Stdin, os.Stdout)
}

func (m *monitor) run(r io.Reader, w io.Writer) {
	m.input = bufio.NewScanner(r)
	m.output = bufio.NewWriter(w)
	defer m.output.Flush()

	for {
		fmt.Fprint(m.output, "nesmon> ")
		m.output.Flush()

		if !m.input.Scan() {
			return
		}
		line := strings.TrimSpace(m.input.Text())

		var sel cmd.Selection
		var err error
		if line != "" {
			sel, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				fmt.Fprintln(m.output, "command not found")
				continue
			case err == cmd.ErrAmbiguous:
				fmt.Fprintln(m.output, "command is ambiguous")
				continue
			case err != nil:
				fmt.Fprintf(m.output, "error: %v\n", err)
				continue
			}
		} else if m.lastLookup != nil {
			sel = *m.lastLookup
		}

		if sel.Command == nil {
			continue
		}
		m.lastLookup = &sel

		handler := sel.Command.Data.(func(*monitor, cmd.Selection) error)
		if err := handler(m, sel); err != nil {
			fmt.Fprintln(m.output, err)
			return
		}
	}
}

// parseAddr accepts "$1234" or "0x1234" hexadecimal address notation.
func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	return uint16(v), err
}

func (m *monitor) cmdStep(c cmd.Selection) error {
	count := 1
	if len(c.Args) > 0 {
		n, err := strconv.Atoi(c.Args[0])
		if err != nil {
			fmt.Fprintf(m.output, "bad count: %v\n", err)
			return nil
		}
		count = n
	}

	for i := 0; i < count; i++ {
		m.console.StepInstruction()
	}
	m.printRegs()
	return nil
}

func (m *monitor) cmdRegs(c cmd.Selection) error {
	m.printRegs()
	return nil
}

func (m *monitor) printRegs() {
	cpu := m.console.CPU()
	fmt.Fprintf(m.output, "PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X CYC:%d\n",
		cpu.Pc, cpu.A, cpu.X, cpu.Y, cpu.Sp, cpu.Status, cpu.Cycles)
}

func (m *monitor) cmdMem(c cmd.Selection) error {
	if len(c.Args) < 2 {
		fmt.Fprintln(m.output, "usage: mem <start> <end>")
		return nil
	}
	start, err := parseAddr(c.Args[0])
	if err != nil {
		fmt.Fprintf(m.output, "bad start address: %v\n", err)
		return nil
	}
	end, err := parseAddr(c.Args[1])
	if err != nil {
		fmt.Fprintf(m.output, "bad end address: %v\n", err)
		return nil
	}

	for addr := uint32(start); addr <= uint32(end); addr += 16 {
		fmt.Fprintf(m.output, "$%04X: ", addr)
		for col := uint32(0); col < 16 && addr+col <= uint32(end); col++ {
			fmt.Fprintf(m.output, "%02X ", m.console.Read(uint16(addr+col)))
		}
		fmt.Fprintln(m.output)
	}
	return nil
}

func (m *monitor) cmdDisasm(c cmd.Selection) error {
	if len(c.Args) < 2 {
		fmt.Fprintln(m.output, "usage: disasm <start> <end>")
		return nil
	}
	start, err := parseAddr(c.Args[0])
	if err != nil {
		fmt.Fprintf(m.output, "bad start address: %v\n", err)
		return nil
	}
	end, err := parseAddr(c.Args[1])
	if err != nil {
		fmt.Fprintf(m.output, "bad end address: %v\n", err)
		return nil
	}

	lines := m.console.CPU().Disassemble(start, end)
	for addr := uint32(start); addr <= uint32(end); addr++ {
		if line, ok := lines[uint16(addr)]; ok {
			fmt.Fprintln(m.output, line)
		}
	}
	return nil
}

func (m *monitor) cmdReset(c cmd.Selection) error {
	m.console.Reset()
	m.printRegs()
	return nil
}

func (m *monitor) cmdBreak(c cmd.Selection) error {
	if len(c.Args) == 0 {
		m.breakSet = false
		fmt.Fprintln(m.output, "breakpoint cleared")
		return nil
	}

	addr, err := parseAddr(c.Args[0])
	if err != nil {
		fmt.Fprintf(m.output, "bad address: %v\n", err)
		return nil
	}
	m.breakAddr = addr
	m.breakSet = true
	fmt.Fprintf(m.output, "breakpoint set at $%04X\n", addr)
	return nil
}

func (m *monitor) cmdRun(c cmd.Selection) error {
	fmt.Fprintln(m.output, "running, ctrl-C to interrupt")
	m.state = stateRunning
	for m.state == stateRunning {
		m.console.StepInstruction()
		if m.breakSet && m.console.CPU().Pc == m.breakAddr {
			break
		}
	}
	m.state = stateIdle
	m.printRegs()
	return nil
}

func (m *monitor) cmdQuit(c cmd.Selection) error {
	return fmt.Errorf("exiting")
}
