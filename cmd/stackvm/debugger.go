package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KCreate/stack-machine/vm"
)

const debugPrompt = "(stackvm) "

// debugger is a line-oriented REPL over a Machine: step, continue, dump
// registers/memory, and poke the ZERO flag by hand. It implements the
// in-scope half of an interactive debugger shell — the VM-side hooks
// it drives (Cycle, Start, SetDebuggerHook) are the VM's, the prompt
// grammar here is ours.
type debugger struct {
	m       *vm.Machine
	panel   *panel
	history []*vm.Snapshot
}

func newDebugger(m *vm.Machine, withPanel bool) *debugger {
	d := &debugger{m: m}
	if withPanel {
		d.panel = newPanel(m)
	}
	m.SetDebuggerHook(func(arg uint64) {
		fmt.Printf("\n[debugger syscall] arg=0x%x\n", arg)
	})
	return d
}

func (d *debugger) run(in io.Reader, out io.Writer) int {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "stackvm debugger — type 'help' for commands")

	for {
		d.render(out)
		fmt.Fprint(out, debugPrompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "q", "exit":
			d.closePanel()
			return d.exitCode()

		case "help", "h", "?":
			printDebugHelp(out)

		case "step", "s":
			n := 1
			if len(fields) > 1 {
				n = atoiOr(fields[1], 1)
			}
			d.history = append(d.history, d.m.Snapshot())
			if err := d.m.Cycle(n); err != nil {
				d.reportFault(out, err)
			}

		case "continue", "c":
			d.history = append(d.history, d.m.Snapshot())
			if err := d.m.Start(); err != nil {
				d.reportFault(out, err)
			}

		case "back", "b":
			if len(d.history) == 0 {
				fmt.Fprintln(out, "no earlier state to go back to")
				continue
			}
			last := d.history[len(d.history)-1]
			d.history = d.history[:len(d.history)-1]
			d.m.Restore(last)

		case "regs", "r":
			printRegisters(out, d.m)

		case "mem", "m":
			if len(fields) < 3 {
				fmt.Fprintln(out, "usage: mem <addr> <len>")
				continue
			}
			addr := parseUint(fields[1])
			length := atoiOr(fields[2], 16)
			printMemory(out, d.m, addr, length)

		case "list", "l":
			addr := uint64(0)
			length := 64
			if len(fields) > 1 {
				addr = parseUint(fields[1])
			}
			if len(fields) > 2 {
				length = atoiOr(fields[2], 64)
			}
			printListing(out, d.m, addr, length)

		case "zero":
			setZeroFlag(d.m, len(fields) > 1 && fields[1] != "0")

		default:
			fmt.Fprintf(out, "unknown command %q (try 'help')\n", fields[0])
		}
	}
	d.closePanel()
	return d.exitCode()
}

func (d *debugger) render(out io.Writer) {
	if d.panel != nil {
		d.panel.draw()
	}
}

func (d *debugger) closePanel() {
	if d.panel != nil {
		d.panel.close()
	}
}

func (d *debugger) reportFault(out io.Writer, err error) {
	if f, ok := err.(*vm.Fault); ok {
		fmt.Fprintf(out, "trap: %s\n", f.Error())
		return
	}
	fmt.Fprintf(out, "error: %v\n", err)
}

func (d *debugger) exitCode() int {
	code, err := d.m.ExitCode()
	if err != nil {
		return 0
	}
	return int(code)
}

func printDebugHelp(out io.Writer) {
	fmt.Fprint(out, `commands:
  step [n], s [n]      execute n cycles (default 1)
  continue, c          run until RUN clears or a trap occurs
  back, b              undo the last step or continue
  regs, r              dump the register file
  mem <addr> <len>, m  dump len bytes of memory starting at addr
  list [addr] [len], l disassemble len bytes starting at addr
  zero [0|1]           set or clear the ZERO flag
  quit, q              exit the debugger
`)
}

func printRegisters(out io.Writer, m *vm.Machine) {
	names := []struct {
		name string
		reg  uint8
	}{
		{"IP", vm.IP}, {"SP", vm.SP}, {"FP", vm.FP}, {"AX", vm.AX},
		{"FLAGS", vm.FLAGS}, {"RUN", vm.RUN}, {"EXT", vm.EXT},
	}
	for _, n := range names {
		v, _ := m.Registers().ReadUint64Native(n.reg)
		fmt.Fprintf(out, "  %-6s 0x%016x\n", n.name, v)
	}
	for i := uint8(0); i <= vm.R9; i++ {
		v, _ := m.Registers().ReadUint64(i, 8)
		fmt.Fprintf(out, "  R%-5d 0x%016x\n", i, v)
	}
}

func printMemory(out io.Writer, m *vm.Machine, addr uint64, length int) {
	b, err := m.Memory().Read(addr, length)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	for i := 0; i < len(b); i += 16 {
		end := i + 16
		if end > len(b) {
			end = len(b)
		}
		fmt.Fprintf(out, "  %08x  % x\n", addr+uint64(i), b[i:end])
	}
}

func printListing(out io.Writer, m *vm.Machine, addr uint64, length int) {
	listing, err := vm.Disassemble(m.Memory(), addr, length)
	if err != nil && len(listing) == 0 {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	for _, l := range listing {
		fmt.Fprintf(out, "  %s\n", l)
	}
}

func setZeroFlag(m *vm.Machine, set bool) {
	v, _ := m.Registers().ReadUint64(vm.FLAGS, 1)
	if set {
		v |= vm.ZeroFlag
	} else {
		v &^= vm.ZeroFlag
	}
	_ = m.Registers().WriteUint64(vm.FLAGS, 1, v)
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseUint(s string) uint64 {
	s = strings.TrimPrefix(s, "0x")
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		n, _ = strconv.ParseUint(s, 10, 64)
	}
	return n
}
