// Package main provides the entry point for stackvm, a register+stack
// bytecode virtual machine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KCreate/stack-machine/vm"
)

const defaultMemorySize = 1 << 20 // 1 MiB

func main() {
	if len(os.Args) < 2 || os.Args[1] != "run" {
		usage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet("run", flag.ExitOnError)
	memSize := fs.Int("m", 0, "memory size in bytes (overrides -config)")
	debug := fs.Bool("d", false, "drop into the interactive debugger")
	configPath := fs.String("config", "", "path to a stackvm.toml config file")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	path := fs.Arg(0)
	_ = fs.Parse(fs.Args()[1:])

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *memSize > 0 {
		cfg.Machine.MemorySize = *memSize
	}

	image, err := loadImageFile(path, cfg.Machine.MemorySize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading %s: %v\n", path, err)
		os.Exit(1)
	}

	m := vm.NewMachine(cfg.Machine.MemorySize)
	if err := m.Flash(image); err != nil {
		fmt.Fprintf(os.Stderr, "error flashing image: %v\n", err)
		os.Exit(1)
	}

	if *debug || cfg.Debug.Panel {
		d := newDebugger(m, cfg.Debug.Panel)
		os.Exit(d.run(os.Stdin, os.Stdout))
	}

	if err := m.Start(); err != nil {
		if f, ok := err.(*vm.Fault); ok {
			fmt.Fprintf(os.Stderr, "trap: %s\n", f.Error())
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	code, _ := m.ExitCode()
	os.Exit(int(code))
}

// loadImageFile reads path, auto-detecting a load table (the "SMVM"
// magic) versus a flat headerless image so the same flag works for
// both an assembler's output and a bare hand-written bytecode blob.
func loadImageFile(path string, memSize int) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) >= 4 && string(raw[0:4]) == "SMVM" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		lt, err := vm.DecodeLoadTable(f)
		if err != nil {
			return nil, err
		}
		return lt.Flatten(memSize)
	}
	return raw, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: stackvm run <file> [-m SIZE] [-d] [-config PATH]")
}
