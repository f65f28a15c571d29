package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional stackvm.toml file loaded via -config. Every
// field has a sensible default, so the file itself is optional and
// each table within it is optional too.
type Config struct {
	Machine MachineConfig `toml:"machine"`
	Debug   DebugConfig   `toml:"debug"`
}

// MachineConfig controls the simulated memory size at startup.
type MachineConfig struct {
	MemorySize int `toml:"memory_size"`
}

// DebugConfig controls the debugger REPL and its optional tcell panel.
type DebugConfig struct {
	Panel bool `toml:"panel"`
}

func defaultConfig() Config {
	return Config{
		Machine: MachineConfig{MemorySize: defaultMemorySize},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return cfg, nil
}
