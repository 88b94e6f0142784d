// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultBlockInterval is the expected time between blocks.
	DefaultBlockInterval = 30 * time.Second

	// DefaultMaturityWindow is how long an output must age before it may be
	// spent by table index.
	DefaultMaturityWindow = 24 * time.Hour

	configFileName     = "config"
	chainStateFileName = "chainstate.db"
)

// Config holds node settings for transaction validation.
type Config struct {
	DataDir        string
	Network        string
	LogLevel       string
	LogFile        string
	BlockInterval  time.Duration
	MaturityWindow time.Duration
}

// DefaultDataDir returns ~/.trx, or .trx in the working directory when the
// home directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trx"
	}
	return filepath.Join(home, ".trx")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DataDir:        DefaultDataDir(),
		Network:        "mainnet",
		LogLevel:       "info",
		BlockInterval:  DefaultBlockInterval,
		MaturityWindow: DefaultMaturityWindow,
	}
}

// ConfigPath returns the config file path inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, configFileName)
}

// ChainStatePath returns the chain-state database path inside DataDir.
func (c Config) ChainStatePath() string {
	return filepath.Join(c.DataDir, chainStateFileName)
}

// MaturityBlocks converts the maturity window into whole blocks, rounding
// up. The result saturates at math.MaxUint32.
func (c Config) MaturityBlocks() uint32 {
	if c.BlockInterval <= 0 || c.MaturityWindow <= 0 {
		return 0
	}
	n := c.MaturityWindow / c.BlockInterval
	if c.MaturityWindow%c.BlockInterval != 0 {
		n++
	}
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

// LoadConfig reads a key = value config file. Unset keys keep their
// defaults and unknown keys are ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, err := parseKeyValue(line)
		if err != nil {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, lineNo, line)
		}
		if err := cfg.set(key, value); err != nil {
			return cfg, fmt.Errorf("%w: line %d: %w", ErrInvalidConfigLine, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return cfg, nil
}

// parseKeyValue splits on the first '='.
func parseKeyValue(line string) (string, string, error) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", ErrInvalidConfigLine
	}
	return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value), nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "datadir":
		c.DataDir = value
	case "network":
		c.Network = value
	case "loglevel":
		c.LogLevel = value
	case "logfile":
		c.LogFile = value
	case "blockinterval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("blockinterval: %w", err)
		}
		c.BlockInterval = d
	case "maturitywindow":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("maturitywindow: %w", err)
		}
		c.MaturityWindow = d
	}
	return nil
}

// SaveConfig writes cfg to path, creating the parent directory if needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Ledger Transaction Configuration\n\n")
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "network = %s\n", cfg.Network)
	fmt.Fprintf(&b, "loglevel = %s\n", cfg.LogLevel)
	fmt.Fprintf(&b, "logfile = %s\n", cfg.LogFile)
	fmt.Fprintf(&b, "blockinterval = %s\n", cfg.BlockInterval)
	fmt.Fprintf(&b, "maturitywindow = %s\n", cfg.MaturityWindow)

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
