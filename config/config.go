// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the kal front end configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/kallang/kal/parser"
)

// Config holds the complete kal configuration.
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Parser ParserConfig `toml:"parser"`

	// Operators lays extra single-character infix operators (or new
	// precedences for the standard ones) over the default table.
	// Applied once at startup; the table never changes during a parse.
	Operators map[string]int `toml:"operators"`
}

// REPLConfig holds interactive loop settings.
type REPLConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

// ParserConfig holds parser limits.
type ParserConfig struct {
	// MaxExprDepth bounds expression nesting. 0 keeps the built-in
	// default, negative disables the guard.
	MaxExprDepth int `toml:"max_expr_depth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt: "ready> ",
			Color:  true,
		},
	}
}

// Load reads a TOML config file and merges it over Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for sym, prec := range c.Operators {
		if utf8.RuneCountInString(sym) != 1 {
			return fmt.Errorf("config: operator %q must be a single character", sym)
		}
		if prec <= 0 {
			return fmt.Errorf("config: operator %q precedence must be positive, got %d", sym, prec)
		}
	}
	return nil
}

// OpTable builds the session operator table: the default table with
// the configured operators laid over it.
func (c *Config) OpTable() parser.OpTable {
	ops := parser.DefaultOps()
	for sym, prec := range c.Operators {
		r, _ := utf8.DecodeRuneInString(sym)
		ops[r] = prec
	}
	return ops
}

// HistoryPath resolves the REPL history file location. It returns ""
// when no location can be determined; history is then not persisted.
func (c *Config) HistoryPath() string {
	if c.REPL.HistoryFile != "" {
		return c.REPL.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kal_history")
}
