// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kallang/kal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kal",
	Short: "Kaleidoscope language front end",
	Long: `kal is the lexical and syntactic front end for the Kaleidoscope
toy language. It reads function definitions, extern declarations, and
bare top-level expressions, builds syntax trees, and reports what it
parsed.

Commands:
  run   - drive the parser over a file or standard input
  repl  - interactive read-parse loop`,
}

// Execute runs the kal command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}
