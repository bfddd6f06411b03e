// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/kallang/kal/kalcore"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-parse loop",
	Long: `Repl reads lines interactively, parses every top-level
construct on each line, and reports the outcome. History is kept
across sessions. Ctrl+C cancels the current line, Ctrl+D exits.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().BoolVar(&printAST, "print-ast", false, "print each parsed construct as a tree")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	color := cfg.REPL.Color && isatty.IsTerminal(os.Stdout.Fd())
	banner := "kal " + version
	if color {
		banner = bannerStyle.Render(banner)
	}
	fmt.Println(banner)
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	sess := kalcore.NewSession()
	sess.Out = &statusWriter{w: os.Stdout, color: color}
	sess.Ops = cfg.OpTable()
	sess.MaxDepth = cfg.Parser.MaxExprDepth
	if printAST {
		sess.Trace = os.Stdout
	}

	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		sess.Exec([]byte(line))
	}
}

// statusWriter colors error notices without changing their text.
type statusWriter struct {
	w     io.Writer
	color bool
}

func (sw *statusWriter) Write(p []byte) (int, error) {
	text := string(p)
	if sw.color && strings.HasPrefix(text, "Error: ") {
		styled := errorStyle.Render(strings.TrimSuffix(text, "\n")) + "\n"
		if _, err := io.WriteString(sw.w, styled); err != nil {
			return 0, err
		}
		return len(p), nil
	}
	return sw.w.Write(p)
}
