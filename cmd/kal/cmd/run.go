// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kallang/kal/kalcore"
)

var printAST bool

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Drive the parser over a file or standard input",
	Long: `Run reads top-level constructs from the given file, or from
standard input when no file is named, until end of input. Prompts and
parse outcomes go to standard error; the process exits 0 on natural
end of input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&printAST, "print-ast", false, "print each parsed construct as a tree")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var src io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	sess := kalcore.NewSession()
	sess.Prompt = cfg.REPL.Prompt
	sess.Ops = cfg.OpTable()
	sess.MaxDepth = cfg.Parser.MaxExprDepth
	if printAST {
		sess.Trace = os.Stdout
	}
	sess.Run(src)
	return nil
}
