// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kal version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("kal " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
