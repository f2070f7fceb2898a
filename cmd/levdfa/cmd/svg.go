//  Copyright (c) 2018 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/couchbase/levdfa"
	"github.com/spf13/cobra"
)

var svgCmd = &cobra.Command{
	Use:   "svg",
	Short: "Svg renders this levdfa DFA file as SVG using GraphViz",
	Long:  `Svg renders this levdfa DFA file as SVG using GraphViz.  Output goes to the optional second path argument, or stdout.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("path is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dfa, err := levdfa.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = dfa.Close()
		}()

		if len(args) > 1 {
			return levdfa.ExportSVGFile(dfa, args[1])
		}
		return levdfa.ExportSVG(dfa, os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(svgCmd)
}
