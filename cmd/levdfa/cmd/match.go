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

	"github.com/couchbase/levdfa"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match tests inputs against this levdfa DFA file",
	Long:  `Match tests each input string against this levdfa DFA file and reports whether it is within the edit distance the file was built for.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("path and at least one input required")
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

		for _, input := range args[1:] {
			if dfa.Match(input) {
				fmt.Printf("%s - match\n", input)
			} else {
				fmt.Printf("%s - no match\n", input)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(matchCmd)
}
