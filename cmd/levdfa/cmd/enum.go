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

var enumCmd = &cobra.Command{
	Use:   "enum",
	Short: "Enum lists the strings this levdfa DFA file accepts over the term's alphabet",
	Long:  `Enum lists, in lexicographic order, the strings this levdfa DFA file accepts over the term's own alphabet.`,
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

		itr, err := dfa.Iterator()
		for err == nil {
			fmt.Println(itr.Current())
			err = itr.Next()
		}
		if err != levdfa.ErrIteratorDone {
			return err
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(enumCmd)
}
