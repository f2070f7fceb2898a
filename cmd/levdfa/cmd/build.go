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
	"strconv"

	"github.com/couchbase/levdfa"
	"github.com/spf13/cobra"
)

var dense bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds a levdfa DFA file from a term and an edit distance.",
	Long:  `Builds a levdfa DFA file from a term and an edit distance.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 {
			return fmt.Errorf("term, distance and path required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		var aut levdfa.Automaton
		if dense {
			aut, err = levdfa.NewDense(args[0], distance)
		} else {
			aut, err = levdfa.NewSparse(args[0], distance)
		}
		if err != nil {
			return err
		}

		dfa, err := levdfa.BuildDFA(aut)
		if err != nil {
			return err
		}
		err = dfa.SaveFile(args[2])
		if err != nil {
			return err
		}
		fmt.Printf("built %d states\n", dfa.Len())
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&dense, "dense", false,
		"use the dense state representation while exploring")
	RootCmd.AddCommand(buildCmd)
}
