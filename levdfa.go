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

// Package levdfa builds deterministic finite automata recognizing all
// strings within a bounded Levenshtein edit distance of a reference
// term.  The resulting DFA can be evaluated directly, exported to
// GraphViz, enumerated, or saved to a file and re-opened with mmap.
//
// Two automaton implementations are provided: a dense one whose states
// are full edit-distance vectors, and a sparse one tracking only the
// positions still within the distance budget.  Both recognize exactly
// the same language.
package levdfa

import (
	"fmt"
)

// StateLimit is the maximum number of DFA states allowed
const StateLimit = 10000

// ErrTooManyStates is returned if you attempt to build a Levenshtein
// DFA which requires too many states.
var ErrTooManyStates = fmt.Errorf("dfa contains more than %d states", StateLimit)

// ErrNegativeDistance is returned when constructing an automaton with
// a negative edit distance.
var ErrNegativeDistance = fmt.Errorf("edit distance cannot be negative")

// ErrIteratorDone is returned by the iterator when no accepted strings
// remain.
var ErrIteratorDone = fmt.Errorf("iterator is done")

// BuildDFA explores all states of the automaton reachable from its
// start state, deduplicating structurally-equal states, and returns
// the resulting deterministic automaton.
func BuildDFA(a Automaton) (*DFA, error) {
	return newDfaBuilder(a).build()
}

// New builds the DFA for the given term and edit distance using the
// sparse automaton, which is the cheaper representation for the small
// distances used in practice.
func New(term string, distance int) (*DFA, error) {
	a, err := NewSparse(term, distance)
	if err != nil {
		return nil, err
	}
	return BuildDFA(a)
}
