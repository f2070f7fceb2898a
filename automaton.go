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

package levdfa

import "sort"

// Automaton represents the general contract of a Levenshtein automaton,
// independent of how its states are represented.  The DFA builder is
// written once against this interface and works identically over the
// dense and sparse implementations.
type Automaton interface {

	// Start returns the start state
	Start() State

	// Accept returns the state resulting from consuming the symbol sym
	// in state s.  The input state is never mutated.
	Accept(s State, sym Symbol) State

	// IsMatch returns true if and only if the state is a match
	IsMatch(s State) bool

	// CanMatch returns true if and only if it is possible to reach a
	// match in zero or more steps
	CanMatch(s State) bool

	// Transitions returns the distinct code-points worth branching on
	// from state s, in sorted order.  Every other code-point behaves
	// exactly like the wildcard symbol.
	Transitions(s State) []rune
}

// State is an opaque automaton state produced by Start or Accept.
// States must only be fed back to the automaton that produced them.
type State interface {
	// key returns a representation suitable for structural-equality
	// deduplication during DFA construction.
	key() string
}

// Symbol is a transition label: either a literal code-point or the
// wildcard standing in for every code-point the state does not
// distinguish.
type Symbol struct {
	Char rune
	Any  bool
}

// Literal returns the symbol for the code-point r.
func Literal(r rune) Symbol {
	return Symbol{Char: r}
}

// Wildcard returns the wildcard symbol.
func Wildcard() Symbol {
	return Symbol{Any: true}
}

func (s Symbol) String() string {
	if s.Any {
		return "*"
	}
	return string(s.Char)
}

func sortRunes(rs []rune) {
	sort.Slice(rs, func(i, j int) bool {
		return rs[i] < rs[j]
	})
}

func min(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}
