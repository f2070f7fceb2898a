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

import "fmt"

// denseState holds the full edit-distance vector.  Entry i is the
// distance between the input consumed so far and the term prefix of
// length i, saturated at distance+1.
type denseState []uint

func (s denseState) key() string {
	return fmt.Sprintf("%v", []uint(s))
}

// DenseAutomaton is the classical dynamic-programming Levenshtein
// automaton.  Each state is a vector of term-length+1 distances, so a
// single Accept costs O(len(term)).
type DenseAutomaton struct {
	term     Term
	distance uint
}

// NewDense returns a dense automaton matching all strings within the
// given edit distance of term.
func NewDense(term string, distance int) (*DenseAutomaton, error) {
	if distance < 0 {
		return nil, ErrNegativeDistance
	}
	return &DenseAutomaton{
		term:     NewTerm(term),
		distance: uint(distance),
	}, nil
}

// Term returns the reference term.
func (d *DenseAutomaton) Term() Term {
	return d.term
}

// Distance returns the maximum edit distance recognized.
func (d *DenseAutomaton) Distance() int {
	return int(d.distance)
}

// Start returns the start state
func (d *DenseAutomaton) Start() State {
	rv := make(denseState, d.term.Len()+1)
	for i := range rv {
		rv[i] = min(uint(i), d.distance+1)
	}
	return rv
}

// Accept returns the state resulting from consuming sym in state s.
func (d *DenseAutomaton) Accept(s State, sym Symbol) State {
	state := s.(denseState)
	next := make(denseState, 0, len(state))
	next = append(next, min(state[0]+1, d.distance+1))
	for i := 0; i < d.term.Len(); i++ {
		var cost uint
		if sym.Any || d.term.At(i) != sym.Char {
			cost = 1
		}
		v := min(min(next[i]+1, state[i+1]+1), state[i]+cost)
		next = append(next, min(v, d.distance+1))
	}
	return next
}

// IsMatch returns true if and only if the state is a match
func (d *DenseAutomaton) IsMatch(s State) bool {
	state := s.(denseState)
	return state[len(state)-1] <= d.distance
}

// CanMatch returns true if and only if some entry is still within the
// distance budget
func (d *DenseAutomaton) CanMatch(s State) bool {
	state := s.(denseState)
	for _, v := range state {
		if v <= d.distance {
			return true
		}
	}
	return false
}

// Transitions returns the sorted distinct term code-points at positions
// still within the distance budget
func (d *DenseAutomaton) Transitions(s State) []rune {
	state := s.(denseState)
	seen := make(map[rune]struct{}, d.term.Len())
	rv := make([]rune, 0, d.term.Len())
	for i := 0; i < d.term.Len(); i++ {
		if state[i] > d.distance {
			continue
		}
		r := d.term.At(i)
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			rv = append(rv, r)
		}
	}
	sortRunes(rv)
	return rv
}
